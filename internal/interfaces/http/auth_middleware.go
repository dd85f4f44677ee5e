package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/pkg/jwt"
)

// LocalUserID key del user id resuelto en c.Locals.
const LocalUserID = "user_id"

// AuthMiddleware valida el access token y deja el user id en c.Locals.
// El header Authorization lleva el token crudo, sin prefijo "Bearer ".
// Cualquier fallo de verificación responde con el mismo 401.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := c.Get(fiber.HeaderAuthorization)
		if accessToken == "" {
			return domain.Unauthorized("Access token not found.")
		}
		userID, err := jwt.Parse(jwtSecret, accessToken)
		if err != nil {
			return domain.Unauthorized("Access token is invalid or has expired.")
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// GetUserID devuelve el user id del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalUserID).(int64)
	return v
}
