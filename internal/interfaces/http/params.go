package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

// parseIDParam coerciona un identificador de path a entero no negativo.
// Falla con 400 y el mensaje indicado antes de tocar la base de datos.
func parseIDParam(c *fiber.Ctx, name, message string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id < 0 {
		return 0, domain.BadRequest("%s", message)
	}
	return id, nil
}
