package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// ErrorHandler normalizador terminal: convierte cualquier error devuelto por
// handlers o middleware en un cuerpo JSON {message} con su status. Los errores
// sin clase explícita responden 500 con el mensaje subyacente.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *domain.Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.StatusCode()).JSON(dto.ErrorResponse{Message: appErr.Message})
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{Message: fiberErr.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
}

// NotFoundHandler se registra después de todas las rutas: cualquier petición
// sin match termina aquí y fluye hacia ErrorHandler.
func NotFoundHandler(c *fiber.Ctx) error {
	return domain.NotFound("Page not found.")
}
