package dto

import (
	"time"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CategoryRequest cuerpo de creación/actualización de categoría.
type CategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse fila de categoría tal como se persiste.
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	CreatedDate time.Time `json:"created_date"`
	UpdatedDate time.Time `json:"updated_date"`
}

// ToCategoryResponse convierte la entidad a DTO de respuesta.
func ToCategoryResponse(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		CreatedDate: c.CreatedDate,
		UpdatedDate: c.UpdatedDate,
	}
}
