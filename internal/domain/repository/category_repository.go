package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CategoryRepository puerto de persistencia de categorías.
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	NameExists(ctx context.Context, name string) (bool, error)
	// Create devuelve la fila creada. domain.ErrDuplicate si el nombre ya existe.
	Create(ctx context.Context, name string) (*entity.Category, error)
	// Update devuelve nil, nil si la categoría no existe.
	Update(ctx context.Context, id int64, name string) (*entity.Category, error)
	// Delete devuelve el número de filas eliminadas.
	Delete(ctx context.Context, id int64) (int64, error)
}
