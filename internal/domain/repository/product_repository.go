package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia de productos.
// Las lecturas devuelven la categoría {id, name} resuelta.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.ProductWithCategory, error)
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.ProductWithCategory, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*entity.ProductWithCategory, error)
	// Create persiste el producto y completa ID y timestamps.
	// Devuelve domain.ErrNotFound si la categoría referenciada no existe.
	Create(ctx context.Context, product *entity.Product) error
	// Update devuelve nil, nil si el producto no existe.
	Update(ctx context.Context, product *entity.Product) (*entity.Product, error)
	// Delete devuelve el número de filas eliminadas.
	Delete(ctx context.Context, id int64) (int64, error)
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
}
