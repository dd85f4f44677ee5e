package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CreateProductRequest cuerpo de POST /api/products.
// name, price y category_id son obligatorios; el resto toma defaults
// (currency "USD", quantity 0, active true).
type CreateProductRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Currency    string           `json:"currency"`
	Quantity    *int32           `json:"quantity"`
	Active      *bool            `json:"active"`
	CategoryID  *int64           `json:"category_id"`
}

// UpdateProductRequest cuerpo de PUT /api/products/:id. Todos los campos son obligatorios.
type UpdateProductRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Currency    string           `json:"currency"`
	Quantity    *int32           `json:"quantity"`
	Active      *bool            `json:"active"`
	CategoryID  *int64           `json:"category_id"`
}

// ProductResponse fila de producto tal como se persiste (mutaciones).
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Quantity    int32           `json:"quantity"`
	Active      bool            `json:"active"`
	CategoryID  int64           `json:"category_id"`
	CreatedDate time.Time       `json:"created_date"`
	UpdatedDate time.Time       `json:"updated_date"`
}

// ProductWithCategoryResponse producto con la categoría {id, name} embebida (lecturas).
type ProductWithCategoryResponse struct {
	ID          int64                  `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Price       decimal.Decimal        `json:"price"`
	Currency    string                 `json:"currency"`
	Quantity    int32                  `json:"quantity"`
	Active      bool                   `json:"active"`
	CreatedDate time.Time              `json:"created_date"`
	UpdatedDate time.Time              `json:"updated_date"`
	Category    entity.CategorySummary `json:"category"`
}

// ToProductResponse convierte la entidad a DTO de mutación.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Currency:    p.Currency,
		Quantity:    p.Quantity,
		Active:      p.Active,
		CategoryID:  p.CategoryID,
		CreatedDate: p.CreatedDate,
		UpdatedDate: p.UpdatedDate,
	}
}

// ToProductWithCategoryResponse convierte la entidad con join a DTO de lectura.
func ToProductWithCategoryResponse(p *entity.ProductWithCategory) *ProductWithCategoryResponse {
	if p == nil {
		return nil
	}
	return &ProductWithCategoryResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Currency:    p.Currency,
		Quantity:    p.Quantity,
		Active:      p.Active,
		CreatedDate: p.CreatedDate,
		UpdatedDate: p.UpdatedDate,
		Category:    p.Category,
	}
}
