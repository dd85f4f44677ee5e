package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// defaultCurrency moneda por defecto al crear productos.
const defaultCurrency = "USD"

// ProductUseCase CRUD de productos. La existencia de la categoría referenciada
// se verifica en la misma transacción que la mutación.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	tx           repository.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, tx repository.TxRunner) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, categoryRepo: categoryRepo, tx: tx}
}

// List devuelve todos los productos con su categoría {id, name}.
func (uc *ProductUseCase) List(ctx context.Context) ([]*dto.ProductWithCategoryResponse, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductWithCategoryResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ToProductWithCategoryResponse(p))
	}
	return out, nil
}

// GetByID devuelve el producto o 404 si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductWithCategoryResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("Product with an ID of %d does not exist.", id)
	}
	return dto.ToProductWithCategoryResponse(product), nil
}

// ListByCategory devuelve los productos de una categoría existente.
func (uc *ProductUseCase) ListByCategory(ctx context.Context, categoryID int64) ([]*dto.ProductWithCategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NotFound("Category with an ID of %d does not exist.", categoryID)
	}
	products, err := uc.productRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductWithCategoryResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ToProductWithCategoryResponse(p))
	}
	return out, nil
}

// Create crea un producto. La categoría referenciada debe existir; currency,
// quantity y active toman defaults si no vienen en el cuerpo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Price == nil {
		missing = append(missing, "price")
	}
	if in.CategoryID == nil {
		missing = append(missing, "category ID")
	}
	if len(missing) > 0 {
		return nil, domain.Unprocessable("%s", dto.MissingFieldsMessage(missing))
	}

	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Currency:    defaultCurrency,
		Quantity:    0,
		Active:      true,
		CategoryID:  *in.CategoryID,
	}
	if in.Currency != "" {
		product.Currency = in.Currency
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.Active != nil {
		product.Active = *in.Active
	}

	err := uc.tx.Run(ctx, func(r repository.TxRepos) error {
		category, err := r.Categories.GetByID(ctx, product.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.NotFound("Category with an ID of %d does not exist.", product.CategoryID)
		}
		return r.Products.Create(ctx, product)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound("Category with an ID of %d does not exist.", product.CategoryID)
		}
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// Update reemplaza todos los campos del producto. Todos son obligatorios.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Description == "" {
		missing = append(missing, "description")
	}
	if in.Price == nil {
		missing = append(missing, "price")
	}
	if in.Currency == "" {
		missing = append(missing, "currency")
	}
	if in.Quantity == nil {
		missing = append(missing, "quantity")
	}
	if in.Active == nil {
		missing = append(missing, "active")
	}
	if in.CategoryID == nil {
		missing = append(missing, "category ID")
	}
	if len(missing) > 0 {
		// El contrato original responde 400 (no 422) en esta ruta y siempre en plural.
		return nil, domain.BadRequest("Missing fields: %s", strings.Join(missing, ", "))
	}

	product := &entity.Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Currency:    in.Currency,
		Quantity:    *in.Quantity,
		Active:      *in.Active,
		CategoryID:  *in.CategoryID,
	}

	var out *dto.ProductResponse
	err := uc.tx.Run(ctx, func(r repository.TxRepos) error {
		category, err := r.Categories.GetByID(ctx, product.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.NotFound("Category with an ID of %d does not exist.", product.CategoryID)
		}
		updated, err := r.Products.Update(ctx, product)
		if err != nil {
			return err
		}
		if updated == nil {
			return domain.NotFound("Product with an ID of %d does not exist.", id)
		}
		out = dto.ToProductResponse(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.productRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.NotFound("Product with an ID of %d does not exist.", id)
	}
	return nil
}
