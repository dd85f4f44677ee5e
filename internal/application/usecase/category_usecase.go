package usecase

import (
	"context"
	"errors"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías. Las secuencias verificación-y-mutación
// (unicidad del nombre, conteo de referencias) corren en una transacción.
type CategoryUseCase struct {
	repo repository.CategoryRepository
	tx   repository.TxRunner
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, tx repository.TxRunner) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, tx: tx}
}

// List devuelve todas las categorías.
func (uc *CategoryUseCase) List(ctx context.Context) ([]*dto.CategoryResponse, error) {
	categories, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.ToCategoryResponse(c))
	}
	return out, nil
}

// GetByID devuelve la categoría o 404 si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NotFound("Category with an ID of %d does not exist.", id)
	}
	return dto.ToCategoryResponse(category), nil
}

// Create crea una categoría con nombre único.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.Unprocessable("Name is required.")
	}
	var out *dto.CategoryResponse
	err := uc.tx.Run(ctx, func(r repository.TxRepos) error {
		exists, err := r.Categories.NameExists(ctx, in.Name)
		if err != nil {
			return err
		}
		if exists {
			return domain.Conflict("Category '%s' already exists.", in.Name)
		}
		category, err := r.Categories.Create(ctx, in.Name)
		if err != nil {
			return err
		}
		out = dto.ToCategoryResponse(category)
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.Conflict("Category '%s' already exists.", in.Name)
		}
		return nil, err
	}
	return out, nil
}

// Update renombra una categoría. El nuevo nombre debe ser único.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.Unprocessable("Name is required.")
	}
	var out *dto.CategoryResponse
	err := uc.tx.Run(ctx, func(r repository.TxRepos) error {
		exists, err := r.Categories.NameExists(ctx, in.Name)
		if err != nil {
			return err
		}
		if exists {
			return domain.Conflict("Category '%s' already exists.", in.Name)
		}
		category, err := r.Categories.Update(ctx, id, in.Name)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.NotFound("Category with an ID of %d does not exist.", id)
		}
		out = dto.ToCategoryResponse(category)
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.Conflict("Category '%s' already exists.", in.Name)
		}
		return nil, err
	}
	return out, nil
}

// Delete elimina una categoría sin productos asociados.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	return uc.tx.Run(ctx, func(r repository.TxRepos) error {
		count, err := r.Products.CountByCategory(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			noun := "product"
			if count > 1 {
				noun = "products"
			}
			return domain.Conflict("Category with an ID of %d is being used in %d %s.", id, count, noun)
		}
		deleted, err := r.Categories.Delete(ctx, id)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return domain.NotFound("Category with an ID of %d does not exist", id)
		}
		return nil
	})
}
