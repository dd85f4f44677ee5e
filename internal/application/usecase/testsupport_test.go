package usecase_test

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Fakes con campos función: cada test fija solo lo que usa.

type fakeCategoryRepo struct {
	list       func() ([]*entity.Category, error)
	getByID    func(id int64) (*entity.Category, error)
	nameExists func(name string) (bool, error)
	create     func(name string) (*entity.Category, error)
	update     func(id int64, name string) (*entity.Category, error)
	delete     func(id int64) (int64, error)
}

func (f *fakeCategoryRepo) List(context.Context) ([]*entity.Category, error) {
	if f.list == nil {
		return nil, nil
	}
	return f.list()
}
func (f *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	if f.getByID == nil {
		return nil, nil
	}
	return f.getByID(id)
}
func (f *fakeCategoryRepo) NameExists(_ context.Context, name string) (bool, error) {
	if f.nameExists == nil {
		return false, nil
	}
	return f.nameExists(name)
}
func (f *fakeCategoryRepo) Create(_ context.Context, name string) (*entity.Category, error) {
	if f.create == nil {
		return &entity.Category{ID: 1, Name: name}, nil
	}
	return f.create(name)
}
func (f *fakeCategoryRepo) Update(_ context.Context, id int64, name string) (*entity.Category, error) {
	if f.update == nil {
		return nil, nil
	}
	return f.update(id, name)
}
func (f *fakeCategoryRepo) Delete(_ context.Context, id int64) (int64, error) {
	if f.delete == nil {
		return 0, nil
	}
	return f.delete(id)
}

type fakeProductRepo struct {
	list            func() ([]*entity.ProductWithCategory, error)
	getByID         func(id int64) (*entity.ProductWithCategory, error)
	listByCategory  func(categoryID int64) ([]*entity.ProductWithCategory, error)
	create          func(p *entity.Product) error
	update          func(p *entity.Product) (*entity.Product, error)
	delete          func(id int64) (int64, error)
	countByCategory func(categoryID int64) (int64, error)
}

func (f *fakeProductRepo) List(context.Context) ([]*entity.ProductWithCategory, error) {
	if f.list == nil {
		return nil, nil
	}
	return f.list()
}
func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.ProductWithCategory, error) {
	if f.getByID == nil {
		return nil, nil
	}
	return f.getByID(id)
}
func (f *fakeProductRepo) ListByCategory(_ context.Context, categoryID int64) ([]*entity.ProductWithCategory, error) {
	if f.listByCategory == nil {
		return nil, nil
	}
	return f.listByCategory(categoryID)
}
func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if f.create == nil {
		p.ID = 1
		return nil
	}
	return f.create(p)
}
func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) (*entity.Product, error) {
	if f.update == nil {
		return nil, nil
	}
	return f.update(p)
}
func (f *fakeProductRepo) Delete(_ context.Context, id int64) (int64, error) {
	if f.delete == nil {
		return 0, nil
	}
	return f.delete(id)
}
func (f *fakeProductRepo) CountByCategory(_ context.Context, categoryID int64) (int64, error) {
	if f.countByCategory == nil {
		return 0, nil
	}
	return f.countByCategory(categoryID)
}

// fakeTx ejecuta el callback directamente con los fakes (sin transacción real).
type fakeTx struct {
	repos repository.TxRepos
}

func (f *fakeTx) Run(_ context.Context, fn func(r repository.TxRepos) error) error {
	return fn(f.repos)
}
