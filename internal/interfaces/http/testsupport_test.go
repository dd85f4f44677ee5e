package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	apphttp "github.com/jhoicas/catalogo-api/internal/interfaces/http"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

// memStore contrapartida en memoria de los tres repositorios.
// calls cuenta cada acceso: permite verificar que la validación de
// parámetros falla antes de tocar el almacenamiento.
type memStore struct {
	users      []*entity.User
	categories []*entity.Category
	products   []*entity.Product
	nextUser   int64
	nextCat    int64
	nextProd   int64
	calls      int
}

func newMemStore() *memStore {
	return &memStore{nextUser: 1, nextCat: 1, nextProd: 1}
}

func (s *memStore) addCategory(name string) *entity.Category {
	now := time.Now()
	c := &entity.Category{ID: s.nextCat, Name: name, CreatedDate: now, UpdatedDate: now}
	s.nextCat++
	s.categories = append(s.categories, c)
	return c
}

func (s *memStore) addProduct(name string, categoryID int64) *entity.Product {
	now := time.Now()
	p := &entity.Product{
		ID: s.nextProd, Name: name, Currency: "USD", Active: true,
		CategoryID: categoryID, CreatedDate: now, UpdatedDate: now,
	}
	s.nextProd++
	s.products = append(s.products, p)
	return p
}

func (s *memStore) addUser(name, email, passwordHash string) *entity.User {
	u := &entity.User{ID: s.nextUser, Name: name, Email: email, PasswordHash: passwordHash, CreatedDate: time.Now()}
	s.nextUser++
	s.users = append(s.users, u)
	return u
}

func (s *memStore) findCategory(id int64) *entity.Category {
	for _, c := range s.categories {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// memUsers implementa repository.UserRepository sobre memStore.
type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, u *entity.User) error {
	r.s.calls++
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	created := *u
	created.ID = r.s.nextUser
	created.CreatedDate = time.Now()
	r.s.nextUser++
	r.s.users = append(r.s.users, &created)
	u.ID = created.ID
	u.CreatedDate = created.CreatedDate
	return nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.calls++
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r memUsers) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.calls++
	for _, u := range r.s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r memUsers) List(context.Context) ([]*entity.User, error) {
	r.s.calls++
	return r.s.users, nil
}

// memCategories implementa repository.CategoryRepository sobre memStore.
type memCategories struct{ s *memStore }

func (r memCategories) List(context.Context) ([]*entity.Category, error) {
	r.s.calls++
	return r.s.categories, nil
}

func (r memCategories) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	r.s.calls++
	return r.s.findCategory(id), nil
}

func (r memCategories) NameExists(_ context.Context, name string) (bool, error) {
	r.s.calls++
	for _, c := range r.s.categories {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r memCategories) Create(_ context.Context, name string) (*entity.Category, error) {
	r.s.calls++
	return r.s.addCategory(name), nil
}

func (r memCategories) Update(_ context.Context, id int64, name string) (*entity.Category, error) {
	r.s.calls++
	c := r.s.findCategory(id)
	if c == nil {
		return nil, nil
	}
	c.Name = name
	c.UpdatedDate = time.Now()
	return c, nil
}

func (r memCategories) Delete(_ context.Context, id int64) (int64, error) {
	r.s.calls++
	for i, c := range r.s.categories {
		if c.ID == id {
			r.s.categories = append(r.s.categories[:i], r.s.categories[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// memProducts implementa repository.ProductRepository sobre memStore.
type memProducts struct{ s *memStore }

func (r memProducts) withCategory(p *entity.Product) *entity.ProductWithCategory {
	out := &entity.ProductWithCategory{Product: *p}
	if c := r.s.findCategory(p.CategoryID); c != nil {
		out.Category = entity.CategorySummary{ID: c.ID, Name: c.Name}
	}
	return out
}

func (r memProducts) List(context.Context) ([]*entity.ProductWithCategory, error) {
	r.s.calls++
	var out []*entity.ProductWithCategory
	for _, p := range r.s.products {
		out = append(out, r.withCategory(p))
	}
	return out, nil
}

func (r memProducts) GetByID(_ context.Context, id int64) (*entity.ProductWithCategory, error) {
	r.s.calls++
	for _, p := range r.s.products {
		if p.ID == id {
			return r.withCategory(p), nil
		}
	}
	return nil, nil
}

func (r memProducts) ListByCategory(_ context.Context, categoryID int64) ([]*entity.ProductWithCategory, error) {
	r.s.calls++
	var out []*entity.ProductWithCategory
	for _, p := range r.s.products {
		if p.CategoryID == categoryID {
			out = append(out, r.withCategory(p))
		}
	}
	return out, nil
}

func (r memProducts) Create(_ context.Context, product *entity.Product) error {
	r.s.calls++
	if r.s.findCategory(product.CategoryID) == nil {
		return domain.ErrNotFound
	}
	product.ID = r.s.nextProd
	product.CreatedDate = time.Now()
	product.UpdatedDate = product.CreatedDate
	r.s.nextProd++
	stored := *product
	r.s.products = append(r.s.products, &stored)
	return nil
}

func (r memProducts) Update(_ context.Context, product *entity.Product) (*entity.Product, error) {
	r.s.calls++
	for _, p := range r.s.products {
		if p.ID == product.ID {
			created := p.CreatedDate
			*p = *product
			p.CreatedDate = created
			p.UpdatedDate = time.Now()
			return p, nil
		}
	}
	return nil, nil
}

func (r memProducts) Delete(_ context.Context, id int64) (int64, error) {
	r.s.calls++
	for i, p := range r.s.products {
		if p.ID == id {
			r.s.products = append(r.s.products[:i], r.s.products[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r memProducts) CountByCategory(_ context.Context, categoryID int64) (int64, error) {
	r.s.calls++
	var count int64
	for _, p := range r.s.products {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

// memTx ejecuta el callback directamente: los fakes no transaccionan.
type memTx struct{ s *memStore }

func (t memTx) Run(_ context.Context, fn func(r repository.TxRepos) error) error {
	return fn(repository.TxRepos{
		Users:      memUsers{t.s},
		Categories: memCategories{t.s},
		Products:   memProducts{t.s},
	})
}

// buildTestApp arma la aplicación completa (router + normalizador) sobre memStore.
func buildTestApp(s *memStore) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})

	userRepo := memUsers{s}
	categoryRepo := memCategories{s}
	productRepo := memProducts{s}
	tx := memTx{s}

	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     auth.NewAuthUseCase(userRepo, tx, testJWTSecret),
		CategoryUC: usecase.NewCategoryUseCase(categoryRepo, tx),
		ProductUC:  usecase.NewProductUseCase(productRepo, categoryRepo, tx),
		UserUC:     usecase.NewUserUseCase(userRepo),
		JWTSecret:  testJWTSecret,
	})
	return app
}

// doJSON lanza una petición con cuerpo JSON opcional y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// doEmptyJSON lanza una petición con Content-Type JSON y cuerpo vacío.
func doEmptyJSON(t *testing.T, app *fiber.App, method, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodifica el cuerpo JSON en un mapa.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// requireMessage verifica status y cuerpo {message}.
func requireMessage(t *testing.T, resp *http.Response, status int, message string) {
	t.Helper()
	require.Equal(t, status, resp.StatusCode)
	body := decodeBody(t, resp)
	require.Equal(t, message, body["message"])
}
