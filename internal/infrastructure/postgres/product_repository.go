package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// selectWithCategory columnas de producto más la categoría {id, name} vía join.
const selectWithCategory = `
	SELECT p.id, p.name, p.description, p.price, p.currency, p.quantity, p.active,
	       p.category_id, p.created_date, p.updated_date, c.id, c.name
	FROM product AS p
	JOIN category AS c ON c.id = p.category_id`

func scanProductWithCategory(row pgx.Row) (*entity.ProductWithCategory, error) {
	var p entity.ProductWithCategory
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Currency, &p.Quantity, &p.Active,
		&p.CategoryID, &p.CreatedDate, &p.UpdatedDate, &p.Category.ID, &p.Category.Name,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List devuelve todos los productos con su categoría.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.ProductWithCategory, error) {
	rows, err := r.q.Query(ctx, selectWithCategory+` ORDER BY p.id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// GetByID devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.ProductWithCategory, error) {
	p, err := scanProductWithCategory(r.q.QueryRow(ctx, selectWithCategory+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// ListByCategory devuelve los productos de una categoría.
func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.ProductWithCategory, error) {
	rows, err := r.q.Query(ctx, selectWithCategory+` WHERE p.category_id = $1 ORDER BY p.id`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

func collectProducts(rows pgx.Rows) ([]*entity.ProductWithCategory, error) {
	var products []*entity.ProductWithCategory
	for rows.Next() {
		p, err := scanProductWithCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Create inserta el producto y completa ID y timestamps.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO product (name, description, price, currency, quantity, active, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_date, updated_date`
	err := r.q.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.Currency,
		product.Quantity, product.Active, product.CategoryID,
	).Scan(&product.ID, &product.CreatedDate, &product.UpdatedDate)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update reemplaza todos los campos y refresca updated_date. nil, nil si no existe.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	query := `
		UPDATE product
		SET name = $1, description = $2, price = $3, currency = $4, quantity = $5,
		    active = $6, category_id = $7, updated_date = CURRENT_TIMESTAMP
		WHERE id = $8
		RETURNING id, name, description, price, currency, quantity, active, category_id, created_date, updated_date`
	var p entity.Product
	err := r.q.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.Currency,
		product.Quantity, product.Active, product.CategoryID, product.ID,
	).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Currency, &p.Quantity,
		&p.Active, &p.CategoryID, &p.CreatedDate, &p.UpdatedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return &p, nil
}

// Delete devuelve el número de filas eliminadas.
func (r *ProductRepo) Delete(ctx context.Context, id int64) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM product WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// CountByCategory cuenta los productos que referencian una categoría.
func (r *ProductRepo) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM product WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return count, nil
}
