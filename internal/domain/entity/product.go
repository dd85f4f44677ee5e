package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo. CategoryID es obligatorio y referencia una Category existente.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Currency    string
	Quantity    int32
	Active      bool
	CategoryID  int64
	CreatedDate time.Time
	UpdatedDate time.Time
}

// ProductWithCategory producto con la categoría {id, name} resuelta vía join.
type ProductWithCategory struct {
	Product
	Category CategorySummary
}
