package entity

import "time"

// Category categoría de productos. Name es único a nivel global.
type Category struct {
	ID          int64
	Name        string
	CreatedDate time.Time
	UpdatedDate time.Time
}

// CategorySummary referencia denormalizada {id, name} embebida en lecturas de producto.
type CategorySummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
