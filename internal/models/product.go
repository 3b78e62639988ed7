package models

import (
	"time"
)

// Product is one bakery item in the catalog.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProductRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=256"`
	Description string  `json:"description" binding:"max=2000"`
	Category    string  `json:"category" binding:"max=100"`
	Price       float64 `json:"price" binding:"gte=0"`
	Active      bool    `json:"active"`
}

type ProductListResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
}

// ProductSearchResult is the shape the discount screens' product
// multiselect consumes: the id under "product", plus the display name.
type ProductSearchResult struct {
	Product int64  `json:"product"`
	Name    string `json:"name"`
}
