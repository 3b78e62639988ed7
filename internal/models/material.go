package models

import (
	"time"
)

// RawMaterial is a baking ingredient tracked for inventory.
type RawMaterial struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Unit          string    `json:"unit"`
	StockQuantity float64   `json:"stock_quantity"`
	ReorderLevel  float64   `json:"reorder_level"`
	CostPerUnit   float64   `json:"cost_per_unit"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type RawMaterialRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=256"`
	Unit          string  `json:"unit" binding:"required,min=1,max=20"`
	StockQuantity float64 `json:"stock_quantity" binding:"gte=0"`
	ReorderLevel  float64 `json:"reorder_level" binding:"gte=0"`
	CostPerUnit   float64 `json:"cost_per_unit" binding:"gte=0"`
}

type RawMaterialListResponse struct {
	Materials []RawMaterial `json:"materials"`
	Total     int           `json:"total"`
	Page      int           `json:"page"`
	Limit     int           `json:"limit"`
}
