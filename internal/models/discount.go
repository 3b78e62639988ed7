package models

import (
	"brodverk-backend/internal/discount"
)

// Discount status constants. Drafts are invisible to checkout.
const (
	DiscountStatusDraft  = "draft"
	DiscountStatusActive = "active"
)

// DiscountListResponse is a paginated list of stored discounts.
type DiscountListResponse struct {
	Discounts []discount.Record `json:"discounts"`
	Total     int               `json:"total"`
	Page      int               `json:"page"`
	Limit     int               `json:"limit"`
}
