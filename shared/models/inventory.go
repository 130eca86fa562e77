package models

import (
	"time"

	"github.com/google/uuid"
)

// Inventory is a stock row for one product variant at one branch. Quantity is
// never negative in a valid state; uniqueness of (branch, variant) is enforced
// by the backend.
type Inventory struct {
	ID           uuid.UUID `json:"id"`
	Quantity     int       `json:"quantity"`
	CostPrice    float64   `json:"cost_price"`
	SellingPrice float64   `json:"selling_price"`
	BranchID     uuid.UUID `json:"branch_id"`
	VariantID    uuid.UUID `json:"variant_id"`

	Variant *ProductVariant `json:"variant,omitempty"`
	Branch  *Branch         `json:"branch,omitempty"`
}

// StockMovement is one audit row of stock entering or leaving a branch.
type StockMovement struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"` // "in" or "out"
	Quantity  int       `json:"quantity"`
	BranchID  uuid.UUID `json:"branch_id"`
	VariantID uuid.UUID `json:"variant_id"`
	CreatedAt time.Time `json:"created_at"`
}
