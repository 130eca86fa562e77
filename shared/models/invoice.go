package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Invoice is a recorded sale at a branch.
type Invoice struct {
	ID            uuid.UUID     `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	TotalAmount   float64       `json:"total_amount"`
	TaxAmount     float64       `json:"tax_amount"`
	ChangeAmount  *float64      `json:"change_amount,omitempty"`
	BranchID      uuid.UUID     `json:"branch_id"`
	Items         []InvoiceItem `json:"items"`
	CreatedAt     time.Time     `json:"created_at"`
}

// InvoiceItem is one line of an invoice. Subtotal is quantity times unit
// price, computed at sale time.
type InvoiceItem struct {
	ID        uuid.UUID `json:"id"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	Subtotal  float64   `json:"subtotal"`
	VariantID uuid.UUID `json:"variant_id"`

	Variant *ProductVariant `json:"variant,omitempty"`
}

// ItemsSubtotal sums the item subtotals.
func (inv *Invoice) ItemsSubtotal() float64 {
	var sum float64
	for _, it := range inv.Items {
		sum += it.Subtotal
	}
	return sum
}

// TotalsConsistent reports whether total_amount equals the item subtotals plus
// tax, within a cent. Display-level check only; the backend owns the math.
func (inv *Invoice) TotalsConsistent() bool {
	return math.Abs(inv.ItemsSubtotal()+inv.TaxAmount-inv.TotalAmount) < 0.01
}
