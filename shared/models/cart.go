package models

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// CartLine is one line of an in-progress sale at the point of sale.
type CartLine struct {
	VariantID uuid.UUID `json:"variant_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
}

// Subtotal is quantity times unit price for this line.
func (l CartLine) Subtotal() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

// CartSubtotal sums the line subtotals. An empty cart has subtotal 0.
func CartSubtotal(lines []CartLine) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.Subtotal()
	}
	return sum
}

// ParseTax converts a user-entered tax amount to a number. Absent or
// unparseable input counts as zero tax rather than an error.
func ParseTax(s string) float64 {
	tax, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || tax < 0 {
		return 0
	}
	return tax
}

// CartTotal is the amount due: subtotal plus tax.
func CartTotal(lines []CartLine, tax float64) float64 {
	return CartSubtotal(lines) + tax
}
