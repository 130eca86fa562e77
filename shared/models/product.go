package models

import "github.com/google/uuid"

// Product is a sellable article owning zero or more variants.
type Product struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	ProductCode string           `json:"product_code,omitempty"`
	Category    string           `json:"category,omitempty"`
	Discount    float64          `json:"discount,omitempty"`
	Variants    []ProductVariant `json:"variants,omitempty"`
}

// ProductVariant is a concrete brand/size combination of a product. Stock
// levels and invoice items always reference a variant, never a bare product.
type ProductVariant struct {
	ID        uuid.UUID `json:"id"`
	Brand     string    `json:"brand"`
	Size      string    `json:"size"`
	ProductID uuid.UUID `json:"product_id"`
}
