package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/stockwise/console-gateway/shared/models"
)

// CreateProductRequest creates a product.
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	ProductCode string  `json:"product_code,omitempty"`
	Category    string  `json:"category,omitempty"`
	Discount    float64 `json:"discount,omitempty"`
}

// UpdateProductRequest updates product fields; nil fields are left unchanged.
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	ProductCode *string  `json:"product_code,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Discount    *float64 `json:"discount,omitempty"`
}

// CreateVariantRequest adds a brand/size variant to a product.
type CreateVariantRequest struct {
	Brand string `json:"brand" binding:"required"`
	Size  string `json:"size" binding:"required"`
}

func (c *Client) ListProducts(ctx context.Context, creds *Credentials) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, nil, creds, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, creds *Credentials, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+id.String(), nil, nil, creds, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// SearchProducts searches products by name fragment.
func (c *Client) SearchProducts(ctx context.Context, creds *Credentials, q string) ([]models.Product, error) {
	query := url.Values{"q": {q}}
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products/search", query, nil, creds, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ProductByCode looks a product up by its exact product code, used by the POS
// barcode path.
func (c *Client) ProductByCode(ctx context.Context, creds *Credentials, code string) (*models.Product, error) {
	query := url.Values{"code": {code}}
	var product models.Product
	if err := c.do(ctx, http.MethodGet, "/products/by-code", query, nil, creds, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, creds *Credentials, req CreateProductRequest) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodPost, "/products", nil, req, creds, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, creds *Credentials, id uuid.UUID, req UpdateProductRequest) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodPut, "/products/"+id.String(), nil, req, creds, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, creds *Credentials, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/products/"+id.String(), nil, nil, creds, nil)
}

func (c *Client) ListVariants(ctx context.Context, creds *Credentials, productID uuid.UUID) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	if err := c.do(ctx, http.MethodGet, "/products/"+productID.String()+"/variants", nil, nil, creds, &variants); err != nil {
		return nil, err
	}
	return variants, nil
}

func (c *Client) CreateVariant(ctx context.Context, creds *Credentials, productID uuid.UUID, req CreateVariantRequest) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	if err := c.do(ctx, http.MethodPost, "/products/"+productID.String()+"/variants", nil, req, creds, &variant); err != nil {
		return nil, err
	}
	return &variant, nil
}

func (c *Client) DeleteVariant(ctx context.Context, creds *Credentials, productID, variantID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/products/"+productID.String()+"/variants/"+variantID.String(), nil, nil, creds, nil)
}
