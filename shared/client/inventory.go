package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/stockwise/console-gateway/shared/models"
)

// StockInRequest adds quantity of one variant to a branch's inventory.
type StockInRequest struct {
	BranchID     uuid.UUID `json:"branch_id" binding:"required"`
	VariantID    uuid.UUID `json:"variant_id" binding:"required"`
	Quantity     int       `json:"quantity" binding:"required"`
	CostPrice    float64   `json:"cost_price"`
	SellingPrice float64   `json:"selling_price"`
}

// StockCheck is the availability answer for one variant at one branch.
type StockCheck struct {
	BranchID  uuid.UUID `json:"branch_id"`
	VariantID uuid.UUID `json:"variant_id"`
	Quantity  int       `json:"quantity"`
	InStock   bool      `json:"in_stock"`
}

// StockStatusRow is one line of the stock-status report: a variant and how
// its current level relates to the low-stock threshold.
type StockStatusRow struct {
	Variant   models.ProductVariant `json:"variant"`
	Quantity  int                   `json:"quantity"`
	Status    string                `json:"status"` // "ok", "low", "out"
	Threshold int                   `json:"threshold"`
}

// BranchStockReport aggregates a branch's inventory for reporting.
type BranchStockReport struct {
	BranchID   uuid.UUID          `json:"branch_id"`
	TotalItems int                `json:"total_items"`
	TotalValue float64            `json:"total_value"`
	Rows       []models.Inventory `json:"rows"`
}

// StockIn records incoming stock for a branch.
func (c *Client) StockIn(ctx context.Context, creds *Credentials, req StockInRequest) (*models.Inventory, error) {
	var row models.Inventory
	if err := c.do(ctx, http.MethodPost, "/inventory/stock-in", nil, req, creds, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (c *Client) InventoryByBranch(ctx context.Context, creds *Credentials, branchID uuid.UUID) ([]models.Inventory, error) {
	var rows []models.Inventory
	if err := c.do(ctx, http.MethodGet, "/inventory/branch/"+branchID.String(), nil, nil, creds, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) InventoryByTenant(ctx context.Context, creds *Credentials, tenantID uuid.UUID) ([]models.Inventory, error) {
	var rows []models.Inventory
	if err := c.do(ctx, http.MethodGet, "/inventory/tenant/"+tenantID.String(), nil, nil, creds, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CheckStock asks whether a variant is available at a branch before it is
// added to a cart.
func (c *Client) CheckStock(ctx context.Context, creds *Credentials, branchID, variantID uuid.UUID) (*StockCheck, error) {
	query := url.Values{
		"branch_id":  {branchID.String()},
		"variant_id": {variantID.String()},
	}
	var check StockCheck
	if err := c.do(ctx, http.MethodGet, "/inventory/check-stock", query, nil, creds, &check); err != nil {
		return nil, err
	}
	return &check, nil
}

func (c *Client) StockMovements(ctx context.Context, creds *Credentials, branchID uuid.UUID) ([]models.StockMovement, error) {
	var movements []models.StockMovement
	if err := c.do(ctx, http.MethodGet, "/inventory/movements/"+branchID.String(), nil, nil, creds, &movements); err != nil {
		return nil, err
	}
	return movements, nil
}

func (c *Client) StockStatus(ctx context.Context, creds *Credentials, branchID uuid.UUID) ([]StockStatusRow, error) {
	var rows []StockStatusRow
	if err := c.do(ctx, http.MethodGet, "/inventory/stock-status/"+branchID.String(), nil, nil, creds, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) BranchStockReport(ctx context.Context, creds *Credentials, branchID uuid.UUID) (*BranchStockReport, error) {
	var report BranchStockReport
	if err := c.do(ctx, http.MethodGet, "/inventory/report/branch/"+branchID.String(), nil, nil, creds, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
