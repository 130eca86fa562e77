package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/stockwise/console-gateway/shared/models"
)

// CreateInvoiceRequest records a sale. Totals are computed by the gateway
// from the cart lines before this request is sent; the backend recomputes and
// rejects mismatches.
type CreateInvoiceRequest struct {
	BranchID    uuid.UUID         `json:"branch_id" binding:"required"`
	Items       []models.CartLine `json:"items" binding:"required"`
	TaxAmount   float64           `json:"tax_amount"`
	TotalAmount float64           `json:"total_amount"`
	AmountPaid  *float64          `json:"amount_paid,omitempty"`
}

// ProfitReport summarizes revenue against cost over a date range.
type ProfitReport struct {
	BranchID  *uuid.UUID `json:"branch_id,omitempty"`
	From      string     `json:"from"`
	To        string     `json:"to"`
	Revenue   float64    `json:"revenue"`
	Cost      float64    `json:"cost"`
	Profit    float64    `json:"profit"`
	Invoices  int        `json:"invoices"`
	ItemsSold int        `json:"items_sold"`
}

// DailySalesReport summarizes one day of sales for a branch.
type DailySalesReport struct {
	BranchID uuid.UUID `json:"branch_id"`
	Date     string    `json:"date"`
	Revenue  float64   `json:"revenue"`
	Tax      float64   `json:"tax"`
	Invoices int       `json:"invoices"`
}

func (c *Client) CreateInvoice(ctx context.Context, creds *Credentials, req CreateInvoiceRequest) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := c.do(ctx, http.MethodPost, "/invoices", nil, req, creds, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (c *Client) GetInvoice(ctx context.Context, creds *Credentials, id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := c.do(ctx, http.MethodGet, "/invoices/"+id.String(), nil, nil, creds, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (c *Client) InvoicesByBranch(ctx context.Context, creds *Credentials, branchID uuid.UUID) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := c.do(ctx, http.MethodGet, "/invoices/branch/"+branchID.String(), nil, nil, creds, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (c *Client) InvoicesByTenant(ctx context.Context, creds *Credentials, tenantID uuid.UUID) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := c.do(ctx, http.MethodGet, "/invoices/tenant/"+tenantID.String(), nil, nil, creds, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// InvoicesByDateRange lists invoices between two dates (inclusive,
// YYYY-MM-DD).
func (c *Client) InvoicesByDateRange(ctx context.Context, creds *Credentials, branchID uuid.UUID, from, to string) ([]models.Invoice, error) {
	query := url.Values{
		"branch_id": {branchID.String()},
		"from":      {from},
		"to":        {to},
	}
	var invoices []models.Invoice
	if err := c.do(ctx, http.MethodGet, "/invoices/report/date-range", query, nil, creds, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (c *Client) ProfitReport(ctx context.Context, creds *Credentials, branchID *uuid.UUID, from, to string) (*ProfitReport, error) {
	query := url.Values{"from": {from}, "to": {to}}
	if branchID != nil {
		query.Set("branch_id", branchID.String())
	}
	var report ProfitReport
	if err := c.do(ctx, http.MethodGet, "/invoices/report/profit", query, nil, creds, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) DailySales(ctx context.Context, creds *Credentials, branchID uuid.UUID, date string) (*DailySalesReport, error) {
	query := url.Values{
		"branch_id": {branchID.String()},
		"date":      {date},
	}
	var report DailySalesReport
	if err := c.do(ctx, http.MethodGet, "/invoices/report/daily-sales", query, nil, creds, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
