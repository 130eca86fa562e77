package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/stockwise/console-gateway/shared/models"
)

// CreateBranchRequest creates a branch under a tenant.
type CreateBranchRequest struct {
	Name     string     `json:"name" binding:"required"`
	Address  string     `json:"address,omitempty"`
	Phone    string     `json:"phone,omitempty"`
	TenantID *uuid.UUID `json:"tenant_id,omitempty"`
}

// UpdateBranchRequest updates branch fields; nil fields are left unchanged.
type UpdateBranchRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

func (c *Client) ListBranches(ctx context.Context, creds *Credentials) ([]models.Branch, error) {
	var branches []models.Branch
	if err := c.do(ctx, http.MethodGet, "/branches", nil, nil, creds, &branches); err != nil {
		return nil, err
	}
	return branches, nil
}

func (c *Client) GetBranch(ctx context.Context, creds *Credentials, id uuid.UUID) (*models.Branch, error) {
	var branch models.Branch
	if err := c.do(ctx, http.MethodGet, "/branches/"+id.String(), nil, nil, creds, &branch); err != nil {
		return nil, err
	}
	return &branch, nil
}

func (c *Client) BranchesByTenant(ctx context.Context, creds *Credentials, tenantID uuid.UUID) ([]models.Branch, error) {
	var branches []models.Branch
	if err := c.do(ctx, http.MethodGet, "/branches/tenant/"+tenantID.String(), nil, nil, creds, &branches); err != nil {
		return nil, err
	}
	return branches, nil
}

func (c *Client) CreateBranch(ctx context.Context, creds *Credentials, req CreateBranchRequest) (*models.Branch, error) {
	var branch models.Branch
	if err := c.do(ctx, http.MethodPost, "/branches", nil, req, creds, &branch); err != nil {
		return nil, err
	}
	return &branch, nil
}

func (c *Client) UpdateBranch(ctx context.Context, creds *Credentials, id uuid.UUID, req UpdateBranchRequest) (*models.Branch, error) {
	var branch models.Branch
	if err := c.do(ctx, http.MethodPut, "/branches/"+id.String(), nil, req, creds, &branch); err != nil {
		return nil, err
	}
	return &branch, nil
}

func (c *Client) DeleteBranch(ctx context.Context, creds *Credentials, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/branches/"+id.String(), nil, nil, creds, nil)
}
