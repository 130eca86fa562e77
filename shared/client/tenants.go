package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/stockwise/console-gateway/shared/models"
)

// CreateTenantRequest creates a tenant.
type CreateTenantRequest struct {
	Name               string                    `json:"name" binding:"required"`
	SubscriptionStatus models.SubscriptionStatus `json:"subscription_status,omitempty"`
}

// UpdateTenantRequest updates tenant fields; nil fields are left unchanged.
type UpdateTenantRequest struct {
	Name               *string                    `json:"name,omitempty"`
	SubscriptionStatus *models.SubscriptionStatus `json:"subscription_status,omitempty"`
}

func (c *Client) ListTenants(ctx context.Context, creds *Credentials) ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := c.do(ctx, http.MethodGet, "/tenants", nil, nil, creds, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

func (c *Client) GetTenant(ctx context.Context, creds *Credentials, id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := c.do(ctx, http.MethodGet, "/tenants/"+id.String(), nil, nil, creds, &tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (c *Client) CreateTenant(ctx context.Context, creds *Credentials, req CreateTenantRequest) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := c.do(ctx, http.MethodPost, "/tenants", nil, req, creds, &tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (c *Client) UpdateTenant(ctx context.Context, creds *Credentials, id uuid.UUID, req UpdateTenantRequest) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := c.do(ctx, http.MethodPut, "/tenants/"+id.String(), nil, req, creds, &tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (c *Client) DeleteTenant(ctx context.Context, creds *Credentials, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/tenants/"+id.String(), nil, nil, creds, nil)
}
