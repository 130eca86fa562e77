package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/stockwise/console-gateway/shared/models"
)

// PublicTenants lists tenants without authentication, for the registration
// and login forms.
func (c *Client) PublicTenants(ctx context.Context) ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := c.do(ctx, http.MethodGet, "/public/tenants", nil, nil, nil, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

// PublicBranches lists a tenant's branches without authentication.
func (c *Client) PublicBranches(ctx context.Context, tenantID uuid.UUID) ([]models.Branch, error) {
	query := url.Values{"tenant_id": {tenantID.String()}}
	var branches []models.Branch
	if err := c.do(ctx, http.MethodGet, "/public/branches", query, nil, nil, &branches); err != nil {
		return nil, err
	}
	return branches, nil
}
