package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/stockwise/console-gateway/shared/models"
)

// LoginRequest carries user credentials plus the optional tenant/location the
// user is signing in to.
type LoginRequest struct {
	Email      string     `json:"email" binding:"required"`
	Password   string     `json:"password" binding:"required"`
	TenantID   *uuid.UUID `json:"tenant_id,omitempty"`
	LocationID *uuid.UUID `json:"location_id,omitempty"`
}

// RegisterRequest creates a store-admin account with its tenant.
type RegisterRequest struct {
	Email      string     `json:"email" binding:"required"`
	Password   string     `json:"password" binding:"required,min=8"`
	TenantName string     `json:"tenant_name,omitempty"`
	TenantID   *uuid.UUID `json:"tenant_id,omitempty"`
	BranchID   *uuid.UUID `json:"branch_id,omitempty"`
}

// SwitchContextRequest scopes a super-admin session to a chosen tenant and,
// optionally, one of its branches.
type SwitchContextRequest struct {
	TenantID *uuid.UUID `json:"tenant_id,omitempty"`
	BranchID *uuid.UUID `json:"branch_id,omitempty"`
}

// Login authenticates against the backend and returns the user together with
// the session cookies the backend set. Those cookies are the credentials for
// every later call on this user's behalf.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*models.User, *Credentials, error) {
	var user models.User
	resp, err := c.roundTrip(ctx, http.MethodPost, "/auth/login", nil, req, nil, &user)
	if err != nil {
		return nil, nil, err
	}
	return &user, &Credentials{Cookies: resp.Cookies()}, nil
}

// Register creates a new store-admin account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// RegisterSuperAdmin creates a platform super-admin account. The backend only
// permits this while no super admin exists yet.
func (c *Client) RegisterSuperAdmin(ctx context.Context, req RegisterRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/auth/register-super-admin", nil, req, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout ends the backend session. Callers treat failures as best-effort.
func (c *Client) Logout(ctx context.Context, creds *Credentials) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, creds, nil)
}

// Profile returns the user the backend session belongs to.
func (c *Client) Profile(ctx context.Context, creds *Credentials) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, nil, creds, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SwitchContext changes the server-side tenant/branch scope of a super-admin
// session. Callers must refresh the profile afterwards.
func (c *Client) SwitchContext(ctx context.Context, creds *Credentials, req SwitchContextRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/switch-context", nil, req, creds, nil)
}
