package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/stockwise/console-gateway/shared/models"
)

// CreateUserRequest creates a branch user or store admin under the caller's
// tenant.
type CreateUserRequest struct {
	Email    string     `json:"email" binding:"required"`
	Password string     `json:"password" binding:"required,min=8"`
	BranchID *uuid.UUID `json:"branch_id,omitempty"`
}

// UpdateUserRequest updates user fields; nil fields are left unchanged.
type UpdateUserRequest struct {
	Email    *string    `json:"email,omitempty"`
	Password *string    `json:"password,omitempty"`
	BranchID *uuid.UUID `json:"branch_id,omitempty"`
}

func (c *Client) UsersByTenant(ctx context.Context, creds *Credentials, tenantID uuid.UUID) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users/tenant/"+tenantID.String(), nil, nil, creds, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) UsersByBranch(ctx context.Context, creds *Credentials, branchID uuid.UUID) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users/branch/"+branchID.String(), nil, nil, creds, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, creds *Credentials, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/users/"+id.String(), nil, nil, creds, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateBranchUser(ctx context.Context, creds *Credentials, req CreateUserRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/users/branch-user", nil, req, creds, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateStoreAdmin(ctx context.Context, creds *Credentials, req CreateUserRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/users/store-admin", nil, req, creds, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, creds *Credentials, id uuid.UUID, req UpdateUserRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPut, "/users/"+id.String(), nil, req, creds, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, creds *Credentials, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/users/"+id.String(), nil, nil, creds, nil)
}

// ToggleUserStatus flips a user between active and inactive.
func (c *Client) ToggleUserStatus(ctx context.Context, creds *Credentials, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/users/"+id.String()+"/toggle-status", nil, nil, creds, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
