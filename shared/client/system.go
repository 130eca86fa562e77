package client

import (
	"context"
	"net/http"
)

// SystemOverview is the platform-wide aggregate shown on the super-admin
// dashboard.
type SystemOverview struct {
	Tenants  int     `json:"tenants"`
	Branches int     `json:"branches"`
	Users    int     `json:"users"`
	Products int     `json:"products"`
	Invoices int     `json:"invoices"`
	Revenue  float64 `json:"revenue"`
}

// Overview returns the system-wide aggregate. Super-admin only on the
// backend side.
func (c *Client) Overview(ctx context.Context, creds *Credentials) (*SystemOverview, error) {
	var overview SystemOverview
	if err := c.do(ctx, http.MethodGet, "/system/overview", nil, nil, creds, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}
