package models

import "github.com/google/uuid"

// Branch represents a physical site belonging to exactly one tenant, where
// inventory is stocked and invoices are created. The backend also calls this
// entity a "location".
type Branch struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Address  string    `json:"address,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	TenantID uuid.UUID `json:"tenant_id"`
}
