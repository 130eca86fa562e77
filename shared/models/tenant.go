package models

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus is the billing state of a tenant.
type SubscriptionStatus string

const (
	SubscriptionTrial     SubscriptionStatus = "trial"
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionSuspended SubscriptionStatus = "suspended"
)

// Tenant represents a store-level organizational unit owning branches,
// products and users.
type Tenant struct {
	ID                 uuid.UUID          `json:"id"`
	Name               string             `json:"name"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
	CreatedAt          time.Time          `json:"created_at"`
}
