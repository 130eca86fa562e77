// Package session owns the authenticated-session lifecycle for the gateway.
// A session pairs the logged-in user with the backend cookies obtained at
// login, and is referenced from the browser through a signed cookie.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/stockwise/console-gateway/shared/client"
	"github.com/stockwise/console-gateway/shared/models"
)

// ErrNoSession is returned when a session ID does not resolve to a live
// session (unknown, expired or logged out).
var ErrNoSession = errors.New("session not found")

// Session is the server-side record behind a browser session cookie.
type Session struct {
	ID         string             `json:"id"`
	User       *models.User       `json:"user"`
	Backend    client.Credentials `json:"backend"`
	CreatedAt  time.Time          `json:"created_at"`
	LastUsedAt time.Time          `json:"last_used_at"`
	ExpiresAt  time.Time          `json:"expires_at"`
}

// IsExpired reports whether the session has passed its expiry.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// UpdateLastUsed stamps the session with the current time.
func (s *Session) UpdateLastUsed() {
	s.LastUsedAt = time.Now()
}

// Store persists sessions for their lifetime.
type Store interface {
	Save(ctx context.Context, sess *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
