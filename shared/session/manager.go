package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/stockwise/console-gateway/shared/client"
	"github.com/stockwise/console-gateway/shared/models"
)

// Manager is the only component that creates, refreshes and destroys
// sessions. It is constructed once at startup and injected wherever session
// access is needed.
type Manager struct {
	api    *client.Client
	store  Store
	signer *Signer
	ttl    time.Duration
}

// NewManager wires a session manager over the given API client and store.
func NewManager(api *client.Client, store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{
		api:    api,
		store:  store,
		signer: NewSigner(secret, ttl),
		ttl:    ttl,
	}
}

// Login authenticates against the backend and opens a gateway session.
// Backend failures propagate unmodified and leave no session behind.
func (m *Manager) Login(ctx context.Context, req client.LoginRequest) (*Session, string, error) {
	user, creds, err := m.api.Login(ctx, req)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	sess := &Session{
		ID:         uuid.New().String(),
		User:       user,
		Backend:    *creds,
		CreatedAt:  now,
		LastUsedAt: now,
		ExpiresAt:  now.Add(m.ttl),
	}
	if err := m.store.Save(ctx, sess); err != nil {
		return nil, "", fmt.Errorf("failed to store session: %w", err)
	}

	token, err := m.signer.Issue(sess.ID)
	if err != nil {
		_ = m.store.Delete(ctx, sess.ID)
		return nil, "", err
	}
	return sess, token, nil
}

// Logout ends the backend session best-effort and always destroys the local
// one. After Logout returns, the session is gone regardless of what the
// backend answered.
func (m *Manager) Logout(ctx context.Context, sess *Session) error {
	if err := m.api.Logout(ctx, &sess.Backend); err != nil {
		logrus.WithError(err).Warn("backend logout failed, clearing session anyway")
	}
	return m.store.Delete(ctx, sess.ID)
}

// RefreshUser re-fetches the profile into the session. Used after any action
// that changes the server-side session scope, such as a super-admin context
// switch.
func (m *Manager) RefreshUser(ctx context.Context, sess *Session) (*models.User, error) {
	user, err := m.api.Profile(ctx, &sess.Backend)
	if err != nil {
		return nil, err
	}
	sess.User = user
	if err := m.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return user, nil
}

// Resolve verifies a cookie token, loads the referenced session and touches
// its last-used timestamp.
func (m *Manager) Resolve(ctx context.Context, token string) (*Session, error) {
	id, err := m.signer.Verify(token)
	if err != nil {
		return nil, ErrNoSession
	}

	sess, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	sess.UpdateLastUsed()
	if err := m.store.Save(ctx, sess); err != nil {
		logrus.WithError(err).Warn("failed to touch session")
	}
	return sess, nil
}

// CookieTTLSeconds is the max-age for the browser cookie, matching the
// session lifetime.
func (m *Manager) CookieTTLSeconds() int {
	return int(m.ttl / time.Second)
}

// DashboardPath maps a role to its landing page after login.
func DashboardPath(role models.UserRole) string {
	switch role.Canonical() {
	case models.RoleSuperAdmin:
		return "/super-admin/dashboard"
	case models.RoleStoreAdmin:
		return "/store-admin/dashboard"
	case models.RoleLocationUser:
		return "/location/dashboard"
	default:
		return "/dashboard"
	}
}
