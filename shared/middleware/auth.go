package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/stockwise/console-gateway/shared/authz"
	"github.com/stockwise/console-gateway/shared/models"
	"github.com/stockwise/console-gateway/shared/session"
	"github.com/stockwise/console-gateway/shared/utils"
)

const sessionContextKey = "gateway_session"

// SessionAuth is the route guard: it resolves the session cookie and
// enforces role allow-lists before a handler runs.
type SessionAuth struct {
	sessions *session.Manager
}

// NewSessionAuth creates the guard middleware over a session manager.
func NewSessionAuth(sessions *session.Manager) *SessionAuth {
	return &SessionAuth{sessions: sessions}
}

// RequireAuth rejects requests without a valid session and stores the
// resolved session on the request context.
func (sa *SessionAuth) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			utils.UnauthorizedResponse(c, "Authentication required")
			c.Abort()
			return
		}

		sess, err := sa.sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			utils.UnauthorizedResponse(c, "Session expired or invalid")
			c.Abort()
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// RequireRoles rejects sessions whose role is not in the allow list. The
// membership decision, including the unconditional super-admin bypass, lives
// in authz.IsAuthorized.
func (sa *SessionAuth) RequireRoles(allow ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFromContext(c)
		if sess == nil || sess.User == nil {
			utils.UnauthorizedResponse(c, "Authentication required")
			c.Abort()
			return
		}

		if !authz.IsAuthorized(sess.User.Role, allow) {
			utils.ForbiddenResponse(c, "Insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionFromContext returns the session stored by RequireAuth, or nil.
func SessionFromContext(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}
