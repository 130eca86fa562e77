package main

import (
	"github.com/gin-gonic/gin"

	"github.com/stockwise/console-gateway/shared/client"
	"github.com/stockwise/console-gateway/shared/session"
	"github.com/stockwise/console-gateway/shared/utils"
)

// loginResponse carries the user plus the role-specific dashboard path the
// frontend should navigate to.
type loginResponse struct {
	User     interface{} `json:"user"`
	Redirect string      `json:"redirect"`
}

func (a *app) handleLogin(c *gin.Context) {
	var req client.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Email and password are required")
		return
	}

	sess, token, err := a.sessions.Login(c.Request.Context(), req)
	if err != nil {
		// The backend's message reaches the login form unmodified.
		respondClientError(c, err)
		return
	}

	a.setSessionCookie(c, token)
	a.recordAudit(sess, "login", "", "")

	utils.OKResponse(c, "Login successful", loginResponse{
		User:     sess.User,
		Redirect: session.DashboardPath(sess.User.Role),
	})
}

func (a *app) handleLogout(c *gin.Context) {
	sess := currentSession(c)

	// Logout never fails from the caller's perspective: the backend call is
	// best-effort and the local session is destroyed unconditionally.
	if err := a.sessions.Logout(c.Request.Context(), sess); err != nil {
		utils.InternalServerErrorResponse(c, "Failed to clear session")
		return
	}

	a.clearSessionCookie(c)
	a.recordAudit(sess, "logout", "", "")
	utils.OKResponse(c, "Logged out", gin.H{"redirect": "/login"})
}

func (a *app) handleProfile(c *gin.Context) {
	sess := currentSession(c)
	utils.OKResponse(c, "Profile retrieved", sess.User)
}

func (a *app) handleRegister(c *gin.Context) {
	var req client.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid registration request")
		return
	}

	user, err := a.api.Register(c.Request.Context(), req)
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.CreatedResponse(c, "Account created", user)
}

func (a *app) handleRegisterSuperAdmin(c *gin.Context) {
	var req client.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid registration request")
		return
	}

	user, err := a.api.RegisterSuperAdmin(c.Request.Context(), req)
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.CreatedResponse(c, "Super admin created", user)
}

// handleSwitchContext scopes a super-admin session to a chosen tenant/branch
// and refreshes the session user from the backend afterwards.
func (a *app) handleSwitchContext(c *gin.Context) {
	sess := currentSession(c)

	var req client.SwitchContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid context switch request")
		return
	}

	if err := a.api.SwitchContext(c.Request.Context(), &sess.Backend, req); err != nil {
		respondClientError(c, err)
		return
	}

	user, err := a.sessions.RefreshUser(c.Request.Context(), sess)
	if err != nil {
		respondClientError(c, err)
		return
	}

	entityID := ""
	if req.TenantID != nil {
		entityID = req.TenantID.String()
	}
	a.recordAudit(sess, "switch_context", "tenant", entityID)
	utils.OKResponse(c, "Context switched", user)
}

func (a *app) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(session.CookieName, token, a.sessions.CookieTTLSeconds(), "/", "", false, true)
}

func (a *app) clearSessionCookie(c *gin.Context) {
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
}
