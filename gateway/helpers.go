package main

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stockwise/console-gateway/shared/audit"
	"github.com/stockwise/console-gateway/shared/client"
	"github.com/stockwise/console-gateway/shared/middleware"
	"github.com/stockwise/console-gateway/shared/session"
	"github.com/stockwise/console-gateway/shared/utils"
)

// timeNow is stubbed in tests.
var timeNow = time.Now

// respondClientError maps an API-client failure onto a gateway response.
// Backend-reported errors keep their status and message verbatim; transport
// and protocol failures become a 502 with the client's message.
func respondClientError(c *gin.Context, err error) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		utils.ErrorResponse(c, apiErr.Status, apiErr.Message)
		return
	}
	utils.BadGatewayResponse(c, err.Error())
}

// uuidParam parses a UUID path parameter, answering 400 on malformed input
// before any backend call is made. The bool reports success.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// uuidQuery parses a UUID query parameter.
func uuidQuery(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Query(name))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// currentSession returns the session placed on the context by the guard.
func currentSession(c *gin.Context) *session.Session {
	return middleware.SessionFromContext(c)
}

// recordAudit emits a best-effort audit event for an action performed by the
// session's user.
func (a *app) recordAudit(sess *session.Session, action, entity, entityID string) {
	if sess == nil || sess.User == nil {
		return
	}
	e := audit.Event{
		ID:       uuid.New().String(),
		ActorID:  sess.User.ID.String(),
		Email:    sess.User.Email,
		Role:     string(sess.User.Role),
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		At:       time.Now().UTC(),
	}
	if sess.User.TenantID != nil {
		e.TenantID = sess.User.TenantID.String()
	}
	a.audit.Publish(e)
}
