package main

import (
	"github.com/gin-gonic/gin"

	"github.com/stockwise/console-gateway/shared/authz"
	"github.com/stockwise/console-gateway/shared/utils"
)

func (a *app) handleSystemOverview(c *gin.Context) {
	sess := currentSession(c)
	overview, err := a.api.Overview(c.Request.Context(), &sess.Backend)
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "System overview retrieved", overview)
}

// handleNav returns the navigation entries for the session's role.
func (a *app) handleNav(c *gin.Context) {
	sess := currentSession(c)
	utils.OKResponse(c, "Navigation retrieved", authz.NavLinks(sess.User.Role))
}
