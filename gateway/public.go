package main

import (
	"github.com/gin-gonic/gin"

	"github.com/stockwise/console-gateway/shared/utils"
)

func (a *app) handlePublicTenants(c *gin.Context) {
	tenants, err := a.api.PublicTenants(c.Request.Context())
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "Tenants retrieved", tenants)
}

func (a *app) handlePublicBranches(c *gin.Context) {
	tenantID, ok := uuidQuery(c, "tenant_id")
	if !ok {
		return
	}
	branches, err := a.api.PublicBranches(c.Request.Context(), tenantID)
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "Branches retrieved", branches)
}
