package main

import (
	"github.com/gin-gonic/gin"

	"github.com/stockwise/console-gateway/shared/client"
	"github.com/stockwise/console-gateway/shared/utils"
)

func (a *app) handleListTenants(c *gin.Context) {
	sess := currentSession(c)
	tenants, err := a.api.ListTenants(c.Request.Context(), &sess.Backend)
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "Tenants retrieved", tenants)
}

func (a *app) handleGetTenant(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	sess := currentSession(c)
	tenant, err := a.api.GetTenant(c.Request.Context(), &sess.Backend, id)
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "Tenant retrieved", tenant)
}

func (a *app) handleCreateTenant(c *gin.Context) {
	var req client.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Tenant name is required")
		return
	}

	sess := currentSession(c)
	tenant, err := a.api.CreateTenant(c.Request.Context(), &sess.Backend, req)
	if err != nil {
		respondClientError(c, err)
		return
	}
	a.recordAudit(sess, "create", "tenant", tenant.ID.String())
	utils.CreatedResponse(c, "Tenant created", tenant)
}

func (a *app) handleUpdateTenant(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req client.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid tenant update")
		return
	}

	sess := currentSession(c)
	tenant, err := a.api.UpdateTenant(c.Request.Context(), &sess.Backend, id, req)
	if err != nil {
		respondClientError(c, err)
		return
	}
	a.recordAudit(sess, "update", "tenant", id.String())
	utils.OKResponse(c, "Tenant updated", tenant)
}

func (a *app) handleDeleteTenant(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	sess := currentSession(c)
	if err := a.api.DeleteTenant(c.Request.Context(), &sess.Backend, id); err != nil {
		respondClientError(c, err)
		return
	}
	a.recordAudit(sess, "delete", "tenant", id.String())
	utils.OKResponse(c, "Tenant deleted", nil)
}
