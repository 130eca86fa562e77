package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stockwise/console-gateway/shared/client"
	"github.com/stockwise/console-gateway/shared/models"
	"github.com/stockwise/console-gateway/shared/utils"
)

// handleListBranches lists branches, filtered to one tenant when a tenant_id
// query parameter is present.
func (a *app) handleListBranches(c *gin.Context) {
	sess := currentSession(c)

	var (
		branches []models.Branch
		err      error
	)
	if raw := c.Query("tenant_id"); raw != "" {
		tenantID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			utils.BadRequestResponse(c, "Invalid tenant_id")
			return
		}
		branches, err = a.api.BranchesByTenant(c.Request.Context(), &sess.Backend, tenantID)
	} else {
		branches, err = a.api.ListBranches(c.Request.Context(), &sess.Backend)
	}
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "Branches retrieved", branches)
}

func (a *app) handleGetBranch(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	sess := currentSession(c)
	branch, err := a.api.GetBranch(c.Request.Context(), &sess.Backend, id)
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "Branch retrieved", branch)
}

func (a *app) handleCreateBranch(c *gin.Context) {
	var req client.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Branch name is required")
		return
	}

	sess := currentSession(c)
	branch, err := a.api.CreateBranch(c.Request.Context(), &sess.Backend, req)
	if err != nil {
		respondClientError(c, err)
		return
	}
	a.recordAudit(sess, "create", "branch", branch.ID.String())
	utils.CreatedResponse(c, "Branch created", branch)
}

func (a *app) handleUpdateBranch(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req client.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid branch update")
		return
	}

	sess := currentSession(c)
	branch, err := a.api.UpdateBranch(c.Request.Context(), &sess.Backend, id, req)
	if err != nil {
		respondClientError(c, err)
		return
	}
	a.recordAudit(sess, "update", "branch", id.String())
	utils.OKResponse(c, "Branch updated", branch)
}

func (a *app) handleDeleteBranch(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	sess := currentSession(c)
	if err := a.api.DeleteBranch(c.Request.Context(), &sess.Backend, id); err != nil {
		respondClientError(c, err)
		return
	}
	a.recordAudit(sess, "delete", "branch", id.String())
	utils.OKResponse(c, "Branch deleted", nil)
}
