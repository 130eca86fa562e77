package main

import (
	"github.com/gin-gonic/gin"

	"github.com/stockwise/console-gateway/shared/client"
	"github.com/stockwise/console-gateway/shared/models"
	"github.com/stockwise/console-gateway/shared/utils"
)

// handleListUsers lists users scoped to a tenant or a branch; exactly one of
// the two query filters must be present.
func (a *app) handleListUsers(c *gin.Context) {
	sess := currentSession(c)

	var (
		users []models.User
		err   error
	)
	switch {
	case c.Query("tenant_id") != "":
		tenantID, ok := uuidQuery(c, "tenant_id")
		if !ok {
			return
		}
		users, err = a.api.UsersByTenant(c.Request.Context(), &sess.Backend, tenantID)
	case c.Query("branch_id") != "":
		branchID, ok := uuidQuery(c, "branch_id")
		if !ok {
			return
		}
		users, err = a.api.UsersByBranch(c.Request.Context(), &sess.Backend, branchID)
	default:
		utils.BadRequestResponse(c, "A tenant_id or branch_id filter is required")
		return
	}
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "Users retrieved", users)
}

func (a *app) handleGetUser(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	sess := currentSession(c)
	user, err := a.api.GetUser(c.Request.Context(), &sess.Backend, id)
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "User retrieved", user)
}

func (a *app) handleCreateBranchUser(c *gin.Context) {
	var req client.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Email and password are required")
		return
	}

	sess := currentSession(c)
	user, err := a.api.CreateBranchUser(c.Request.Context(), &sess.Backend, req)
	if err != nil {
		respondClientError(c, err)
		return
	}
	a.recordAudit(sess, "create", "user", user.ID.String())
	utils.CreatedResponse(c, "Branch user created", user)
}

func (a *app) handleCreateStoreAdmin(c *gin.Context) {
	var req client.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Email and password are required")
		return
	}

	sess := currentSession(c)
	user, err := a.api.CreateStoreAdmin(c.Request.Context(), &sess.Backend, req)
	if err != nil {
		respondClientError(c, err)
		return
	}
	a.recordAudit(sess, "create", "user", user.ID.String())
	utils.CreatedResponse(c, "Store admin created", user)
}

func (a *app) handleUpdateUser(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req client.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid user update")
		return
	}

	sess := currentSession(c)
	user, err := a.api.UpdateUser(c.Request.Context(), &sess.Backend, id, req)
	if err != nil {
		respondClientError(c, err)
		return
	}
	a.recordAudit(sess, "update", "user", id.String())
	utils.OKResponse(c, "User updated", user)
}

func (a *app) handleDeleteUser(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	sess := currentSession(c)
	if err := a.api.DeleteUser(c.Request.Context(), &sess.Backend, id); err != nil {
		respondClientError(c, err)
		return
	}
	a.recordAudit(sess, "delete", "user", id.String())
	utils.OKResponse(c, "User deleted", nil)
}

func (a *app) handleToggleUserStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	sess := currentSession(c)
	user, err := a.api.ToggleUserStatus(c.Request.Context(), &sess.Backend, id)
	if err != nil {
		respondClientError(c, err)
		return
	}
	a.recordAudit(sess, "toggle_status", "user", id.String())
	utils.OKResponse(c, "User status updated", user)
}
