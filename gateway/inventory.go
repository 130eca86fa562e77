package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stockwise/console-gateway/shared/client"
	"github.com/stockwise/console-gateway/shared/utils"
)

// stockInForm is the raw stock-in submission. Quantity arrives as the string
// the user typed; it is validated here, before any backend call.
type stockInForm struct {
	BranchID     uuid.UUID `json:"branch_id" binding:"required"`
	VariantID    uuid.UUID `json:"variant_id" binding:"required"`
	Quantity     string    `json:"quantity" binding:"required"`
	CostPrice    float64   `json:"cost_price"`
	SellingPrice float64   `json:"selling_price"`
}

func (a *app) handleStockIn(c *gin.Context) {
	var form stockInForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.BadRequestResponse(c, "Branch, variant and quantity are required")
		return
	}

	quantity, err := utils.ParseQuantity(form.Quantity)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	sess := currentSession(c)
	if !sess.User.CanActOnBranch(form.BranchID) {
		utils.ForbiddenResponse(c, "You can only stock in at your own branch")
		return
	}

	row, err := a.api.StockIn(c.Request.Context(), &sess.Backend, client.StockInRequest{
		BranchID:     form.BranchID,
		VariantID:    form.VariantID,
		Quantity:     quantity,
		CostPrice:    form.CostPrice,
		SellingPrice: form.SellingPrice,
	})
	if err != nil {
		respondClientError(c, err)
		return
	}
	a.recordAudit(sess, "stock_in", "inventory", row.ID.String())
	utils.CreatedResponse(c, "Stock recorded", row)
}

func (a *app) handleInventoryByBranch(c *gin.Context) {
	branchID, ok := uuidParam(c, "branchId")
	if !ok {
		return
	}
	sess := currentSession(c)
	rows, err := a.api.InventoryByBranch(c.Request.Context(), &sess.Backend, branchID)
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "Inventory retrieved", rows)
}

func (a *app) handleInventoryByTenant(c *gin.Context) {
	tenantID, ok := uuidParam(c, "tenantId")
	if !ok {
		return
	}
	sess := currentSession(c)
	rows, err := a.api.InventoryByTenant(c.Request.Context(), &sess.Backend, tenantID)
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "Inventory retrieved", rows)
}

func (a *app) handleCheckStock(c *gin.Context) {
	branchID, ok := uuidQuery(c, "branch_id")
	if !ok {
		return
	}
	variantID, ok := uuidQuery(c, "variant_id")
	if !ok {
		return
	}

	sess := currentSession(c)
	check, err := a.api.CheckStock(c.Request.Context(), &sess.Backend, branchID, variantID)
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "Stock checked", check)
}

func (a *app) handleStockMovements(c *gin.Context) {
	branchID, ok := uuidParam(c, "branchId")
	if !ok {
		return
	}
	sess := currentSession(c)
	movements, err := a.api.StockMovements(c.Request.Context(), &sess.Backend, branchID)
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "Stock movements retrieved", movements)
}

func (a *app) handleStockStatus(c *gin.Context) {
	branchID, ok := uuidParam(c, "branchId")
	if !ok {
		return
	}
	sess := currentSession(c)
	rows, err := a.api.StockStatus(c.Request.Context(), &sess.Backend, branchID)
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "Stock status retrieved", rows)
}

func (a *app) handleBranchStockReport(c *gin.Context) {
	branchID, ok := uuidParam(c, "branchId")
	if !ok {
		return
	}
	sess := currentSession(c)
	report, err := a.api.BranchStockReport(c.Request.Context(), &sess.Backend, branchID)
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "Stock report retrieved", report)
}
