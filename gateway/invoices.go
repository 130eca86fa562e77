package main

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stockwise/console-gateway/shared/authz"
	"github.com/stockwise/console-gateway/shared/client"
	"github.com/stockwise/console-gateway/shared/models"
	"github.com/stockwise/console-gateway/shared/utils"
)

// posForm is the raw point-of-sale submission. Tax arrives as the string the
// cashier typed; unparseable tax counts as zero.
type posForm struct {
	BranchID   uuid.UUID         `json:"branch_id" binding:"required"`
	Items      []models.CartLine `json:"items"`
	Tax        string            `json:"tax"`
	AmountPaid *float64          `json:"amount_paid,omitempty"`
}

func (a *app) handleCreateInvoice(c *gin.Context) {
	var form posForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.BadRequestResponse(c, "Branch and cart items are required")
		return
	}
	if len(form.Items) == 0 {
		utils.BadRequestResponse(c, "Cart is empty")
		return
	}
	for _, line := range form.Items {
		if line.Quantity <= 0 {
			utils.BadRequestResponse(c, utils.ErrInvalidQuantity.Error())
			return
		}
	}

	sess := currentSession(c)
	if !sess.User.CanActOnBranch(form.BranchID) {
		utils.ForbiddenResponse(c, "You can only create invoices at your own branch")
		return
	}

	tax := models.ParseTax(form.Tax)
	total := models.CartTotal(form.Items, tax)

	if form.AmountPaid != nil && *form.AmountPaid < total {
		utils.BadRequestResponse(c, "Amount paid is less than the total")
		return
	}

	invoice, err := a.api.CreateInvoice(c.Request.Context(), &sess.Backend, client.CreateInvoiceRequest{
		BranchID:    form.BranchID,
		Items:       form.Items,
		TaxAmount:   tax,
		TotalAmount: total,
		AmountPaid:  form.AmountPaid,
	})
	if err != nil {
		respondClientError(c, err)
		return
	}
	a.recordAudit(sess, "create", "invoice", invoice.ID.String())
	utils.CreatedResponse(c, "Invoice created", invoice)
}

func (a *app) handleGetInvoice(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	sess := currentSession(c)
	invoice, err := a.api.GetInvoice(c.Request.Context(), &sess.Backend, id)
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "Invoice retrieved", invoice)
}

// handleListInvoices lists invoices scoped to a branch or, for store admins,
// to a whole tenant. Exactly one of the two query filters must be present.
func (a *app) handleListInvoices(c *gin.Context) {
	sess := currentSession(c)

	var (
		invoices []models.Invoice
		err      error
	)
	switch {
	case c.Query("branch_id") != "":
		branchID, ok := uuidQuery(c, "branch_id")
		if !ok {
			return
		}
		invoices, err = a.api.InvoicesByBranch(c.Request.Context(), &sess.Backend, branchID)
	case c.Query("tenant_id") != "":
		if !authz.IsAuthorized(sess.User.Role, []models.UserRole{models.RoleStoreAdmin}) {
			utils.ForbiddenResponse(c, "Insufficient permissions")
			return
		}
		tenantID, ok := uuidQuery(c, "tenant_id")
		if !ok {
			return
		}
		invoices, err = a.api.InvoicesByTenant(c.Request.Context(), &sess.Backend, tenantID)
	default:
		utils.BadRequestResponse(c, "A branch_id or tenant_id filter is required")
		return
	}
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "Invoices retrieved", invoices)
}

func (a *app) handleInvoicesByDateRange(c *gin.Context) {
	branchID, ok := uuidQuery(c, "branch_id")
	if !ok {
		return
	}
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if from == "" || to == "" {
		utils.BadRequestResponse(c, "From and to dates are required")
		return
	}

	sess := currentSession(c)
	invoices, err := a.api.InvoicesByDateRange(c.Request.Context(), &sess.Backend, branchID, from, to)
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "Invoices retrieved", invoices)
}

func (a *app) handleProfitReport(c *gin.Context) {
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if from == "" || to == "" {
		utils.BadRequestResponse(c, "From and to dates are required")
		return
	}

	// Branch is optional; without it the report covers the whole tenant.
	var branchID *uuid.UUID
	if raw := c.Query("branch_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid branch_id")
			return
		}
		branchID = &id
	}

	sess := currentSession(c)
	report, err := a.api.ProfitReport(c.Request.Context(), &sess.Backend, branchID, from, to)
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "Profit report retrieved", report)
}

func (a *app) handleDailySales(c *gin.Context) {
	branchID, ok := uuidQuery(c, "branch_id")
	if !ok {
		return
	}
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		date = utils.FormatDate(timeNow(), false)
	}

	sess := currentSession(c)
	report, err := a.api.DailySales(c.Request.Context(), &sess.Backend, branchID, date)
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "Daily sales retrieved", report)
}
