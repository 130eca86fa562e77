package main

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stockwise/console-gateway/shared/utils"
)

// branchDashboard is the branch-user landing page aggregate. Each figure is
// fetched independently; a failed fetch degrades to its zero value instead of
// failing the whole page.
type branchDashboard struct {
	InvoiceCount  int     `json:"invoice_count"`
	StockItems    int     `json:"stock_items"`
	TotalStock    int     `json:"total_stock"`
	TodaysRevenue float64 `json:"todays_revenue"`
}

func (a *app) handleBranchDashboard(c *gin.Context) {
	sess := currentSession(c)
	if sess.User.BranchID == nil {
		utils.BadRequestResponse(c, "Your account is not assigned to a branch")
		return
	}
	branchID := *sess.User.BranchID

	ctx := c.Request.Context()
	creds := &sess.Backend

	var (
		dash branchDashboard
		wg   sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		invoices, err := a.api.InvoicesByBranch(ctx, creds, branchID)
		if err != nil {
			logrus.WithError(err).Warn("dashboard: invoice count unavailable")
			return
		}
		dash.InvoiceCount = len(invoices)
	}()
	go func() {
		defer wg.Done()
		rows, err := a.api.InventoryByBranch(ctx, creds, branchID)
		if err != nil {
			logrus.WithError(err).Warn("dashboard: inventory unavailable")
			return
		}
		dash.StockItems = len(rows)
		for _, row := range rows {
			dash.TotalStock += row.Quantity
		}
	}()
	go func() {
		defer wg.Done()
		report, err := a.api.DailySales(ctx, creds, branchID, utils.FormatDate(timeNow(), false))
		if err != nil {
			logrus.WithError(err).Warn("dashboard: daily sales unavailable")
			return
		}
		dash.TodaysRevenue = report.Revenue
	}()
	wg.Wait()

	utils.OKResponse(c, "Dashboard retrieved", dash)
}

// storeDashboard is the store-admin landing page aggregate.
type storeDashboard struct {
	BranchCount    int `json:"branch_count"`
	ProductCount   int `json:"product_count"`
	InventoryItems int `json:"inventory_items"`
}

func (a *app) handleStoreDashboard(c *gin.Context) {
	sess := currentSession(c)
	if sess.User.TenantID == nil {
		utils.BadRequestResponse(c, "Your account is not assigned to a tenant")
		return
	}
	tenantID := *sess.User.TenantID

	ctx := c.Request.Context()
	creds := &sess.Backend

	var (
		dash storeDashboard
		wg   sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		branches, err := a.api.BranchesByTenant(ctx, creds, tenantID)
		if err != nil {
			logrus.WithError(err).Warn("dashboard: branches unavailable")
			return
		}
		dash.BranchCount = len(branches)
	}()
	go func() {
		defer wg.Done()
		products, err := a.api.ListProducts(ctx, creds)
		if err != nil {
			logrus.WithError(err).Warn("dashboard: products unavailable")
			return
		}
		dash.ProductCount = len(products)
	}()
	go func() {
		defer wg.Done()
		rows, err := a.api.InventoryByTenant(ctx, creds, tenantID)
		if err != nil {
			logrus.WithError(err).Warn("dashboard: inventory unavailable")
			return
		}
		dash.InventoryItems = len(rows)
	}()
	wg.Wait()

	utils.OKResponse(c, "Dashboard retrieved", dash)
}
