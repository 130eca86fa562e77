package main

import (
	"github.com/gin-gonic/gin"

	"github.com/stockwise/console-gateway/shared/models"
	"github.com/stockwise/console-gateway/shared/utils"
)

// buildRouter assembles the full route table. Groups are guarded by role;
// the super admin passes every guard via the authz policy.
func (a *app) buildRouter() *gin.Engine {
	router := gin.Default()
	router.Use(corsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		utils.OKResponse(c, "Console gateway is healthy", nil)
	})

	// Unauthenticated: registration and login flows.
	auth := router.Group("/auth")
	{
		auth.POST("/register", a.handleRegister)
		auth.POST("/register-super-admin", a.handleRegisterSuperAdmin)
		auth.POST("/login", a.handleLogin)
		auth.POST("/logout", a.guard.RequireAuth(), a.handleLogout)
		auth.GET("/profile", a.guard.RequireAuth(), a.handleProfile)
		auth.POST("/switch-context",
			a.guard.RequireAuth(),
			a.guard.RequireRoles(models.RoleSuperAdmin),
			a.handleSwitchContext)
	}

	public := router.Group("/public")
	{
		public.GET("/tenants", a.handlePublicTenants)
		public.GET("/branches", a.handlePublicBranches)
	}

	router.GET("/nav", a.guard.RequireAuth(), a.handleNav)

	tenants := router.Group("/tenants")
	tenants.Use(a.guard.RequireAuth(), a.guard.RequireRoles(models.RoleSuperAdmin))
	{
		tenants.GET("", a.handleListTenants)
		tenants.GET("/:id", a.handleGetTenant)
		tenants.POST("", a.handleCreateTenant)
		tenants.PUT("/:id", a.handleUpdateTenant)
		tenants.DELETE("/:id", a.handleDeleteTenant)
	}

	branches := router.Group("/branches")
	branches.Use(a.guard.RequireAuth())
	{
		// List accepts an optional tenant_id filter.
		branches.GET("", a.guard.RequireRoles(models.RoleStoreAdmin), a.handleListBranches)
		branches.GET("/:id", a.handleGetBranch)

		admin := branches.Group("")
		admin.Use(a.guard.RequireRoles(models.RoleStoreAdmin))
		{
			admin.POST("", a.handleCreateBranch)
			admin.PUT("/:id", a.handleUpdateBranch)
			admin.DELETE("/:id", a.handleDeleteBranch)
		}
	}

	products := router.Group("/products")
	products.Use(a.guard.RequireAuth())
	{
		// Lookups are open to branch users for the POS flow; the collection
		// endpoint also serves name search (?q=) and barcode lookup (?code=).
		products.GET("", a.handleListProducts)
		products.GET("/:id", a.handleGetProduct)
		products.GET("/:id/variants", a.handleListVariants)

		admin := products.Group("")
		admin.Use(a.guard.RequireRoles(models.RoleStoreAdmin))
		{
			admin.POST("", a.handleCreateProduct)
			admin.PUT("/:id", a.handleUpdateProduct)
			admin.DELETE("/:id", a.handleDeleteProduct)
			admin.POST("/:id/variants", a.handleCreateVariant)
			admin.DELETE("/:id/variants/:variantId", a.handleDeleteVariant)
		}
	}

	inventory := router.Group("/inventory")
	inventory.Use(a.guard.RequireAuth())
	{
		inventory.POST("/stock-in",
			a.guard.RequireRoles(models.RoleLocationUser, models.RoleStoreAdmin),
			a.handleStockIn)
		inventory.GET("/branch/:branchId", a.handleInventoryByBranch)
		inventory.GET("/check-stock", a.handleCheckStock)
		inventory.GET("/movements/:branchId", a.handleStockMovements)
		inventory.GET("/tenant/:tenantId",
			a.guard.RequireRoles(models.RoleStoreAdmin),
			a.handleInventoryByTenant)
	}

	invoices := router.Group("/invoices")
	invoices.Use(a.guard.RequireAuth())
	{
		invoices.POST("",
			a.guard.RequireRoles(models.RoleLocationUser),
			a.handleCreateInvoice)
		// List requires a branch_id or tenant_id filter.
		invoices.GET("", a.handleListInvoices)
		invoices.GET("/:id", a.handleGetInvoice)
	}

	reports := router.Group("/reports")
	reports.Use(a.guard.RequireAuth())
	{
		reports.GET("/daily-sales",
			a.guard.RequireRoles(models.RoleStoreAdmin, models.RoleLocationUser),
			a.handleDailySales)

		admin := reports.Group("")
		admin.Use(a.guard.RequireRoles(models.RoleStoreAdmin))
		{
			admin.GET("/invoices", a.handleInvoicesByDateRange)
			admin.GET("/profit", a.handleProfitReport)
			admin.GET("/stock/:branchId", a.handleBranchStockReport)
			admin.GET("/stock-status/:branchId", a.handleStockStatus)
		}
	}

	users := router.Group("/users")
	users.Use(a.guard.RequireAuth(), a.guard.RequireRoles(models.RoleStoreAdmin))
	{
		// List requires a tenant_id or branch_id filter.
		users.GET("", a.handleListUsers)
		users.GET("/:id", a.handleGetUser)
		users.POST("/branch-user", a.handleCreateBranchUser)
		users.POST("/store-admin", a.handleCreateStoreAdmin)
		users.PUT("/:id", a.handleUpdateUser)
		users.DELETE("/:id", a.handleDeleteUser)
		users.PUT("/:id/toggle-status", a.handleToggleUserStatus)
	}

	router.GET("/system/overview",
		a.guard.RequireAuth(),
		a.guard.RequireRoles(models.RoleSuperAdmin),
		a.handleSystemOverview)

	dashboard := router.Group("/dashboard")
	dashboard.Use(a.guard.RequireAuth())
	{
		dashboard.GET("/branch",
			a.guard.RequireRoles(models.RoleLocationUser),
			a.handleBranchDashboard)
		dashboard.GET("/store",
			a.guard.RequireRoles(models.RoleStoreAdmin),
			a.handleStoreDashboard)
	}

	return router
}

// corsMiddleware allows the browser frontend to call the gateway with
// cookies attached.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
