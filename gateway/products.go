package main

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stockwise/console-gateway/shared/client"
	"github.com/stockwise/console-gateway/shared/utils"
)

// handleListProducts serves the catalog listing plus two POS lookups on the
// same endpoint: name search via ?q= and barcode lookup via ?code=.
func (a *app) handleListProducts(c *gin.Context) {
	if c.Query("q") != "" {
		a.handleSearchProducts(c)
		return
	}
	if c.Query("code") != "" {
		a.handleProductByCode(c)
		return
	}
	sess := currentSession(c)
	products, err := a.api.ListProducts(c.Request.Context(), &sess.Backend)
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "Products retrieved", products)
}

func (a *app) handleGetProduct(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	sess := currentSession(c)
	product, err := a.api.GetProduct(c.Request.Context(), &sess.Backend, id)
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "Product retrieved", product)
}

func (a *app) handleSearchProducts(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		utils.BadRequestResponse(c, "Search term is required")
		return
	}
	sess := currentSession(c)
	products, err := a.api.SearchProducts(c.Request.Context(), &sess.Backend, q)
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "Products retrieved", products)
}

func (a *app) handleProductByCode(c *gin.Context) {
	code := strings.TrimSpace(c.Query("code"))
	if code == "" {
		utils.BadRequestResponse(c, "Product code is required")
		return
	}
	sess := currentSession(c)
	product, err := a.api.ProductByCode(c.Request.Context(), &sess.Backend, code)
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "Product retrieved", product)
}

func (a *app) handleCreateProduct(c *gin.Context) {
	var req client.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Product name is required")
		return
	}

	sess := currentSession(c)
	product, err := a.api.CreateProduct(c.Request.Context(), &sess.Backend, req)
	if err != nil {
		respondClientError(c, err)
		return
	}
	a.recordAudit(sess, "create", "product", product.ID.String())
	utils.CreatedResponse(c, "Product created", product)
}

func (a *app) handleUpdateProduct(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req client.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid product update")
		return
	}

	sess := currentSession(c)
	product, err := a.api.UpdateProduct(c.Request.Context(), &sess.Backend, id, req)
	if err != nil {
		respondClientError(c, err)
		return
	}
	a.recordAudit(sess, "update", "product", id.String())
	utils.OKResponse(c, "Product updated", product)
}

func (a *app) handleDeleteProduct(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	sess := currentSession(c)
	if err := a.api.DeleteProduct(c.Request.Context(), &sess.Backend, id); err != nil {
		respondClientError(c, err)
		return
	}
	a.recordAudit(sess, "delete", "product", id.String())
	utils.OKResponse(c, "Product deleted", nil)
}

func (a *app) handleListVariants(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	sess := currentSession(c)
	variants, err := a.api.ListVariants(c.Request.Context(), &sess.Backend, id)
	if err != nil {
		respondClientError(c, err)
		return
	}
	utils.OKResponse(c, "Variants retrieved", variants)
}

func (a *app) handleCreateVariant(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req client.CreateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Variant brand and size are required")
		return
	}

	sess := currentSession(c)
	variant, err := a.api.CreateVariant(c.Request.Context(), &sess.Backend, id, req)
	if err != nil {
		respondClientError(c, err)
		return
	}
	a.recordAudit(sess, "create", "variant", variant.ID.String())
	utils.CreatedResponse(c, "Variant created", variant)
}

func (a *app) handleDeleteVariant(c *gin.Context) {
	productID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	variantID, ok := uuidParam(c, "variantId")
	if !ok {
		return
	}

	sess := currentSession(c)
	if err := a.api.DeleteVariant(c.Request.Context(), &sess.Backend, productID, variantID); err != nil {
		respondClientError(c, err)
		return
	}
	a.recordAudit(sess, "delete", "variant", variantID.String())
	utils.OKResponse(c, "Variant deleted", nil)
}
