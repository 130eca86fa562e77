package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockwise/console-gateway/shared/client"
	"github.com/stockwise/console-gateway/shared/middleware"
	"github.com/stockwise/console-gateway/shared/models"
	"github.com/stockwise/console-gateway/shared/session"
)

const testSecret = "gateway-test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// testBackend fakes the inventory backend. Handlers are registered per test;
// anything unregistered answers 404 JSON so the client treats it as an API
// error rather than a protocol error.
type testBackend struct {
	mux   *http.ServeMux
	calls map[string]int
}

func newTestBackend() *testBackend {
	return &testBackend{mux: http.NewServeMux(), calls: map[string]int{}}
}

func (b *testBackend) handle(pattern string, status int, body interface{}) {
	b.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		b.calls[pattern]++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	})
}

func (b *testBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, pattern := b.mux.Handler(r); pattern == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Not found"})
		return
	}
	b.mux.ServeHTTP(w, r)
}

type testEnv struct {
	app     *app
	router  *gin.Engine
	store   *session.MemoryStore
	backend *testBackend
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	backend := newTestBackend()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	store := session.NewMemoryStore()
	api := client.New(srv.URL)
	sessions := session.NewManager(api, store, testSecret, time.Hour)

	a := &app{
		api:      api,
		sessions: sessions,
		guard:    middleware.NewSessionAuth(sessions),
	}
	return &testEnv{app: a, router: a.buildRouter(), store: store, backend: backend}
}

// signIn plants a session directly in the store and returns the cookie a
// browser would hold for it.
func (e *testEnv) signIn(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()
	now := time.Now()
	sess := &session.Session{
		ID:         uuid.New().String(),
		User:       user,
		CreatedAt:  now,
		LastUsedAt: now,
		ExpiresAt:  now.Add(time.Hour),
	}
	require.NoError(t, e.store.Save(context.Background(), sess))

	token, err := session.NewSigner(testSecret, time.Hour).Issue(sess.ID)
	require.NoError(t, err)
	return &http.Cookie{Name: session.CookieName, Value: token}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func locationUser(branchID uuid.UUID) *models.User {
	return &models.User{
		ID:       uuid.New(),
		Email:    "cashier@example.com",
		Role:     models.RoleLocationUser,
		BranchID: &branchID,
		IsActive: true,
	}
}

func storeAdmin(tenantID uuid.UUID) *models.User {
	return &models.User{
		ID:       uuid.New(),
		Email:    "admin@example.com",
		Role:     models.RoleStoreAdmin,
		TenantID: &tenantID,
		IsActive: true,
	}
}

func TestLoginSetsCookieAndRedirect(t *testing.T) {
	env := newTestEnv(t)
	env.backend.handle("/auth/login", http.StatusOK, models.User{
		ID:    uuid.New(),
		Email: "cashier@example.com",
		Role:  models.RoleLocationUser,
	})

	rec := env.do(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    "cashier@example.com",
		"password": "secret",
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "/location/dashboard", data["redirect"])

	var found bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == session.CookieName && cookie.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "session cookie not set")
}

func TestLoginFailurePropagatesBackendMessage(t *testing.T) {
	env := newTestEnv(t)
	env.backend.handle("/auth/login", http.StatusUnauthorized, map[string]string{
		"message": "Invalid credentials",
	})

	rec := env.do(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    "cashier@example.com",
		"password": "wrong",
	}, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Invalid credentials", envelope["error"])
	assert.Empty(t, rec.Result().Cookies())
}

func TestLoginRejectsMissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/login", map[string]string{"email": "x@example.com"}, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, env.backend.calls["/auth/login"])
}

func TestUnreachableBackendIsBadGateway(t *testing.T) {
	env := newTestEnv(t)

	// Point the client at a server that is no longer listening.
	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()

	env.app.api = client.New(deadURL)
	env.app.sessions = session.NewManager(env.app.api, env.store, testSecret, time.Hour)
	env.app.guard = middleware.NewSessionAuth(env.app.sessions)
	env.router = env.app.buildRouter()

	rec := env.do(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    "cashier@example.com",
		"password": "secret",
	}, nil)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Contains(t, envelope["error"], "cannot connect to backend at")
}

func TestProfileRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/auth/profile", nil, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Authentication required", envelope["error"])
}

func TestProfileRejectsForgedCookie(t *testing.T) {
	env := newTestEnv(t)
	forged, err := session.NewSigner("wrong-secret", time.Hour).Issue("some-session")
	require.NoError(t, err)

	rec := env.do(t, http.MethodGet, "/auth/profile", nil, &http.Cookie{
		Name:  session.CookieName,
		Value: forged,
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Session expired or invalid", envelope["error"])
}

func TestProfileReturnsSessionUser(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.signIn(t, locationUser(uuid.New()))

	rec := env.do(t, http.MethodGet, "/auth/profile", nil, cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "cashier@example.com", data["email"])
}

func TestRoleGuardForbidsLocationUser(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.signIn(t, locationUser(uuid.New()))

	rec := env.do(t, http.MethodGet, "/tenants", nil, cookie)

	require.Equal(t, http.StatusForbidden, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Insufficient permissions", envelope["error"])
	assert.Zero(t, env.backend.calls["/tenants"])
}

func TestSuperAdminPassesEveryGuard(t *testing.T) {
	env := newTestEnv(t)
	env.backend.handle("/tenants", http.StatusOK, []models.Tenant{})
	env.backend.handle("/branches", http.StatusOK, []models.Branch{})

	cookie := env.signIn(t, &models.User{ID: uuid.New(), Email: "root@example.com", Role: models.RoleSuperAdmin})

	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/tenants", nil, cookie).Code)
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/branches", nil, cookie).Code)
}

func TestLegacyBranchUserRoleIsAccepted(t *testing.T) {
	env := newTestEnv(t)
	branchID := uuid.New()
	env.backend.handle("/invoices", http.StatusCreated, models.Invoice{ID: uuid.New(), BranchID: branchID})

	user := locationUser(branchID)
	user.Role = models.RoleBranchUser
	cookie := env.signIn(t, user)

	rec := env.do(t, http.MethodPost, "/invoices", map[string]interface{}{
		"branch_id": branchID,
		"items":     []models.CartLine{{VariantID: uuid.New(), Quantity: 1, UnitPrice: 5}},
	}, cookie)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLogoutDestroysSession(t *testing.T) {
	env := newTestEnv(t)
	env.backend.handle("/auth/logout", http.StatusOK, map[string]string{"message": "ok"})
	cookie := env.signIn(t, locationUser(uuid.New()))

	rec := env.do(t, http.MethodPost, "/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "session cookie not cleared")

	// The same cookie no longer resolves.
	rec = env.do(t, http.MethodGet, "/auth/profile", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNavMatchesRole(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.signIn(t, locationUser(uuid.New()))

	rec := env.do(t, http.MethodGet, "/nav", nil, cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	links := envelope["data"].([]interface{})
	require.Len(t, links, 4)
	first := links[0].(map[string]interface{})
	assert.Equal(t, "/location/dashboard", first["href"])
}

func TestStockInRejectsBadQuantityBeforeBackend(t *testing.T) {
	env := newTestEnv(t)
	branchID := uuid.New()
	cookie := env.signIn(t, locationUser(branchID))

	for _, quantity := range []string{"0", "-2", "abc", "1.5"} {
		rec := env.do(t, http.MethodPost, "/inventory/stock-in", map[string]interface{}{
			"branch_id":  branchID,
			"variant_id": uuid.New(),
			"quantity":   quantity,
		}, cookie)

		require.Equal(t, http.StatusBadRequest, rec.Code, quantity)
		envelope := decodeEnvelope(t, rec)
		assert.Equal(t, "Please enter a valid quantity", envelope["error"])
	}
	assert.Zero(t, env.backend.calls["/inventory/stock-in"], "backend must not be called")
}

func TestStockInForeignBranchForbidden(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.signIn(t, locationUser(uuid.New()))

	rec := env.do(t, http.MethodPost, "/inventory/stock-in", map[string]interface{}{
		"branch_id":  uuid.New(),
		"variant_id": uuid.New(),
		"quantity":   "5",
	}, cookie)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, env.backend.calls["/inventory/stock-in"])
}

func TestStockInForwardsParsedQuantity(t *testing.T) {
	env := newTestEnv(t)
	branchID := uuid.New()

	var got client.StockInRequest
	env.backend.mux.HandleFunc("/inventory/stock-in", func(w http.ResponseWriter, r *http.Request) {
		env.backend.calls["/inventory/stock-in"]++
		json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Inventory{ID: uuid.New(), BranchID: branchID, Quantity: 5})
	})

	cookie := env.signIn(t, locationUser(branchID))
	rec := env.do(t, http.MethodPost, "/inventory/stock-in", map[string]interface{}{
		"branch_id":  branchID,
		"variant_id": uuid.New(),
		"quantity":   "5",
		"cost_price": 2.5,
	}, cookie)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 5, got.Quantity)
	assert.Equal(t, 2.5, got.CostPrice)
}

func TestCreateInvoiceEmptyCart(t *testing.T) {
	env := newTestEnv(t)
	branchID := uuid.New()
	cookie := env.signIn(t, locationUser(branchID))

	rec := env.do(t, http.MethodPost, "/invoices", map[string]interface{}{
		"branch_id": branchID,
		"items":     []models.CartLine{},
	}, cookie)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Cart is empty", envelope["error"])
	assert.Zero(t, env.backend.calls["/invoices"])
}

func TestCreateInvoiceInsufficientPayment(t *testing.T) {
	env := newTestEnv(t)
	branchID := uuid.New()
	cookie := env.signIn(t, locationUser(branchID))

	paid := 5.0
	rec := env.do(t, http.MethodPost, "/invoices", map[string]interface{}{
		"branch_id":   branchID,
		"items":       []models.CartLine{{VariantID: uuid.New(), Quantity: 2, UnitPrice: 10}},
		"tax":         "1.50",
		"amount_paid": paid,
	}, cookie)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Amount paid is less than the total", envelope["error"])
	assert.Zero(t, env.backend.calls["/invoices"])
}

func TestCreateInvoiceComputesTotals(t *testing.T) {
	env := newTestEnv(t)
	branchID := uuid.New()

	var got client.CreateInvoiceRequest
	env.backend.mux.HandleFunc("/invoices", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Invoice{ID: uuid.New(), BranchID: branchID})
	})

	cookie := env.signIn(t, locationUser(branchID))
	rec := env.do(t, http.MethodPost, "/invoices", map[string]interface{}{
		"branch_id": branchID,
		"items": []models.CartLine{
			{VariantID: uuid.New(), Quantity: 2, UnitPrice: 10},
			{VariantID: uuid.New(), Quantity: 1, UnitPrice: 4.50},
		},
		"tax": "not-a-number",
	}, cookie)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Zero(t, got.TaxAmount)
	assert.InDelta(t, 24.50, got.TotalAmount, 0.001)
}

func TestListInvoicesRequiresFilter(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.signIn(t, locationUser(uuid.New()))

	rec := env.do(t, http.MethodGet, "/invoices", nil, cookie)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "A branch_id or tenant_id filter is required", envelope["error"])
}

func TestListInvoicesTenantFilterNeedsStoreAdmin(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.signIn(t, locationUser(uuid.New()))

	rec := env.do(t, http.MethodGet, "/invoices?tenant_id="+uuid.NewString(), nil, cookie)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListInvoicesByBranch(t *testing.T) {
	env := newTestEnv(t)
	branchID := uuid.New()
	env.backend.handle("/invoices/branch/"+branchID.String(), http.StatusOK, []models.Invoice{
		{ID: uuid.New(), BranchID: branchID},
	})

	cookie := env.signIn(t, locationUser(branchID))
	rec := env.do(t, http.MethodGet, "/invoices?branch_id="+branchID.String(), nil, cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Len(t, envelope["data"].([]interface{}), 1)
}

func TestListUsersRequiresFilter(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.signIn(t, storeAdmin(uuid.New()))

	rec := env.do(t, http.MethodGet, "/users", nil, cookie)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "A tenant_id or branch_id filter is required", envelope["error"])
}

func TestProductCodeLookup(t *testing.T) {
	env := newTestEnv(t)
	env.backend.handle("/products/by-code", http.StatusOK, models.Product{ID: uuid.New(), Name: "Green Tea"})

	cookie := env.signIn(t, locationUser(uuid.New()))
	rec := env.do(t, http.MethodGet, "/products?code=8901234", nil, cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, env.backend.calls["/products/by-code"])
	assert.Zero(t, env.backend.calls["/products"])
}

func TestInvalidUUIDRejectedBeforeBackend(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.signIn(t, locationUser(uuid.New()))

	rec := env.do(t, http.MethodGet, "/invoices/not-a-uuid", nil, cookie)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Invalid id", envelope["error"])
}

func TestBranchDashboardDegradesPerWidget(t *testing.T) {
	env := newTestEnv(t)
	branchID := uuid.New()

	// Invoice listing fails; the other widgets still fill in.
	env.backend.handle("/invoices/branch/"+branchID.String(), http.StatusInternalServerError, map[string]string{"message": "boom"})
	env.backend.handle("/inventory/branch/"+branchID.String(), http.StatusOK, []models.Inventory{
		{ID: uuid.New(), Quantity: 3},
		{ID: uuid.New(), Quantity: 7},
	})
	env.backend.handle("/invoices/report/daily-sales", http.StatusOK, client.DailySalesReport{
		BranchID: branchID,
		Revenue:  125.50,
	})

	cookie := env.signIn(t, locationUser(branchID))
	rec := env.do(t, http.MethodGet, "/dashboard/branch", nil, cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["invoice_count"])
	assert.Equal(t, float64(2), data["stock_items"])
	assert.Equal(t, float64(10), data["total_stock"])
	assert.Equal(t, 125.50, data["todays_revenue"])
}

func TestBranchDashboardRequiresBranch(t *testing.T) {
	env := newTestEnv(t)
	user := locationUser(uuid.New())
	user.BranchID = nil
	cookie := env.signIn(t, user)

	rec := env.do(t, http.MethodGet, "/dashboard/branch", nil, cookie)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStoreDashboardAggregates(t *testing.T) {
	env := newTestEnv(t)
	tenantID := uuid.New()

	env.backend.handle("/branches/tenant/"+tenantID.String(), http.StatusOK, []models.Branch{{ID: uuid.New()}})
	env.backend.handle("/products", http.StatusOK, []models.Product{{ID: uuid.New()}, {ID: uuid.New()}})
	env.backend.handle("/inventory/tenant/"+tenantID.String(), http.StatusOK, []models.Inventory{{ID: uuid.New()}})

	cookie := env.signIn(t, storeAdmin(tenantID))
	rec := env.do(t, http.MethodGet, "/dashboard/store", nil, cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["branch_count"])
	assert.Equal(t, float64(2), data["product_count"])
	assert.Equal(t, float64(1), data["inventory_items"])
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodOptions, "/auth/login", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}
