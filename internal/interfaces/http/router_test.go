package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockward/internal/infrastructure/config"
	"stockward/internal/infrastructure/persistence/testutil"
	"stockward/internal/infrastructure/repository"
	sharedConfig "stockward/internal/shared/config"
	"stockward/internal/shared/authorization"
	"stockward/internal/shared/logger"
)

const testJWTSecret = "router-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	db := testutil.NewTestDB(t)
	log := logger.NewLogger()

	cfg := &config.Config{
		Server: sharedConfig.ServerConfig{AllowedOrigins: []string{"*"}},
		Auth: sharedConfig.AuthConfig{
			IdentityProvider: sharedConfig.IdentityProviderConfig{JWTSecret: testJWTSecret},
		},
		Inventory: sharedConfig.InventoryConfig{
			LowStockThreshold:   10,
			BulkUploadMaxBytes:  1 << 20,
			BulkUploadRateLimit: 100,
		},
	}

	router, err := NewRouter(db, nil, cfg, log)
	require.NoError(t, err)
	router.SetupRoutes(cfg, log)

	// Seed the role directory with one principal per role.
	roleRepo := repository.NewRoleAssignmentRepository(db, log)
	ctx := context.Background()
	for principal, r := range map[string]authorization.Role{
		"admin-1":   authorization.RoleAdmin,
		"manager-1": authorization.RoleManager,
		"viewer-1":  authorization.RoleViewer,
	} {
		_, _, err := roleRepo.Upsert(ctx, principal, r)
		require.NoError(t, err)
	}

	return router.GetEngine()
}

func tokenFor(t *testing.T, subject string) string {
	t.Helper()
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func doCSVUpload(t *testing.T, engine *gin.Engine, token, csvContent string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "updates.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csvContent))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/items/bulk-update-quantity", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "expected success envelope, got: %s", w.Body.String())
	return envelope.Data
}

func TestRouter_Health_NoAuthRequired(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_Unauthenticated(t *testing.T) {
	engine := newTestServer(t)

	tests := []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"garbage token", "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, engine, http.MethodGet, "/api/items", tt.token, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRouter_ExpiredToken(t *testing.T) {
	engine := newTestServer(t)

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin-1",
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	w := doJSON(t, engine, http.MethodGet, "/api/items", signed, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_UnassignedPrincipalForbidden(t *testing.T) {
	engine := newTestServer(t)

	// Valid token, but the subject has no role assignment.
	w := doJSON(t, engine, http.MethodGet, "/api/items", tokenFor(t, "stranger"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_RoleMatrix(t *testing.T) {
	engine := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		actor  string
		body   any
		want   int
	}{
		{"viewer cannot create item", http.MethodPost, "/api/items", "viewer-1", gin.H{"name": "X", "quantity": 1, "price": 1}, http.StatusForbidden},
		{"manager cannot create item", http.MethodPost, "/api/items", "manager-1", gin.H{"name": "X", "quantity": 1, "price": 1}, http.StatusForbidden},
		{"viewer can list items", http.MethodGet, "/api/items", "viewer-1", nil, http.StatusOK},
		{"manager cannot delete item", http.MethodDelete, "/api/items/1", "manager-1", nil, http.StatusForbidden},
		{"viewer cannot update quantity", http.MethodPatch, "/api/items/1/quantity", "viewer-1", gin.H{"quantity": 5}, http.StatusForbidden},
		{"viewer cannot see low stock", http.MethodGet, "/api/alerts/low-stock", "viewer-1", nil, http.StatusForbidden},
		{"manager can see low stock", http.MethodGet, "/api/alerts/low-stock", "manager-1", nil, http.StatusOK},
		{"manager cannot list users", http.MethodGet, "/api/users", "manager-1", nil, http.StatusForbidden},
		{"manager cannot see monthly report", http.MethodGet, "/api/reports/inventory/monthly", "manager-1", nil, http.StatusForbidden},
		{"admin can see monthly report", http.MethodGet, "/api/reports/inventory/monthly", "admin-1", nil, http.StatusOK},
		{"manager cannot read audit logs", http.MethodGet, "/api/audit-logs", "manager-1", nil, http.StatusForbidden},
		{"viewer can read own role", http.MethodGet, "/api/users/viewer-1/role", "viewer-1", nil, http.StatusOK},
		{"viewer cannot assign roles", http.MethodPut, "/api/users/x/role", "viewer-1", gin.H{"role": "viewer"}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, engine, tt.method, tt.path, tokenFor(t, tt.actor), tt.body)
			assert.Equal(t, tt.want, w.Code, "body: %s", w.Body.String())
		})
	}
}

func TestRouter_AdminCannotBulkUpdate(t *testing.T) {
	engine := newTestServer(t)

	w := doCSVUpload(t, engine, tokenFor(t, "admin-1"), "item_id,new_quantity\n1,5\n")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_ItemNotFound(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/api/items/999", tokenFor(t, "admin-1"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_CreateBulkTrendAuditFlow(t *testing.T) {
	engine := newTestServer(t)
	adminToken := tokenFor(t, "admin-1")
	managerToken := tokenFor(t, "manager-1")

	// Admin creates an item with quantity 100.
	w := doJSON(t, engine, http.MethodPost, "/api/items", adminToken, gin.H{
		"name":     "Widget",
		"quantity": 100,
		"price":    2.5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeData(t, w)
	itemID := int(created["id"].(float64))
	require.NotZero(t, itemID)

	// Manager bulk-updates the quantity to 40 via CSV.
	csv := fmt.Sprintf("item_id,new_quantity\n%d,40\n", itemID)
	w = doCSVUpload(t, engine, managerToken, csv)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	bulk := decodeData(t, w)
	assert.Equal(t, float64(1), bulk["updated_count"])

	// Trends show both quantities in order.
	w = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/items/%d/trends", itemID), managerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	trends := decodeData(t, w)
	points := trends["points"].([]any)
	require.Len(t, points, 2)
	assert.Equal(t, float64(100), points[0].(map[string]any)["quantity"])
	assert.Equal(t, float64(40), points[1].(map[string]any)["quantity"])

	// The bulk row's audit entry preserves the pre-update quantity.
	w = doJSON(t, engine, http.MethodGet,
		fmt.Sprintf("/api/audit-logs?action=BULK_UPDATE_QUANTITY&record_id=%d", itemID),
		adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	logs := decodeData(t, w)
	entries := logs["items"].([]any)
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]any)
	assert.Equal(t, "manager-1", entry["actor_id"])
	oldValues := entry["old_values"].(map[string]any)
	assert.Equal(t, float64(100), oldValues["quantity"])
}

func TestRouter_QuantityEndpointIgnoresOtherFields(t *testing.T) {
	engine := newTestServer(t)
	adminToken := tokenFor(t, "admin-1")

	w := doJSON(t, engine, http.MethodPost, "/api/items", adminToken, gin.H{
		"name": "Widget", "quantity": 10, "price": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	itemID := int(decodeData(t, w)["id"].(float64))

	// Extra fields in the quantity payload do not touch name or price.
	w = doJSON(t, engine, http.MethodPatch, fmt.Sprintf("/api/items/%d/quantity", itemID), adminToken, gin.H{
		"quantity": 7, "name": "Hacked", "price": 0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/items/%d", itemID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeData(t, w)
	assert.Equal(t, "Widget", got["name"])
	assert.Equal(t, float64(5), got["price"])
	assert.Equal(t, float64(7), got["quantity"])
}

func TestRouter_AssignRoleTakesEffectNextRequest(t *testing.T) {
	engine := newTestServer(t)
	adminToken := tokenFor(t, "admin-1")
	strangerToken := tokenFor(t, "newcomer")

	w := doJSON(t, engine, http.MethodGet, "/api/items", strangerToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, engine, http.MethodPut, "/api/users/newcomer/role", adminToken, gin.H{"role": "viewer"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Same token, next request: the new role applies without reissue.
	w = doJSON(t, engine, http.MethodGet, "/api/items", strangerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
