//go:build integration

package e2e

// End-to-end integration tests using real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/config"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/infra"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test suite setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT
	engine *gin.Engine
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("microdosing_test"),
		tcPostgres.WithUsername("microdosing"),
		tcPostgres.WithPassword("microdosing"),
		testcontainers.WithWaitStrategy(
			tcPostgres.BasicWaitStrategies()...,
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:                8000,
		Env:                 "test",
		JWTSecret:           "test-secret-key",
		JWTExpirationHours:  8,
		JWTRefreshHours:     24,
		DatabaseURL:         pgURL,
		RedisURL:            rdURL,
		WorkerPoolSize:      1,
		LabelStoragePath:    t.TempDir(),
		OrderDeleteCascade:  true,
		ScanCacheTTLSeconds: 60,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	// Seed admin user
	hash, err := bcrypt.GenerateFromPassword([]byte("admin-e2e-pass"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Exec(`INSERT INTO users (username, name, password_hash, role, active, created_at, updated_at)
		VALUES ('admin', 'Admin E2E', ?, 'admin', true, NOW(), NOW())
		ON CONFLICT DO NOTHING`, string(hash)).Error)

	r := router.New(cfg, db, rdb)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/v1/auth/login",
		jsonBody(t, map[string]string{"username": "admin", "password": "admin-e2e-pass"}),
		"",
	)
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{
		server: srv,
		token:  loginBody.AccessToken,
		engine: r,
	}
}

// ── Tests ────────────────────────────────────────────────────────────────────

// Full cycle: recipe → dosing record → order → batch → dispensing → cascade delete.
func TestE2E_RecipeDosingCycle(t *testing.T) {
	env := setupTestEnv(t)

	recResp := do(t, env.server, "POST", "/v1/recipes",
		jsonBody(t, map[string]any{
			"name":       "Calcium premix",
			"code":       "RCP-E2E-1",
			"version":    "1.0",
			"created_by": 1,
			"barcode_id": "RCP-E2E-1-BC",
		}), env.token)
	require.Equal(t, http.StatusCreated, recResp.StatusCode)
	var rec struct {
		ID uint `json:"recipe_id"`
	}
	decodeJSON(t, recResp, &rec)
	require.NotZero(t, rec.ID)

	// First upsert creates the dosing record.
	upResp := do(t, env.server, "POST", "/v1/recipe_materials",
		jsonBody(t, map[string]any{
			"recipe_id": rec.ID, "material_id": 1,
			"set_point": "100", "actual": "90", "status": "pending",
		}), env.token)
	require.Equal(t, http.StatusCreated, upResp.StatusCode)
	var up struct {
		Message string `json:"message"`
		Margin  string `json:"margin"`
	}
	decodeJSON(t, upResp, &up)
	assert.Equal(t, "10%", up.Margin)

	// Second upsert for the same recipe overwrites.
	upResp = do(t, env.server, "POST", "/v1/recipe_materials",
		jsonBody(t, map[string]any{
			"recipe_id": rec.ID, "material_id": 2,
			"set_point": "200", "actual": "210", "status": "created",
		}), env.token)
	require.Equal(t, http.StatusOK, upResp.StatusCode)
	decodeJSON(t, upResp, &up)
	assert.Equal(t, "-5%", up.Margin)

	// Create a production order against the recipe.
	ordResp := do(t, env.server, "POST", "/v1/production_orders",
		jsonBody(t, map[string]any{
			"order_number": "ORD-E2E-1", "recipe_id": rec.ID,
			"batch_size": "25", "scheduled_date": "2026-09-15",
		}), env.token)
	require.Equal(t, http.StatusCreated, ordResp.StatusCode)
	var ord struct {
		ID     uint   `json:"order_id"`
		Status string `json:"status"`
	}
	decodeJSON(t, ordResp, &ord)
	assert.Equal(t, "planned", ord.Status)

	// Batch + dispensing hang off the order.
	batResp := do(t, env.server, "POST", "/v1/batches",
		jsonBody(t, map[string]any{
			"batch_number": "B-E2E-1", "order_id": ord.ID, "operator_id": 1,
		}), env.token)
	require.Equal(t, http.StatusCreated, batResp.StatusCode)

	// Cascade delete: recipe, order, batch all go; dosing record survives detached.
	delResp := do(t, env.server, "DELETE", fmt.Sprintf("/v1/recipes/%d", rec.ID), nil, env.token)
	require.Equal(t, http.StatusOK, delResp.StatusCode)
	delResp.Body.Close()

	listResp := do(t, env.server, "GET", "/v1/production_orders", nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var orders []map[string]any
	decodeJSON(t, listResp, &orders)
	assert.Empty(t, orders)

	matResp := do(t, env.server, "GET", "/v1/recipe_materials", nil, env.token)
	require.Equal(t, http.StatusOK, matResp.StatusCode)
	var mats []struct {
		RecipeID *uint `json:"recipe_id"`
	}
	decodeJSON(t, matResp, &mats)
	require.Len(t, mats, 1)
	assert.Nil(t, mats[0].RecipeID)
}

func TestE2E_DuplicateRecipeCode(t *testing.T) {
	env := setupTestEnv(t)

	body := map[string]any{
		"name": "Premix", "code": "RCP-DUP", "version": "1.0", "created_by": 1,
	}
	resp := do(t, env.server, "POST", "/v1/recipes", jsonBody(t, body), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, env.server, "POST", "/v1/recipes", jsonBody(t, body), env.token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	listResp := do(t, env.server, "GET", "/v1/recipes", nil, env.token)
	var recipes []map[string]any
	decodeJSON(t, listResp, &recipes)
	assert.Len(t, recipes, 1)
}

func TestE2E_ScanResolvesBarcode(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, "POST", "/v1/recipes",
		jsonBody(t, map[string]any{
			"name": "Premix", "code": "RCP-SCAN", "version": "1.0",
			"created_by": 1, "barcode_id": "SCAN-BC-1",
		}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// No token: scan is public.
	scanResp := do(t, env.server, "GET", "/v1/scan/SCAN-BC-1", nil, "")
	require.Equal(t, http.StatusOK, scanResp.StatusCode)
	var scan struct {
		Type   string `json:"type"`
		Recipe struct {
			Code string `json:"code"`
		} `json:"recipe"`
	}
	decodeJSON(t, scanResp, &scan)
	assert.Equal(t, "recipe", scan.Type)
	assert.Equal(t, "RCP-SCAN", scan.Recipe.Code)

	missing := do(t, env.server, "GET", "/v1/scan/NOPE", nil, "")
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
	missing.Body.Close()
}

func TestE2E_AuthRequired(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, "GET", "/v1/recipes", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
