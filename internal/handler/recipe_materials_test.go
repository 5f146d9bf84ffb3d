package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/dto"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRecipeMaterialService records the last upsert request it received.
type stubRecipeMaterialService struct {
	lastUpsert *dto.UpsertRecipeMaterialRequest
	created    bool
}

func (s *stubRecipeMaterialService) Upsert(_ context.Context, req dto.UpsertRecipeMaterialRequest) (*dto.UpsertRecipeMaterialResponse, bool, error) {
	s.lastUpsert = &req
	return &dto.UpsertRecipeMaterialResponse{Message: "ok", Margin: "0%"}, s.created, nil
}

func (s *stubRecipeMaterialService) List(_ context.Context) ([]dto.RecipeMaterialResponse, error) {
	return nil, nil
}

func (s *stubRecipeMaterialService) ListByRecipe(_ context.Context, _ uint) ([]dto.RecipeMaterialResponse, error) {
	return nil, nil
}

func (s *stubRecipeMaterialService) Update(_ context.Context, _ uint, _ dto.UpdateRecipeMaterialRequest) (*dto.RecipeMaterialResponse, error) {
	return nil, nil
}

func (s *stubRecipeMaterialService) Delete(_ context.Context, _ uint) error { return nil }

var _ service.RecipeMaterialService = (*stubRecipeMaterialService)(nil)

func newUpsertRouter(svc service.RecipeMaterialService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewRecipeMaterialsHandler(svc)
	r.POST("/v1/recipe_materials", h.Upsert)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpsertBindingRejectsAbsentActual(t *testing.T) {
	svc := &stubRecipeMaterialService{}
	r := newUpsertRouter(svc)

	w := postJSON(t, r, "/v1/recipe_materials",
		`{"recipe_id": 1, "material_id": 2, "set_point": "100", "status": "pending"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.lastUpsert, "service must not be called on a validation failure")
}

func TestUpsertBindingAcceptsZeroActual(t *testing.T) {
	svc := &stubRecipeMaterialService{created: true}
	r := newUpsertRouter(svc)

	w := postJSON(t, r, "/v1/recipe_materials",
		`{"recipe_id": 1, "material_id": 2, "set_point": "100", "actual": "0", "status": "pending"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.lastUpsert)
	require.NotNil(t, svc.lastUpsert.Actual)
	assert.True(t, svc.lastUpsert.Actual.IsZero())
}

func TestUpsertStatusCodeReflectsCreateVsUpdate(t *testing.T) {
	body := `{"recipe_id": 1, "material_id": 2, "set_point": "100", "actual": "90", "status": "pending"}`

	created := &stubRecipeMaterialService{created: true}
	w := postJSON(t, newUpsertRouter(created), "/v1/recipe_materials", body)
	assert.Equal(t, http.StatusCreated, w.Code)

	updated := &stubRecipeMaterialService{created: false}
	w = postJSON(t, newUpsertRouter(updated), "/v1/recipe_materials", body)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpsertBindingRejectsMalformedJSON(t *testing.T) {
	svc := &stubRecipeMaterialService{}
	r := newUpsertRouter(svc)

	w := postJSON(t, r, "/v1/recipe_materials", `{"recipe_id": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
