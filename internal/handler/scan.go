package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/apierror"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/dto"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/model"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// ScanHandler resolves a scanned barcode to the recipe or production order
// carrying it. No authentication required: shop-floor scanners query this
// between dosing steps, so responses are cached in Redis.
type ScanHandler struct {
	recipes repository.RecipeRepository
	orders  repository.OrderRepository
	rdb     *redis.Client
	ttl     time.Duration
}

func NewScanHandler(recipes repository.RecipeRepository, orders repository.OrderRepository, rdb *redis.Client, ttl time.Duration) *ScanHandler {
	return &ScanHandler{recipes: recipes, orders: orders, rdb: rdb, ttl: ttl}
}

// Resolve godoc
// @Summary Resolve a scanned barcode (no authentication)
// @Tags scan
// @Produce json
// @Param barcode path string true "Barcode value"
// @Success 200 {object} dto.ScanResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/scan/{barcode} [get]
func (h *ScanHandler) Resolve(c *gin.Context) {
	barcode := c.Param("barcode")
	ctx := c.Request.Context()
	cacheKey := "scan:" + barcode

	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.ScanResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	var resp *dto.ScanResponse
	if rec, err := h.recipes.FindByBarcode(ctx, barcode); err == nil {
		resp = &dto.ScanResponse{Type: "recipe", Recipe: scanRecipe(rec)}
	} else if order, err := h.orders.FindByBarcode(ctx, barcode); err == nil {
		resp = &dto.ScanResponse{Type: "production_order", Order: scanOrder(order)}
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.New("No record matches this barcode"))
		return
	}

	// Populate cache, best effort
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, h.ttl).Err()
	}

	c.JSON(http.StatusOK, resp)
}

func scanRecipe(r *model.Recipe) *dto.RecipeResponse {
	return &dto.RecipeResponse{
		ID:            r.ID,
		Name:          r.Name,
		Code:          r.Code,
		Description:   r.Description,
		Version:       r.Version,
		Status:        r.Status,
		CreatedBy:     r.CreatedBy,
		BarcodeID:     r.BarcodeID,
		NoOfMaterials: r.NoOfMaterials,
		Sequence:      r.Sequence,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
}

func scanOrder(o *model.ProductionOrder) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		RecipeID:      o.RecipeID,
		BatchSize:     o.BatchSize,
		ScheduledDate: o.ScheduledDate.Format("2006-01-02"),
		Status:        o.Status,
		CreatedBy:     o.CreatedBy,
		Notes:         o.Notes,
		BarcodeID:     o.BarcodeID,
	}
}
