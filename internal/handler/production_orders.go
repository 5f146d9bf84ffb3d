package handler

import (
	"net/http"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/apierror"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/dto"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/middleware"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductionOrdersHandler struct{ svc service.ProductionService }

func NewProductionOrdersHandler(svc service.ProductionService) *ProductionOrdersHandler {
	return &ProductionOrdersHandler{svc: svc}
}

// Create records a new planned order. The creator is taken from the JWT,
// never from the request body.
func (h *ProductionOrdersHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Authentication required"))
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), claims.UserID, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductionOrdersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductionOrdersHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reject moves the order to the rejected status and notifies its creator.
func (h *ProductionOrdersHandler) Reject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Reject(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Production order rejected"})
}

func (h *ProductionOrdersHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Production order deleted successfully"})
}

func (h *ProductionOrdersHandler) ExportBarcodes(c *gin.Context) {
	data, err := h.svc.ExportBarcodes(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	writeWorkbook(c, "production_orders_barcodes.xlsx", data)
}
