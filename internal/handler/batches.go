package handler

import (
	"net/http"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/dto"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/service"

	"github.com/gin-gonic/gin"
)

type BatchesHandler struct{ svc service.BatchService }

func NewBatchesHandler(svc service.BatchService) *BatchesHandler {
	return &BatchesHandler{svc: svc}
}

func (h *BatchesHandler) Create(c *gin.Context) {
	var req dto.CreateBatchRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateBatch(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BatchesHandler) List(c *gin.Context) {
	resp, err := h.svc.ListBatches(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BatchesHandler) CreateDispensing(c *gin.Context) {
	var req dto.CreateDispensingRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateDispensing(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BatchesHandler) ListDispensings(c *gin.Context) {
	resp, err := h.svc.ListDispensings(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
