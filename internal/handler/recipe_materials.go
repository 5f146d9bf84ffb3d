package handler

import (
	"net/http"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/dto"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/service"

	"github.com/gin-gonic/gin"
)

type RecipeMaterialsHandler struct{ svc service.RecipeMaterialService }

func NewRecipeMaterialsHandler(svc service.RecipeMaterialService) *RecipeMaterialsHandler {
	return &RecipeMaterialsHandler{svc: svc}
}

// Upsert creates the material row for a recipe, or overwrites the existing
// one keyed by recipe_id. Answers 201 on create and 200 on update, with the
// freshly derived dosing margin in the body.
func (h *RecipeMaterialsHandler) Upsert(c *gin.Context) {
	var req dto.UpsertRecipeMaterialRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, created, err := h.svc.Upsert(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, resp)
}

func (h *RecipeMaterialsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecipeMaterialsHandler) ListByRecipe(c *gin.Context) {
	recipeID, ok := pathID(c, "recipe_id")
	if !ok {
		return
	}
	resp, err := h.svc.ListByRecipe(c.Request.Context(), recipeID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecipeMaterialsHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateRecipeMaterialRequest
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

func (h *RecipeMaterialsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Recipe material deleted successfully"})
}
