package handler

import (
	"net/http"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/dto"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/service"

	"github.com/gin-gonic/gin"
)

type RecipesHandler struct{ svc service.RecipeService }

func NewRecipesHandler(svc service.RecipeService) *RecipesHandler {
	return &RecipesHandler{svc: svc}
}

// Create godoc
// @Summary Create a recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param body body dto.CreateRecipeRequest true "Recipe"
// @Success 201 {object} dto.RecipeResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/recipes [post]
func (h *RecipesHandler) Create(c *gin.Context) {
	var req dto.CreateRecipeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *RecipesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecipesHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecipesHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateRecipeRequest
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

// Delete removes the recipe together with its production orders and, when
// cascading is enabled, their batches and dispensing rows. Material rows
// survive with recipe_id set to NULL.
func (h *RecipesHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Recipe and associated records deleted successfully"})
}

// ExportBarcodes streams an xlsx of all recipes carrying a barcode_id,
// each row embedding its scannable Code 128 image.
func (h *RecipesHandler) ExportBarcodes(c *gin.Context) {
	data, err := h.svc.ExportBarcodes(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	writeWorkbook(c, "recipes_barcodes.xlsx", data)
}
