package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateRecipeRequest struct {
	Name          string  `json:"name"       validate:"required,max=100"`
	Code          string  `json:"code"       validate:"required,max=50"`
	Description   *string `json:"description"`
	Version       string  `json:"version"    validate:"required,max=20"`
	Status        *string `json:"status"`
	CreatedBy     uint    `json:"created_by" validate:"required"`
	BarcodeID     *string `json:"barcode_id" validate:"omitempty,max=100"`
	NoOfMaterials *int    `json:"no_of_materials"`
}

// UpdateRecipeRequest carries a partial update: nil fields keep prior values.
type UpdateRecipeRequest struct {
	Name          *string `json:"name"       validate:"omitempty,max=100"`
	Code          *string `json:"code"       validate:"omitempty,max=50"`
	Description   *string `json:"description"`
	Version       *string `json:"version"    validate:"omitempty,max=20"`
	Status        *string `json:"status"`
	BarcodeID     *string `json:"barcode_id" validate:"omitempty,max=100"`
	NoOfMaterials *int    `json:"no_of_materials"`
	Sequence      *int    `json:"sequence"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RecipeResponse struct {
	ID            uint    `json:"recipe_id"`
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	Description   *string `json:"description"`
	Version       string  `json:"version"`
	Status        string  `json:"status"`
	CreatedBy     uint    `json:"created_by"`
	BarcodeID     *string `json:"barcode_id"`
	NoOfMaterials *int    `json:"no_of_materials"`
	Sequence      *int    `json:"sequence"`
	CreatedAt     string  `json:"created_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
