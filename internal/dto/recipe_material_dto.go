package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// UpsertRecipeMaterialRequest feeds the dosing reconciler. Numeric fields are
// pointers so that an absent field fails validation while an explicit zero is
// accepted as a measured value.
type UpsertRecipeMaterialRequest struct {
	RecipeID   *uint            `json:"recipe_id"   validate:"required"`
	MaterialID *uint            `json:"material_id" validate:"required"`
	SetPoint   *decimal.Decimal `json:"set_point"   validate:"required"`
	Actual     *decimal.Decimal `json:"actual"      validate:"required"`
	Status     *string          `json:"status"      validate:"required"`
}

type UpdateRecipeMaterialRequest struct {
	MaterialID *uint            `json:"material_id"`
	SetPoint   *decimal.Decimal `json:"set_point"`
	Status     *string          `json:"status"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RecipeMaterialResponse struct {
	ID         uint             `json:"recipe_material_id"`
	RecipeID   *uint            `json:"recipe_id"`
	MaterialID uint             `json:"material_id"`
	SetPoint   decimal.Decimal  `json:"set_point"`
	Actual     decimal.Decimal  `json:"actual"`
	Margin     *decimal.Decimal `json:"margin"`
	Status     string           `json:"status"`
}

// UpsertRecipeMaterialResponse echoes the margin as a display string
// ("12.5%"); the stored value stays numeric.
type UpsertRecipeMaterialResponse struct {
	Message string `json:"message"`
	Margin  string `json:"margin"`
}
