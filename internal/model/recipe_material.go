package model

import "github.com/shopspring/decimal"

// RecipeMaterial statuses.
const (
	RecipeMaterialStatusPending    = "pending"
	RecipeMaterialStatusInProgress = "in progress"
	RecipeMaterialStatusCreated    = "created"
)

// ValidRecipeMaterialStatus reports whether s belongs to the dosing record
// status enum. Release states are shared with Recipe.
func ValidRecipeMaterialStatus(s string) bool {
	switch s {
	case RecipeMaterialStatusPending, RecipeMaterialStatusInProgress,
		RecipeMaterialStatusCreated, RecipeStatusReleased, RecipeStatusUnreleased:
		return true
	}
	return false
}

// RecipeMaterial is the dosing record for a recipe: target quantity, measured
// quantity, and the derived margin. RecipeID is unique (one dosing record per
// recipe) and nullable so a recipe delete can orphan the record instead of
// destroying dispensing history.
//
// Margin is a cached derivation of SetPoint/Actual: recomputed on every write,
// never accepted from a caller.
type RecipeMaterial struct {
	ID         uint  `gorm:"primaryKey"`
	RecipeID   *uint `gorm:"uniqueIndex"`
	MaterialID uint  `gorm:"not null;index"`
	SetPoint   decimal.Decimal  `gorm:"type:decimal(10,2)"`
	Actual     decimal.Decimal  `gorm:"type:decimal(10,2)"`
	Margin     *decimal.Decimal `gorm:"type:decimal(5,2)"`
	Status     string           `gorm:"type:varchar(20);not null;default:'pending'"`
}
