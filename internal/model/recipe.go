package model

import "time"

// Recipe statuses: the release state of a formulation.
const (
	RecipeStatusReleased   = "Released"
	RecipeStatusUnreleased = "Unreleased"
)

// ValidRecipeStatus reports whether s belongs to the recipe status enum.
func ValidRecipeStatus(s string) bool {
	return s == RecipeStatusReleased || s == RecipeStatusUnreleased
}

// Recipe is a named formulation/version with a release status.
// Code and BarcodeID are globally unique when present.
type Recipe struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"not null"`
	Code        string  `gorm:"uniqueIndex;not null"`
	Description *string `gorm:"type:text"`
	Version     string  `gorm:"type:varchar(20);not null"`
	Status      string  `gorm:"type:varchar(20);not null;default:'Unreleased'"`
	CreatedBy   uint    `gorm:"not null;index"`
	BarcodeID   *string `gorm:"uniqueIndex"`
	// NoOfMaterials is informational: the number of materials the formulation
	// calls for. The dosing record itself stays one row per recipe.
	NoOfMaterials *int
	Sequence      *int
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Creator *User `gorm:"foreignKey:CreatedBy"`
}
