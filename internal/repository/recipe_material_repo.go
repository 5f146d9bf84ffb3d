package repository

import (
	"context"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/model"

	"gorm.io/gorm"
)

// RecipeMaterialRepository defines the data access contract for dosing records.
type RecipeMaterialRepository interface {
	Create(ctx context.Context, m *model.RecipeMaterial) error
	FindByID(ctx context.Context, id uint) (*model.RecipeMaterial, error)
	// FindByRecipeID returns the single dosing record keyed by recipe_id
	// (the column carries a unique constraint).
	FindByRecipeID(ctx context.Context, recipeID uint) (*model.RecipeMaterial, error)
	ListByRecipeID(ctx context.Context, recipeID uint) ([]model.RecipeMaterial, error)
	List(ctx context.Context) ([]model.RecipeMaterial, error)
	Update(ctx context.Context, m *model.RecipeMaterial) error
	Delete(ctx context.Context, id uint) error

	// DetachRecipeTx nulls out recipe_id on dependent rows inside the recipe
	// delete cascade.
	DetachRecipeTx(tx *gorm.DB, recipeID uint) error
}

type recipeMaterialRepo struct{ db *gorm.DB }

func NewRecipeMaterialRepository(db *gorm.DB) RecipeMaterialRepository {
	return &recipeMaterialRepo{db: db}
}

func (r *recipeMaterialRepo) Create(ctx context.Context, m *model.RecipeMaterial) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *recipeMaterialRepo) FindByID(ctx context.Context, id uint) (*model.RecipeMaterial, error) {
	var m model.RecipeMaterial
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *recipeMaterialRepo) FindByRecipeID(ctx context.Context, recipeID uint) (*model.RecipeMaterial, error) {
	var m model.RecipeMaterial
	err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).First(&m).Error
	return &m, err
}

func (r *recipeMaterialRepo) ListByRecipeID(ctx context.Context, recipeID uint) ([]model.RecipeMaterial, error) {
	var materials []model.RecipeMaterial
	err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Find(&materials).Error
	return materials, err
}

func (r *recipeMaterialRepo) List(ctx context.Context) ([]model.RecipeMaterial, error) {
	var materials []model.RecipeMaterial
	err := r.db.WithContext(ctx).Order("id ASC").Find(&materials).Error
	return materials, err
}

func (r *recipeMaterialRepo) Update(ctx context.Context, m *model.RecipeMaterial) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *recipeMaterialRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.RecipeMaterial{}, id).Error
}

func (r *recipeMaterialRepo) DetachRecipeTx(tx *gorm.DB, recipeID uint) error {
	return tx.Model(&model.RecipeMaterial{}).
		Where("recipe_id = ?", recipeID).
		Update("recipe_id", nil).Error
}
