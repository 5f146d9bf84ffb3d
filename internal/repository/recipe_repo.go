package repository

import (
	"context"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/model"

	"gorm.io/gorm"
)

// RecipeRepository defines the data access contract for recipes.
// Transaction opens an atomic scope for the delete cascade; the Tx-suffixed
// methods must be called with the *gorm.DB it provides.
type RecipeRepository interface {
	Create(ctx context.Context, rec *model.Recipe) error
	FindByID(ctx context.Context, id uint) (*model.Recipe, error)
	FindByBarcode(ctx context.Context, barcodeID string) (*model.Recipe, error)
	List(ctx context.Context) ([]model.Recipe, error)
	Update(ctx context.Context, rec *model.Recipe) error

	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	DeleteTx(tx *gorm.DB, id uint) error
}

type recipeRepo struct{ db *gorm.DB }

func NewRecipeRepository(db *gorm.DB) RecipeRepository { return &recipeRepo{db: db} }

func (r *recipeRepo) Create(ctx context.Context, rec *model.Recipe) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recipeRepo) FindByID(ctx context.Context, id uint) (*model.Recipe, error) {
	var rec model.Recipe
	err := r.db.WithContext(ctx).First(&rec, id).Error
	return &rec, err
}

func (r *recipeRepo) FindByBarcode(ctx context.Context, barcodeID string) (*model.Recipe, error) {
	var rec model.Recipe
	err := r.db.WithContext(ctx).Where("barcode_id = ?", barcodeID).First(&rec).Error
	return &rec, err
}

func (r *recipeRepo) List(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := r.db.WithContext(ctx).Order("id ASC").Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepo) Update(ctx context.Context, rec *model.Recipe) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *recipeRepo) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *recipeRepo) DeleteTx(tx *gorm.DB, id uint) error {
	return tx.Delete(&model.Recipe{}, id).Error
}
