package repository

import (
	"context"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/model"

	"gorm.io/gorm"
)

// OrderRepository defines the data access contract for production orders.
type OrderRepository interface {
	Create(ctx context.Context, o *model.ProductionOrder) error
	FindByID(ctx context.Context, id uint) (*model.ProductionOrder, error)
	FindByBarcode(ctx context.Context, barcodeID string) (*model.ProductionOrder, error)
	List(ctx context.Context) ([]model.ProductionOrder, error)
	Update(ctx context.Context, o *model.ProductionOrder) error

	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	DeleteTx(tx *gorm.DB, id uint) error
	ListIDsByRecipeTx(tx *gorm.DB, recipeID uint) ([]uint, error)
	DeleteByRecipeTx(tx *gorm.DB, recipeID uint) error
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *model.ProductionOrder) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) FindByID(ctx context.Context, id uint) (*model.ProductionOrder, error) {
	var o model.ProductionOrder
	err := r.db.WithContext(ctx).First(&o, id).Error
	return &o, err
}

func (r *orderRepo) FindByBarcode(ctx context.Context, barcodeID string) (*model.ProductionOrder, error) {
	var o model.ProductionOrder
	err := r.db.WithContext(ctx).Where("barcode_id = ?", barcodeID).First(&o).Error
	return &o, err
}

func (r *orderRepo) List(ctx context.Context) ([]model.ProductionOrder, error) {
	var orders []model.ProductionOrder
	err := r.db.WithContext(ctx).Order("id ASC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) Update(ctx context.Context, o *model.ProductionOrder) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *orderRepo) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *orderRepo) DeleteTx(tx *gorm.DB, id uint) error {
	return tx.Delete(&model.ProductionOrder{}, id).Error
}

func (r *orderRepo) ListIDsByRecipeTx(tx *gorm.DB, recipeID uint) ([]uint, error) {
	var ids []uint
	err := tx.Model(&model.ProductionOrder{}).
		Where("recipe_id = ?", recipeID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *orderRepo) DeleteByRecipeTx(tx *gorm.DB, recipeID uint) error {
	return tx.Where("recipe_id = ?", recipeID).Delete(&model.ProductionOrder{}).Error
}
