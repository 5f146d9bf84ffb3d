package repository

import (
	"context"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/model"

	"gorm.io/gorm"
)

// BatchRepository defines the data access contract for batches.
type BatchRepository interface {
	Create(ctx context.Context, b *model.Batch) error
	FindByID(ctx context.Context, id uint) (*model.Batch, error)
	List(ctx context.Context) ([]model.Batch, error)

	// Cascade support, called inside order/recipe delete transactions.
	ListIDsByOrderIDsTx(tx *gorm.DB, orderIDs []uint) ([]uint, error)
	DeleteByOrderIDsTx(tx *gorm.DB, orderIDs []uint) error
}

type batchRepo struct{ db *gorm.DB }

func NewBatchRepository(db *gorm.DB) BatchRepository { return &batchRepo{db: db} }

func (r *batchRepo) Create(ctx context.Context, b *model.Batch) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *batchRepo) FindByID(ctx context.Context, id uint) (*model.Batch, error) {
	var b model.Batch
	err := r.db.WithContext(ctx).First(&b, id).Error
	return &b, err
}

func (r *batchRepo) List(ctx context.Context) ([]model.Batch, error) {
	var batches []model.Batch
	err := r.db.WithContext(ctx).Order("id ASC").Find(&batches).Error
	return batches, err
}

func (r *batchRepo) ListIDsByOrderIDsTx(tx *gorm.DB, orderIDs []uint) ([]uint, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := tx.Model(&model.Batch{}).
		Where("order_id IN ?", orderIDs).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *batchRepo) DeleteByOrderIDsTx(tx *gorm.DB, orderIDs []uint) error {
	if len(orderIDs) == 0 {
		return nil
	}
	return tx.Where("order_id IN ?", orderIDs).Delete(&model.Batch{}).Error
}
