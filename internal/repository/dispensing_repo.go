package repository

import (
	"context"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/model"

	"gorm.io/gorm"
)

// DispensingRepository defines the data access contract for batch material
// dispensing records.
type DispensingRepository interface {
	Create(ctx context.Context, d *model.BatchMaterialDispensing) error
	List(ctx context.Context) ([]model.BatchMaterialDispensing, error)

	DeleteByBatchIDsTx(tx *gorm.DB, batchIDs []uint) error
}

type dispensingRepo struct{ db *gorm.DB }

func NewDispensingRepository(db *gorm.DB) DispensingRepository {
	return &dispensingRepo{db: db}
}

func (r *dispensingRepo) Create(ctx context.Context, d *model.BatchMaterialDispensing) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *dispensingRepo) List(ctx context.Context) ([]model.BatchMaterialDispensing, error) {
	var records []model.BatchMaterialDispensing
	err := r.db.WithContext(ctx).Order("id ASC").Find(&records).Error
	return records, err
}

func (r *dispensingRepo) DeleteByBatchIDsTx(tx *gorm.DB, batchIDs []uint) error {
	if len(batchIDs) == 0 {
		return nil
	}
	return tx.Where("batch_id IN ?", batchIDs).Delete(&model.BatchMaterialDispensing{}).Error
}
