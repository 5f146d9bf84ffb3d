package repository

import (
	"context"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/model"

	"gorm.io/gorm"
)

// StorageBucketRepository defines the data access contract for dosing buckets.
type StorageBucketRepository interface {
	Create(ctx context.Context, b *model.StorageBucket) error
	FindByID(ctx context.Context, id uint) (*model.StorageBucket, error)
	List(ctx context.Context) ([]model.StorageBucket, error)
	Update(ctx context.Context, b *model.StorageBucket) error
	Delete(ctx context.Context, id uint) error
}

type storageBucketRepo struct{ db *gorm.DB }

func NewStorageBucketRepository(db *gorm.DB) StorageBucketRepository {
	return &storageBucketRepo{db: db}
}

func (r *storageBucketRepo) Create(ctx context.Context, b *model.StorageBucket) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *storageBucketRepo) FindByID(ctx context.Context, id uint) (*model.StorageBucket, error) {
	var b model.StorageBucket
	err := r.db.WithContext(ctx).First(&b, id).Error
	return &b, err
}

func (r *storageBucketRepo) List(ctx context.Context) ([]model.StorageBucket, error) {
	var buckets []model.StorageBucket
	err := r.db.WithContext(ctx).Order("name ASC").Find(&buckets).Error
	return buckets, err
}

func (r *storageBucketRepo) Update(ctx context.Context, b *model.StorageBucket) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *storageBucketRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.StorageBucket{}, id).Error
}
