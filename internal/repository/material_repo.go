package repository

import (
	"context"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/model"

	"gorm.io/gorm"
)

// MaterialRepository defines the data access contract for materials.
type MaterialRepository interface {
	Create(ctx context.Context, m *model.Material) error
	FindByID(ctx context.Context, id uint) (*model.Material, error)
	List(ctx context.Context) ([]model.Material, error)
	Update(ctx context.Context, m *model.Material) error
	Delete(ctx context.Context, id uint) error
}

type materialRepo struct{ db *gorm.DB }

func NewMaterialRepository(db *gorm.DB) MaterialRepository { return &materialRepo{db: db} }

func (r *materialRepo) Create(ctx context.Context, m *model.Material) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *materialRepo) FindByID(ctx context.Context, id uint) (*model.Material, error) {
	var m model.Material
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *materialRepo) List(ctx context.Context) ([]model.Material, error) {
	var materials []model.Material
	err := r.db.WithContext(ctx).Order("name ASC").Find(&materials).Error
	return materials, err
}

func (r *materialRepo) Update(ctx context.Context, m *model.Material) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *materialRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Material{}, id).Error
}
