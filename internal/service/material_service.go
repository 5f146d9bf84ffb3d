package service

import (
	"context"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/apierror"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/dto"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/model"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/repository"

	"github.com/shopspring/decimal"
)

// MaterialService defines business operations for raw materials.
type MaterialService interface {
	Create(ctx context.Context, req dto.CreateMaterialRequest) (*dto.MaterialResponse, error)
	Get(ctx context.Context, id uint) (*dto.MaterialResponse, error)
	List(ctx context.Context) ([]dto.MaterialResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateMaterialRequest) (*dto.MaterialResponse, error)
	Delete(ctx context.Context, id uint) error
}

type materialService struct {
	repo repository.MaterialRepository
}

func NewMaterialService(repo repository.MaterialRepository) MaterialService {
	return &materialService{repo: repo}
}

func mapMaterial(m *model.Material) dto.MaterialResponse {
	return dto.MaterialResponse{
		ID:              m.ID,
		Name:            m.Name,
		Code:            m.Code,
		Description:     m.Description,
		Unit:            m.Unit,
		CurrentQuantity: m.CurrentQuantity,
		BarcodeID:       m.BarcodeID,
		StorageBucketID: m.StorageBucketID,
	}
}

func (s *materialService) Create(ctx context.Context, req dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	m := &model.Material{
		Name:            req.Name,
		Code:            req.Code,
		Description:     req.Description,
		Unit:            "kg",
		CurrentQuantity: decimal.Zero,
		BarcodeID:       req.BarcodeID,
		StorageBucketID: req.StorageBucketID,
	}
	if req.Unit != nil {
		m.Unit = *req.Unit
	}
	if req.CurrentQuantity != nil {
		m.CurrentQuantity = *req.CurrentQuantity
	}

	if err := s.repo.Create(ctx, m); err != nil {
		if isDuplicate(err) {
			return nil, apierror.Conflict("Duplicate entry: code or barcode_id already exists")
		}
		return nil, apierror.Store("Failed to create material")
	}
	resp := mapMaterial(m)
	return &resp, nil
}

func (s *materialService) Get(ctx context.Context, id uint) (*dto.MaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFound("Material not found")
		}
		return nil, apierror.Store("Failed to look up material")
	}
	resp := mapMaterial(m)
	return &resp, nil
}

func (s *materialService) List(ctx context.Context) ([]dto.MaterialResponse, error) {
	materials, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Store("Failed to list materials")
	}
	result := make([]dto.MaterialResponse, 0, len(materials))
	for i := range materials {
		result = append(result, mapMaterial(&materials[i]))
	}
	return result, nil
}

func (s *materialService) Update(ctx context.Context, id uint, req dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFound("Material not found")
		}
		return nil, apierror.Store("Failed to look up material")
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Code != nil {
		m.Code = *req.Code
	}
	if req.Description != nil {
		m.Description = req.Description
	}
	if req.Unit != nil {
		m.Unit = *req.Unit
	}
	if req.CurrentQuantity != nil {
		m.CurrentQuantity = *req.CurrentQuantity
	}
	if req.BarcodeID != nil {
		m.BarcodeID = req.BarcodeID
	}
	if req.StorageBucketID != nil {
		m.StorageBucketID = req.StorageBucketID
	}

	if err := s.repo.Update(ctx, m); err != nil {
		if isDuplicate(err) {
			return nil, apierror.Conflict("Duplicate entry: code or barcode_id already exists")
		}
		return nil, apierror.Store("Failed to update material")
	}
	resp := mapMaterial(m)
	return &resp, nil
}

func (s *materialService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if isNotFound(err) {
			return apierror.NotFound("Material not found")
		}
		return apierror.Store("Failed to look up material")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Store("Failed to delete material")
	}
	return nil
}
