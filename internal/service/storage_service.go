package service

import (
	"context"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/apierror"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/dto"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/model"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/repository"

	"github.com/shopspring/decimal"
)

// StorageService defines business operations for dosing buckets.
type StorageService interface {
	Create(ctx context.Context, req dto.CreateStorageBucketRequest) (*dto.StorageBucketResponse, error)
	Get(ctx context.Context, id uint) (*dto.StorageBucketResponse, error)
	List(ctx context.Context) ([]dto.StorageBucketResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateStorageBucketRequest) (*dto.StorageBucketResponse, error)
	Delete(ctx context.Context, id uint) error
}

type storageService struct {
	repo repository.StorageBucketRepository
}

func NewStorageService(repo repository.StorageBucketRepository) StorageService {
	return &storageService{repo: repo}
}

func mapBucket(b *model.StorageBucket) dto.StorageBucketResponse {
	return dto.StorageBucketResponse{
		ID:         b.ID,
		Name:       b.Name,
		Location:   b.Location,
		Capacity:   b.Capacity,
		MaterialID: b.MaterialID,
	}
}

func (s *storageService) Create(ctx context.Context, req dto.CreateStorageBucketRequest) (*dto.StorageBucketResponse, error) {
	b := &model.StorageBucket{
		Name:       req.Name,
		Location:   req.Location,
		Capacity:   decimal.Zero,
		MaterialID: req.MaterialID,
	}
	if req.Capacity != nil {
		b.Capacity = *req.Capacity
	}

	if err := s.repo.Create(ctx, b); err != nil {
		if isDuplicate(err) {
			return nil, apierror.Conflict("Duplicate entry: bucket name already exists")
		}
		return nil, apierror.Store("Failed to create storage bucket")
	}
	resp := mapBucket(b)
	return &resp, nil
}

func (s *storageService) Get(ctx context.Context, id uint) (*dto.StorageBucketResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFound("Storage bucket not found")
		}
		return nil, apierror.Store("Failed to look up storage bucket")
	}
	resp := mapBucket(b)
	return &resp, nil
}

func (s *storageService) List(ctx context.Context) ([]dto.StorageBucketResponse, error) {
	buckets, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Store("Failed to list storage buckets")
	}
	result := make([]dto.StorageBucketResponse, 0, len(buckets))
	for i := range buckets {
		result = append(result, mapBucket(&buckets[i]))
	}
	return result, nil
}

func (s *storageService) Update(ctx context.Context, id uint, req dto.UpdateStorageBucketRequest) (*dto.StorageBucketResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFound("Storage bucket not found")
		}
		return nil, apierror.Store("Failed to look up storage bucket")
	}

	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.Location != nil {
		b.Location = req.Location
	}
	if req.Capacity != nil {
		b.Capacity = *req.Capacity
	}
	if req.MaterialID != nil {
		b.MaterialID = req.MaterialID
	}

	if err := s.repo.Update(ctx, b); err != nil {
		if isDuplicate(err) {
			return nil, apierror.Conflict("Duplicate entry: bucket name already exists")
		}
		return nil, apierror.Store("Failed to update storage bucket")
	}
	resp := mapBucket(b)
	return &resp, nil
}

func (s *storageService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if isNotFound(err) {
			return apierror.NotFound("Storage bucket not found")
		}
		return apierror.Store("Failed to look up storage bucket")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Store("Failed to delete storage bucket")
	}
	return nil
}
