package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/apierror"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/dto"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/model"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/repository"
)

// BatchService covers batch and dispensing record creation and listing.
// Neither entity has update/delete at this layer.
type BatchService interface {
	CreateBatch(ctx context.Context, req dto.CreateBatchRequest) (*dto.BatchResponse, error)
	ListBatches(ctx context.Context) ([]dto.BatchResponse, error)
	CreateDispensing(ctx context.Context, req dto.CreateDispensingRequest) (*dto.DispensingResponse, error)
	ListDispensings(ctx context.Context) ([]dto.DispensingResponse, error)
}

type batchService struct {
	repo           repository.BatchRepository
	dispensingRepo repository.DispensingRepository
	orderRepo      repository.OrderRepository
	materialRepo   repository.MaterialRepository
	userRepo       repository.UserRepository
}

func NewBatchService(
	repo repository.BatchRepository,
	dispensingRepo repository.DispensingRepository,
	orderRepo repository.OrderRepository,
	materialRepo repository.MaterialRepository,
	userRepo repository.UserRepository,
) BatchService {
	return &batchService{
		repo:           repo,
		dispensingRepo: dispensingRepo,
		orderRepo:      orderRepo,
		materialRepo:   materialRepo,
		userRepo:       userRepo,
	}
}

func mapBatch(b *model.Batch) dto.BatchResponse {
	return dto.BatchResponse{
		ID:          b.ID,
		BatchNumber: b.BatchNumber,
		OrderID:     b.OrderID,
		Status:      b.Status,
		OperatorID:  b.OperatorID,
		Notes:       b.Notes,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}

func mapDispensing(d *model.BatchMaterialDispensing) dto.DispensingResponse {
	return dto.DispensingResponse{
		ID:              d.ID,
		BatchID:         d.BatchID,
		MaterialID:      d.MaterialID,
		PlannedQuantity: d.PlannedQuantity,
		ActualQuantity:  d.ActualQuantity,
		DispensedBy:     d.DispensedBy,
		Status:          d.Status,
	}
}

func (s *batchService) CreateBatch(ctx context.Context, req dto.CreateBatchRequest) (*dto.BatchResponse, error) {
	status := model.BatchStatusPending
	if req.Status != nil {
		if !model.ValidBatchStatus(*req.Status) {
			return nil, apierror.Validation(fmt.Sprintf("Invalid status value: %s", *req.Status))
		}
		status = *req.Status
	}
	if _, err := s.orderRepo.FindByID(ctx, req.OrderID); err != nil {
		if isNotFound(err) {
			return nil, apierror.Validation("Production order not found")
		}
		return nil, apierror.Store("Failed to look up production order")
	}
	if _, err := s.userRepo.FindByID(ctx, req.OperatorID); err != nil {
		if isNotFound(err) {
			return nil, apierror.Validation("Operator not found")
		}
		return nil, apierror.Store("Failed to look up operator")
	}

	b := &model.Batch{
		BatchNumber: req.BatchNumber,
		OrderID:     req.OrderID,
		Status:      status,
		OperatorID:  req.OperatorID,
		Notes:       req.Notes,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, apierror.Store("Failed to create batch")
	}
	resp := mapBatch(b)
	return &resp, nil
}

func (s *batchService) ListBatches(ctx context.Context) ([]dto.BatchResponse, error) {
	batches, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Store("Failed to list batches")
	}
	result := make([]dto.BatchResponse, 0, len(batches))
	for i := range batches {
		result = append(result, mapBatch(&batches[i]))
	}
	return result, nil
}

func (s *batchService) CreateDispensing(ctx context.Context, req dto.CreateDispensingRequest) (*dto.DispensingResponse, error) {
	status := model.BatchStatusPending
	if req.Status != nil {
		if !model.ValidBatchStatus(*req.Status) {
			return nil, apierror.Validation(fmt.Sprintf("Invalid status value: %s", *req.Status))
		}
		status = *req.Status
	}
	if _, err := s.repo.FindByID(ctx, req.BatchID); err != nil {
		if isNotFound(err) {
			return nil, apierror.Validation("Batch not found")
		}
		return nil, apierror.Store("Failed to look up batch")
	}
	if _, err := s.materialRepo.FindByID(ctx, req.MaterialID); err != nil {
		if isNotFound(err) {
			return nil, apierror.Validation("Material not found")
		}
		return nil, apierror.Store("Failed to look up material")
	}
	if _, err := s.userRepo.FindByID(ctx, req.DispensedBy); err != nil {
		if isNotFound(err) {
			return nil, apierror.Validation("Dispensing user not found")
		}
		return nil, apierror.Store("Failed to look up user")
	}

	d := &model.BatchMaterialDispensing{
		BatchID:         req.BatchID,
		MaterialID:      req.MaterialID,
		PlannedQuantity: req.PlannedQuantity,
		ActualQuantity:  req.ActualQuantity,
		DispensedBy:     req.DispensedBy,
		Status:          status,
	}
	if err := s.dispensingRepo.Create(ctx, d); err != nil {
		return nil, apierror.Store("Failed to create dispensing record")
	}
	resp := mapDispensing(d)
	return &resp, nil
}

func (s *batchService) ListDispensings(ctx context.Context) ([]dto.DispensingResponse, error) {
	records, err := s.dispensingRepo.List(ctx)
	if err != nil {
		return nil, apierror.Store("Failed to list dispensing records")
	}
	result := make([]dto.DispensingResponse, 0, len(records))
	for i := range records {
		result = append(result, mapDispensing(&records[i]))
	}
	return result, nil
}
