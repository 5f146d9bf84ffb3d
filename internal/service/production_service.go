package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/apierror"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/dto"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/infra"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/model"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/repository"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/worker"

	"gorm.io/gorm"
)

const scheduledDateLayout = "2006-01-02"

// ProductionService defines the production order lifecycle. The creator comes
// from the authenticated identity, never from the payload.
type ProductionService interface {
	Create(ctx context.Context, userID uint, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	List(ctx context.Context) ([]dto.OrderResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateOrderRequest) (*dto.OrderResponse, error)
	Reject(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
	ExportBarcodes(ctx context.Context) ([]byte, error)
}

type productionService struct {
	repo           repository.OrderRepository
	recipeRepo     repository.RecipeRepository
	userRepo       repository.UserRepository
	batchRepo      repository.BatchRepository
	dispensingRepo repository.DispensingRepository
	dispatcher     *worker.Dispatcher
	cascadeBatches bool
}

func NewProductionService(
	repo repository.OrderRepository,
	recipeRepo repository.RecipeRepository,
	userRepo repository.UserRepository,
	batchRepo repository.BatchRepository,
	dispensingRepo repository.DispensingRepository,
	dispatcher *worker.Dispatcher,
	cascadeBatches bool,
) ProductionService {
	return &productionService{
		repo:           repo,
		recipeRepo:     recipeRepo,
		userRepo:       userRepo,
		batchRepo:      batchRepo,
		dispensingRepo: dispensingRepo,
		dispatcher:     dispatcher,
		cascadeBatches: cascadeBatches,
	}
}

func mapOrder(o *model.ProductionOrder) dto.OrderResponse {
	return dto.OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		RecipeID:      o.RecipeID,
		BatchSize:     o.BatchSize,
		ScheduledDate: o.ScheduledDate.Format(scheduledDateLayout),
		Status:        o.Status,
		CreatedBy:     o.CreatedBy,
		Notes:         o.Notes,
		BarcodeID:     o.BarcodeID,
	}
}

func (s *productionService) Create(ctx context.Context, userID uint, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	scheduled, err := time.Parse(scheduledDateLayout, req.ScheduledDate)
	if err != nil {
		return nil, apierror.Validation("scheduled_date must be YYYY-MM-DD")
	}
	if _, err := s.recipeRepo.FindByID(ctx, req.RecipeID); err != nil {
		if isNotFound(err) {
			return nil, apierror.Validation("Recipe not found")
		}
		return nil, apierror.Store("Failed to look up recipe")
	}

	order := &model.ProductionOrder{
		OrderNumber:   req.OrderNumber,
		RecipeID:      req.RecipeID,
		BatchSize:     req.BatchSize,
		ScheduledDate: scheduled,
		Status:        model.OrderStatusPlanned,
		CreatedBy:     userID,
		Notes:         req.Notes,
		BarcodeID:     req.BarcodeID,
	}
	if err := s.repo.Create(ctx, order); err != nil {
		if isDuplicate(err) {
			return nil, apierror.Conflict("Duplicate order/barcode")
		}
		return nil, apierror.Store("Failed to create order")
	}

	if s.dispatcher != nil && order.BarcodeID != nil && *order.BarcodeID != "" {
		_ = s.dispatcher.EnqueueLabel(ctx, worker.LabelJob{
			Entity:    "production_order",
			EntityID:  order.ID,
			Name:      order.OrderNumber,
			Code:      order.OrderNumber,
			BarcodeID: *order.BarcodeID,
		})
	}

	resp := mapOrder(order)
	return &resp, nil
}

func (s *productionService) List(ctx context.Context) ([]dto.OrderResponse, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Store("Failed to list production orders")
	}
	result := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, mapOrder(&orders[i]))
	}
	return result, nil
}

func (s *productionService) Update(ctx context.Context, id uint, req dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFound("Production order not found")
		}
		return nil, apierror.Store("Failed to look up production order")
	}

	if req.OrderNumber != nil {
		order.OrderNumber = *req.OrderNumber
	}
	if req.RecipeID != nil {
		if _, err := s.recipeRepo.FindByID(ctx, *req.RecipeID); err != nil {
			if isNotFound(err) {
				return nil, apierror.Validation("Recipe not found")
			}
			return nil, apierror.Store("Failed to look up recipe")
		}
		order.RecipeID = *req.RecipeID
	}
	if req.BatchSize != nil {
		order.BatchSize = *req.BatchSize
	}
	if req.ScheduledDate != nil {
		scheduled, err := time.Parse(scheduledDateLayout, *req.ScheduledDate)
		if err != nil {
			return nil, apierror.Validation("scheduled_date must be YYYY-MM-DD")
		}
		order.ScheduledDate = scheduled
	}
	if req.Status != nil {
		if !model.ValidOrderStatus(*req.Status) {
			return nil, apierror.Validation(fmt.Sprintf("Invalid status value: %s", *req.Status))
		}
		if !model.CanTransitionOrder(order.Status, *req.Status) {
			return nil, apierror.Validation(fmt.Sprintf("Order in status %q cannot move to %q", order.Status, *req.Status))
		}
		order.Status = *req.Status
	}
	if req.Notes != nil {
		order.Notes = req.Notes
	}
	if req.BarcodeID != nil {
		order.BarcodeID = req.BarcodeID
	}

	if err := s.repo.Update(ctx, order); err != nil {
		if isDuplicate(err) {
			return nil, apierror.Conflict("Duplicate order/barcode")
		}
		return nil, apierror.Store("Failed to update production order")
	}
	resp := mapOrder(order)
	return &resp, nil
}

// Reject moves an order to "rejected" and notifies its creator by email.
// The transition table applies here like everywhere else: only planned orders
// can be rejected.
func (s *productionService) Reject(ctx context.Context, id uint) error {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return apierror.NotFound("Production order not found")
		}
		return apierror.Store("Failed to look up production order")
	}
	if !model.CanTransitionOrder(order.Status, model.OrderStatusRejected) {
		return apierror.Validation(fmt.Sprintf("Order in status %q cannot be rejected", order.Status))
	}

	order.Status = model.OrderStatusRejected
	if err := s.repo.Update(ctx, order); err != nil {
		return apierror.Store("Failed to update production order")
	}

	// Notification is best-effort: the rejection stands even when the creator
	// has no email or the queue is down.
	if s.dispatcher != nil {
		if creator, err := s.userRepo.FindByID(ctx, order.CreatedBy); err == nil && creator.Email != nil {
			_ = s.dispatcher.EnqueueEmail(ctx, worker.EmailJob{
				To:      *creator.Email,
				Subject: fmt.Sprintf("Production order %s rejected", order.OrderNumber),
				Body: fmt.Sprintf("Production order %s (scheduled %s) was rejected.",
					order.OrderNumber, order.ScheduledDate.Format(scheduledDateLayout)),
			})
		}
	}
	return nil
}

// Delete removes an order; when the cascade rule is on its batches and their
// dispensing rows go with it, in one transaction.
func (s *productionService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if isNotFound(err) {
			return apierror.NotFound("Production order not found")
		}
		return apierror.Store("Failed to look up production order")
	}

	txErr := s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		if s.cascadeBatches {
			batchIDs, err := s.batchRepo.ListIDsByOrderIDsTx(tx, []uint{id})
			if err != nil {
				return err
			}
			if err := s.dispensingRepo.DeleteByBatchIDsTx(tx, batchIDs); err != nil {
				return err
			}
			if err := s.batchRepo.DeleteByOrderIDsTx(tx, []uint{id}); err != nil {
				return err
			}
		}
		return s.repo.DeleteTx(tx, id)
	})
	if txErr != nil {
		return apierror.Store("Failed to delete production order")
	}
	return nil
}

func (s *productionService) ExportBarcodes(ctx context.Context) ([]byte, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Store("Failed to list production orders")
	}

	rows := make([]infra.BarcodeRow, 0, len(orders))
	for _, o := range orders {
		if o.BarcodeID == nil {
			continue
		}
		rows = append(rows, infra.BarcodeRow{
			Values:    []string{o.OrderNumber, *o.BarcodeID},
			BarcodeID: *o.BarcodeID,
		})
	}

	data, err := infra.BuildBarcodeWorkbook("Production Order Barcodes",
		[]string{"Order Number", "Barcode ID", "Scannable Barcode"}, rows)
	if err != nil {
		return nil, apierror.Store("Failed to build export workbook")
	}
	return data, nil
}
