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

// RecipeService defines the recipe lifecycle: create/read/update plus the
// cascading delete (dependent orders removed, dosing records orphaned).
type RecipeService interface {
	Create(ctx context.Context, req dto.CreateRecipeRequest) (*dto.RecipeResponse, error)
	Get(ctx context.Context, id uint) (*dto.RecipeResponse, error)
	List(ctx context.Context) ([]dto.RecipeResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateRecipeRequest) (*dto.RecipeResponse, error)
	Delete(ctx context.Context, id uint) error
	ExportBarcodes(ctx context.Context) ([]byte, error)
}

type recipeService struct {
	repo           repository.RecipeRepository
	userRepo       repository.UserRepository
	orderRepo      repository.OrderRepository
	batchRepo      repository.BatchRepository
	dispensingRepo repository.DispensingRepository
	materialRepo   repository.RecipeMaterialRepository
	dispatcher     *worker.Dispatcher
	cascadeBatches bool
}

func NewRecipeService(
	repo repository.RecipeRepository,
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
	batchRepo repository.BatchRepository,
	dispensingRepo repository.DispensingRepository,
	materialRepo repository.RecipeMaterialRepository,
	dispatcher *worker.Dispatcher,
	cascadeBatches bool,
) RecipeService {
	return &recipeService{
		repo:           repo,
		userRepo:       userRepo,
		orderRepo:      orderRepo,
		batchRepo:      batchRepo,
		dispensingRepo: dispensingRepo,
		materialRepo:   materialRepo,
		dispatcher:     dispatcher,
		cascadeBatches: cascadeBatches,
	}
}

func mapRecipe(r *model.Recipe) dto.RecipeResponse {
	return dto.RecipeResponse{
		ID:            r.ID,
		Name:          r.Name,
		Code:          r.Code,
		Description:   r.Description,
		Version:       r.Version,
		Status:        r.Status,
		CreatedBy:     r.CreatedBy,
		BarcodeID:     r.BarcodeID,
		NoOfMaterials: r.NoOfMaterials,
		Sequence:      r.Sequence,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
}

func (s *recipeService) Create(ctx context.Context, req dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	status := model.RecipeStatusUnreleased
	if req.Status != nil {
		if !model.ValidRecipeStatus(*req.Status) {
			return nil, apierror.Validation(fmt.Sprintf("Invalid status value: %s", *req.Status))
		}
		status = *req.Status
	}
	if req.NoOfMaterials != nil && *req.NoOfMaterials < 0 {
		return nil, apierror.Validation("no_of_materials must be a non-negative integer")
	}

	if _, err := s.userRepo.FindByID(ctx, req.CreatedBy); err != nil {
		if isNotFound(err) {
			return nil, apierror.Validation("User not found")
		}
		return nil, apierror.Store("Failed to look up user")
	}

	rec := &model.Recipe{
		Name:          req.Name,
		Code:          req.Code,
		Description:   req.Description,
		Version:       req.Version,
		Status:        status,
		CreatedBy:     req.CreatedBy,
		BarcodeID:     req.BarcodeID,
		NoOfMaterials: req.NoOfMaterials,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		if isDuplicate(err) {
			return nil, apierror.Conflict("Duplicate entry: code or barcode_id already exists")
		}
		return nil, apierror.Store("Database error occurred")
	}

	s.enqueueLabel(ctx, "recipe", rec.ID, rec.Name, rec.Code, rec.BarcodeID)

	resp := mapRecipe(rec)
	return &resp, nil
}

func (s *recipeService) Get(ctx context.Context, id uint) (*dto.RecipeResponse, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFound("Recipe not found")
		}
		return nil, apierror.Store("Failed to look up recipe")
	}
	resp := mapRecipe(rec)
	return &resp, nil
}

func (s *recipeService) List(ctx context.Context) ([]dto.RecipeResponse, error) {
	recipes, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Store("Failed to list recipes")
	}
	result := make([]dto.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		result = append(result, mapRecipe(&recipes[i]))
	}
	return result, nil
}

func (s *recipeService) Update(ctx context.Context, id uint, req dto.UpdateRecipeRequest) (*dto.RecipeResponse, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFound("Recipe not found")
		}
		return nil, apierror.Store("Failed to look up recipe")
	}

	if req.Name != nil {
		rec.Name = *req.Name
	}
	if req.Code != nil {
		rec.Code = *req.Code
	}
	if req.Description != nil {
		rec.Description = req.Description
	}
	if req.Version != nil {
		rec.Version = *req.Version
	}
	if req.Status != nil {
		// The legacy system accepted any string here; the enum now holds on
		// every write path.
		if !model.ValidRecipeStatus(*req.Status) {
			return nil, apierror.Validation(fmt.Sprintf("Invalid status value: %s", *req.Status))
		}
		rec.Status = *req.Status
	}
	if req.BarcodeID != nil {
		rec.BarcodeID = req.BarcodeID
	}
	if req.NoOfMaterials != nil {
		if *req.NoOfMaterials < 0 {
			return nil, apierror.Validation("no_of_materials must be a non-negative integer")
		}
		rec.NoOfMaterials = req.NoOfMaterials
	}
	if req.Sequence != nil {
		rec.Sequence = req.Sequence
	}

	if err := s.repo.Update(ctx, rec); err != nil {
		if isDuplicate(err) {
			return nil, apierror.Conflict("Duplicate entry: code or barcode_id already exists")
		}
		return nil, apierror.Store("Failed to update recipe")
	}
	resp := mapRecipe(rec)
	return &resp, nil
}

// Delete removes a recipe and everything hanging off it in one transaction:
// dependent production orders are deleted (batches and dispensing rows too,
// when the cascade rule is on), dosing records are detached (recipe_id set to
// NULL), and finally the recipe row goes. All-or-nothing.
func (s *recipeService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if isNotFound(err) {
			return apierror.NotFound("Recipe not found")
		}
		return apierror.Store("Failed to look up recipe")
	}

	txErr := s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		if s.cascadeBatches {
			orderIDs, err := s.orderRepo.ListIDsByRecipeTx(tx, id)
			if err != nil {
				return err
			}
			batchIDs, err := s.batchRepo.ListIDsByOrderIDsTx(tx, orderIDs)
			if err != nil {
				return err
			}
			if err := s.dispensingRepo.DeleteByBatchIDsTx(tx, batchIDs); err != nil {
				return err
			}
			if err := s.batchRepo.DeleteByOrderIDsTx(tx, orderIDs); err != nil {
				return err
			}
		}
		if err := s.orderRepo.DeleteByRecipeTx(tx, id); err != nil {
			return err
		}
		if err := s.materialRepo.DetachRecipeTx(tx, id); err != nil {
			return err
		}
		return s.repo.DeleteTx(tx, id)
	})
	if txErr != nil {
		return apierror.Store("Failed to delete recipe")
	}
	return nil
}

func (s *recipeService) ExportBarcodes(ctx context.Context) ([]byte, error) {
	recipes, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Store("Failed to list recipes")
	}

	rows := make([]infra.BarcodeRow, 0, len(recipes))
	for _, rec := range recipes {
		if rec.BarcodeID == nil {
			continue
		}
		rows = append(rows, infra.BarcodeRow{
			Values:    []string{rec.Name, rec.Code, *rec.BarcodeID},
			BarcodeID: *rec.BarcodeID,
		})
	}

	data, err := infra.BuildBarcodeWorkbook("Recipes with Barcodes",
		[]string{"Name", "Code", "Barcode ID", "Scannable Barcode"}, rows)
	if err != nil {
		return nil, apierror.Store("Failed to build export workbook")
	}
	return data, nil
}

// enqueueLabel fires a best-effort label render job. Entities without a
// barcode have no label; a missing dispatcher (unit tests) is a no-op.
func (s *recipeService) enqueueLabel(ctx context.Context, entity string, id uint, name, code string, barcodeID *string) {
	if s.dispatcher == nil || barcodeID == nil || *barcodeID == "" {
		return
	}
	_ = s.dispatcher.EnqueueLabel(ctx, worker.LabelJob{
		Entity:    entity,
		EntityID:  id,
		Name:      name,
		Code:      code,
		BarcodeID: *barcodeID,
	})
}
