package service

import (
	"context"
	"fmt"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/apierror"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/dto"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/model"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/repository"
)

// RecipeMaterialService reconciles dosing records: one RecipeMaterial row per
// recipe, margin recomputed on every write.
type RecipeMaterialService interface {
	// Upsert creates or overwrites the dosing record keyed by recipe_id.
	// The returned bool is true when a new row was created.
	Upsert(ctx context.Context, req dto.UpsertRecipeMaterialRequest) (*dto.UpsertRecipeMaterialResponse, bool, error)
	List(ctx context.Context) ([]dto.RecipeMaterialResponse, error)
	ListByRecipe(ctx context.Context, recipeID uint) ([]dto.RecipeMaterialResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateRecipeMaterialRequest) (*dto.RecipeMaterialResponse, error)
	Delete(ctx context.Context, id uint) error
}

type recipeMaterialService struct {
	repo repository.RecipeMaterialRepository
}

func NewRecipeMaterialService(repo repository.RecipeMaterialRepository) RecipeMaterialService {
	return &recipeMaterialService{repo: repo}
}

func mapRecipeMaterial(m *model.RecipeMaterial) dto.RecipeMaterialResponse {
	return dto.RecipeMaterialResponse{
		ID:         m.ID,
		RecipeID:   m.RecipeID,
		MaterialID: m.MaterialID,
		SetPoint:   m.SetPoint,
		Actual:     m.Actual,
		Margin:     m.Margin,
		Status:     m.Status,
	}
}

func (s *recipeMaterialService) Upsert(ctx context.Context, req dto.UpsertRecipeMaterialRequest) (*dto.UpsertRecipeMaterialResponse, bool, error) {
	// Binding guarantees the pointers are non-nil; ids must additionally be
	// positive: zero is a valid quantity but never a valid identity.
	if *req.RecipeID == 0 || *req.MaterialID == 0 {
		return nil, false, apierror.Validation("recipe_id and material_id must be positive integers")
	}
	if !model.ValidRecipeMaterialStatus(*req.Status) {
		return nil, false, apierror.Validation(fmt.Sprintf("Invalid status value: %s", *req.Status))
	}

	margin := DosingMargin(*req.SetPoint, *req.Actual)

	existing, err := s.repo.FindByRecipeID(ctx, *req.RecipeID)
	switch {
	case err == nil:
		existing.MaterialID = *req.MaterialID
		existing.SetPoint = *req.SetPoint
		existing.Actual = *req.Actual
		existing.Margin = &margin
		existing.Status = *req.Status
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, false, apierror.Store("Failed to update recipe material")
		}
		return &dto.UpsertRecipeMaterialResponse{
			Message: "Recipe material updated successfully!",
			Margin:  FormatMargin(margin),
		}, false, nil

	case isNotFound(err):
		m := &model.RecipeMaterial{
			RecipeID:   req.RecipeID,
			MaterialID: *req.MaterialID,
			SetPoint:   *req.SetPoint,
			Actual:     *req.Actual,
			Margin:     &margin,
			Status:     *req.Status,
		}
		if err := s.repo.Create(ctx, m); err != nil {
			if isDuplicate(err) {
				// Concurrent upsert for the same recipe lost the race on the
				// unique recipe_id index.
				return nil, false, apierror.Conflict("Duplicate entry: recipe already has a dosing record")
			}
			return nil, false, apierror.Store("Failed to create recipe material")
		}
		return &dto.UpsertRecipeMaterialResponse{
			Message: "Recipe material created successfully!",
			Margin:  FormatMargin(margin),
		}, true, nil

	default:
		return nil, false, apierror.Store("Failed to look up recipe material")
	}
}

func (s *recipeMaterialService) List(ctx context.Context) ([]dto.RecipeMaterialResponse, error) {
	materials, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Store("Failed to list recipe materials")
	}
	result := make([]dto.RecipeMaterialResponse, 0, len(materials))
	for i := range materials {
		result = append(result, mapRecipeMaterial(&materials[i]))
	}
	return result, nil
}

func (s *recipeMaterialService) ListByRecipe(ctx context.Context, recipeID uint) ([]dto.RecipeMaterialResponse, error) {
	materials, err := s.repo.ListByRecipeID(ctx, recipeID)
	if err != nil {
		return nil, apierror.Store("Failed to list recipe materials")
	}
	if len(materials) == 0 {
		return nil, apierror.NotFound("No materials found for this recipe")
	}
	result := make([]dto.RecipeMaterialResponse, 0, len(materials))
	for i := range materials {
		result = append(result, mapRecipeMaterial(&materials[i]))
	}
	return result, nil
}

func (s *recipeMaterialService) Update(ctx context.Context, id uint, req dto.UpdateRecipeMaterialRequest) (*dto.RecipeMaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFound("Recipe material not found")
		}
		return nil, apierror.Store("Failed to look up recipe material")
	}

	if req.MaterialID != nil {
		if *req.MaterialID == 0 {
			return nil, apierror.Validation("material_id must be a positive integer")
		}
		m.MaterialID = *req.MaterialID
	}
	if req.Status != nil {
		if !model.ValidRecipeMaterialStatus(*req.Status) {
			return nil, apierror.Validation(fmt.Sprintf("Invalid status value: %s", *req.Status))
		}
		m.Status = *req.Status
	}
	if req.SetPoint != nil {
		m.SetPoint = *req.SetPoint
		// Margin is derived state, recompute against the stored actual.
		margin := DosingMargin(m.SetPoint, m.Actual)
		m.Margin = &margin
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, apierror.Store("Failed to update recipe material")
	}
	resp := mapRecipeMaterial(m)
	return &resp, nil
}

func (s *recipeMaterialService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if isNotFound(err) {
			return apierror.NotFound("Recipe material not found")
		}
		return apierror.Store("Failed to look up recipe material")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Store("Failed to delete recipe material")
	}
	return nil
}
