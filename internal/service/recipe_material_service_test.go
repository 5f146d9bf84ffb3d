package service

import (
	"context"
	"testing"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/apierror"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/dto"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecipeMaterialFixture() (*memDB, RecipeMaterialService) {
	db := newMemDB()
	return db, NewRecipeMaterialService(&stubRecipeMaterialRepo{db: db})
}

func upsertReq(recipeID, materialID uint, setPoint, actual, status string) dto.UpsertRecipeMaterialRequest {
	return dto.UpsertRecipeMaterialRequest{
		RecipeID:   uintPtr(recipeID),
		MaterialID: uintPtr(materialID),
		SetPoint:   decPtr(setPoint),
		Actual:     decPtr(actual),
		Status:     strPtr(status),
	}
}

func TestUpsertCreatesThenOverwrites(t *testing.T) {
	db, svc := newRecipeMaterialFixture()
	ctx := context.Background()

	resp, created, err := svc.Upsert(ctx, upsertReq(7, 3, "100", "90", "pending"))
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Recipe material created successfully!", resp.Message)
	assert.Equal(t, "10%", resp.Margin)
	require.Len(t, db.materials, 1)

	// Second upsert for the same recipe overwrites in place.
	resp, created, err = svc.Upsert(ctx, upsertReq(7, 4, "200", "210", "created"))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "Recipe material updated successfully!", resp.Message)
	assert.Equal(t, "-5%", resp.Margin)
	require.Len(t, db.materials, 1)

	var row model.RecipeMaterial
	for _, m := range db.materials {
		row = m
	}
	assert.Equal(t, uint(4), row.MaterialID)
	assert.Equal(t, "created", row.Status)
	require.NotNil(t, row.Margin)
	assert.True(t, row.Margin.Equal(decimal.RequireFromString("-5")))
}

func TestUpsertZeroActualIsValid(t *testing.T) {
	_, svc := newRecipeMaterialFixture()

	resp, created, err := svc.Upsert(context.Background(), upsertReq(1, 2, "100", "0", "pending"))
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "100%", resp.Margin)
}

func TestUpsertZeroSetPointYieldsZeroMargin(t *testing.T) {
	_, svc := newRecipeMaterialFixture()

	resp, _, err := svc.Upsert(context.Background(), upsertReq(1, 2, "0", "50", "pending"))
	require.NoError(t, err)
	assert.Equal(t, "0%", resp.Margin)
}

func TestUpsertRejectsZeroIDs(t *testing.T) {
	db, svc := newRecipeMaterialFixture()

	_, _, err := svc.Upsert(context.Background(), upsertReq(0, 2, "100", "90", "pending"))
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))

	_, _, err = svc.Upsert(context.Background(), upsertReq(1, 0, "100", "90", "pending"))
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))
	assert.Empty(t, db.materials)
}

func TestUpsertRejectsUnknownStatus(t *testing.T) {
	db, svc := newRecipeMaterialFixture()

	_, _, err := svc.Upsert(context.Background(), upsertReq(1, 2, "100", "90", "bogus"))
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))
	assert.Empty(t, db.materials)
}

func TestUpdateRecomputesMarginAgainstStoredActual(t *testing.T) {
	db, svc := newRecipeMaterialFixture()
	ctx := context.Background()

	_, _, err := svc.Upsert(ctx, upsertReq(5, 2, "100", "80", "pending"))
	require.NoError(t, err)
	var id uint
	for k := range db.materials {
		id = k
	}

	// New set point of 160 against the stored actual of 80: (160-80)/160 = 50%.
	resp, err := svc.Update(ctx, id, dto.UpdateRecipeMaterialRequest{SetPoint: decPtr("160")})
	require.NoError(t, err)
	require.NotNil(t, resp.Margin)
	assert.True(t, resp.Margin.Equal(decimal.RequireFromString("50")))
}

func TestUpdatePreservesUntouchedFields(t *testing.T) {
	db, svc := newRecipeMaterialFixture()
	ctx := context.Background()

	_, _, err := svc.Upsert(ctx, upsertReq(5, 2, "100", "80", "pending"))
	require.NoError(t, err)
	var id uint
	for k := range db.materials {
		id = k
	}

	resp, err := svc.Update(ctx, id, dto.UpdateRecipeMaterialRequest{Status: strPtr("created")})
	require.NoError(t, err)
	assert.Equal(t, "created", resp.Status)
	assert.Equal(t, uint(2), resp.MaterialID)
	assert.True(t, resp.SetPoint.Equal(decimal.RequireFromString("100")))
	require.NotNil(t, resp.Margin)
	assert.True(t, resp.Margin.Equal(decimal.RequireFromString("20")), "margin untouched when set point unchanged")
}

func TestUpdateMissingRecordIsNotFound(t *testing.T) {
	_, svc := newRecipeMaterialFixture()

	_, err := svc.Update(context.Background(), 99, dto.UpdateRecipeMaterialRequest{Status: strPtr("created")})
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestListByRecipeEmptyIsNotFound(t *testing.T) {
	_, svc := newRecipeMaterialFixture()

	_, err := svc.ListByRecipe(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
	assert.EqualError(t, err, "No materials found for this recipe")
}

func TestDeleteRecipeMaterial(t *testing.T) {
	db, svc := newRecipeMaterialFixture()
	ctx := context.Background()

	_, _, err := svc.Upsert(ctx, upsertReq(5, 2, "100", "80", "pending"))
	require.NoError(t, err)
	var id uint
	for k := range db.materials {
		id = k
	}

	require.NoError(t, svc.Delete(ctx, id))
	assert.Empty(t, db.materials)

	err = svc.Delete(ctx, id)
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}
