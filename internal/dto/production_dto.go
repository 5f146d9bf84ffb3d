package dto

import "github.com/shopspring/decimal"

// ─── Production orders ───────────────────────────────────────────────────────

type CreateOrderRequest struct {
	OrderNumber   string          `json:"order_number"   validate:"required,max=50"`
	RecipeID      uint            `json:"recipe_id"      validate:"required"`
	BatchSize     decimal.Decimal `json:"batch_size"     validate:"required"`
	ScheduledDate string          `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	Notes         *string         `json:"notes"`
	BarcodeID     *string         `json:"barcode_id"     validate:"omitempty,max=100"`
}

type UpdateOrderRequest struct {
	OrderNumber   *string          `json:"order_number"   validate:"omitempty,max=50"`
	RecipeID      *uint            `json:"recipe_id"`
	BatchSize     *decimal.Decimal `json:"batch_size"`
	ScheduledDate *string          `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
	Status        *string          `json:"status"`
	Notes         *string          `json:"notes"`
	BarcodeID     *string          `json:"barcode_id"     validate:"omitempty,max=100"`
}

type OrderResponse struct {
	ID            uint            `json:"order_id"`
	OrderNumber   string          `json:"order_number"`
	RecipeID      uint            `json:"recipe_id"`
	BatchSize     decimal.Decimal `json:"batch_size"`
	ScheduledDate string          `json:"scheduled_date"`
	Status        string          `json:"status"`
	CreatedBy     uint            `json:"created_by"`
	Notes         *string         `json:"notes"`
	BarcodeID     *string         `json:"barcode_id"`
}

// ─── Batches ─────────────────────────────────────────────────────────────────

type CreateBatchRequest struct {
	BatchNumber string  `json:"batch_number" validate:"required,max=50"`
	OrderID     uint    `json:"order_id"     validate:"required"`
	Status      *string `json:"status"`
	OperatorID  uint    `json:"operator_id"  validate:"required"`
	Notes       *string `json:"notes"`
}

type BatchResponse struct {
	ID          uint    `json:"batch_id"`
	BatchNumber string  `json:"batch_number"`
	OrderID     uint    `json:"order_id"`
	Status      string  `json:"status"`
	OperatorID  uint    `json:"operator_id"`
	Notes       *string `json:"notes"`
	CreatedAt   string  `json:"created_at"`
}

// ─── Batch material dispensing ───────────────────────────────────────────────

type CreateDispensingRequest struct {
	BatchID         uint             `json:"batch_id"         validate:"required"`
	MaterialID      uint             `json:"material_id"      validate:"required"`
	PlannedQuantity decimal.Decimal  `json:"planned_quantity" validate:"required"`
	ActualQuantity  *decimal.Decimal `json:"actual_quantity"`
	DispensedBy     uint             `json:"dispensed_by"     validate:"required"`
	Status          *string          `json:"status"`
}

type DispensingResponse struct {
	ID              uint             `json:"dispensing_id"`
	BatchID         uint             `json:"batch_id"`
	MaterialID      uint             `json:"material_id"`
	PlannedQuantity decimal.Decimal  `json:"planned_quantity"`
	ActualQuantity  *decimal.Decimal `json:"actual_quantity"`
	DispensedBy     uint             `json:"dispensed_by"`
	Status          string           `json:"status"`
}
