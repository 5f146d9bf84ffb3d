package dto

import "github.com/shopspring/decimal"

type CreateMaterialRequest struct {
	Name            string           `json:"name"        validate:"required,max=100"`
	Code            string           `json:"code"        validate:"required,max=50"`
	Description     *string          `json:"description"`
	Unit            *string          `json:"unit"        validate:"omitempty,max=20"`
	CurrentQuantity *decimal.Decimal `json:"current_quantity"`
	BarcodeID       *string          `json:"barcode_id"  validate:"omitempty,max=100"`
	StorageBucketID *uint            `json:"storage_bucket_id"`
}

type UpdateMaterialRequest struct {
	Name            *string          `json:"name"        validate:"omitempty,max=100"`
	Code            *string          `json:"code"        validate:"omitempty,max=50"`
	Description     *string          `json:"description"`
	Unit            *string          `json:"unit"        validate:"omitempty,max=20"`
	CurrentQuantity *decimal.Decimal `json:"current_quantity"`
	BarcodeID       *string          `json:"barcode_id"  validate:"omitempty,max=100"`
	StorageBucketID *uint            `json:"storage_bucket_id"`
}

type MaterialResponse struct {
	ID              uint            `json:"material_id"`
	Name            string          `json:"name"`
	Code            string          `json:"code"`
	Description     *string         `json:"description"`
	Unit            string          `json:"unit"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
	BarcodeID       *string         `json:"barcode_id"`
	StorageBucketID *uint           `json:"storage_bucket_id"`
}
