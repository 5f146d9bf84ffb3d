package dto

import "github.com/shopspring/decimal"

type CreateStorageBucketRequest struct {
	Name       string           `json:"name"     validate:"required,max=100"`
	Location   *string          `json:"location"`
	Capacity   *decimal.Decimal `json:"capacity"`
	MaterialID *uint            `json:"material_id"`
}

type UpdateStorageBucketRequest struct {
	Name       *string          `json:"name"     validate:"omitempty,max=100"`
	Location   *string          `json:"location"`
	Capacity   *decimal.Decimal `json:"capacity"`
	MaterialID *uint            `json:"material_id"`
}

type StorageBucketResponse struct {
	ID         uint            `json:"bucket_id"`
	Name       string          `json:"name"`
	Location   *string         `json:"location"`
	Capacity   decimal.Decimal `json:"capacity"`
	MaterialID *uint           `json:"material_id"`
}
