package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StorageBucket is a physical dosing container on the shop floor. A bucket
// holds at most one material at a time.
type StorageBucket struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"uniqueIndex;not null"`
	Location   *string
	Capacity   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	MaterialID *uint           `gorm:"index"`
	CreatedAt  time.Time
}
