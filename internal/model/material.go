package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material is a raw substance dispensed into batches. CurrentQuantity tracks
// on-hand stock in the material's unit of measure.
type Material struct {
	ID              uint    `gorm:"primaryKey"`
	Name            string  `gorm:"index;not null"`
	Code            string  `gorm:"uniqueIndex;not null"`
	Description     *string `gorm:"type:text"`
	Unit            string  `gorm:"not null;default:'kg'"`
	CurrentQuantity decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	BarcodeID       *string `gorm:"uniqueIndex"`
	StorageBucketID *uint   `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	StorageBucket *StorageBucket `gorm:"foreignKey:StorageBucketID"`
}
