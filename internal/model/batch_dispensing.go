package model

import "github.com/shopspring/decimal"

// BatchMaterialDispensing records planned vs actual quantity of one material
// dispensed into one batch. ActualQuantity is nil until dispensing happens.
type BatchMaterialDispensing struct {
	ID              uint `gorm:"primaryKey"`
	BatchID         uint `gorm:"not null;index"`
	MaterialID      uint `gorm:"not null;index"`
	PlannedQuantity decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	ActualQuantity  *decimal.Decimal `gorm:"type:decimal(10,2)"`
	DispensedBy     uint             `gorm:"not null;index"`
	Status          string           `gorm:"type:varchar(20);not null;default:'pending'"`

	Batch    *Batch    `gorm:"foreignKey:BatchID"`
	Material *Material `gorm:"foreignKey:MaterialID"`
}
