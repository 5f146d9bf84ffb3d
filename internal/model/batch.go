package model

import "time"

// Batch statuses.
const (
	BatchStatusPending    = "pending"
	BatchStatusInProgress = "in progress"
	BatchStatusCompleted  = "completed"
)

// ValidBatchStatus reports whether s belongs to the batch status enum.
func ValidBatchStatus(s string) bool {
	return s == BatchStatusPending || s == BatchStatusInProgress || s == BatchStatusCompleted
}

// Batch is one concrete production run under a ProductionOrder.
type Batch struct {
	ID          uint   `gorm:"primaryKey"`
	BatchNumber string `gorm:"index;not null"`
	OrderID     uint   `gorm:"not null;index"`
	Status      string `gorm:"type:varchar(20);not null;default:'pending'"`
	OperatorID  uint   `gorm:"not null;index"`
	Notes       *string `gorm:"type:text"`
	CreatedAt   time.Time

	Order *ProductionOrder `gorm:"foreignKey:OrderID"`
}
