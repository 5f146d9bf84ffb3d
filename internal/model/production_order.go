package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Production order statuses. The legacy system stored free-form strings; this
// schema closes the set and enforces the transition table below on every
// status-changing write.
const (
	OrderStatusPlanned    = "planned"
	OrderStatusInProgress = "in-progress"
	OrderStatusCompleted  = "completed"
	OrderStatusRejected   = "rejected"
	OrderStatusCancelled  = "cancelled"
)

var orderTransitions = map[string][]string{
	OrderStatusPlanned:    {OrderStatusInProgress, OrderStatusRejected, OrderStatusCancelled},
	OrderStatusInProgress: {OrderStatusCompleted, OrderStatusCancelled},
	// completed / rejected / cancelled are terminal
}

// ValidOrderStatus reports whether s belongs to the order status enum.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPlanned, OrderStatusInProgress, OrderStatusCompleted,
		OrderStatusRejected, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionOrder reports whether an order may move from one status to
// another. Same-status writes are allowed (partial updates resubmit the
// current value).
func CanTransitionOrder(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ProductionOrder is a scheduled request to produce BatchSize of a recipe.
type ProductionOrder struct {
	ID            uint   `gorm:"primaryKey"`
	OrderNumber   string `gorm:"uniqueIndex;not null"`
	RecipeID      uint   `gorm:"not null;index"`
	BatchSize     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ScheduledDate time.Time       `gorm:"type:date;not null"`
	Status        string          `gorm:"type:varchar(20);not null;default:'planned'"`
	CreatedBy     uint            `gorm:"not null;index"`
	Notes         *string         `gorm:"type:text"`
	BarcodeID     *string         `gorm:"uniqueIndex"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Recipe  *Recipe `gorm:"foreignKey:RecipeID"`
	Creator *User   `gorm:"foreignKey:CreatedBy"`
}
