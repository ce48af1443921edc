package models

import (
	"time"

	"github.com/dinepay/escrow-service/internal/domain"
)

// EscrowOperationModel records every applied state-machine step. The unique
// index makes mutating operations idempotent per (transaction, operation).
type EscrowOperationModel struct {
	ID            uint                     `gorm:"primaryKey"`
	TransactionID string                   `gorm:"uniqueIndex:idx_txn_operation;type:uuid;not null"`
	Name          string                   `gorm:"uniqueIndex:idx_txn_operation;not null"`
	OldStatus     domain.TransactionStatus `gorm:"not null"`
	NewStatus     domain.TransactionStatus `gorm:"not null"`
	CreatedAt     time.Time                `gorm:"autoCreateTime"`
}

func (EscrowOperationModel) TableName() string {
	return "escrow_operations"
}
