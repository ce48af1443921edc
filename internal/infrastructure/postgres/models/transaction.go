package models

import (
	"time"

	"github.com/dinepay/escrow-service/internal/domain"
)

type TransactionModel struct {
	ID         string                 `gorm:"primaryKey;type:uuid"`
	Kind       domain.TransactionKind `gorm:"index"`
	ConsumerID string                 `gorm:"index"`
	ProviderID string                 `gorm:"index"`

	ProviderLat float64
	ProviderLng float64
	CustomerLat *float64
	CustomerLng *float64

	TokenRaw string

	MealPackage   domain.MealPackage          `gorm:"serializer:json"`
	Justification domain.PricingJustification `gorm:"serializer:json"`
	ServiceFees   domain.ServiceFeeBreakdown  `gorm:"serializer:json"`

	MealCost    float64
	ServiceCost float64
	TotalAmount float64
	AmountHeld  float64

	Status       domain.TransactionStatus `gorm:"index:idx_status_held_at"`
	CancelReason string

	CreatedAt          time.Time
	HeldAt             *time.Time `gorm:"index:idx_status_held_at"`
	EntryScanAt        *time.Time
	ArrivedAt          *time.Time
	ServiceStartedAt   *time.Time
	ServiceCompletedAt *time.Time
	ExitScanAt         *time.Time
	PaymentReleasedAt  *time.Time
	UpdatedAt          time.Time
}

func (TransactionModel) TableName() string {
	return "escrow_transactions"
}
