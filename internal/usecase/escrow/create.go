package escrow

import (
	"fmt"
	"time"

	"github.com/dinepay/escrow-service/internal/domain"
	escrowdto "github.com/dinepay/escrow-service/internal/usecase/dto/escrow"
	"github.com/google/uuid"
)

// CreateTransaction opens a PENDING transaction. Costs are fixed here for
// the transaction's lifetime; no funds move until HoldFunds.
func (uc *DefaultEscrowUsecase) CreateTransaction(input *escrowdto.CreateTransactionInput) (*domain.Transaction, error) {
	switch input.Kind {
	case domain.KindDineIn, domain.KindDelivery, domain.KindPickup, domain.KindQuickService:
	default:
		return nil, fmt.Errorf("unknown transaction kind %q", input.Kind)
	}
	if input.MealPackage == nil || input.ServiceFees == nil {
		return nil, fmt.Errorf("meal package and service fees are required")
	}

	transactionID := uuid.New().String()

	rawToken, _, err := uc.Codec.Issue(transactionID, input.ConsumerID)
	if err != nil {
		return nil, err
	}

	mealCost := input.MealPackage.PackagePrice
	serviceCost := input.ServiceFees.Total

	tx := &domain.Transaction{
		ID:               transactionID,
		Kind:             input.Kind,
		ConsumerID:       input.ConsumerID,
		ProviderID:       input.ProviderID,
		ProviderLocation: input.ProviderLocation,
		TokenRaw:         rawToken,
		MealPackage:      *input.MealPackage,
		Justification:    input.Justification,
		ServiceFees:      *input.ServiceFees,
		MealCost:         mealCost,
		ServiceCost:      serviceCost,
		TotalAmount:      mealCost + serviceCost,
		AmountHeld:       0,
		Status:           domain.StatusPending,
		CreatedAt:        time.Now(),
	}

	if err := uc.TxRepo.CreateTransaction(tx); err != nil {
		uc.Metrics.RecordError("create")
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	uc.Metrics.RecordCreated(tx)
	uc.publishEvent(tx, string(domain.StatusPending), "")

	return tx, nil
}
