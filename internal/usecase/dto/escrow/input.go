package escrowdto

import "github.com/dinepay/escrow-service/internal/domain"

type CreateTransactionInput struct {
	Kind             domain.TransactionKind
	ConsumerID       string
	ProviderID       string
	ProviderLocation domain.Coordinate
	MealPackage      *domain.MealPackage
	Justification    domain.PricingJustification
	ServiceFees      *domain.ServiceFeeBreakdown
}

// OpenTransactionInput is the raw intake for the orchestrator: unpriced
// components and the selected services, before any policy has run.
type OpenTransactionInput struct {
	Kind             domain.TransactionKind
	ConsumerID       string
	ProviderID       string
	ProviderLocation domain.Coordinate
	Components       map[domain.Slot]domain.PricedItem
	Justification    domain.PricingJustification
	Services         []domain.ServiceType
}
