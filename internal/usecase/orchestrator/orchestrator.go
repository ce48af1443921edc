package orchestrator

import (
	"context"
	"fmt"

	"github.com/dinepay/escrow-service/internal/domain"
	"github.com/dinepay/escrow-service/internal/mealpkg"
	"github.com/dinepay/escrow-service/internal/pricing"
	escrowdto "github.com/dinepay/escrow-service/internal/usecase/dto/escrow"
	"github.com/dinepay/escrow-service/internal/usecase/escrow"
)

// VerificationOrchestrator is the single entry point the delivery layer
// talks to. Creation runs the full intake pipeline: the pricing policy
// judges the main course price, the builder assembles the discounted
// package, the fee schedule prices the selected services and the escrow
// usecase opens the transaction. Every later step delegates straight to
// the escrow usecase.
type VerificationOrchestrator struct {
	Escrow  escrow.EscrowUsecase
	Policy  *pricing.PolicyEngine
	Builder *mealpkg.Builder
}

func NewVerificationOrchestrator(
	escrowUC escrow.EscrowUsecase,
	policy *pricing.PolicyEngine,
	builder *mealpkg.Builder) *VerificationOrchestrator {

	return &VerificationOrchestrator{
		Escrow:  escrowUC,
		Policy:  policy,
		Builder: builder,
	}
}

func (o *VerificationOrchestrator) OpenTransaction(
	ctx context.Context,
	input *escrowdto.OpenTransactionInput) (*escrowdto.CreateTransactionOutput, error) {

	main, ok := input.Components[domain.SlotMainCourse]
	if !ok {
		return nil, &domain.MissingComponentError{Slots: []domain.Slot{domain.SlotMainCourse}}
	}

	report := o.Policy.ValidatePricing(input.Justification, main.Price)

	pkg, err := o.Builder.Build(input.Components)
	if err != nil {
		return nil, err
	}

	fees := o.Policy.CalculateServiceFees(pkg.PackagePrice, input.Services)

	tx, err := o.Escrow.CreateTransaction(&escrowdto.CreateTransactionInput{
		Kind:             input.Kind,
		ConsumerID:       input.ConsumerID,
		ProviderID:       input.ProviderID,
		ProviderLocation: input.ProviderLocation,
		MealPackage:      pkg,
		Justification:    input.Justification,
		ServiceFees:      fees,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction: %w", err)
	}

	return &escrowdto.CreateTransactionOutput{
		Transaction:   tx,
		PricingReport: report,
		ScanPayload:   tx.TokenRaw,
	}, nil
}

func (o *VerificationOrchestrator) HoldFunds(ctx context.Context, transactionID string) (*domain.HoldResult, error) {
	return o.Escrow.HoldFunds(ctx, transactionID)
}

func (o *VerificationOrchestrator) VerifyArrival(
	ctx context.Context,
	transactionID string,
	customerLocation domain.Coordinate,
	scanPayload string) (*domain.ArrivalResult, error) {

	return o.Escrow.VerifyArrival(ctx, transactionID, customerLocation, scanPayload)
}

func (o *VerificationOrchestrator) StartService(ctx context.Context, transactionID string) error {
	return o.Escrow.StartService(ctx, transactionID)
}

func (o *VerificationOrchestrator) CompleteAndRelease(
	ctx context.Context,
	transactionID, exitScanPayload string) (*domain.ReleaseResult, error) {

	return o.Escrow.CompleteAndRelease(ctx, transactionID, exitScanPayload)
}

func (o *VerificationOrchestrator) CancelTransaction(ctx context.Context, transactionID, reason string) error {
	return o.Escrow.CancelTransaction(ctx, transactionID, reason)
}

func (o *VerificationOrchestrator) OpenDispute(ctx context.Context, transactionID, reason string) error {
	return o.Escrow.OpenDispute(ctx, transactionID, reason)
}

func (o *VerificationOrchestrator) GetStatus(ctx context.Context, transactionID string) (*domain.TransactionSnapshot, error) {
	return o.Escrow.GetStatus(ctx, transactionID)
}

func (o *VerificationOrchestrator) GetBalance(ctx context.Context, accountID string) (*domain.AccountBalance, error) {
	return o.Escrow.GetBalance(ctx, accountID)
}

func (o *VerificationOrchestrator) Deposit(ctx context.Context, accountID string, amount float64) (*domain.AccountBalance, error) {
	return o.Escrow.Deposit(ctx, accountID, amount)
}
