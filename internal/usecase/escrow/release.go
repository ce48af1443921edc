package escrow

import (
	"context"
	"time"

	"github.com/dinepay/escrow-service/internal/domain"
	"github.com/dinepay/escrow-service/internal/token"
)

// CompleteAndRelease validates the exit scan, then atomically settles the
// held funds: the consumer's held balance is debited, the provider is
// credited with amount_held minus the platform commission.
// provider_earnings + commission == amount_held, for every release.
func (uc *DefaultEscrowUsecase) CompleteAndRelease(ctx context.Context, transactionID, exitScanPayload string) (*domain.ReleaseResult, error) {
	unlock := uc.lockTransaction(transactionID)
	defer unlock()

	tx, err := uc.TxRepo.GetTransactionByID(transactionID)
	if err != nil {
		return nil, err
	}

	// guard before any fund movement
	if tx.Status == domain.StatusPaymentReleased {
		return nil, domain.ErrDuplicateRelease
	}
	if tx.Status != domain.StatusCustomerArrived && tx.Status != domain.StatusServiceStarted {
		return nil, &domain.InvalidStateTransitionError{
			Current:   tx.Status,
			Attempted: domain.StatusPaymentReleased,
		}
	}

	decoded, decodeErr := uc.Codec.Decode(exitScanPayload)
	if decodeErr != nil {
		return nil, decodeErr
	}
	if !token.Matches(decoded, transactionID) {
		return nil, domain.ErrTokenMismatch
	}

	amountHeld := tx.AmountHeld
	commission := amountHeld * uc.Config.CommissionRate
	providerEarnings := amountHeld - commission

	now := time.Now()
	updated := *tx
	updated.Status = domain.StatusPaymentReleased
	updated.AmountHeld = 0
	updated.ExitScanAt = &now
	updated.ServiceCompletedAt = &now
	updated.PaymentReleasedAt = &now

	op := &domain.EscrowOperation{
		TransactionID: transactionID,
		Name:          "release",
		OldStatus:     tx.Status,
		NewStatus:     domain.StatusPaymentReleased,
		Update:        &updated,
		Funds: &domain.FundOperation{
			Kind:       domain.FundOpRelease,
			ConsumerID: tx.ConsumerID,
			ProviderID: tx.ProviderID,
			Amount:     amountHeld,
			Commission: commission,
		},
		CreatedAt: now,
	}
	if err := uc.TxRepo.ApplyOperation(op); err != nil {
		uc.Metrics.RecordError("release")
		return nil, err
	}

	uc.forgetLock(transactionID)
	uc.Metrics.RecordReleased(&updated, amountHeld, commission, now.Sub(tx.CreatedAt))
	uc.publishEvent(&updated, string(domain.StatusPaymentReleased), "")

	return &domain.ReleaseResult{
		TransactionID:    transactionID,
		AmountHeld:       amountHeld,
		Commission:       commission,
		ProviderEarnings: providerEarnings,
		ReleasedAt:       now,
	}, nil
}
