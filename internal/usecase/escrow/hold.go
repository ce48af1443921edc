package escrow

import (
	"context"
	"errors"
	"time"

	"github.com/dinepay/escrow-service/internal/domain"
)

// HoldFunds moves the consumer's total_amount from available to held. The
// balance check and the debit are one conditional store update; two
// concurrent holds can never both pass against a stale read.
func (uc *DefaultEscrowUsecase) HoldFunds(ctx context.Context, transactionID string) (*domain.HoldResult, error) {
	unlock := uc.lockTransaction(transactionID)
	defer unlock()

	tx, err := uc.TxRepo.GetTransactionByID(transactionID)
	if err != nil {
		return nil, err
	}

	if tx.Status != domain.StatusPending {
		return nil, &domain.InvalidStateTransitionError{
			Current:   tx.Status,
			Attempted: domain.StatusFundsHeld,
		}
	}

	now := time.Now()
	updated := *tx
	updated.Status = domain.StatusFundsHeld
	updated.AmountHeld = tx.TotalAmount
	updated.HeldAt = &now

	op := &domain.EscrowOperation{
		TransactionID: transactionID,
		Name:          "hold_funds",
		OldStatus:     domain.StatusPending,
		NewStatus:     domain.StatusFundsHeld,
		Update:        &updated,
		Funds: &domain.FundOperation{
			Kind:       domain.FundOpHold,
			ConsumerID: tx.ConsumerID,
			ProviderID: tx.ProviderID,
			Amount:     tx.TotalAmount,
		},
		CreatedAt: now,
	}

	if err := uc.TxRepo.ApplyOperation(op); err != nil {
		var insufficient *domain.InsufficientFundsError
		if errors.As(err, &insufficient) {
			// expected, recoverable: both parties get alerted, nothing moved
			uc.Metrics.RecordInsufficientFunds(tx)
			uc.publishEvent(tx, "INSUFFICIENT_FUNDS", insufficient.Error())
			return nil, err
		}
		uc.Metrics.RecordError("hold_funds")
		return nil, err
	}

	uc.Metrics.RecordHeld(&updated)
	uc.publishEvent(&updated, string(domain.StatusFundsHeld), "")

	return &domain.HoldResult{
		TransactionID: transactionID,
		AmountHeld:    updated.AmountHeld,
		HeldAt:        now,
	}, nil
}
