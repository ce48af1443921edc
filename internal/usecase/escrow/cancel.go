package escrow

import (
	"context"
	"log/slog"
	"time"

	"github.com/dinepay/escrow-service/internal/domain"
)

// CancelTransaction is permitted only before arrival verification. Held
// funds are returned to the consumer in the same atomic step as the status
// change.
func (uc *DefaultEscrowUsecase) CancelTransaction(ctx context.Context, transactionID, reason string) error {
	unlock := uc.lockTransaction(transactionID)
	defer unlock()

	tx, err := uc.TxRepo.GetTransactionByID(transactionID)
	if err != nil {
		return err
	}

	if tx.Status != domain.StatusPending && tx.Status != domain.StatusFundsHeld {
		return &domain.InvalidStateTransitionError{
			Current:   tx.Status,
			Attempted: domain.StatusCancelled,
		}
	}

	now := time.Now()
	updated := *tx
	updated.Status = domain.StatusCancelled
	updated.AmountHeld = 0
	updated.CancelReason = reason

	op := &domain.EscrowOperation{
		TransactionID: transactionID,
		Name:          "cancel",
		OldStatus:     tx.Status,
		NewStatus:     domain.StatusCancelled,
		Update:        &updated,
		CreatedAt:     now,
	}
	if tx.Status == domain.StatusFundsHeld {
		op.Funds = &domain.FundOperation{
			Kind:       domain.FundOpReturn,
			ConsumerID: tx.ConsumerID,
			ProviderID: tx.ProviderID,
			Amount:     tx.AmountHeld,
		}
	}

	if err := uc.TxRepo.ApplyOperation(op); err != nil {
		uc.Metrics.RecordError("cancel")
		return err
	}

	uc.forgetLock(transactionID)
	uc.Metrics.RecordCancelled(&updated)
	uc.publishEvent(&updated, string(domain.StatusCancelled), reason)
	return nil
}

// CancelExpiredHolds is the reaper pass: transactions stuck in FUNDS_HELD
// past the configured TTL are cancelled with fund return.
func (uc *DefaultEscrowUsecase) CancelExpiredHolds(ctx context.Context) error {
	deadline := time.Now().Add(-uc.Config.HoldTTL)
	expired, err := uc.TxRepo.FindExpiredHolds(deadline)
	if err != nil {
		return err
	}

	for _, tx := range expired {
		if err := uc.CancelTransaction(ctx, tx.ID, "hold expired"); err != nil {
			slog.Error("failed to cancel expired hold", "transaction_id", tx.ID, "error", err.Error())
			continue
		}
		slog.Info("expired hold cancelled", "transaction_id", tx.ID, "amount", tx.TotalAmount)
	}

	return nil
}
