package escrow

import (
	"context"
	"time"

	"github.com/dinepay/escrow-service/internal/domain"
)

// OpenDispute is a terminal exit from any non-terminal state. Funds stay
// held until the dispute is resolved out of band.
func (uc *DefaultEscrowUsecase) OpenDispute(ctx context.Context, transactionID, reason string) error {
	unlock := uc.lockTransaction(transactionID)
	defer unlock()

	tx, err := uc.TxRepo.GetTransactionByID(transactionID)
	if err != nil {
		return err
	}

	if tx.Status.IsTerminal() {
		return &domain.InvalidStateTransitionError{
			Current:   tx.Status,
			Attempted: domain.StatusDisputed,
		}
	}

	now := time.Now()
	updated := *tx
	updated.Status = domain.StatusDisputed
	updated.CancelReason = reason

	op := &domain.EscrowOperation{
		TransactionID: transactionID,
		Name:          "dispute",
		OldStatus:     tx.Status,
		NewStatus:     domain.StatusDisputed,
		Update:        &updated,
		CreatedAt:     now,
	}
	if err := uc.TxRepo.ApplyOperation(op); err != nil {
		uc.Metrics.RecordError("dispute")
		return err
	}

	uc.forgetLock(transactionID)
	uc.Metrics.RecordDisputed(&updated)
	uc.publishEvent(&updated, string(domain.StatusDisputed), reason)
	return nil
}
