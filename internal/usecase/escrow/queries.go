package escrow

import (
	"context"

	"github.com/dinepay/escrow-service/internal/domain"
)

func (uc *DefaultEscrowUsecase) GetStatus(ctx context.Context, transactionID string) (*domain.TransactionSnapshot, error) {
	tx, err := uc.TxRepo.GetTransactionByID(transactionID)
	if err != nil {
		return nil, err
	}

	return &domain.TransactionSnapshot{
		Transaction: tx,
		Timeline:    tx.Timeline(),
	}, nil
}
