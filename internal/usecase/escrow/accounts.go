package escrow

import (
	"context"

	"github.com/dinepay/escrow-service/internal/domain"
)

// GetBalance returns the current balance snapshot for an account.
func (uc *DefaultEscrowUsecase) GetBalance(ctx context.Context, accountID string) (*domain.AccountBalance, error) {
	return uc.AccountRepo.GetAccountByID(accountID)
}

// Deposit credits an account's available balance, creating the account on
// first use, and returns the resulting snapshot.
func (uc *DefaultEscrowUsecase) Deposit(ctx context.Context, accountID string, amount float64) (*domain.AccountBalance, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidDeposit
	}
	if err := uc.AccountRepo.Deposit(accountID, amount); err != nil {
		return nil, err
	}
	return uc.AccountRepo.GetAccountByID(accountID)
}
