package mappers

import (
	"github.com/dinepay/escrow-service/internal/domain"
	"github.com/dinepay/escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainAccount(model *models.AccountModel) *domain.AccountBalance {
	return &domain.AccountBalance{
		AccountID:        model.ID,
		AvailableBalance: model.AvailableBalance,
		HeldBalance:      model.HeldBalance,
		LifetimeEarnings: model.LifetimeEarnings,
		UpdatedAt:        model.UpdatedAt,
	}
}

func ToGORMAccount(account *domain.AccountBalance) *models.AccountModel {
	return &models.AccountModel{
		ID:               account.AccountID,
		AvailableBalance: account.AvailableBalance,
		HeldBalance:      account.HeldBalance,
		LifetimeEarnings: account.LifetimeEarnings,
		UpdatedAt:        account.UpdatedAt,
	}
}
