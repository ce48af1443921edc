package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/dinepay/escrow-service/internal/domain"
	"github.com/dinepay/escrow-service/internal/infrastructure/postgres/mappers"
	"github.com/dinepay/escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultAccountRepository struct {
	DB *gorm.DB
}

func NewDefaultAccountRepository(db *gorm.DB) *DefaultAccountRepository {
	return &DefaultAccountRepository{DB: db}
}

func (r *DefaultAccountRepository) GetAccountByID(accountID string) (*domain.AccountBalance, error) {
	var model models.AccountModel
	if err := r.DB.First(&model, "id = ?", accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return mappers.ToDomainAccount(&model), nil
}

func (r *DefaultAccountRepository) CreateAccount(account *domain.AccountBalance) error {
	model := mappers.ToGORMAccount(account)
	model.UpdatedAt = time.Now()
	if err := r.DB.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *DefaultAccountRepository) Deposit(accountID string, amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("deposit amount must be positive")
	}

	res := r.DB.Model(&models.AccountModel{}).
		Where("id = ?", accountID).
		Updates(map[string]interface{}{
			"available_balance": gorm.Expr("available_balance + ?", amount),
			"updated_at":        time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.DB.Create(&models.AccountModel{
			ID:               accountID,
			AvailableBalance: amount,
			UpdatedAt:        time.Now(),
		}).Error
	}
	return nil
}
