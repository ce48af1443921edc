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

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

func (r *DefaultTransactionRepository) CreateTransaction(tx *domain.Transaction) error {
	model := mappers.ToGORMTransaction(tx)
	if err := r.DB.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *DefaultTransactionRepository) GetTransactionByID(transactionID string) (*domain.Transaction, error) {
	var model models.TransactionModel
	if err := r.DB.First(&model, "id = ?", transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTransaction(&model), nil
}

func (r *DefaultTransactionRepository) FindExpiredHolds(deadline time.Time) ([]*domain.Transaction, error) {
	var transactionModels []models.TransactionModel
	if err := r.DB.
		Where("status = ?", domain.StatusFundsHeld).
		Where("held_at < ?", deadline).
		Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*domain.Transaction, len(transactionModels))
	for i, model := range transactionModels {
		transactions[i] = mappers.ToDomainTransaction(&model)
	}
	return transactions, nil
}

// ApplyOperation applies a state-machine step in one DB transaction: the
// idempotency record, the conditional balance movement and the guarded
// status update either all commit or none do.
func (r *DefaultTransactionRepository) ApplyOperation(op *domain.EscrowOperation) error {
	return r.DB.Transaction(func(dbtx *gorm.DB) error {
		// replay detection: an existing row means the step already committed
		var existing models.EscrowOperationModel
		err := dbtx.Where("transaction_id = ? AND name = ?", op.TransactionID, op.Name).
			First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		record := models.EscrowOperationModel{
			TransactionID: op.TransactionID,
			Name:          op.Name,
			OldStatus:     op.OldStatus,
			NewStatus:     op.NewStatus,
		}
		if err := dbtx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to record operation: %w", err)
		}

		if op.Funds != nil {
			if err := applyFundOperation(dbtx, op.Funds); err != nil {
				return err
			}
		}

		model := mappers.ToGORMTransaction(op.Update)
		res := dbtx.Model(&models.TransactionModel{}).
			Where("id = ? AND status = ?", op.TransactionID, op.OldStatus).
			Select("*").
			Omit("id", "created_at").
			Updates(model)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrStaleTransactionStatus
		}

		return nil
	})
}

// applyFundOperation performs balance movements as single conditional
// updates; the balance check and the debit are one statement, never a read
// followed by a write.
func applyFundOperation(dbtx *gorm.DB, funds *domain.FundOperation) error {
	now := time.Now()

	switch funds.Kind {
	case domain.FundOpHold:
		res := dbtx.Model(&models.AccountModel{}).
			Where("id = ? AND available_balance >= ?", funds.ConsumerID, funds.Amount).
			Updates(map[string]interface{}{
				"available_balance": gorm.Expr("available_balance - ?", funds.Amount),
				"held_balance":      gorm.Expr("held_balance + ?", funds.Amount),
				"updated_at":        now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var account models.AccountModel
			if err := dbtx.First(&account, "id = ?", funds.ConsumerID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrAccountNotFound
				}
				return err
			}
			return &domain.InsufficientFundsError{
				Required:  funds.Amount,
				Available: account.AvailableBalance,
				Shortfall: funds.Amount - account.AvailableBalance,
			}
		}
		return nil

	case domain.FundOpReturn:
		res := dbtx.Model(&models.AccountModel{}).
			Where("id = ? AND held_balance >= ?", funds.ConsumerID, funds.Amount).
			Updates(map[string]interface{}{
				"available_balance": gorm.Expr("available_balance + ?", funds.Amount),
				"held_balance":      gorm.Expr("held_balance - ?", funds.Amount),
				"updated_at":        now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("failed to return held funds for account %s", funds.ConsumerID)
		}
		return nil

	case domain.FundOpRelease:
		earnings := funds.Amount - funds.Commission

		res := dbtx.Model(&models.AccountModel{}).
			Where("id = ? AND held_balance >= ?", funds.ConsumerID, funds.Amount).
			Updates(map[string]interface{}{
				"held_balance": gorm.Expr("held_balance - ?", funds.Amount),
				"updated_at":   now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("failed to debit held funds for account %s", funds.ConsumerID)
		}

		res = dbtx.Model(&models.AccountModel{}).
			Where("id = ?", funds.ProviderID).
			Updates(map[string]interface{}{
				"available_balance": gorm.Expr("available_balance + ?", earnings),
				"lifetime_earnings": gorm.Expr("lifetime_earnings + ?", earnings),
				"updated_at":        now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// first payout for this provider: create the account credited
			return dbtx.Create(&models.AccountModel{
				ID:               funds.ProviderID,
				AvailableBalance: earnings,
				LifetimeEarnings: earnings,
				UpdatedAt:        now,
			}).Error
		}
		return nil

	default:
		return fmt.Errorf("unknown fund operation: %s", funds.Kind)
	}
}
