package escrow

import (
	"context"
	"sync"
	"time"

	"github.com/dinepay/escrow-service/internal/domain"
	"github.com/dinepay/escrow-service/internal/geofence"
	"github.com/dinepay/escrow-service/internal/infrastructure/metrics"
	"github.com/dinepay/escrow-service/internal/token"
	escrowdto "github.com/dinepay/escrow-service/internal/usecase/dto/escrow"
)

const DefaultCommissionRate = 0.15

type EscrowUsecase interface {
	CreateTransaction(input *escrowdto.CreateTransactionInput) (*domain.Transaction, error)
	GetBalance(ctx context.Context, accountID string) (*domain.AccountBalance, error)
	Deposit(ctx context.Context, accountID string, amount float64) (*domain.AccountBalance, error)
	domain.EscrowUsecase
}

// Config carries the tunables of the ledger. HoldTTL bounds how long funds
// may stay in FUNDS_HELD before the reaper cancels the transaction.
type Config struct {
	GeofenceRadiusMeters float64
	CommissionRate       float64
	HoldTTL              time.Duration
}

func (c Config) withDefaults() Config {
	if c.GeofenceRadiusMeters <= 0 {
		c.GeofenceRadiusMeters = geofence.DefaultRadiusMeters
	}
	if c.CommissionRate <= 0 {
		c.CommissionRate = DefaultCommissionRate
	}
	if c.HoldTTL <= 0 {
		c.HoldTTL = 4 * time.Hour
	}
	return c
}

type DefaultEscrowUsecase struct {
	TxRepo      domain.TransactionRepository
	AccountRepo domain.AccountRepository
	Codec       *token.Codec
	Publisher   domain.EventPublisher
	Webhook     domain.EventPublisher
	Metrics     *metrics.EscrowMetrics
	Config      Config

	// one mutex per transaction id; operations on distinct transactions
	// never serialize against each other
	txLocks sync.Map
}

func NewDefaultEscrowUsecase(
	txRepo domain.TransactionRepository,
	accountRepo domain.AccountRepository,
	codec *token.Codec,
	publisher domain.EventPublisher,
	webhook domain.EventPublisher,
	escrowMetrics *metrics.EscrowMetrics,
	cfg Config) *DefaultEscrowUsecase {

	return &DefaultEscrowUsecase{
		TxRepo:      txRepo,
		AccountRepo: accountRepo,
		Codec:       codec,
		Publisher:   publisher,
		Webhook:     webhook,
		Metrics:     escrowMetrics,
		Config:      cfg.withDefaults(),
	}
}

// lockTransaction acquires the exclusive per-transaction lock and returns
// its release func.
func (uc *DefaultEscrowUsecase) lockTransaction(transactionID string) func() {
	mu, _ := uc.txLocks.LoadOrStore(transactionID, &sync.Mutex{})
	lock := mu.(*sync.Mutex)
	lock.Lock()
	return lock.Unlock
}

// forgetLock drops a transaction's mutex once it reaches a terminal status.
// A racing caller that re-creates the mutex is harmless: terminal
// transactions fail the status guard before any fund movement.
func (uc *DefaultEscrowUsecase) forgetLock(transactionID string) {
	uc.txLocks.Delete(transactionID)
}
