package setup

import (
	"github.com/dinepay/escrow-service/internal/config"
	"github.com/dinepay/escrow-service/internal/domain"
	"github.com/dinepay/escrow-service/internal/infrastructure/kafka"
	"github.com/dinepay/escrow-service/internal/infrastructure/metrics"
	"github.com/dinepay/escrow-service/internal/infrastructure/notifier"
	"github.com/dinepay/escrow-service/internal/infrastructure/postgres"
	"github.com/dinepay/escrow-service/internal/infrastructure/postgres/repository"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config    *config.EscrowConfig
	DB        *gorm.DB
	Publisher *kafka.EscrowEventPublisher
	Webhook   domain.EventPublisher
	Metrics   *metrics.EscrowMetrics

	TransactionRepo domain.TransactionRepository
	AccountRepo     domain.AccountRepository
}

// InitializeDependencies builds every stateful dependency from config.
// Kafka and the webhook notifier stay nil when unconfigured; the usecase
// skips nil publishers.
func InitializeDependencies(cfg *config.EscrowConfig) *Dependencies {
	db := postgres.MustInitDB(cfg)

	deps := &Dependencies{
		Config:          cfg,
		DB:              db,
		Metrics:         metrics.NewEscrowMetrics(),
		TransactionRepo: repository.NewDefaultTransactionRepository(db),
		AccountRepo:     repository.NewDefaultAccountRepository(db),
	}

	if len(cfg.Kafka.Brokers) > 0 {
		deps.Publisher = kafka.NewEscrowEventPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}
	if cfg.Notifier.CallbackURL != "" {
		deps.Webhook = notifier.NewWebhookNotifier(cfg.Notifier.CallbackURL)
	}

	return deps
}
