package setup

import (
	"github.com/dinepay/escrow-service/internal/domain"
	"github.com/dinepay/escrow-service/internal/mealpkg"
	"github.com/dinepay/escrow-service/internal/pricing"
	"github.com/dinepay/escrow-service/internal/token"
	"github.com/dinepay/escrow-service/internal/usecase/escrow"
	"github.com/dinepay/escrow-service/internal/usecase/orchestrator"
)

type Usecases struct {
	Escrow       escrow.EscrowUsecase
	Orchestrator *orchestrator.VerificationOrchestrator
}

func InitializeUsecases(deps *Dependencies) (*Usecases, error) {
	cfg := deps.Config

	codec, err := token.NewCodec(cfg.Escrow.TokenSecret)
	if err != nil {
		return nil, err
	}

	var kafkaPublisher domain.EventPublisher
	if deps.Publisher != nil {
		kafkaPublisher = deps.Publisher
	}

	escrowUC := escrow.NewDefaultEscrowUsecase(
		deps.TransactionRepo,
		deps.AccountRepo,
		codec,
		kafkaPublisher,
		deps.Webhook,
		deps.Metrics,
		escrow.Config{
			GeofenceRadiusMeters: cfg.Escrow.GeofenceRadiusMeters,
			CommissionRate:       cfg.Escrow.CommissionRate,
			HoldTTL:              cfg.Escrow.HoldTTL,
		},
	)

	benchmarks := make(map[domain.PricingCategory]float64, len(cfg.Pricing.Benchmarks))
	for category, price := range cfg.Pricing.Benchmarks {
		benchmarks[domain.PricingCategory(category)] = price
	}

	policy := pricing.NewPolicyEngine(benchmarks, pricing.FeeSchedule{
		PercentOfMeal: cfg.Pricing.PercentOfMeal,
		MinimumFee:    cfg.Pricing.MinimumFee,
		MaximumFee:    cfg.Pricing.MaximumFee,
	})

	return &Usecases{
		Escrow:       escrowUC,
		Orchestrator: orchestrator.NewVerificationOrchestrator(
			escrowUC,
			policy,
			mealpkg.NewBuilder(cfg.Escrow.PackageDiscount),
		),
	}, nil
}
