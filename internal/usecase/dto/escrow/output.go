package escrowdto

import "github.com/dinepay/escrow-service/internal/domain"

type CreateTransactionOutput struct {
	Transaction   *domain.Transaction
	PricingReport *domain.PricingReport
	ScanPayload   string
}
