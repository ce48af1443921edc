package escrow

import (
	"log/slog"
	"time"

	"github.com/dinepay/escrow-service/internal/domain"
)

// publishEvent alerts both parties asynchronously; notification failures
// never fail the operation that triggered them.
func (uc *DefaultEscrowUsecase) publishEvent(tx *domain.Transaction, status, reason string) {
	event := domain.EscrowEvent{
		TransactionID: tx.ID,
		ConsumerID:    tx.ConsumerID,
		ProviderID:    tx.ProviderID,
		Status:        status,
		TotalAmount:   tx.TotalAmount,
		Reason:        reason,
		OccurredAt:    time.Now(),
	}

	for _, pub := range []domain.EventPublisher{uc.Publisher, uc.Webhook} {
		if pub == nil {
			continue
		}
		go func(p domain.EventPublisher) {
			if err := p.PublishEscrowEvent(event); err != nil {
				slog.Error("failed to publish escrow event", "transaction_id", event.TransactionID, "status", event.Status, "error", err.Error())
			}
		}(pub)
	}
}
