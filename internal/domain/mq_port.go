package domain

import "time"

// EscrowEvent is published on every fund-affecting status change and on
// insufficient-funds rejections, so both parties can be alerted.
type EscrowEvent struct {
	TransactionID string    `json:"transaction_id"`
	ConsumerID    string    `json:"consumer_id"`
	ProviderID    string    `json:"provider_id"`
	Status        string    `json:"status"`
	TotalAmount   float64   `json:"total_amount"`
	Reason        string    `json:"reason,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type EventPublisher interface {
	PublishEscrowEvent(event EscrowEvent) error
}
