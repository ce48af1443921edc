package response

import "github.com/dinepay/escrow-service/internal/domain"

type StatusResponse struct {
	TransactionID string             `json:"transaction_id"`
	Status        string             `json:"status"`
	AmountHeld    float64            `json:"amount_held"`
	TotalAmount   float64            `json:"total_amount"`
	CancelReason  string             `json:"cancel_reason,omitempty"`
	Timeline      []domain.Milestone `json:"timeline"`
}
