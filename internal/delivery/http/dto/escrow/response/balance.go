package response

import "time"

type BalanceResponse struct {
	AccountID        string    `json:"account_id"`
	AvailableBalance float64   `json:"available_balance"`
	HeldBalance      float64   `json:"held_balance"`
	LifetimeEarnings float64   `json:"lifetime_earnings"`
	UpdatedAt        time.Time `json:"updated_at"`
}
