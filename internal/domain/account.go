package domain

import "time"

// AccountBalance is the platform-side view of a principal's funds.
// Mutated only through EscrowRepository operations.
type AccountBalance struct {
	AccountID        string
	AvailableBalance float64
	HeldBalance      float64
	LifetimeEarnings float64
	UpdatedAt        time.Time
}
