package domain

import (
	"context"
	"time"
)

type HoldResult struct {
	TransactionID string    `json:"transaction_id"`
	AmountHeld    float64   `json:"amount_held"`
	HeldAt        time.Time `json:"held_at"`
}

// ArrivalResult reports both verification factors so a failed caller can
// self-correct (move closer, rescan).
type ArrivalResult struct {
	TransactionID  string   `json:"transaction_id"`
	Verified       bool     `json:"verified"`
	TokenValid     bool     `json:"token_valid"`
	WithinGeofence bool     `json:"within_geofence"`
	DistanceMeters float64  `json:"distance_meters"`
	FailedChecks   []string `json:"failed_checks,omitempty"`
}

type ReleaseResult struct {
	TransactionID    string    `json:"transaction_id"`
	AmountHeld       float64   `json:"amount_held"`
	Commission       float64   `json:"commission"`
	ProviderEarnings float64   `json:"provider_earnings"`
	ReleasedAt       time.Time `json:"released_at"`
}

type TransactionSnapshot struct {
	Transaction *Transaction `json:"transaction"`
	Timeline    []Milestone  `json:"timeline"`
}

type EscrowUsecase interface {
	HoldFunds(ctx context.Context, transactionID string) (*HoldResult, error)
	VerifyArrival(ctx context.Context, transactionID string, customerLocation Coordinate, scanPayload string) (*ArrivalResult, error)
	StartService(ctx context.Context, transactionID string) error
	CompleteAndRelease(ctx context.Context, transactionID, exitScanPayload string) (*ReleaseResult, error)
	CancelTransaction(ctx context.Context, transactionID, reason string) error
	OpenDispute(ctx context.Context, transactionID, reason string) error
	CancelExpiredHolds(ctx context.Context) error
	GetStatus(ctx context.Context, transactionID string) (*TransactionSnapshot, error)
}
