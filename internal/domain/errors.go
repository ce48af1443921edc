package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAccountNotFound     = errors.New("account not found")
	ErrTokenMismatch       = errors.New("verification token does not match transaction")
	ErrDuplicateRelease    = errors.New("payment already released for transaction")
	ErrInvalidDeposit      = errors.New("deposit amount must be positive")

	// ErrStaleTransactionStatus surfaces when a guarded update loses a race;
	// callers retry safely because nothing was applied.
	ErrStaleTransactionStatus = errors.New("transaction status changed concurrently")
)

// DecodeError wraps a failure to decode a scan payload.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode verification token: %s", e.Reason)
}

type InsufficientFundsError struct {
	Required  float64
	Available float64
	Shortfall float64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: required %.2f, available %.2f, shortfall %.2f",
		e.Required, e.Available, e.Shortfall)
}

type GeofenceViolationError struct {
	DistanceMeters  float64
	ThresholdMeters float64
}

func (e *GeofenceViolationError) Error() string {
	return fmt.Sprintf("customer is %.1fm from the provider, outside the %.0fm geofence",
		e.DistanceMeters, e.ThresholdMeters)
}

type InvalidStateTransitionError struct {
	Current   TransactionStatus
	Attempted TransactionStatus
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("invalid state transition: %s -> %s", e.Current, e.Attempted)
}

type MissingComponentError struct {
	Slots []Slot
}

func (e *MissingComponentError) Error() string {
	names := make([]string, len(e.Slots))
	for i, slot := range e.Slots {
		names[i] = string(slot)
	}
	return fmt.Sprintf("meal package is missing required components: %s", strings.Join(names, ", "))
}
