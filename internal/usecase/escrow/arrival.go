package escrow

import (
	"context"
	"time"

	"github.com/dinepay/escrow-service/internal/domain"
	"github.com/dinepay/escrow-service/internal/geofence"
	"github.com/dinepay/escrow-service/internal/token"
)

// VerifyArrival checks both presence factors: the scanned token must be
// bound to the transaction AND the customer must be inside the provider's
// geofence. A failed check mutates nothing, so the caller can move closer
// or rescan and retry.
func (uc *DefaultEscrowUsecase) VerifyArrival(
	ctx context.Context,
	transactionID string,
	customerLocation domain.Coordinate,
	scanPayload string,
) (*domain.ArrivalResult, error) {
	unlock := uc.lockTransaction(transactionID)
	defer unlock()

	tx, err := uc.TxRepo.GetTransactionByID(transactionID)
	if err != nil {
		return nil, err
	}

	if tx.Status != domain.StatusFundsHeld {
		return nil, &domain.InvalidStateTransitionError{
			Current:   tx.Status,
			Attempted: domain.StatusCustomerArrived,
		}
	}

	result := &domain.ArrivalResult{
		TransactionID:  transactionID,
		DistanceMeters: geofence.Distance(customerLocation, tx.ProviderLocation),
	}
	result.WithinGeofence = result.DistanceMeters <= uc.Config.GeofenceRadiusMeters

	decoded, decodeErr := uc.Codec.Decode(scanPayload)
	result.TokenValid = decodeErr == nil && token.Matches(decoded, transactionID)

	if !result.TokenValid {
		result.FailedChecks = append(result.FailedChecks, "token")
	}
	if !result.WithinGeofence {
		result.FailedChecks = append(result.FailedChecks, "geofence")
	}
	if len(result.FailedChecks) > 0 {
		uc.Metrics.RecordVerificationFailure(result.FailedChecks...)
		return result, nil
	}

	now := time.Now()
	updated := *tx
	updated.Status = domain.StatusCustomerArrived
	location := customerLocation
	updated.CustomerLocation = &location
	updated.EntryScanAt = &now
	updated.ArrivedAt = &now

	op := &domain.EscrowOperation{
		TransactionID: transactionID,
		Name:          "verify_arrival",
		OldStatus:     domain.StatusFundsHeld,
		NewStatus:     domain.StatusCustomerArrived,
		Update:        &updated,
		CreatedAt:     now,
	}
	if err := uc.TxRepo.ApplyOperation(op); err != nil {
		uc.Metrics.RecordError("verify_arrival")
		return nil, err
	}

	uc.publishEvent(&updated, string(domain.StatusCustomerArrived), "")
	result.Verified = true
	return result, nil
}

// StartService marks the optional SERVICE_STARTED milestone.
func (uc *DefaultEscrowUsecase) StartService(ctx context.Context, transactionID string) error {
	unlock := uc.lockTransaction(transactionID)
	defer unlock()

	tx, err := uc.TxRepo.GetTransactionByID(transactionID)
	if err != nil {
		return err
	}

	if tx.Status != domain.StatusCustomerArrived {
		return &domain.InvalidStateTransitionError{
			Current:   tx.Status,
			Attempted: domain.StatusServiceStarted,
		}
	}

	now := time.Now()
	updated := *tx
	updated.Status = domain.StatusServiceStarted
	updated.ServiceStartedAt = &now

	op := &domain.EscrowOperation{
		TransactionID: transactionID,
		Name:          "start_service",
		OldStatus:     domain.StatusCustomerArrived,
		NewStatus:     domain.StatusServiceStarted,
		Update:        &updated,
		CreatedAt:     now,
	}
	if err := uc.TxRepo.ApplyOperation(op); err != nil {
		uc.Metrics.RecordError("start_service")
		return err
	}

	uc.publishEvent(&updated, string(domain.StatusServiceStarted), "")
	return nil
}
