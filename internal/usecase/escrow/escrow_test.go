package escrow_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dinepay/escrow-service/internal/domain"
	"github.com/dinepay/escrow-service/internal/token"
	escrowdto "github.com/dinepay/escrow-service/internal/usecase/dto/escrow"
	"github.com/dinepay/escrow-service/internal/usecase/escrow"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	providerSpot = domain.Coordinate{Latitude: 40.7128, Longitude: -74.0060}
	// roughly 5.5 km from providerSpot, far outside any sane geofence
	midtownSpot = domain.Coordinate{Latitude: 40.7580, Longitude: -73.9855}
)

// memoryStore is an in-memory stand-in for the postgres repositories with
// the same contract: conditional balance updates, idempotent operations,
// all-or-nothing application.
type memoryStore struct {
	mu       sync.Mutex
	txs      map[string]*domain.Transaction
	accounts map[string]*domain.AccountBalance
	applied  map[string]bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		txs:      make(map[string]*domain.Transaction),
		accounts: make(map[string]*domain.AccountBalance),
		applied:  make(map[string]bool),
	}
}

func (s *memoryStore) CreateTransaction(tx *domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *tx
	s.txs[tx.ID] = &clone
	return nil
}

func (s *memoryStore) GetTransactionByID(transactionID string) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.txs[transactionID]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	clone := *tx
	return &clone, nil
}

func (s *memoryStore) FindExpiredHolds(deadline time.Time) ([]*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var expired []*domain.Transaction
	for _, tx := range s.txs {
		if tx.Status == domain.StatusFundsHeld && tx.HeldAt != nil && tx.HeldAt.Before(deadline) {
			clone := *tx
			expired = append(expired, &clone)
		}
	}
	return expired, nil
}

func (s *memoryStore) ApplyOperation(op *domain.EscrowOperation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := op.TransactionID + "|" + op.Name
	if s.applied[key] {
		return nil
	}

	tx, ok := s.txs[op.TransactionID]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	if tx.Status != op.OldStatus {
		return domain.ErrStaleTransactionStatus
	}

	if op.Funds != nil {
		if err := s.applyFunds(op.Funds); err != nil {
			return err
		}
	}

	clone := *op.Update
	s.txs[op.TransactionID] = &clone
	s.applied[key] = true
	return nil
}

func (s *memoryStore) applyFunds(funds *domain.FundOperation) error {
	switch funds.Kind {
	case domain.FundOpHold:
		account, ok := s.accounts[funds.ConsumerID]
		if !ok {
			return domain.ErrAccountNotFound
		}
		if account.AvailableBalance < funds.Amount {
			return &domain.InsufficientFundsError{
				Required:  funds.Amount,
				Available: account.AvailableBalance,
				Shortfall: funds.Amount - account.AvailableBalance,
			}
		}
		account.AvailableBalance -= funds.Amount
		account.HeldBalance += funds.Amount
	case domain.FundOpReturn:
		account, ok := s.accounts[funds.ConsumerID]
		if !ok || account.HeldBalance < funds.Amount {
			return domain.ErrAccountNotFound
		}
		account.HeldBalance -= funds.Amount
		account.AvailableBalance += funds.Amount
	case domain.FundOpRelease:
		consumer, ok := s.accounts[funds.ConsumerID]
		if !ok || consumer.HeldBalance < funds.Amount {
			return domain.ErrAccountNotFound
		}
		consumer.HeldBalance -= funds.Amount
		provider, ok := s.accounts[funds.ProviderID]
		if !ok {
			provider = &domain.AccountBalance{AccountID: funds.ProviderID}
			s.accounts[funds.ProviderID] = provider
		}
		earnings := funds.Amount - funds.Commission
		provider.AvailableBalance += earnings
		provider.LifetimeEarnings += earnings
	}
	return nil
}

func (s *memoryStore) GetAccountByID(accountID string) (*domain.AccountBalance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *account
	return &clone, nil
}

func (s *memoryStore) CreateAccount(account *domain.AccountBalance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *account
	s.accounts[account.AccountID] = &clone
	return nil
}

func (s *memoryStore) Deposit(accountID string, amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[accountID]
	if !ok {
		account = &domain.AccountBalance{AccountID: accountID}
		s.accounts[accountID] = account
	}
	account.AvailableBalance += amount
	return nil
}

type capturePublisher struct {
	events chan domain.EscrowEvent
}

func newCapturePublisher() *capturePublisher {
	return &capturePublisher{events: make(chan domain.EscrowEvent, 16)}
}

func (p *capturePublisher) PublishEscrowEvent(event domain.EscrowEvent) error {
	p.events <- event
	return nil
}

func (p *capturePublisher) waitFor(t *testing.T, status string) domain.EscrowEvent {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case event := <-p.events:
			if event.Status == status {
				return event
			}
		case <-deadline:
			t.Fatalf("no %q event published", status)
			return domain.EscrowEvent{}
		}
	}
}

type fixture struct {
	store *memoryStore
	codec *token.Codec
	pub   *capturePublisher
	uc    *escrow.DefaultEscrowUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	codec, err := token.NewCodec("test-secret")
	require.NoError(t, err)

	store := newMemoryStore()
	pub := newCapturePublisher()
	uc := escrow.NewDefaultEscrowUsecase(store, store, codec, pub, nil, nil, escrow.Config{
		GeofenceRadiusMeters: 50,
		CommissionRate:       0.15,
		HoldTTL:              4 * time.Hour,
	})
	return &fixture{store: store, codec: codec, pub: pub, uc: uc}
}

func (f *fixture) seedTransaction(t *testing.T, status domain.TransactionStatus, total float64) *domain.Transaction {
	t.Helper()
	id := uuid.New().String()
	raw, _, err := f.codec.Issue(id, "consumer-1")
	require.NoError(t, err)

	now := time.Now()
	tx := &domain.Transaction{
		ID:               id,
		Kind:             domain.KindDineIn,
		ConsumerID:       "consumer-1",
		ProviderID:       "provider-1",
		ProviderLocation: providerSpot,
		TokenRaw:         raw,
		TotalAmount:      total,
		MealCost:         total,
		Status:           status,
		CreatedAt:        now,
	}
	if status != domain.StatusPending && status != domain.StatusCancelled {
		tx.AmountHeld = total
		tx.HeldAt = &now
	}
	require.NoError(t, f.store.CreateTransaction(tx))
	return tx
}

func TestHoldFundsConservation(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Deposit("consumer-1", 100))
	tx := f.seedTransaction(t, domain.StatusPending, 60.50)

	result, err := f.uc.HoldFunds(context.Background(), tx.ID)
	require.NoError(t, err)
	assert.InDelta(t, 60.50, result.AmountHeld, 1e-9)

	account, err := f.store.GetAccountByID("consumer-1")
	require.NoError(t, err)
	assert.InDelta(t, 39.50, account.AvailableBalance, 1e-9)
	assert.InDelta(t, 60.50, account.HeldBalance, 1e-9)

	stored, err := f.store.GetTransactionByID(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFundsHeld, stored.Status)
	require.NotNil(t, stored.HeldAt)

	f.pub.waitFor(t, string(domain.StatusFundsHeld))
}

func TestHoldFundsInsufficientAlertsBothParties(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Deposit("consumer-1", 10))
	tx := f.seedTransaction(t, domain.StatusPending, 60.50)

	_, err := f.uc.HoldFunds(context.Background(), tx.ID)
	var insufficient *domain.InsufficientFundsError
	require.True(t, errors.As(err, &insufficient))
	assert.InDelta(t, 50.50, insufficient.Shortfall, 1e-9)

	// nothing moved, status unchanged
	account, err := f.store.GetAccountByID("consumer-1")
	require.NoError(t, err)
	assert.InDelta(t, 10.0, account.AvailableBalance, 1e-9)
	assert.Zero(t, account.HeldBalance)

	stored, err := f.store.GetTransactionByID(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)

	event := f.pub.waitFor(t, "INSUFFICIENT_FUNDS")
	assert.Equal(t, tx.ID, event.TransactionID)
	assert.Contains(t, event.Reason, "insufficient")
}

func TestHoldFundsRejectsWrongState(t *testing.T) {
	f := newFixture(t)
	tx := f.seedTransaction(t, domain.StatusCustomerArrived, 60.50)

	_, err := f.uc.HoldFunds(context.Background(), tx.ID)
	var invalid *domain.InvalidStateTransitionError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, domain.StatusCustomerArrived, invalid.Current)
}

func TestConcurrentHoldsExactlyOneSucceeds(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Deposit("consumer-1", 70))

	first := f.seedTransaction(t, domain.StatusPending, 60.50)
	second := f.seedTransaction(t, domain.StatusPending, 60.50)

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for _, id := range []string{first.ID, second.ID} {
		wg.Add(1)
		go func(transactionID string) {
			defer wg.Done()
			_, err := f.uc.HoldFunds(context.Background(), transactionID)
			results <- err
		}(id)
	}
	wg.Wait()
	close(results)

	var successes, insufficient int
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		var shortfall *domain.InsufficientFundsError
		if errors.As(err, &shortfall) {
			insufficient++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, insufficient)

	account, err := f.store.GetAccountByID("consumer-1")
	require.NoError(t, err)
	assert.InDelta(t, 9.50, account.AvailableBalance, 1e-9)
	assert.InDelta(t, 60.50, account.HeldBalance, 1e-9)
}

func TestVerifyArrivalOutsideGeofenceMutatesNothing(t *testing.T) {
	f := newFixture(t)
	tx := f.seedTransaction(t, domain.StatusFundsHeld, 60.50)

	result, err := f.uc.VerifyArrival(context.Background(), tx.ID, midtownSpot, tx.TokenRaw)
	require.NoError(t, err)

	assert.False(t, result.Verified)
	assert.True(t, result.TokenValid)
	assert.False(t, result.WithinGeofence)
	assert.Greater(t, result.DistanceMeters, 1000.0)
	assert.Equal(t, []string{"geofence"}, result.FailedChecks)

	stored, err := f.store.GetTransactionByID(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFundsHeld, stored.Status)
	assert.Nil(t, stored.ArrivedAt)
	assert.Nil(t, stored.CustomerLocation)
}

func TestVerifyArrivalForeignTokenFails(t *testing.T) {
	f := newFixture(t)
	tx := f.seedTransaction(t, domain.StatusFundsHeld, 60.50)
	other := f.seedTransaction(t, domain.StatusFundsHeld, 20.00)

	result, err := f.uc.VerifyArrival(context.Background(), tx.ID, providerSpot, other.TokenRaw)
	require.NoError(t, err)

	assert.False(t, result.Verified)
	assert.False(t, result.TokenValid)
	assert.True(t, result.WithinGeofence)
	assert.Equal(t, []string{"token"}, result.FailedChecks)

	stored, err := f.store.GetTransactionByID(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFundsHeld, stored.Status)
}

func TestVerifyArrivalBothFactorsPass(t *testing.T) {
	f := newFixture(t)
	tx := f.seedTransaction(t, domain.StatusFundsHeld, 60.50)

	result, err := f.uc.VerifyArrival(context.Background(), tx.ID, providerSpot, tx.TokenRaw)
	require.NoError(t, err)

	assert.True(t, result.Verified)
	assert.True(t, result.TokenValid)
	assert.True(t, result.WithinGeofence)
	assert.Empty(t, result.FailedChecks)

	stored, err := f.store.GetTransactionByID(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCustomerArrived, stored.Status)
	require.NotNil(t, stored.ArrivedAt)
	require.NotNil(t, stored.EntryScanAt)
	require.NotNil(t, stored.CustomerLocation)
}

func TestStartService(t *testing.T) {
	f := newFixture(t)
	tx := f.seedTransaction(t, domain.StatusCustomerArrived, 60.50)

	require.NoError(t, f.uc.StartService(context.Background(), tx.ID))

	stored, err := f.store.GetTransactionByID(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusServiceStarted, stored.Status)
	require.NotNil(t, stored.ServiceStartedAt)
}

func TestCompleteAndReleaseConservation(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Deposit("consumer-1", 100))
	tx := f.seedTransaction(t, domain.StatusPending, 60.50)

	_, err := f.uc.HoldFunds(context.Background(), tx.ID)
	require.NoError(t, err)
	_, err = f.uc.VerifyArrival(context.Background(), tx.ID, providerSpot, tx.TokenRaw)
	require.NoError(t, err)

	result, err := f.uc.CompleteAndRelease(context.Background(), tx.ID, tx.TokenRaw)
	require.NoError(t, err)

	assert.InDelta(t, 60.50, result.AmountHeld, 1e-9)
	assert.InDelta(t, 9.075, result.Commission, 1e-9)
	assert.InDelta(t, 51.425, result.ProviderEarnings, 1e-9)
	assert.InDelta(t, result.AmountHeld, result.Commission+result.ProviderEarnings, 1e-9)

	consumer, err := f.store.GetAccountByID("consumer-1")
	require.NoError(t, err)
	assert.Zero(t, consumer.HeldBalance)

	provider, err := f.store.GetAccountByID("provider-1")
	require.NoError(t, err)
	assert.InDelta(t, 51.425, provider.AvailableBalance, 1e-9)
	assert.InDelta(t, 51.425, provider.LifetimeEarnings, 1e-9)

	stored, err := f.store.GetTransactionByID(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaymentReleased, stored.Status)
	assert.Zero(t, stored.AmountHeld)
	require.NotNil(t, stored.PaymentReleasedAt)
}

func TestCompleteAndReleaseBeforeArrivalRejected(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Deposit("consumer-1", 100))
	tx := f.seedTransaction(t, domain.StatusPending, 60.50)

	_, err := f.uc.CompleteAndRelease(context.Background(), tx.ID, tx.TokenRaw)
	var invalid *domain.InvalidStateTransitionError
	require.True(t, errors.As(err, &invalid))

	account, err := f.store.GetAccountByID("consumer-1")
	require.NoError(t, err)
	assert.InDelta(t, 100.0, account.AvailableBalance, 1e-9)
	assert.Zero(t, account.HeldBalance)
}

func TestCompleteAndReleaseDuplicate(t *testing.T) {
	f := newFixture(t)
	tx := f.seedTransaction(t, domain.StatusPaymentReleased, 60.50)

	_, err := f.uc.CompleteAndRelease(context.Background(), tx.ID, tx.TokenRaw)
	assert.ErrorIs(t, err, domain.ErrDuplicateRelease)
}

func TestCompleteAndReleaseTokenMismatch(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Deposit("consumer-1", 100))
	tx := f.seedTransaction(t, domain.StatusCustomerArrived, 60.50)
	other := f.seedTransaction(t, domain.StatusFundsHeld, 20.00)

	_, err := f.uc.CompleteAndRelease(context.Background(), tx.ID, other.TokenRaw)
	assert.ErrorIs(t, err, domain.ErrTokenMismatch)

	stored, err := f.store.GetTransactionByID(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCustomerArrived, stored.Status)
	assert.InDelta(t, 60.50, stored.AmountHeld, 1e-9)
}

func TestCancelReturnsHeldFunds(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Deposit("consumer-1", 100))
	tx := f.seedTransaction(t, domain.StatusPending, 60.50)

	_, err := f.uc.HoldFunds(context.Background(), tx.ID)
	require.NoError(t, err)

	require.NoError(t, f.uc.CancelTransaction(context.Background(), tx.ID, "plans changed"))

	account, err := f.store.GetAccountByID("consumer-1")
	require.NoError(t, err)
	assert.InDelta(t, 100.0, account.AvailableBalance, 1e-9)
	assert.Zero(t, account.HeldBalance)

	stored, err := f.store.GetTransactionByID(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, stored.Status)
	assert.Equal(t, "plans changed", stored.CancelReason)
}

func TestCancelAfterArrivalRejected(t *testing.T) {
	f := newFixture(t)
	tx := f.seedTransaction(t, domain.StatusCustomerArrived, 60.50)

	err := f.uc.CancelTransaction(context.Background(), tx.ID, "too late")
	var invalid *domain.InvalidStateTransitionError
	require.True(t, errors.As(err, &invalid))
}

func TestOpenDisputeKeepsFundsHeld(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Deposit("consumer-1", 100))
	tx := f.seedTransaction(t, domain.StatusPending, 60.50)

	_, err := f.uc.HoldFunds(context.Background(), tx.ID)
	require.NoError(t, err)

	require.NoError(t, f.uc.OpenDispute(context.Background(), tx.ID, "wrong order"))

	account, err := f.store.GetAccountByID("consumer-1")
	require.NoError(t, err)
	assert.InDelta(t, 60.50, account.HeldBalance, 1e-9)

	stored, err := f.store.GetTransactionByID(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDisputed, stored.Status)
}

func TestOpenDisputeOnTerminalRejected(t *testing.T) {
	f := newFixture(t)
	tx := f.seedTransaction(t, domain.StatusPaymentReleased, 60.50)

	err := f.uc.OpenDispute(context.Background(), tx.ID, "too late")
	var invalid *domain.InvalidStateTransitionError
	require.True(t, errors.As(err, &invalid))
}

func TestCancelExpiredHolds(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Deposit("consumer-1", 200))

	expired := f.seedTransaction(t, domain.StatusPending, 60.50)
	_, err := f.uc.HoldFunds(context.Background(), expired.ID)
	require.NoError(t, err)

	// push the hold past the TTL
	f.store.mu.Lock()
	past := time.Now().Add(-5 * time.Hour)
	f.store.txs[expired.ID].HeldAt = &past
	f.store.mu.Unlock()

	fresh := f.seedTransaction(t, domain.StatusPending, 30.00)
	_, err = f.uc.HoldFunds(context.Background(), fresh.ID)
	require.NoError(t, err)

	require.NoError(t, f.uc.CancelExpiredHolds(context.Background()))

	expiredStored, err := f.store.GetTransactionByID(expired.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, expiredStored.Status)
	assert.Equal(t, "hold expired", expiredStored.CancelReason)

	freshStored, err := f.store.GetTransactionByID(fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFundsHeld, freshStored.Status)

	account, err := f.store.GetAccountByID("consumer-1")
	require.NoError(t, err)
	assert.InDelta(t, 30.00, account.HeldBalance, 1e-9)
	assert.InDelta(t, 170.00, account.AvailableBalance, 1e-9)
}

func TestCreateTransaction(t *testing.T) {
	f := newFixture(t)

	pkg := &domain.MealPackage{
		Items: map[domain.Slot]domain.PricedItem{
			domain.SlotAppetizer:  {Name: "soup", Price: 8.00},
			domain.SlotMainCourse: {Name: "steak", Price: 32.00},
			domain.SlotDessert:    {Name: "cake", Price: 9.00},
			domain.SlotBeverage:   {Name: "wine", Price: 11.00},
		},
		IndividualTotal: 60.00,
		PackagePrice:    51.00,
	}
	fees := &domain.ServiceFeeBreakdown{Total: 9.50}

	tx, err := f.uc.CreateTransaction(&escrowdto.CreateTransactionInput{
		Kind:             domain.KindDineIn,
		ConsumerID:       "consumer-1",
		ProviderID:       "provider-1",
		ProviderLocation: providerSpot,
		MealPackage:      pkg,
		ServiceFees:      fees,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, tx.Status)
	assert.InDelta(t, 51.00, tx.MealCost, 1e-9)
	assert.InDelta(t, 9.50, tx.ServiceCost, 1e-9)
	assert.InDelta(t, 60.50, tx.TotalAmount, 1e-9)
	assert.NotEmpty(t, tx.TokenRaw)

	decoded, err := f.codec.Decode(tx.TokenRaw)
	require.NoError(t, err)
	assert.True(t, token.Matches(decoded, tx.ID))

	f.pub.waitFor(t, string(domain.StatusPending))
}

func TestCreateTransactionUnknownKind(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.CreateTransaction(&escrowdto.CreateTransactionInput{
		Kind:        domain.TransactionKind("drive_through"),
		MealPackage: &domain.MealPackage{},
		ServiceFees: &domain.ServiceFeeBreakdown{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transaction kind")
}

func TestGetStatusTimeline(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Deposit("consumer-1", 100))
	tx := f.seedTransaction(t, domain.StatusPending, 60.50)

	_, err := f.uc.HoldFunds(context.Background(), tx.ID)
	require.NoError(t, err)
	_, err = f.uc.VerifyArrival(context.Background(), tx.ID, providerSpot, tx.TokenRaw)
	require.NoError(t, err)

	snapshot, err := f.uc.GetStatus(context.Background(), tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCustomerArrived, snapshot.Transaction.Status)

	var names []string
	for _, milestone := range snapshot.Timeline {
		names = append(names, milestone.Name)
	}
	assert.Equal(t, []string{"created", "funds_held", "customer_arrived"}, names)
}

func TestGetStatusNotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.GetStatus(context.Background(), fmt.Sprintf("missing-%s", uuid.New()))
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestDepositCreditsAccount(t *testing.T) {
	f := newFixture(t)

	account, err := f.uc.Deposit(context.Background(), "consumer-1", 75.25)
	require.NoError(t, err)
	assert.Equal(t, "consumer-1", account.AccountID)
	assert.InDelta(t, 75.25, account.AvailableBalance, 1e-9)

	account, err = f.uc.Deposit(context.Background(), "consumer-1", 24.75)
	require.NoError(t, err)
	assert.InDelta(t, 100.00, account.AvailableBalance, 1e-9)
}

func TestDepositRejectsNonPositiveAmount(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Deposit(context.Background(), "consumer-1", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidDeposit)

	_, err = f.uc.Deposit(context.Background(), "consumer-1", -10)
	assert.ErrorIs(t, err, domain.ErrInvalidDeposit)

	_, err = f.store.GetAccountByID("consumer-1")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestGetBalanceReflectsHeldFunds(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Deposit("consumer-1", 100))
	tx := f.seedTransaction(t, domain.StatusPending, 60.50)

	_, err := f.uc.HoldFunds(context.Background(), tx.ID)
	require.NoError(t, err)

	account, err := f.uc.GetBalance(context.Background(), "consumer-1")
	require.NoError(t, err)
	assert.InDelta(t, 39.50, account.AvailableBalance, 1e-9)
	assert.InDelta(t, 60.50, account.HeldBalance, 1e-9)
}

func TestGetBalanceUnknownAccount(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.GetBalance(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
