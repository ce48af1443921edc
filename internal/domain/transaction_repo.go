package domain

import "time"

type FundOpKind string

const (
	FundOpHold    FundOpKind = "HOLD"    // available -> held, conditional on balance
	FundOpReturn  FundOpKind = "RETURN"  // held -> available, on cancel
	FundOpRelease FundOpKind = "RELEASE" // held -> provider available + lifetime earnings
)

// FundOperation describes the balance movement attached to a status change.
// Amount is always the full held amount; Commission applies to RELEASE only.
type FundOperation struct {
	Kind       FundOpKind
	ConsumerID string
	ProviderID string
	Amount     float64
	Commission float64
}

// EscrowOperation is one atomic step of the transaction state machine:
// the status change, the mutated transaction record, the optional fund
// movement and the idempotency record are applied in a single store
// transaction or not at all.
type EscrowOperation struct {
	TransactionID string
	Name          string // "hold_funds", "verify_arrival", "start_service", "release", "cancel", "dispute"
	OldStatus     TransactionStatus
	NewStatus     TransactionStatus
	Update        *Transaction
	Funds         *FundOperation
	CreatedAt     time.Time
}

type TransactionRepository interface {
	CreateTransaction(tx *Transaction) error
	GetTransactionByID(transactionID string) (*Transaction, error)
	FindExpiredHolds(deadline time.Time) ([]*Transaction, error)
	// ApplyOperation performs the whole operation atomically. A replay of an
	// already-applied operation is a no-op. A fund hold that fails its
	// balance condition returns *InsufficientFundsError and leaves every
	// record untouched.
	ApplyOperation(op *EscrowOperation) error
}

type AccountRepository interface {
	GetAccountByID(accountID string) (*AccountBalance, error)
	CreateAccount(account *AccountBalance) error
	Deposit(accountID string, amount float64) error
}
