package domain

import "time"

type TransactionStatus string

const (
	StatusPending         TransactionStatus = "PENDING"
	StatusFundsHeld       TransactionStatus = "FUNDS_HELD"
	StatusCustomerArrived TransactionStatus = "CUSTOMER_ARRIVED"
	StatusServiceStarted  TransactionStatus = "SERVICE_STARTED"
	StatusServiceCompleted TransactionStatus = "SERVICE_COMPLETED"
	StatusPaymentReleased TransactionStatus = "PAYMENT_RELEASED"
	StatusCancelled       TransactionStatus = "CANCELLED"
	StatusDisputed        TransactionStatus = "DISPUTED"
)

type TransactionKind string

const (
	KindDineIn       TransactionKind = "DINE_IN"
	KindDelivery     TransactionKind = "DELIVERY"
	KindPickup       TransactionKind = "PICKUP"
	KindQuickService TransactionKind = "QUICK_SERVICE"
)

// Coordinate is a WGS84 point.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

type Transaction struct {
	ID               string
	Kind             TransactionKind
	ConsumerID       string
	ProviderID       string
	ProviderLocation Coordinate
	CustomerLocation *Coordinate // set exactly once, at arrival verification
	TokenRaw         string      // opaque scan payload issued at creation, never regenerated

	MealPackage   MealPackage
	Justification PricingJustification
	ServiceFees   ServiceFeeBreakdown

	MealCost    float64
	ServiceCost float64
	TotalAmount float64
	AmountHeld  float64

	Status       TransactionStatus
	CancelReason string

	CreatedAt          time.Time
	HeldAt             *time.Time
	EntryScanAt        *time.Time
	ArrivedAt          *time.Time
	ServiceStartedAt   *time.Time
	ServiceCompletedAt *time.Time
	ExitScanAt         *time.Time
	PaymentReleasedAt  *time.Time
}

// validTransitions is the full status graph. SERVICE_STARTED is optional:
// release may go straight from CUSTOMER_ARRIVED.
var validTransitions = map[TransactionStatus][]TransactionStatus{
	StatusPending:          {StatusFundsHeld, StatusCancelled, StatusDisputed},
	StatusFundsHeld:        {StatusCustomerArrived, StatusCancelled, StatusDisputed},
	StatusCustomerArrived:  {StatusServiceStarted, StatusServiceCompleted, StatusDisputed},
	StatusServiceStarted:   {StatusServiceCompleted, StatusDisputed},
	StatusServiceCompleted: {StatusPaymentReleased, StatusDisputed},
	StatusPaymentReleased:  {},
	StatusCancelled:        {},
	StatusDisputed:         {},
}

func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s TransactionStatus) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

// Milestone is one completed step of the transaction timeline.
type Milestone struct {
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Timeline derives the list of completed milestones in order.
func (t *Transaction) Timeline() []Milestone {
	milestones := []Milestone{{Name: "created", OccurredAt: t.CreatedAt}}
	if t.HeldAt != nil {
		milestones = append(milestones, Milestone{Name: "funds_held", OccurredAt: *t.HeldAt})
	}
	if t.ArrivedAt != nil {
		milestones = append(milestones, Milestone{Name: "customer_arrived", OccurredAt: *t.ArrivedAt})
	}
	if t.ServiceStartedAt != nil {
		milestones = append(milestones, Milestone{Name: "service_started", OccurredAt: *t.ServiceStartedAt})
	}
	if t.ServiceCompletedAt != nil {
		milestones = append(milestones, Milestone{Name: "service_completed", OccurredAt: *t.ServiceCompletedAt})
	}
	if t.PaymentReleasedAt != nil {
		milestones = append(milestones, Milestone{Name: "payment_released", OccurredAt: *t.PaymentReleasedAt})
	}
	return milestones
}
