package metrics

import (
	"time"

	"github.com/dinepay/escrow-service/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// EscrowMetrics contains the Prometheus metrics of the escrow ledger.
// Every Record method is nil-safe so wiring metrics stays optional in tests.
type EscrowMetrics struct {
	TransactionsCreatedTotal   *prometheus.CounterVec
	TransactionsCreatedAmount  *prometheus.CounterVec
	FundsHeldTotal             *prometheus.CounterVec
	FundsHeldAmountTotal       *prometheus.CounterVec
	PaymentsReleasedTotal      *prometheus.CounterVec
	PaymentsReleasedAmount     *prometheus.CounterVec
	CommissionAmountTotal      *prometheus.CounterVec
	TransactionsCancelledTotal *prometheus.CounterVec
	TransactionsDisputedTotal  *prometheus.CounterVec
	InsufficientFundsTotal     *prometheus.CounterVec
	VerificationFailuresTotal  *prometheus.CounterVec
	OperationErrorsTotal       *prometheus.CounterVec
	HoldToReleaseDuration      *prometheus.HistogramVec
}

func NewEscrowMetrics() *EscrowMetrics {
	return &EscrowMetrics{
		TransactionsCreatedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_transactions_created_total",
				Help: "Total transactions created",
			},
			[]string{"kind", "provider_id"},
		),
		TransactionsCreatedAmount: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_transactions_created_amount_total",
				Help: "Total amount of created transactions",
			},
			[]string{"kind"},
		),
		FundsHeldTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_funds_held_total",
				Help: "Total successful fund holds",
			},
			[]string{"kind"},
		),
		FundsHeldAmountTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_funds_held_amount_total",
				Help: "Total amount moved into escrow",
			},
			[]string{"kind"},
		),
		PaymentsReleasedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_payments_released_total",
				Help: "Total payments released to providers",
			},
			[]string{"kind", "provider_id"},
		),
		PaymentsReleasedAmount: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_payments_released_amount_total",
				Help: "Total amount released to providers",
			},
			[]string{"kind"},
		),
		CommissionAmountTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_commission_amount_total",
				Help: "Total platform commission retained at release",
			},
			[]string{"kind"},
		),
		TransactionsCancelledTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_transactions_cancelled_total",
				Help: "Total cancelled transactions",
			},
			[]string{"kind"},
		),
		TransactionsDisputedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_transactions_disputed_total",
				Help: "Total disputed transactions",
			},
			[]string{"kind"},
		),
		InsufficientFundsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_insufficient_funds_total",
				Help: "Total holds rejected for insufficient funds",
			},
			[]string{"kind"},
		),
		VerificationFailuresTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_verification_failures_total",
				Help: "Total failed arrival verification checks by factor",
			},
			[]string{"factor"},
		),
		OperationErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_operation_errors_total",
				Help: "Total infrastructure errors by operation",
			},
			[]string{"operation"},
		),
		HoldToReleaseDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "escrow_hold_to_release_duration_seconds",
				Help:    "Time from transaction creation to payment release",
				Buckets: prometheus.ExponentialBuckets(60, 2, 12),
			},
			[]string{"kind"},
		),
	}
}

func (m *EscrowMetrics) RecordCreated(tx *domain.Transaction) {
	if m == nil {
		return
	}
	m.TransactionsCreatedTotal.WithLabelValues(string(tx.Kind), tx.ProviderID).Inc()
	m.TransactionsCreatedAmount.WithLabelValues(string(tx.Kind)).Add(tx.TotalAmount)
}

func (m *EscrowMetrics) RecordHeld(tx *domain.Transaction) {
	if m == nil {
		return
	}
	m.FundsHeldTotal.WithLabelValues(string(tx.Kind)).Inc()
	m.FundsHeldAmountTotal.WithLabelValues(string(tx.Kind)).Add(tx.AmountHeld)
}

func (m *EscrowMetrics) RecordReleased(tx *domain.Transaction, amount, commission float64, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.PaymentsReleasedTotal.WithLabelValues(string(tx.Kind), tx.ProviderID).Inc()
	m.PaymentsReleasedAmount.WithLabelValues(string(tx.Kind)).Add(amount - commission)
	m.CommissionAmountTotal.WithLabelValues(string(tx.Kind)).Add(commission)
	m.HoldToReleaseDuration.WithLabelValues(string(tx.Kind)).Observe(elapsed.Seconds())
}

func (m *EscrowMetrics) RecordCancelled(tx *domain.Transaction) {
	if m == nil {
		return
	}
	m.TransactionsCancelledTotal.WithLabelValues(string(tx.Kind)).Inc()
}

func (m *EscrowMetrics) RecordDisputed(tx *domain.Transaction) {
	if m == nil {
		return
	}
	m.TransactionsDisputedTotal.WithLabelValues(string(tx.Kind)).Inc()
}

func (m *EscrowMetrics) RecordInsufficientFunds(tx *domain.Transaction) {
	if m == nil {
		return
	}
	m.InsufficientFundsTotal.WithLabelValues(string(tx.Kind)).Inc()
}

func (m *EscrowMetrics) RecordVerificationFailure(factors ...string) {
	if m == nil {
		return
	}
	for _, factor := range factors {
		m.VerificationFailuresTotal.WithLabelValues(factor).Inc()
	}
}

func (m *EscrowMetrics) RecordError(operation string) {
	if m == nil {
		return
	}
	m.OperationErrorsTotal.WithLabelValues(operation).Inc()
}
