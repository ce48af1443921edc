package pricing

import "github.com/dinepay/escrow-service/internal/domain"

// FeeSchedule is the fixed per-service fee table plus the bounds applied to
// the combined total.
type FeeSchedule struct {
	Fixed         map[domain.ServiceType]float64
	PercentOfMeal float64
	MinimumFee    float64
	MaximumFee    float64
}

// DefaultFeeSchedule carries the platform's standard service fees.
var DefaultFeeSchedule = FeeSchedule{
	Fixed: map[domain.ServiceType]float64{
		domain.ServiceTableSetting:    2.50,
		domain.ServiceCleanup:         4.00,
		domain.ServicePrioritySeating: 3.50,
		domain.ServiceServingware:     1.50,
	},
	PercentOfMeal: 0.08,
	MinimumFee:    5.00,
	MaximumFee:    25.00,
}

func (s FeeSchedule) withDefaults() FeeSchedule {
	if s.Fixed == nil {
		s.Fixed = DefaultFeeSchedule.Fixed
	}
	if s.PercentOfMeal == 0 {
		s.PercentOfMeal = DefaultFeeSchedule.PercentOfMeal
	}
	if s.MinimumFee == 0 {
		s.MinimumFee = DefaultFeeSchedule.MinimumFee
	}
	if s.MaximumFee == 0 {
		s.MaximumFee = DefaultFeeSchedule.MaximumFee
	}
	return s
}

// CalculateServiceFees sums the fixed fee of every selected service plus a
// percentage of the meal price, then clamps the combined total into
// [MinimumFee, MaximumFee]. Unknown service types carry no fee.
func (p *PolicyEngine) CalculateServiceFees(mealPrice float64, selected []domain.ServiceType) *domain.ServiceFeeBreakdown {
	breakdown := &domain.ServiceFeeBreakdown{
		FixedFees:     make(map[domain.ServiceType]float64, len(selected)),
		PercentageFee: mealPrice * p.fees.PercentOfMeal,
	}

	sum := breakdown.PercentageFee
	for _, service := range selected {
		fee := p.fees.Fixed[service]
		breakdown.FixedFees[service] = fee
		sum += fee
	}

	breakdown.RawTotal = sum
	breakdown.Total = sum
	if sum < p.fees.MinimumFee {
		breakdown.Total = p.fees.MinimumFee
		breakdown.Clamped = true
	} else if sum > p.fees.MaximumFee {
		breakdown.Total = p.fees.MaximumFee
		breakdown.Clamped = true
	}

	return breakdown
}
