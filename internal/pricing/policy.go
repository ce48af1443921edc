package pricing

import (
	"fmt"
	"math"
	"strings"

	"github.com/dinepay/escrow-service/internal/domain"
)

// DefaultBenchmarks are per-category average prices used when none are
// configured.
var DefaultBenchmarks = map[domain.PricingCategory]float64{
	domain.CategoryCasual:     12.99,
	domain.CategoryMidScale:   18.99,
	domain.CategoryUpscale:    27.99,
	domain.CategoryFineDining: 42.99,
}

const (
	competitiveMargin  = 5.00
	longPrepThreshold  = 120 // minutes
)

// PolicyEngine classifies pricing justifications against category
// benchmarks and computes bounded service fees. Stateless and
// deterministic.
type PolicyEngine struct {
	benchmarks map[domain.PricingCategory]float64
	fees       FeeSchedule
}

func NewPolicyEngine(benchmarks map[domain.PricingCategory]float64, fees FeeSchedule) *PolicyEngine {
	if len(benchmarks) == 0 {
		benchmarks = DefaultBenchmarks
	}
	return &PolicyEngine{benchmarks: benchmarks, fees: fees.withDefaults()}
}

// Classify picks a category by precedence: presentation tier wins over
// ingredient tier, everything else is casual.
func (p *PolicyEngine) Classify(justification domain.PricingJustification) domain.PricingCategory {
	presentation := strings.ToLower(justification.PresentationTier)
	switch {
	case strings.Contains(presentation, "fine dining"):
		return domain.CategoryFineDining
	case strings.Contains(presentation, "elegant"):
		return domain.CategoryUpscale
	}

	ingredients := strings.ToLower(justification.IngredientTier)
	for _, marker := range []string{"premium", "organic", "exotic"} {
		if strings.Contains(ingredients, marker) {
			return domain.CategoryMidScale
		}
	}

	return domain.CategoryCasual
}

// ValidatePricing always returns a report; there are no error conditions.
func (p *PolicyEngine) ValidatePricing(justification domain.PricingJustification, proposedPrice float64) *domain.PricingReport {
	category := p.Classify(justification)
	benchmark := p.benchmarks[category]

	diff := proposedPrice - benchmark
	score := 100 - math.Abs(diff/benchmark*100)
	if score < 0 {
		score = 0
	}

	report := &domain.PricingReport{
		Category:             category,
		BenchmarkPrice:       benchmark,
		ProposedPrice:        proposedPrice,
		Difference:           diff,
		IsCompetitive:        diff <= competitiveMargin,
		CompetitivenessScore: score,
	}

	if !report.IsCompetitive {
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("price is %.2f above the %s benchmark of %.2f; consider a price reduction", diff, category, benchmark))
		if justification.AuthenticityClaim != "" {
			report.Recommendations = append(report.Recommendations,
				fmt.Sprintf("highlight the %q authenticity claim to justify the premium", justification.AuthenticityClaim))
		} else {
			report.Recommendations = append(report.Recommendations,
				"consider an authenticity framing (regional origin, family recipe) to support the price")
		}
	}
	if justification.PreparationMinutes > longPrepThreshold {
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("preparation takes %d minutes; highlight the labor involved as premium value", justification.PreparationMinutes))
	}

	return report
}
