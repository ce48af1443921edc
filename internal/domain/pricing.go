package domain

type PricingCategory string

const (
	CategoryCasual     PricingCategory = "casual"
	CategoryMidScale   PricingCategory = "mid_scale"
	CategoryUpscale    PricingCategory = "upscale"
	CategoryFineDining PricingCategory = "fine_dining"
)

// PricingJustification is the provider's classification input.
// It is never mutated after submission.
type PricingJustification struct {
	Complexity         string `json:"complexity"`
	IngredientTier     string `json:"ingredient_tier"`
	PreparationMinutes int    `json:"preparation_minutes"`
	AuthenticityClaim  string `json:"authenticity_claim"`
	PresentationTier   string `json:"presentation_tier"`
	Rationale          string `json:"rationale"`
}

type PricingReport struct {
	Category             PricingCategory `json:"category"`
	BenchmarkPrice       float64         `json:"benchmark_price"`
	ProposedPrice        float64         `json:"proposed_price"`
	Difference           float64         `json:"difference"`
	IsCompetitive        bool            `json:"is_competitive"`
	CompetitivenessScore float64         `json:"competitiveness_score"`
	Recommendations      []string        `json:"recommendations,omitempty"`
}

type ServiceType string

const (
	ServiceTableSetting    ServiceType = "table_setting"
	ServiceCleanup         ServiceType = "cleanup"
	ServicePrioritySeating ServiceType = "priority_seating"
	ServiceServingware     ServiceType = "servingware"
)

type ServiceFeeBreakdown struct {
	FixedFees     map[ServiceType]float64 `json:"fixed_fees"`
	PercentageFee float64                 `json:"percentage_fee"`
	RawTotal      float64                 `json:"raw_total"`
	Total         float64                 `json:"total"` // clamped into [floor, ceiling]
	Clamped       bool                    `json:"clamped"`
}
