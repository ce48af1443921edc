package request

type Component struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Justification struct {
	Complexity         string `json:"complexity"`
	IngredientTier     string `json:"ingredient_tier"`
	PreparationMinutes int    `json:"preparation_minutes"`
	AuthenticityClaim  string `json:"authenticity_claim"`
	PresentationTier   string `json:"presentation_tier"`
	Rationale          string `json:"rationale"`
}

type CreateTransactionRequest struct {
	Kind          string               `json:"kind"`
	ConsumerID    string               `json:"consumer_id"`
	ProviderID    string               `json:"provider_id"`
	ProviderLat   float64              `json:"provider_lat"`
	ProviderLng   float64              `json:"provider_lng"`
	Components    map[string]Component `json:"components"`
	Justification Justification        `json:"justification"`
	Services      []string             `json:"services"`
}
