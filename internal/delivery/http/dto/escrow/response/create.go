package response

import "github.com/dinepay/escrow-service/internal/domain"

type CreateTransactionResponse struct {
	TransactionID string                      `json:"transaction_id"`
	Status        string                      `json:"status"`
	ScanPayload   string                      `json:"scan_payload"`
	MealCost      float64                     `json:"meal_cost"`
	ServiceCost   float64                     `json:"service_cost"`
	TotalAmount   float64                     `json:"total_amount"`
	MealPackage   *domain.MealPackage         `json:"meal_package"`
	ServiceFees   *domain.ServiceFeeBreakdown `json:"service_fees"`
	PricingReport *domain.PricingReport       `json:"pricing_report"`
}
