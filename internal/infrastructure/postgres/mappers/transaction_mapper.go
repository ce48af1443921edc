package mappers

import (
	"github.com/dinepay/escrow-service/internal/domain"
	"github.com/dinepay/escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	tx := &domain.Transaction{
		ID:                 model.ID,
		Kind:               model.Kind,
		ConsumerID:         model.ConsumerID,
		ProviderID:         model.ProviderID,
		ProviderLocation:   domain.Coordinate{Latitude: model.ProviderLat, Longitude: model.ProviderLng},
		TokenRaw:           model.TokenRaw,
		MealPackage:        model.MealPackage,
		Justification:      model.Justification,
		ServiceFees:        model.ServiceFees,
		MealCost:           model.MealCost,
		ServiceCost:        model.ServiceCost,
		TotalAmount:        model.TotalAmount,
		AmountHeld:         model.AmountHeld,
		Status:             model.Status,
		CancelReason:       model.CancelReason,
		CreatedAt:          model.CreatedAt,
		HeldAt:             model.HeldAt,
		EntryScanAt:        model.EntryScanAt,
		ArrivedAt:          model.ArrivedAt,
		ServiceStartedAt:   model.ServiceStartedAt,
		ServiceCompletedAt: model.ServiceCompletedAt,
		ExitScanAt:         model.ExitScanAt,
		PaymentReleasedAt:  model.PaymentReleasedAt,
	}
	if model.CustomerLat != nil && model.CustomerLng != nil {
		tx.CustomerLocation = &domain.Coordinate{Latitude: *model.CustomerLat, Longitude: *model.CustomerLng}
	}
	return tx
}

func ToGORMTransaction(tx *domain.Transaction) *models.TransactionModel {
	model := &models.TransactionModel{
		ID:                 tx.ID,
		Kind:               tx.Kind,
		ConsumerID:         tx.ConsumerID,
		ProviderID:         tx.ProviderID,
		ProviderLat:        tx.ProviderLocation.Latitude,
		ProviderLng:        tx.ProviderLocation.Longitude,
		TokenRaw:           tx.TokenRaw,
		MealPackage:        tx.MealPackage,
		Justification:      tx.Justification,
		ServiceFees:        tx.ServiceFees,
		MealCost:           tx.MealCost,
		ServiceCost:        tx.ServiceCost,
		TotalAmount:        tx.TotalAmount,
		AmountHeld:         tx.AmountHeld,
		Status:             tx.Status,
		CancelReason:       tx.CancelReason,
		CreatedAt:          tx.CreatedAt,
		HeldAt:             tx.HeldAt,
		EntryScanAt:        tx.EntryScanAt,
		ArrivedAt:          tx.ArrivedAt,
		ServiceStartedAt:   tx.ServiceStartedAt,
		ServiceCompletedAt: tx.ServiceCompletedAt,
		ExitScanAt:         tx.ExitScanAt,
		PaymentReleasedAt:  tx.PaymentReleasedAt,
	}
	if tx.CustomerLocation != nil {
		lat, lng := tx.CustomerLocation.Latitude, tx.CustomerLocation.Longitude
		model.CustomerLat = &lat
		model.CustomerLng = &lng
	}
	return model
}
