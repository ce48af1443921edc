package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dinepay/escrow-service/internal/delivery/http/dto/escrow/request"
	"github.com/dinepay/escrow-service/internal/delivery/http/dto/escrow/response"
	"github.com/dinepay/escrow-service/internal/domain"
	escrowdto "github.com/dinepay/escrow-service/internal/usecase/dto/escrow"
	"github.com/dinepay/escrow-service/internal/usecase/orchestrator"
	"github.com/go-chi/chi/v5"
)

type EscrowHandler struct {
	Orchestrator *orchestrator.VerificationOrchestrator
}

func NewEscrowHandler(o *orchestrator.VerificationOrchestrator) *EscrowHandler {
	return &EscrowHandler{Orchestrator: o}
}

func (h *EscrowHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	components := make(map[domain.Slot]domain.PricedItem, len(req.Components))
	for slot, item := range req.Components {
		components[domain.Slot(slot)] = domain.PricedItem{Name: item.Name, Price: item.Price}
	}

	services := make([]domain.ServiceType, 0, len(req.Services))
	for _, service := range req.Services {
		services = append(services, domain.ServiceType(service))
	}

	out, err := h.Orchestrator.OpenTransaction(r.Context(), &escrowdto.OpenTransactionInput{
		Kind:       domain.TransactionKind(req.Kind),
		ConsumerID: req.ConsumerID,
		ProviderID: req.ProviderID,
		ProviderLocation: domain.Coordinate{
			Latitude:  req.ProviderLat,
			Longitude: req.ProviderLng,
		},
		Components: components,
		Justification: domain.PricingJustification{
			Complexity:         req.Justification.Complexity,
			IngredientTier:     req.Justification.IngredientTier,
			PreparationMinutes: req.Justification.PreparationMinutes,
			AuthenticityClaim:  req.Justification.AuthenticityClaim,
			PresentationTier:   req.Justification.PresentationTier,
			Rationale:          req.Justification.Rationale,
		},
		Services: services,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	tx := out.Transaction
	writeJSON(w, http.StatusCreated, response.CreateTransactionResponse{
		TransactionID: tx.ID,
		Status:        string(tx.Status),
		ScanPayload:   out.ScanPayload,
		MealCost:      tx.MealCost,
		ServiceCost:   tx.ServiceCost,
		TotalAmount:   tx.TotalAmount,
		MealPackage:   &tx.MealPackage,
		ServiceFees:   &tx.ServiceFees,
		PricingReport: out.PricingReport,
	})
}

func (h *EscrowHandler) Hold(w http.ResponseWriter, r *http.Request) {
	result, err := h.Orchestrator.HoldFunds(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *EscrowHandler) Arrival(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyArrivalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	result, err := h.Orchestrator.VerifyArrival(
		r.Context(),
		chi.URLParam(r, "id"),
		domain.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude},
		req.ScanPayload,
	)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	status := http.StatusOK
	if !result.Verified {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, result)
}

func (h *EscrowHandler) Start(w http.ResponseWriter, r *http.Request) {
	if err := h.Orchestrator.StartService(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EscrowHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req request.CompleteTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	result, err := h.Orchestrator.CompleteAndRelease(r.Context(), chi.URLParam(r, "id"), req.ExitScanPayload)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *EscrowHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	var req request.CancelTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	if err := h.Orchestrator.CancelTransaction(r.Context(), chi.URLParam(r, "id"), req.Reason); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EscrowHandler) Dispute(w http.ResponseWriter, r *http.Request) {
	var req request.DisputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	if err := h.Orchestrator.OpenDispute(r.Context(), chi.URLParam(r, "id"), req.Reason); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EscrowHandler) Status(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.Orchestrator.GetStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	tx := snapshot.Transaction
	writeJSON(w, http.StatusOK, response.StatusResponse{
		TransactionID: tx.ID,
		Status:        string(tx.Status),
		AmountHeld:    tx.AmountHeld,
		TotalAmount:   tx.TotalAmount,
		CancelReason:  tx.CancelReason,
		Timeline:      snapshot.Timeline,
	})
}

func writeDomainError(w http.ResponseWriter, err error) {
	var (
		invalidState *domain.InvalidStateTransitionError
		insufficient *domain.InsufficientFundsError
		decodeErr    *domain.DecodeError
		missing      *domain.MissingComponentError
	)
	switch {
	case errors.Is(err, domain.ErrTransactionNotFound), errors.Is(err, domain.ErrAccountNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateRelease),
		errors.Is(err, domain.ErrStaleTransactionStatus),
		errors.As(err, &invalidState):
		writeError(w, http.StatusConflict, err.Error())
	case errors.As(err, &insufficient):
		writeError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, domain.ErrTokenMismatch), errors.As(err, &decodeErr):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &missing), errors.Is(err, domain.ErrInvalidDeposit):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, response.ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *EscrowHandler) Balance(w http.ResponseWriter, r *http.Request) {
	account, err := h.Orchestrator.GetBalance(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse(account))
}

func (h *EscrowHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req request.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	account, err := h.Orchestrator.Deposit(r.Context(), chi.URLParam(r, "id"), req.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse(account))
}

func balanceResponse(account *domain.AccountBalance) response.BalanceResponse {
	return response.BalanceResponse{
		AccountID:        account.AccountID,
		AvailableBalance: account.AvailableBalance,
		HeldBalance:      account.HeldBalance,
		LifetimeEarnings: account.LifetimeEarnings,
		UpdatedAt:        account.UpdatedAt,
	}
}
