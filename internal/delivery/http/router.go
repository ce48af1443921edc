package http

import (
	"net/http"

	"github.com/dinepay/escrow-service/internal/delivery/http/handlers"
	"github.com/dinepay/escrow-service/internal/delivery/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the escrow API. Everything under /transactions and
// /accounts requires a bearer token; health stays open for probes.
func NewRouter(handler *handlers.EscrowHandler, auth *middleware.Authenticator) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/transactions", func(r chi.Router) {
		r.Use(auth.Middleware)

		r.Post("/", handler.Create)
		r.Get("/{id}", handler.Status)
		r.Post("/{id}/hold", handler.Hold)
		r.Post("/{id}/arrival", handler.Arrival)
		r.Post("/{id}/start", handler.Start)
		r.Post("/{id}/complete", handler.Complete)
		r.Post("/{id}/cancel", handler.Cancel)
		r.Post("/{id}/dispute", handler.Dispute)
	})

	r.Route("/accounts", func(r chi.Router) {
		r.Use(auth.Middleware)

		r.Get("/{id}/balance", handler.Balance)
		r.Post("/{id}/deposit", handler.Deposit)
	})

	return r
}
