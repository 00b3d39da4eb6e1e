package httpadapter

import (
	"net/http"

	"crowdvault/internal/core/domain"
	"crowdvault/internal/core/port"
	"crowdvault/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the usecase to execute business logic, the configured
// asset allow-list and a logger for structured logging. Routes are
// registered on a chi.Router; mutating routes sit behind the auth
// middleware so every operation carries a caller identity.
type Handler struct {
	svc     port.CampaignUseCase
	assets  domain.Allowlist
	metrics *metrics.Metrics
	logger  *slog.Logger
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. The auth
// middleware guards the mutating endpoints; reads are open.
func NewHandler(svc port.CampaignUseCase, assets domain.Allowlist, auth func(http.Handler) http.Handler, m *metrics.Metrics, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, assets: assets, metrics: m, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/assets", h.handleAssets)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Get("/campaigns/{id}/transfers", h.handleListTransfers)
		r.Get("/campaigns/{id}/contributions/{contributor}", h.handleGetContribution)

		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Post("/campaigns/{id}/contributions", h.handleContribute)
			r.Delete("/campaigns/{id}/contributions", h.handleCancelContribution)
			r.Post("/campaigns/{id}/withdrawal", h.handleWithdraw)
			r.Post("/campaigns/{id}/refund", h.handleRefund)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
