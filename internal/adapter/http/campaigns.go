package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"crowdvault/internal/core/port"

	"github.com/go-chi/chi/v5"
)

type createCampaignRequest struct {
	Asset           string `json:"asset"`
	Goal            int64  `json:"goal"`
	DurationSeconds int64  `json:"duration_seconds"`
}

type campaignResponse struct {
	ID               int64     `json:"id"`
	Owner            string    `json:"owner"`
	Asset            string    `json:"asset"`
	Goal             int64     `json:"goal"`
	AmountRaised     int64     `json:"amount_raised"`
	Deadline         time.Time `json:"deadline"`
	RemainingSeconds int64     `json:"remaining_seconds"`
	Status           string    `json:"status"`
}

func toCampaignResponse(info port.CampaignInfo) campaignResponse {
	return campaignResponse{
		ID:               info.ID,
		Owner:            info.Owner,
		Asset:            info.Asset,
		Goal:             info.Goal,
		AmountRaised:     info.AmountRaised,
		Deadline:         info.Deadline,
		RemainingSeconds: int64(info.Remaining / time.Second),
		Status:           string(info.Status),
	}
}

// campaignID extracts the {id} route parameter. The boolean reports
// whether a well-formed id was present; the response is already written
// when it is not.
func campaignID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid campaign id")
		return 0, false
	}
	return id, true
}

// handleCreateCampaign opens a campaign for the authenticated caller. The
// goal and duration must not be negative; beyond that the parameters are
// taken as given.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON")
		return
	}
	if req.Goal < 0 || req.DurationSeconds < 0 {
		writeError(w, http.StatusBadRequest, "bad_request", "goal and duration must not be negative")
		return
	}

	id, err := h.svc.CreateCampaign(r.Context(), CallerFromContext(r.Context()), port.CreateCampaignReq{
		Asset:    req.Asset,
		Goal:     req.Goal,
		Duration: time.Duration(req.DurationSeconds) * time.Second,
	})
	h.observe("create_campaign", err)
	if err != nil {
		h.opError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Campaigns(r.Context())
	if err != nil {
		h.opError(w, err)
		return
	}
	out := make([]campaignResponse, len(list))
	for i, info := range list {
		out[i] = toCampaignResponse(info)
	}
	writeJSON(w, http.StatusOK, map[string]any{"campaigns": out})
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	info, err := h.svc.Campaign(r.Context(), id)
	if err != nil {
		h.opError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponse(info))
}

func (h *Handler) handleAssets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"assets": h.assets.Assets()})
}

func (h *Handler) handleGetContribution(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	contributor := chi.URLParam(r, "contributor")

	entry, err := h.svc.Contribution(r.Context(), id, contributor)
	if err != nil {
		h.opError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"campaign_id": entry.CampaignID,
		"contributor": entry.Contributor,
		"amount":      entry.Amount,
	})
}

type transferResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Direction string    `json:"direction"`
	Account   string    `json:"account"`
	Asset     string    `json:"asset"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *Handler) handleListTransfers(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	journal, err := h.svc.Transfers(r.Context(), id)
	if err != nil {
		h.opError(w, err)
		return
	}
	out := make([]transferResponse, len(journal))
	for i, tr := range journal {
		out[i] = transferResponse{
			ID:        tr.ID.String(),
			Kind:      string(tr.Kind),
			Direction: string(tr.Kind.Direction()),
			Account:   tr.Account,
			Asset:     tr.Asset,
			Amount:    tr.Amount,
			CreatedAt: tr.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"transfers": out})
}
