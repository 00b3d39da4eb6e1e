package httpadapter

import (
	"encoding/json"
	"net/http"
)

type contributeRequest struct {
	Amount int64 `json:"amount"`
}

// handleContribute records a contribution from the authenticated caller.
// Negative amounts never make it past the wire; everything else is the
// usecase's call.
func (h *Handler) handleContribute(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	var req contributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON")
		return
	}
	if req.Amount < 0 {
		writeError(w, http.StatusBadRequest, "bad_request", "amount must not be negative")
		return
	}

	err := h.svc.Contribute(r.Context(), CallerFromContext(r.Context()), id, req.Amount)
	h.observe("contribute", err)
	if err != nil {
		h.opError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"contributed": req.Amount})
}

func (h *Handler) handleCancelContribution(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}

	amount, err := h.svc.CancelContribution(r.Context(), CallerFromContext(r.Context()), id)
	h.observe("cancel_contribution", err)
	if err != nil {
		h.opError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"refunded": amount})
}

func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}

	amount, err := h.svc.Withdraw(r.Context(), CallerFromContext(r.Context()), id)
	h.observe("withdraw", err)
	if err != nil {
		h.opError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"withdrawn": amount})
}

// handleRefund pays the caller's entry back on a missed campaign. A
// campaign that is still open or reached its goal answers with a zero
// payout instead of an error.
func (h *Handler) handleRefund(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}

	amount, err := h.svc.Refund(r.Context(), CallerFromContext(r.Context()), id)
	h.observe("refund", err)
	if err != nil {
		h.opError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"refunded": amount})
}
