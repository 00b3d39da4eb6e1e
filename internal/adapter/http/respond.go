package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"crowdvault/internal/core/domain"
)

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Error: errorPayload{Code: code, Message: msg}})
}

// errorStatus maps an operation error to its HTTP status and error code.
func errorStatus(err error) (int, string) {
	var (
		exceeded *domain.GoalExceededError
		notOwner *domain.NotOwnerError
	)
	switch {
	case errors.Is(err, domain.ErrUnknownCampaign):
		return http.StatusNotFound, "unknown_campaign"
	case errors.Is(err, domain.ErrNoContribution):
		return http.StatusNotFound, "no_contribution"
	case errors.Is(err, domain.ErrOwnerContribution):
		return http.StatusForbidden, "owner_contribution"
	case errors.As(err, &notOwner):
		return http.StatusForbidden, "not_owner"
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid_amount"
	case errors.As(err, &exceeded):
		return http.StatusConflict, "goal_exceeded"
	case errors.Is(err, domain.ErrDeadlinePassed):
		return http.StatusConflict, "deadline_passed"
	case errors.Is(err, domain.ErrDeadlineNotPassed):
		return http.StatusConflict, "deadline_not_passed"
	case errors.Is(err, domain.ErrGoalNotReached):
		return http.StatusConflict, "goal_not_reached"
	case errors.Is(err, domain.ErrTransferFailed):
		return http.StatusBadGateway, "transfer_failed"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// opError writes the mapped error response for a failed operation.
// Server-side failures are logged; rejections are the client's business.
func (h *Handler) opError(w http.ResponseWriter, err error) {
	status, code := errorStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("operation error", slog.Any("error", err))
	}
	writeError(w, status, code, err.Error())
}

// observe records the operation outcome. Rejections and hard failures are
// told apart by the status class of the mapped error.
func (h *Handler) observe(operation string, err error) {
	outcome := "ok"
	if err != nil {
		if errors.Is(err, domain.ErrTransferFailed) {
			h.metrics.RecordTransferFailure()
		}
		if status, _ := errorStatus(err); status < http.StatusInternalServerError {
			outcome = "rejected"
		} else {
			outcome = "failed"
		}
	}
	h.metrics.RecordOperation(operation, outcome)
}
