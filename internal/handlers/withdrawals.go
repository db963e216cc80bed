package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/locacare/backend/internal/apperrors"
	"github.com/locacare/backend/internal/authz"
	"github.com/locacare/backend/internal/logger"
	"github.com/locacare/backend/internal/middleware"
	"github.com/locacare/backend/internal/models"
)

func (h *Handler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok || !authz.CanDecide(actor) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var status *models.WithdrawalStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := models.WithdrawalStatus(raw)
		if s != models.WithdrawalPending && s != models.WithdrawalPaid && s != models.WithdrawalRejected {
			http.Error(w, "invalid status filter", http.StatusBadRequest)
			return
		}
		status = &s
	}

	withdrawals, err := h.balanceService.ListWithdrawals(r.Context(), status)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("list withdrawals error", zap.Error(err))
		return
	}

	if len(withdrawals) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(withdrawals)
}

type decisionRequest struct {
	Decision models.WithdrawalStatus `json:"decision"`
	Note     string                  `json:"note,omitempty"`
}

func (h *Handler) DecideWithdrawal(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok || !authz.CanDecide(actor) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	withdrawal, err := h.balanceService.DecideWithdrawal(r.Context(), chi.URLParam(r, "id"), req.Decision, req.Note)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrInvalidDecision):
		http.Error(w, "decision must be paid or rejected", http.StatusBadRequest)
		return
	case errors.Is(err, apperrors.ErrWithdrawalNotFound):
		http.Error(w, "withdrawal not found", http.StatusNotFound)
		return
	case errors.Is(err, apperrors.ErrAlreadyDecided):
		http.Error(w, "withdrawal already decided", http.StatusConflict)
		return
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("decide withdrawal error", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(withdrawal)
}
