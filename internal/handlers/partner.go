package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/locacare/backend/internal/apperrors"
	"github.com/locacare/backend/internal/authz"
	"github.com/locacare/backend/internal/logger"
	"github.com/locacare/backend/internal/middleware"
	"github.com/locacare/backend/internal/models"
)

func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	balance, err := h.balanceService.GetPartnerBalance(r.Context(), actor.UserID)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrNotAPartner):
		http.Error(w, "user has no referral code", http.StatusForbidden)
		return
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get partner balance", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(balance)
}

func (h *Handler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if !authz.CanRead(actor, authz.ResourceWithdrawals) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	withdrawals, err := h.balanceService.GetWithdrawals(r.Context(), actor.UserID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get withdrawals", zap.Error(err))
		return
	}

	if len(withdrawals) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(withdrawals); err != nil {
		logger.Log.Error("failed to encode withdrawals json", zap.Error(err))
	}
}

func (h *Handler) SubmitWithdrawal(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if !authz.CanWrite(actor, authz.ResourceWithdrawals) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req models.WithdrawalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	withdrawal, err := h.balanceService.SubmitWithdrawal(r.Context(), actor.UserID, req)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrInvalidWithdrawal):
		http.Error(w, "invalid withdrawal amount or pix key", http.StatusBadRequest)
		return
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		http.Error(w, "insufficient funds", http.StatusPaymentRequired)
		return
	case errors.Is(err, apperrors.ErrNotAPartner):
		http.Error(w, "user has no referral code", http.StatusForbidden)
		return
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("withdrawal submit error", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(withdrawal)
}
