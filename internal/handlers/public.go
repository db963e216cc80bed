package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/locacare/backend/internal/apperrors"
	"github.com/locacare/backend/internal/logger"
	"github.com/locacare/backend/internal/service"
)

type leadResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (h *Handler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var input service.LeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	rental, err := h.rentalService.CreateLead(r.Context(), input)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrInvalidLeadInput), errors.Is(err, apperrors.ErrInvalidReferral):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case errors.Is(err, apperrors.ErrPlanNotFound):
		http.Error(w, "plan not found", http.StatusUnprocessableEntity)
		return
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("create lead error", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(leadResponse{ID: rental.PublicID, Status: string(rental.Status)})
}

func (h *Handler) ListPublicPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planService.ListPlans(r.Context(), true)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("list public plans error", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(plans)
}
