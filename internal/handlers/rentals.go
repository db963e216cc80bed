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
	"github.com/locacare/backend/internal/service"
)

func (h *Handler) CreateRental(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok || !authz.CanWrite(actor, authz.ResourceRentals) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var input service.CreateRentalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	rental, err := h.rentalService.CreateRental(r.Context(), input)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrInvalidStatus),
		errors.Is(err, apperrors.ErrInvalidTotalValue),
		errors.Is(err, apperrors.ErrInvalidReferral):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case errors.Is(err, apperrors.ErrClientNotFound):
		http.Error(w, "client not found", http.StatusUnprocessableEntity)
		return
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("create rental error", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(rental)
}

func (h *Handler) ListRentals(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok || !authz.CanRead(actor, authz.ResourceRentals) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var status *models.RentalStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := models.RentalStatus(raw)
		if !s.Valid() {
			http.Error(w, "invalid status filter", http.StatusBadRequest)
			return
		}
		status = &s
	}

	rentals, err := h.rentalService.ListRentals(r.Context(), status)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("list rentals error", zap.Error(err))
		return
	}

	if len(rentals) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(rentals)
}

func (h *Handler) GetRental(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok || !authz.CanRead(actor, authz.ResourceRentals) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	rental, err := h.rentalService.GetRental(r.Context(), chi.URLParam(r, "id"))
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrRentalNotFound):
		http.Error(w, "rental not found", http.StatusNotFound)
		return
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("get rental error", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(rental)
}

type updateStatusRequest struct {
	Status models.RentalStatus `json:"status"`
}

func (h *Handler) UpdateRentalStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok || !authz.CanWrite(actor, authz.ResourceRentals) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	rental, err := h.rentalService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrInvalidStatus):
		http.Error(w, "invalid status", http.StatusUnprocessableEntity)
		return
	case errors.Is(err, apperrors.ErrRentalNotFound):
		http.Error(w, "rental not found", http.StatusNotFound)
		return
	case errors.Is(err, apperrors.ErrRentalCompleted):
		http.Error(w, "rental is in a terminal status", http.StatusConflict)
		return
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("update rental status error", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(rental)
}
