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

func (h *Handler) CreateChair(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok || !authz.CanWrite(actor, authz.ResourceChairs) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var chair models.Chair
	if err := json.NewDecoder(r.Body).Decode(&chair); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if err := h.chairService.CreateChair(r.Context(), &chair); err != nil {
		if errors.Is(err, apperrors.ErrInvalidRequest) {
			http.Error(w, "invalid chair data", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("create chair error", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(chair)
}

func (h *Handler) ListChairs(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok || !authz.CanRead(actor, authz.ResourceChairs) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	chairs, err := h.chairService.ListChairs(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("list chairs error", zap.Error(err))
		return
	}

	if len(chairs) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(chairs)
}

func (h *Handler) GetChair(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok || !authz.CanRead(actor, authz.ResourceChairs) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid chair id", http.StatusBadRequest)
		return
	}

	chair, err := h.chairService.GetChair(r.Context(), id)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrChairNotFound):
		http.Error(w, "chair not found", http.StatusNotFound)
		return
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("get chair error", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(chair)
}

func (h *Handler) UpdateChair(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok || !authz.CanWrite(actor, authz.ResourceChairs) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid chair id", http.StatusBadRequest)
		return
	}

	var chair models.Chair
	if err := json.NewDecoder(r.Body).Decode(&chair); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	chair.ID = id

	err = h.chairService.UpdateChair(r.Context(), &chair)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrInvalidRequest):
		http.Error(w, "invalid chair data", http.StatusUnprocessableEntity)
		return
	case errors.Is(err, apperrors.ErrChairNotFound):
		http.Error(w, "chair not found", http.StatusNotFound)
		return
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("update chair error", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(chair)
}
