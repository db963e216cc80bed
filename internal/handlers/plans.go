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

func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok || !authz.CanWrite(actor, authz.ResourcePlans) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var plan models.Plan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if err := h.planService.CreatePlan(r.Context(), &plan); err != nil {
		if errors.Is(err, apperrors.ErrInvalidRequest) {
			http.Error(w, "invalid plan data", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("create plan error", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(plan)
}

func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok || !authz.CanRead(actor, authz.ResourcePlans) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	activeOnly := r.URL.Query().Get("active") == "true"
	plans, err := h.planService.ListPlans(r.Context(), activeOnly)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("list plans error", zap.Error(err))
		return
	}

	if len(plans) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(plans)
}

func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok || !authz.CanRead(actor, authz.ResourcePlans) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid plan id", http.StatusBadRequest)
		return
	}

	plan, err := h.planService.GetPlan(r.Context(), id)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrPlanNotFound):
		http.Error(w, "plan not found", http.StatusNotFound)
		return
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("get plan error", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(plan)
}

func (h *Handler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok || !authz.CanWrite(actor, authz.ResourcePlans) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid plan id", http.StatusBadRequest)
		return
	}

	var plan models.Plan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	plan.ID = id

	err = h.planService.UpdatePlan(r.Context(), &plan)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrInvalidRequest):
		http.Error(w, "invalid plan data", http.StatusUnprocessableEntity)
		return
	case errors.Is(err, apperrors.ErrPlanNotFound):
		http.Error(w, "plan not found", http.StatusNotFound)
		return
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("update plan error", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(plan)
}
