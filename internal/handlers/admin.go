package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/locacare/backend/internal/apperrors"
	"github.com/locacare/backend/internal/authz"
	"github.com/locacare/backend/internal/logger"
	"github.com/locacare/backend/internal/middleware"
	"github.com/locacare/backend/internal/service"
)

func (h *Handler) CreatePartner(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok || !authz.CanManageUsers(actor) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var input service.CreatePartnerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	partner, err := h.partnerService.CreatePartner(r.Context(), input)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrInvalidRequest), errors.Is(err, apperrors.ErrInvalidReferral):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, apperrors.ErrUserAlreadyExists):
		http.Error(w, "user already exists", http.StatusConflict)
		return
	case errors.Is(err, apperrors.ErrReferralCodeTaken):
		http.Error(w, "referral code already in use", http.StatusConflict)
		return
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("create partner error", zap.Error(err))
		return
	}

	partner.Password = ""
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(partner)
}

func (h *Handler) ListPartners(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok || !authz.CanManageUsers(actor) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	partners, err := h.partnerService.ListPartners(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("list partners error", zap.Error(err))
		return
	}

	for i := range partners {
		partners[i].Password = ""
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(partners)
}

type passwordRequest struct {
	Password string `json:"password"`
}

func (h *Handler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	// Admins may reset anyone's password, everyone may change their own.
	if !authz.CanManageUsers(actor) && actor.UserID != userID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req passwordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	err = h.userService.UpdatePassword(r.Context(), userID, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrUserNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
		return
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("update password error", zap.Error(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok || !authz.CanManageUsers(actor) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	err = h.userService.DeleteUser(r.Context(), userID)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrUserNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
		return
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("delete user error", zap.Error(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
