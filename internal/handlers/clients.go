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
	"github.com/locacare/backend/internal/models"
)

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok || !authz.CanWrite(actor, authz.ResourceClients) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if err := h.clientService.CreateClient(r.Context(), &client); err != nil {
		if errors.Is(err, apperrors.ErrInvalidRequest) {
			http.Error(w, "invalid client data", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("create client error", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(client)
}

func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok || !authz.CanRead(actor, authz.ResourceClients) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	clients, err := h.clientService.ListClients(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("list clients error", zap.Error(err))
		return
	}

	if len(clients) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(clients)
}

func (h *Handler) GetClient(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok || !authz.CanRead(actor, authz.ResourceClients) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}

	client, err := h.clientService.GetClient(r.Context(), id)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrClientNotFound):
		http.Error(w, "client not found", http.StatusNotFound)
		return
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("get client error", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(client)
}

func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok || !authz.CanWrite(actor, authz.ResourceClients) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}

	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	client.ID = id

	err = h.clientService.UpdateClient(r.Context(), &client)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrInvalidRequest):
		http.Error(w, "invalid client data", http.StatusUnprocessableEntity)
		return
	case errors.Is(err, apperrors.ErrClientNotFound):
		http.Error(w, "client not found", http.StatusNotFound)
		return
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("update client error", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(client)
}
