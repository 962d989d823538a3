package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/zoomie/transations/internal/middleware"
)

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.repo.ListUsers(r.Context())
	if err != nil {
		middleware.Log(r.Context()).Error("failed to list users", zap.Error(err))
		http.Error(w, "Failed to load users", http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]interface{}{
		"current_user_id": h.currentUserID(),
		"users":           users,
	})
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	user, err := h.repo.CreateUser(r.Context(), name, strings.TrimSpace(req.Email))
	if err != nil {
		middleware.Log(r.Context()).Warn("failed to create user", zap.String("name", name), zap.Error(err))
		http.Error(w, "Failed to create user", http.StatusBadRequest)
		return
	}

	writeJSON(w, r, http.StatusCreated, user)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	user, err := h.repo.GetUser(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		middleware.Log(r.Context()).Error("failed to get user", zap.Int64("user_id", id), zap.Error(err))
		http.Error(w, "Failed to load user", http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, user)
}
