package handlers

import (
	"net/http"
)

// Ping handles GET /ping
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("This is working"))
}

// Health handles GET /healthz and checks the database is reachable.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if _, err := h.repo.GetUser(r.Context(), h.currentUserID()); err != nil {
		writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
