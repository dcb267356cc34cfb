package handler

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Success           bool   `json:"success"`
	Status            string `json:"status"`
	DatabaseConnected bool   `json:"databaseConnected"`
	Timestamp         string `json:"timestamp"`
}

// Health handles GET /api/health. It always answers 200: a degraded store
// only flips databaseConnected, the process itself keeps serving.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	connected := h.db != nil && h.db.Ping(r.Context()) == nil

	writeJSON(w, http.StatusOK, healthResponse{
		Success:           true,
		Status:            "Server is running",
		DatabaseConnected: connected,
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
	})
}
