package handlers

import (
	"net/http"
	"time"
)

// HealthResponse represents the liveness probe response
// swagger:model HealthResponse
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// NewHealthHandler returns a liveness probe handler.
// @Summary Health check
// @Description Report service liveness with the server timestamp
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Alive"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:    "OK",
			Message:   "Chore board API is up",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
