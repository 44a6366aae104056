package handlers

import (
	"context"
	"net/http"

	"github.com/imaciel7/lar-doce-api/internal/logger"
	"github.com/imaciel7/lar-doce-api/internal/models"
)

// StatsComputer defines the interface that the stats service must implement.
type StatsComputer interface {
	ComputeStats(ctx context.Context) (*models.Stats, error)
}

// NewStatsHandler returns an HTTP handler for completion statistics.
// @Summary Completion statistics
// @Description Return overall and per-day completion progress
// @Tags stats
// @Produce json
// @Success 200 {object} models.Stats "Statistics"
// @Router /stats [get]
func NewStatsHandler(svc StatsComputer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.ComputeStats(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to compute stats", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}
