package handlers

import (
	"context"
	"net/http"

	"github.com/imaciel7/lar-doce-api/internal/logger"
	"github.com/imaciel7/lar-doce-api/internal/models"
)

// RankingComputer defines the interface that the scoring service must implement.
type RankingComputer interface {
	ComputeRanking(ctx context.Context) ([]models.RankingEntry, error)
}

// RankingResponse represents the ranking response
// swagger:model RankingResponse
type RankingResponse struct {
	Ranking    []models.RankingEntry `json:"ranking"`
	TotalUsers int                   `json:"total_users"`
}

// NewRankingHandler returns an HTTP handler for the points ranking.
// @Summary Points ranking
// @Description Return every user ordered by accumulated points from completed tasks
// @Tags stats
// @Produce json
// @Success 200 {object} handlers.RankingResponse "Ranking"
// @Router /ranking [get]
func NewRankingHandler(svc RankingComputer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ranking, err := svc.ComputeRanking(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to compute ranking", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if ranking == nil {
			ranking = []models.RankingEntry{}
		}
		writeJSON(w, http.StatusOK, RankingResponse{
			Ranking:    ranking,
			TotalUsers: len(ranking),
		})
	}
}
