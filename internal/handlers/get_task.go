package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/imaciel7/lar-doce-api/internal/logger"
	"github.com/imaciel7/lar-doce-api/internal/models"
	"github.com/imaciel7/lar-doce-api/internal/services"
)

// TaskGetter defines the interface that the task lookup service must implement.
type TaskGetter interface {
	Get(ctx context.Context, id int64) (*models.TaskDB, error)
}

// TaskResponse wraps a single task
// swagger:model TaskResponse
type TaskResponse struct {
	Task *models.TaskDB `json:"task"`
}

// NewGetTaskHandler returns an HTTP handler for a single task.
// @Summary Get task
// @Description Return one task by id
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} handlers.TaskResponse "Task"
// @Failure 404 {object} handlers.ErrorResponse "Task not found"
// @Router /tasks/{id} [get]
func NewGetTaskHandler(svc TaskGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "Task not found")
			return
		}

		task, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrTaskNotFound) {
				writeError(w, http.StatusNotFound, "Task not found")
				return
			}
			logger.Log.Errorw("failed to get task", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, TaskResponse{Task: task})
	}
}
