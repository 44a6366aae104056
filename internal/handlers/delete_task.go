package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/imaciel7/lar-doce-api/internal/logger"
	"github.com/imaciel7/lar-doce-api/internal/services"
)

// TaskDeleter defines the interface that the task deletion service must implement.
type TaskDeleter interface {
	Delete(ctx context.Context, taskID int64) error
}

// DeleteTaskResponse represents a successful deletion response
// swagger:model DeleteTaskResponse
type DeleteTaskResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewDeleteTaskHandler returns an HTTP handler deleting a task.
// @Summary Delete task
// @Description Remove a task permanently
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} handlers.DeleteTaskResponse "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Task not found"
// @Router /tasks/{id} [delete]
func NewDeleteTaskHandler(svc TaskDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "Task not found")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, services.ErrTaskNotFound) {
				writeError(w, http.StatusNotFound, "Task not found")
				return
			}
			logger.Log.Errorw("failed to delete task", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, DeleteTaskResponse{
			Success: true,
			Message: "Task deleted successfully",
		})
	}
}
