package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/imaciel7/lar-doce-api/internal/logger"
	"github.com/imaciel7/lar-doce-api/internal/models"
	"github.com/imaciel7/lar-doce-api/internal/services"
)

// TaskToggler defines the interface that the toggle service must implement.
type TaskToggler interface {
	Toggle(ctx context.Context, taskID, actingUserID int64) (*models.TaskDB, error)
}

// ToggleTaskRequest represents the JSON body for toggling a task
// swagger:model ToggleTaskRequest
type ToggleTaskRequest struct {
	// Acting user id
	// required: true
	// example: 2
	UserID int64 `json:"user_id"`
}

// ToggleTaskResponse represents a successful toggle response
// swagger:model ToggleTaskResponse
type ToggleTaskResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Task    *models.TaskDB `json:"task"`
}

// NewToggleTaskHandler returns an HTTP handler flipping a task's completion state.
// @Summary Toggle task completion
// @Description Mark a pending task completed by the acting user, or clear a completed task back to pending
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param toggleRequest body handlers.ToggleTaskRequest true "Acting user"
// @Success 200 {object} handlers.ToggleTaskResponse "Toggled task"
// @Failure 400 {object} handlers.ErrorResponse "Missing user_id"
// @Failure 404 {object} handlers.ErrorResponse "Unknown task or user"
// @Router /tasks/{id}/toggle [post]
func NewToggleTaskHandler(svc TaskToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "Task not found")
			return
		}

		var req ToggleTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.UserID == 0 {
			writeError(w, http.StatusBadRequest, "user_id is required")
			return
		}

		task, err := svc.Toggle(r.Context(), id, req.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTaskNotFound):
				writeError(w, http.StatusNotFound, "Task not found")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("failed to toggle task", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		message := "Task marked as not completed"
		if task.IsCompleted {
			message = "Task marked as completed"
		}

		writeJSON(w, http.StatusOK, ToggleTaskResponse{
			Success: true,
			Message: message,
			Task:    task,
		})
	}
}
