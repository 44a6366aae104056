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

// TaskUpdater defines the interface that the task update service must implement.
type TaskUpdater interface {
	Update(ctx context.Context, taskID int64, upd services.TaskUpdate) (*models.TaskDB, error)
}

// UpdateTaskRequest represents the JSON body for a partial task update;
// only supplied fields change
// swagger:model UpdateTaskRequest
type UpdateTaskRequest struct {
	Day            *string `json:"day,omitempty"`
	TaskName       *string `json:"task_name,omitempty"`
	AssignedUserID *int64  `json:"assigned_user_id,omitempty"`
}

// UpdateTaskResponse represents a successful update response
// swagger:model UpdateTaskResponse
type UpdateTaskResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Task    *models.TaskDB `json:"task"`
}

// NewUpdateTaskHandler returns an HTTP handler updating a task.
// @Summary Update task
// @Description Change any subset of day, task_name and assigned_user_id
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param updateRequest body handlers.UpdateTaskRequest true "Fields to change"
// @Success 200 {object} handlers.UpdateTaskResponse "Updated task"
// @Failure 400 {object} handlers.ErrorResponse "Invalid body or day label"
// @Failure 404 {object} handlers.ErrorResponse "Unknown task or assignee"
// @Router /tasks/{id} [put]
func NewUpdateTaskHandler(svc TaskUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "Task not found")
			return
		}

		var req UpdateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		task, err := svc.Update(r.Context(), id, services.TaskUpdate{
			Day:            req.Day,
			TaskName:       req.TaskName,
			AssignedUserID: req.AssignedUserID,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidDay):
				writeError(w, http.StatusBadRequest, "invalid day label")
			case errors.Is(err, services.ErrTaskNotFound):
				writeError(w, http.StatusNotFound, "Task not found")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("failed to update task", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, UpdateTaskResponse{
			Success: true,
			Message: "Task updated successfully",
			Task:    task,
		})
	}
}
