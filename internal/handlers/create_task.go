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

// TaskCreator defines the interface that the task creation service must implement.
type TaskCreator interface {
	Create(ctx context.Context, day, taskName string, assignedUserID int64, points *int) (*models.TaskDB, error)
}

// CreateTaskRequest represents the JSON body for creating a task
// swagger:model CreateTaskRequest
type CreateTaskRequest struct {
	// Day label
	// required: true
	// example: Segunda
	Day string `json:"day"`

	// Chore description
	// required: true
	// example: Lavar a louça
	TaskName string `json:"task_name"`

	// Assignee user id
	// required: true
	// example: 1
	AssignedUserID int64 `json:"assigned_user_id"`

	// Optional explicit point value; defaults by chore name when omitted
	Points *int `json:"points,omitempty"`
}

// CreateTaskResponse represents a successful creation response
// swagger:model CreateTaskResponse
type CreateTaskResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Task    *models.TaskDB `json:"task"`
}

// NewCreateTaskHandler returns an HTTP handler creating a task.
// @Summary Create task
// @Description Create a new chore assigned to a known user
// @Tags tasks
// @Accept json
// @Produce json
// @Param createRequest body handlers.CreateTaskRequest true "Task to create"
// @Success 201 {object} handlers.CreateTaskResponse "Created task"
// @Failure 400 {object} handlers.ErrorResponse "Missing required field or invalid day"
// @Failure 404 {object} handlers.ErrorResponse "Unknown assignee"
// @Router /tasks [post]
func NewCreateTaskHandler(svc TaskCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Day == "" || req.TaskName == "" || req.AssignedUserID == 0 {
			writeError(w, http.StatusBadRequest, "day, task_name and assigned_user_id are required")
			return
		}

		task, err := svc.Create(r.Context(), req.Day, req.TaskName, req.AssignedUserID, req.Points)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidDay):
				writeError(w, http.StatusBadRequest, "invalid day label")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("failed to create task", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, CreateTaskResponse{
			Success: true,
			Message: "Task created successfully",
			Task:    task,
		})
	}
}
