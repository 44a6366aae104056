package handlers

import (
	"context"
	"net/http"

	"github.com/imaciel7/lar-doce-api/internal/logger"
	"github.com/imaciel7/lar-doce-api/internal/models"
)

// TasksLister defines the interface that the task listing service must implement.
type TasksLister interface {
	List(ctx context.Context, day *string) ([]models.TaskDB, error)
}

// ListTasksResponse represents the task listing response
// swagger:model ListTasksResponse
type ListTasksResponse struct {
	Tasks []models.TaskDB `json:"tasks"`
}

// NewListTasksHandler returns an HTTP handler listing tasks,
// optionally filtered by the day query parameter.
// @Summary List tasks
// @Description Return all tasks, optionally filtered by exact day label
// @Tags tasks
// @Produce json
// @Param day query string false "Day label filter"
// @Success 200 {object} handlers.ListTasksResponse "Tasks"
// @Router /tasks [get]
func NewListTasksHandler(svc TasksLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var day *string
		if d := r.URL.Query().Get("day"); d != "" {
			day = &d
		}

		tasks, err := svc.List(r.Context(), day)
		if err != nil {
			logger.Log.Errorw("failed to list tasks", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if tasks == nil {
			tasks = []models.TaskDB{}
		}
		writeJSON(w, http.StatusOK, ListTasksResponse{Tasks: tasks})
	}
}
