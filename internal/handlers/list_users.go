package handlers

import (
	"context"
	"net/http"

	"github.com/imaciel7/lar-doce-api/internal/logger"
	"github.com/imaciel7/lar-doce-api/internal/models"
)

// UsersLister defines the interface that the user listing service must implement.
type UsersLister interface {
	ListUsers(ctx context.Context) ([]models.UserDB, error)
}

// ListUsersResponse represents the user listing response
// swagger:model ListUsersResponse
type ListUsersResponse struct {
	Users []models.UserDB `json:"users"`
}

// NewListUsersHandler returns an HTTP handler listing all users.
// @Summary List users
// @Description Return every user profile, excluding credentials
// @Tags users
// @Produce json
// @Success 200 {object} handlers.ListUsersResponse "User profiles"
// @Router /users [get]
func NewListUsersHandler(svc UsersLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if users == nil {
			users = []models.UserDB{}
		}
		writeJSON(w, http.StatusOK, ListUsersResponse{Users: users})
	}
}
