package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/imaciel7/lar-doce-api/internal/logger"
	"github.com/imaciel7/lar-doce-api/internal/models"
	"github.com/imaciel7/lar-doce-api/internal/services"
)

// UserGetter defines the interface that the user lookup service must implement.
type UserGetter interface {
	GetProfile(ctx context.Context, userID int64) (*models.UserDB, error)
}

// UserResponse wraps a single user profile
// swagger:model UserResponse
type UserResponse struct {
	User *models.UserDB `json:"user"`
}

// NewGetUserHandler returns an HTTP handler for a single user profile.
// @Summary Get user
// @Description Return one user profile by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} handlers.UserResponse "User profile"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		user, err := svc.GetProfile(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			logger.Log.Errorw("failed to get user", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, UserResponse{User: user})
	}
}
