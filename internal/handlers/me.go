package handlers

import (
	"errors"
	"net/http"

	"github.com/imaciel7/lar-doce-api/internal/logger"
	"github.com/imaciel7/lar-doce-api/internal/middlewares"
	"github.com/imaciel7/lar-doce-api/internal/services"
)

// NewMeHandler returns an HTTP handler for the authenticated user's profile.
// @Summary Current user profile
// @Description Return the profile of the JWT bearer
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.UserResponse "User profile"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Router /me [get]
func NewMeHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			logger.Log.Errorw("failed to get profile", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, UserResponse{User: user})
	}
}
