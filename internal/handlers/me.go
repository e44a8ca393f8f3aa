package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/munawir355/muawir-alharbi/internal/middlewares"
)

// NewUsersMeHandler returns the current-user endpoint handler. The user is
// resolved by the auth middleware.
// @Summary Get current user
// @Description Returns the authenticated user's summary
// @Tags users
// @Produce json
// @Success 200 {object} models.UserSummary "Current user"
// @Failure 401 "Unauthorized"
// @Router /users/me [get]
// @Security BearerAuth
func NewUsersMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user.Summary())
	}
}
