package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/munawir355/muawir-alharbi/internal/middlewares"
)

// ProtectedResponse represents the protected-route example response
// swagger:model ProtectedResponse
type ProtectedResponse struct {
	// Message
	Message string `json:"message"`

	// Authenticated user's email
	UserEmail string `json:"user_email"`
}

// NewProtectedHandler returns an example protected route.
// @Summary Protected route example
// @Tags users
// @Produce json
// @Success 200 {object} handlers.ProtectedResponse "Authenticated"
// @Failure 401 "Unauthorized"
// @Router /protected [get]
// @Security BearerAuth
func NewProtectedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProtectedResponse{
			Message:   "You are authenticated",
			UserEmail: user.Email,
		})
	}
}
