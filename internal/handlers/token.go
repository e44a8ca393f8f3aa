package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/munawir355/muawir-alharbi/internal/logger"
	"github.com/munawir355/muawir-alharbi/internal/models"
	"github.com/munawir355/muawir-alharbi/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

// TokenResponse represents a successful login response
// swagger:model TokenResponse
type TokenResponse struct {
	// Signed session token
	AccessToken string `json:"access_token"`

	// Token type, always "bearer"
	TokenType string `json:"token_type"`

	// Summary of the authenticated user
	User models.UserSummary `json:"user"`
}

// TokenErrorResponse represents an error response for login
// swagger:model TokenErrorResponse
type TokenErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewTokenHandler returns the login endpoint handler. Credentials arrive
// as an OAuth2 password-grant form (username holds the email).
// @Summary Log in
// @Description Verifies credentials with the external identity service, provisions the local user on first login, and returns a signed session token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} handlers.TokenResponse "Session token and user summary"
// @Failure 400 {object} handlers.TokenErrorResponse "Malformed form"
// @Failure 401 {object} handlers.TokenErrorResponse "Incorrect email or password"
// @Failure 503 {object} handlers.TokenErrorResponse "Identity service unreachable"
// @Router /token [post]
func NewTokenHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TokenErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		email := r.PostFormValue("username")
		password := r.PostFormValue("password")

		token, user, err := svc.Login(r.Context(), email, password)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				w.Header().Set("WWW-Authenticate", "Bearer")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(TokenErrorResponse{
					Error: "Incorrect email or password",
				})
			case errors.Is(err, services.ErrAuthServiceUnavailable):
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(TokenErrorResponse{
					Error: "Could not connect to authentication service",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TokenErrorResponse{
					Error: "Error during user management: " + err.Error(),
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
			User:        user.Summary(),
		})
	}
}
