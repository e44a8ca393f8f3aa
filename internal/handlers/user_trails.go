package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/munawir355/muawir-alharbi/internal/logger"
	"github.com/munawir355/muawir-alharbi/internal/middlewares"
	"github.com/munawir355/muawir-alharbi/internal/models"
	"github.com/munawir355/muawir-alharbi/internal/services"
)

// UserTrailsLister defines the interface that the trail service must implement.
type UserTrailsLister interface {
	ListForUser(ctx context.Context, userID, requesterID int) ([]models.Trail, error)
}

// NewUserTrailsHandler returns the per-user trail listing handler. A user
// may only list their own trails.
// @Summary List a user's trails
// @Tags trails
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {array} models.Trail "User's trails"
// @Failure 401 "Unauthorized"
// @Failure 403 {object} handlers.TrailErrorResponse "Not the requested user"
// @Router /api/users/{userID}/trails [get]
// @Security BearerAuth
func NewUserTrailsHandler(svc UserTrailsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TrailErrorResponse{
				Error: "invalid user id",
			})
			return
		}

		trails, err := svc.ListForUser(r.Context(), userID, user.UserID)
		if err != nil {
			if errors.Is(err, services.ErrTrailForbidden) {
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(TrailErrorResponse{
					Error: "Not authorized to view these trails",
				})
				return
			}
			logger.Log.Errorw("failed to list user trails", "user_id", userID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TrailErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(trails)
	}
}
