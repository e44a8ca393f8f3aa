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

// TrailUpdater defines the interface that the trail service must implement.
type TrailUpdater interface {
	Update(ctx context.Context, trailID int, trailName string, description *string, requesterID int) (*models.Trail, error)
}

// NewUpdateTrailHandler returns the owner-only trail update handler.
// @Summary Update a trail
// @Description Updates name and description. Only the trail's creator may update it.
// @Tags trails
// @Accept json
// @Produce json
// @Param trailID path int true "Trail ID"
// @Param trailRequest body handlers.TrailRequest true "New name and description"
// @Success 200 {object} models.Trail "Updated trail"
// @Failure 400 {object} handlers.TrailErrorResponse "Invalid request"
// @Failure 401 "Unauthorized"
// @Failure 403 {object} handlers.TrailErrorResponse "Not the owner"
// @Failure 404 {object} handlers.TrailErrorResponse "Trail not found"
// @Router /api/trails/{trailID} [put]
// @Security BearerAuth
func NewUpdateTrailHandler(svc TrailUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		trailID, err := strconv.Atoi(chi.URLParam(r, "trailID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TrailErrorResponse{
				Error: "invalid trail id",
			})
			return
		}

		var req TrailRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TrailName == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TrailErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		trail, err := svc.Update(r.Context(), trailID, req.TrailName, req.Description, user.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTrailNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TrailErrorResponse{
					Error: "Trail not found",
				})
			case errors.Is(err, services.ErrTrailForbidden):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(TrailErrorResponse{
					Error: "Not authorized to update this trail",
				})
			default:
				logger.Log.Errorw("failed to update trail", "trail_id", trailID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TrailErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(trail)
	}
}
