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
	"github.com/munawir355/muawir-alharbi/internal/services"
)

// TrailDeleter defines the interface that the trail service must implement.
type TrailDeleter interface {
	Delete(ctx context.Context, trailID, requesterID int) error
}

// TrailDeleteResponse represents a successful deletion response
// swagger:model TrailDeleteResponse
type TrailDeleteResponse struct {
	// Message
	Message string `json:"message"`
}

// NewDeleteTrailHandler returns the owner-only trail deletion handler.
// @Summary Delete a trail
// @Description Hard-deletes a trail. Only the trail's creator may delete it.
// @Tags trails
// @Produce json
// @Param trailID path int true "Trail ID"
// @Success 200 {object} handlers.TrailDeleteResponse "Deleted"
// @Failure 401 "Unauthorized"
// @Failure 403 {object} handlers.TrailErrorResponse "Not the owner"
// @Failure 404 {object} handlers.TrailErrorResponse "Trail not found"
// @Router /api/trails/{trailID} [delete]
// @Security BearerAuth
func NewDeleteTrailHandler(svc TrailDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), trailID, user.UserID); err != nil {
			switch {
			case errors.Is(err, services.ErrTrailNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TrailErrorResponse{
					Error: "Trail not found",
				})
			case errors.Is(err, services.ErrTrailForbidden):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(TrailErrorResponse{
					Error: "Not authorized to delete this trail",
				})
			default:
				logger.Log.Errorw("failed to delete trail", "trail_id", trailID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TrailErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TrailDeleteResponse{
			Message: "Trail deleted successfully",
		})
	}
}
