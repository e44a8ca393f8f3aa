package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/munawir355/muawir-alharbi/internal/logger"
	"github.com/munawir355/muawir-alharbi/internal/models"
	"github.com/munawir355/muawir-alharbi/internal/services"
)

// TrailGetter defines the interface that the trail service must implement.
type TrailGetter interface {
	Get(ctx context.Context, trailID int) (*models.Trail, error)
}

// NewGetTrailHandler returns the single-trail lookup handler.
// @Summary Get a trail by id
// @Tags trails
// @Produce json
// @Param trailID path int true "Trail ID"
// @Success 200 {object} models.Trail "Trail"
// @Failure 404 {object} handlers.TrailErrorResponse "Trail not found"
// @Router /api/trails/{trailID} [get]
func NewGetTrailHandler(svc TrailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trailID, err := strconv.Atoi(chi.URLParam(r, "trailID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TrailErrorResponse{
				Error: "invalid trail id",
			})
			return
		}

		trail, err := svc.Get(r.Context(), trailID)
		if err != nil {
			if errors.Is(err, services.ErrTrailNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TrailErrorResponse{
					Error: "Trail not found",
				})
				return
			}
			logger.Log.Errorw("failed to get trail", "trail_id", trailID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TrailErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(trail)
	}
}
