package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/munawir355/muawir-alharbi/internal/logger"
	"github.com/munawir355/muawir-alharbi/internal/models"
)

// TrailLister defines the interface that the trail service must implement.
type TrailLister interface {
	List(ctx context.Context) ([]models.Trail, error)
}

// NewListTrailsHandler returns the public full-listing handler.
// @Summary List all trails
// @Tags trails
// @Produce json
// @Success 200 {array} models.Trail "All trails"
// @Failure 500 {object} handlers.TrailErrorResponse "Internal server error"
// @Router /api/trails [get]
func NewListTrailsHandler(svc TrailLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trails, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list trails", "err", err)
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
