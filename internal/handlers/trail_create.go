package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/munawir355/muawir-alharbi/internal/logger"
	"github.com/munawir355/muawir-alharbi/internal/middlewares"
	"github.com/munawir355/muawir-alharbi/internal/models"
)

// TrailCreator defines the interface that the trail service must implement.
type TrailCreator interface {
	Create(ctx context.Context, trailName string, description *string, creatorID int) (*models.Trail, error)
}

// TrailRequest represents the JSON body for creating or updating a trail
// swagger:model TrailRequest
type TrailRequest struct {
	// Trail name
	// required: true
	TrailName string `json:"TrailName"`

	// Optional description
	Description *string `json:"Description"`
}

// TrailErrorResponse represents an error response for trail endpoints
// swagger:model TrailErrorResponse
type TrailErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewCreateTrailHandler returns the authenticated trail creation handler.
// @Summary Create a trail
// @Tags trails
// @Accept json
// @Produce json
// @Param trailRequest body handlers.TrailRequest true "Trail to create"
// @Success 200 {object} models.Trail "Created trail"
// @Failure 400 {object} handlers.TrailErrorResponse "Invalid request body"
// @Failure 401 "Unauthorized"
// @Router /api/trails [post]
// @Security BearerAuth
func NewCreateTrailHandler(svc TrailCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			w.WriteHeader(http.StatusUnauthorized)
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

		trail, err := svc.Create(r.Context(), req.TrailName, req.Description, user.UserID)
		if err != nil {
			logger.Log.Errorw("failed to create trail", "err", err)
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
