package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/munawir355/muawir-alharbi/internal/models"
	"github.com/munawir355/muawir-alharbi/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestUserTrailsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alice := &models.User{UserID: 1, Name: "alice", Email: "alice@example.com"}

	t.Run("lists own trails", func(t *testing.T) {
		mockSvc := NewMockUserTrailsLister(ctrl)
		mockSvc.EXPECT().ListForUser(gomock.Any(), 1, 1).
			Return([]models.Trail{*testTrail(1, 1)}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users/1/trails", nil)
		req = withUser(withURLParam(req, "userID", "1"), alice)
		rec := httptest.NewRecorder()

		NewUserTrailsHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var trails []models.Trail
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&trails))
		assert.Len(t, trails, 1)
	})

	t.Run("someone else's trails are forbidden", func(t *testing.T) {
		mockSvc := NewMockUserTrailsLister(ctrl)
		mockSvc.EXPECT().ListForUser(gomock.Any(), 2, 1).
			Return(nil, services.ErrTrailForbidden)

		req := httptest.NewRequest(http.MethodGet, "/api/users/2/trails", nil)
		req = withUser(withURLParam(req, "userID", "2"), alice)
		rec := httptest.NewRecorder()

		NewUserTrailsHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)

		var resp TrailErrorResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Not authorized to view these trails", resp.Error)
	})

	t.Run("non-numeric user id", func(t *testing.T) {
		mockSvc := NewMockUserTrailsLister(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/api/users/abc/trails", nil)
		req = withUser(withURLParam(req, "userID", "abc"), alice)
		rec := httptest.NewRecorder()

		NewUserTrailsHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no user in context", func(t *testing.T) {
		mockSvc := NewMockUserTrailsLister(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/api/users/1/trails", nil)
		req = withURLParam(req, "userID", "1")
		rec := httptest.NewRecorder()

		NewUserTrailsHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
