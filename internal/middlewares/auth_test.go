package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/munawir355/muawir-alharbi/internal/jwt"
	"github.com/munawir355/muawir-alharbi/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alice := &models.User{UserID: 1, Name: "alice", Email: "alice@example.com"}

	tests := []struct {
		name       string
		mockSetup  func(tokener *MockTokener, users *MockUserGetter)
		wantStatus int
		wantUser   *models.User
	}{
		{
			name: "valid token resolves the user",
			mockSetup: func(tokener *MockTokener, users *MockUserGetter) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("TOKEN", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "TOKEN").
					Return(&jwt.Claims{Subject: "alice@example.com", UserID: 1, Name: "alice"}, nil)
				users.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(alice, nil)
			},
			wantStatus: http.StatusOK,
			wantUser:   alice,
		},
		{
			name: "missing token",
			mockSetup: func(tokener *MockTokener, users *MockUserGetter) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("authorization header is missing"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "invalid token",
			mockSetup: func(tokener *MockTokener, users *MockUserGetter) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("TOKEN", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "TOKEN").Return(nil, jwt.ErrTokenInvalid)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "empty subject",
			mockSetup: func(tokener *MockTokener, users *MockUserGetter) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("TOKEN", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "TOKEN").Return(&jwt.Claims{}, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown subject",
			mockSetup: func(tokener *MockTokener, users *MockUserGetter) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("TOKEN", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "TOKEN").
					Return(&jwt.Claims{Subject: "ghost@example.com"}, nil)
				users.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "directory error",
			mockSetup: func(tokener *MockTokener, users *MockUserGetter) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("TOKEN", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "TOKEN").
					Return(&jwt.Claims{Subject: "alice@example.com"}, nil)
				users.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").
					Return(nil, errors.New("db error"))
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokener := NewMockTokener(ctrl)
			users := NewMockUserGetter(ctrl)
			tt.mockSetup(tokener, users)

			var gotUser *models.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = GetUserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			rec := httptest.NewRecorder()

			AuthMiddleware(tokener, users)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
				assert.Nil(t, gotUser)
			} else {
				assert.Equal(t, tt.wantUser, gotUser)
			}
		})
	}
}

func TestUserContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		user := &models.User{UserID: 1, Email: "alice@example.com"}
		ctx := SetUserToContext(context.Background(), user)
		assert.Equal(t, user, GetUserFromContext(ctx))
	})

	t.Run("absent", func(t *testing.T) {
		assert.Nil(t, GetUserFromContext(context.Background()))
	})
}
