package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/munawir355/muawir-alharbi/internal/facades"
	"github.com/munawir355/muawir-alharbi/internal/models"
	"github.com/munawir355/muawir-alharbi/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := &models.User{UserID: 1, Name: "alice", Email: "alice@example.com"}

	tests := []struct {
		name      string
		email     string
		password  string
		mockSetup func(r *services.MockUserReader, w *services.MockUserWriter, v *services.MockCredentialVerifier, j *services.MockTokenGenerator)
		wantToken string
		wantErr   error
	}{
		{
			name:     "existing user logs in",
			email:    "alice@example.com",
			password: "secret",
			mockSetup: func(r *services.MockUserReader, w *services.MockUserWriter, v *services.MockCredentialVerifier, j *services.MockTokenGenerator) {
				v.EXPECT().Verify(gomock.Any(), "alice@example.com", "secret").Return(true, nil)
				r.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(existing, nil)
				j.EXPECT().Generate(gomock.Any(), "alice@example.com", 1, "alice").Return("JWT_TOKEN", nil)
			},
			wantToken: "JWT_TOKEN",
		},
		{
			name:     "first login provisions user with derived name",
			email:    "new@x.com",
			password: "secret",
			mockSetup: func(r *services.MockUserReader, w *services.MockUserWriter, v *services.MockCredentialVerifier, j *services.MockTokenGenerator) {
				v.EXPECT().Verify(gomock.Any(), "new@x.com", "secret").Return(true, nil)
				r.EXPECT().GetByEmail(gomock.Any(), "new@x.com").Return(nil, nil)
				w.EXPECT().Save(gomock.Any(), "new", "new@x.com").
					Return(&models.User{UserID: 2, Name: "new", Email: "new@x.com"}, nil)
				j.EXPECT().Generate(gomock.Any(), "new@x.com", 2, "new").Return("JWT_TOKEN", nil)
			},
			wantToken: "JWT_TOKEN",
		},
		{
			name:     "credentials rejected",
			email:    "alice@example.com",
			password: "wrong",
			mockSetup: func(r *services.MockUserReader, w *services.MockUserWriter, v *services.MockCredentialVerifier, j *services.MockTokenGenerator) {
				v.EXPECT().Verify(gomock.Any(), "alice@example.com", "wrong").Return(false, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "verifier unreachable",
			email:    "alice@example.com",
			password: "secret",
			mockSetup: func(r *services.MockUserReader, w *services.MockUserWriter, v *services.MockCredentialVerifier, j *services.MockTokenGenerator) {
				v.EXPECT().Verify(gomock.Any(), "alice@example.com", "secret").
					Return(false, facades.ErrServiceUnavailable)
			},
			wantErr: services.ErrAuthServiceUnavailable,
		},
		{
			name:     "directory error surfaces",
			email:    "alice@example.com",
			password: "secret",
			mockSetup: func(r *services.MockUserReader, w *services.MockUserWriter, v *services.MockCredentialVerifier, j *services.MockTokenGenerator) {
				v.EXPECT().Verify(gomock.Any(), "alice@example.com", "secret").Return(true, nil)
				r.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
		{
			name:     "token generation error surfaces",
			email:    "alice@example.com",
			password: "secret",
			mockSetup: func(r *services.MockUserReader, w *services.MockUserWriter, v *services.MockCredentialVerifier, j *services.MockTokenGenerator) {
				v.EXPECT().Verify(gomock.Any(), "alice@example.com", "secret").Return(true, nil)
				r.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(existing, nil)
				j.EXPECT().Generate(gomock.Any(), "alice@example.com", 1, "alice").
					Return("", errors.New("sign error"))
			},
			wantErr: errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockVerifier := services.NewMockCredentialVerifier(ctrl)
			mockJWT := services.NewMockTokenGenerator(ctrl)
			tt.mockSetup(mockReader, mockWriter, mockVerifier, mockJWT)

			svc := services.NewAuthService(mockReader, mockWriter, mockVerifier, mockJWT)
			token, user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
			}
		})
	}
}

func TestAuthService_GetOrCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("idempotent after first call", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		existing := &models.User{UserID: 3, Name: "custom name", Email: "new@x.com"}

		mockReader.EXPECT().GetByEmail(gomock.Any(), "new@x.com").Return(existing, nil)

		svc := services.NewAuthService(mockReader, mockWriter, nil, nil)
		user, err := svc.GetOrCreateUser(context.Background(), "new@x.com", true)

		assert.NoError(t, err)
		// Existing rows are returned as stored, never re-derived.
		assert.Equal(t, existing, user)
	})

	t.Run("full email as name when extraction disabled", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)

		mockReader.EXPECT().GetByEmail(gomock.Any(), "new@x.com").Return(nil, nil)
		mockWriter.EXPECT().Save(gomock.Any(), "new@x.com", "new@x.com").
			Return(&models.User{UserID: 4, Name: "new@x.com", Email: "new@x.com"}, nil)

		svc := services.NewAuthService(mockReader, mockWriter, nil, nil)
		user, err := svc.GetOrCreateUser(context.Background(), "new@x.com", false)

		assert.NoError(t, err)
		assert.Equal(t, "new@x.com", user.Name)
	})
}
