package services

import (
	"context"
	"errors"
	"strings"

	"github.com/munawir355/muawir-alharbi/internal/facades"
	"github.com/munawir355/muawir-alharbi/internal/logger"
	"github.com/munawir355/muawir-alharbi/internal/models"
)

// Error variables
var (
	ErrInvalidCredentials     = errors.New("incorrect email or password")
	ErrAuthServiceUnavailable = errors.New("authentication service unavailable")
)

// UserReader defines read-only operations for the user directory.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserWriter defines write operations for the user directory.
type UserWriter interface {
	Save(ctx context.Context, name, email string) (*models.User, error)
}

// CredentialVerifier checks credentials against the external identity service.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (bool, error)
}

// TokenGenerator issues signed session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, email string, userID int, name string) (string, error)
}

// AuthService handles the login flow: external verification, local user
// provisioning, and token issuance.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	verifier CredentialVerifier
	jwt      TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, verifier CredentialVerifier, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		verifier: verifier,
		jwt:      jwt,
	}
}

// Login verifies the credential pair externally, resolves or provisions
// the local user, and issues a session token for them.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	verified, err := svc.verifier.Verify(ctx, email, password)
	if err != nil {
		logger.Log.Errorw("credential verification failed", "err", err)
		if errors.Is(err, facades.ErrServiceUnavailable) {
			return "", nil, ErrAuthServiceUnavailable
		}
		return "", nil, err
	}
	if !verified {
		logger.Log.Infow("credentials rejected", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	user, err := svc.GetOrCreateUser(ctx, email, true)
	if err != nil {
		logger.Log.Errorw("failed to resolve user", "email", email, "err", err)
		return "", nil, err
	}

	token, err := svc.jwt.Generate(ctx, user.Email, user.UserID, user.Name)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// GetOrCreateUser returns the user with the given email, creating them on
// first login. When extractNameFromEmail is set the new user's name is the
// local part of the email, otherwise the full email. Existing users are
// returned as stored; the name is never re-derived.
func (svc *AuthService) GetOrCreateUser(ctx context.Context, email string, extractNameFromEmail bool) (*models.User, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	name := email
	if extractNameFromEmail {
		if at := strings.Index(email, "@"); at >= 0 {
			name = email[:at]
		}
	}

	return svc.writer.Save(ctx, name, email)
}
