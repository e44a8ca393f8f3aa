package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/munawir355/muawir-alharbi/internal/logger"
)

// ErrServiceUnavailable is returned when the external identity service
// cannot be reached at all. It is distinct from a plain verification
// failure: bad credentials are a false result, not an error.
var ErrServiceUnavailable = errors.New("could not connect to authentication service")

// CredentialVerifierFacade verifies credentials against the external
// institutional identity service. It is the sole credential validator;
// the local store never checks passwords.
type CredentialVerifierFacade struct {
	authURL    string
	httpClient *http.Client
}

// NewCredentialVerifierFacade creates a verifier with one bounded timeout
// and no automatic retry: credential checks must not be silently repeated.
func NewCredentialVerifierFacade(authURL string, timeout time.Duration) *CredentialVerifierFacade {
	return &CredentialVerifierFacade{
		authURL:    authURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type verifyRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Verify posts the credential pair to the identity endpoint. It returns
// true only for an HTTP 200 whose body is exactly ["Verified", "True"];
// any other status or body shape is a verification failure. A transport
// error is surfaced as ErrServiceUnavailable.
func (f *CredentialVerifierFacade) Verify(ctx context.Context, email, password string) (bool, error) {
	body, err := json.Marshal(verifyRequest{Email: email, Password: password})
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.authURL, bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to reach authentication service", "url", f.authURL, "error", err)
		return false, ErrServiceUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Infow("credential verification rejected", "status", resp.StatusCode)
		return false, nil
	}

	var result []string
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		logger.Log.Infow("unexpected verification response body", "error", err)
		return false, nil
	}

	verified := len(result) == 2 && result[0] == "Verified" && result[1] == "True"
	return verified, nil
}
