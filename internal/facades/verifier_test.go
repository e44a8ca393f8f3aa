package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCredentialVerifierFacade_Verify(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     interface{}
		verified bool
	}{
		{"Verified", http.StatusOK, []string{"Verified", "True"}, true},
		{"Rejected", http.StatusOK, []string{"Verified", "False"}, false},
		{"WrongShape", http.StatusOK, map[string]string{"verified": "true"}, false},
		{"EmptyBody", http.StatusOK, []string{}, false},
		{"Unauthorized", http.StatusUnauthorized, []string{"Verified", "True"}, false},
		{"ServerError", http.StatusInternalServerError, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotBody verifyRequest
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
				w.WriteHeader(tt.status)
				if tt.body != nil {
					json.NewEncoder(w).Encode(tt.body)
				}
			}))
			defer srv.Close()

			f := NewCredentialVerifierFacade(srv.URL, 5*time.Second)
			verified, err := f.Verify(context.Background(), "alice@example.com", "secret")

			assert.NoError(t, err)
			assert.Equal(t, tt.verified, verified)
			assert.Equal(t, "alice@example.com", gotBody.Email)
			assert.Equal(t, "secret", gotBody.Password)
		})
	}
}

func TestCredentialVerifierFacade_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	f := NewCredentialVerifierFacade(srv.URL, time.Second)
	verified, err := f.Verify(context.Background(), "alice@example.com", "secret")

	assert.False(t, verified)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}
