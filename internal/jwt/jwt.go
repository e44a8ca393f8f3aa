package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Error variables distinguish the two validation failure kinds for
// diagnostics; the API layer maps both to 401.
var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims is the session token claim set. Tokens are self-contained: any
// process instance can validate them given the shared secret.
type Claims struct {
	Subject string // User email
	UserID  int
	Name    string
}

// JWT issues and validates signed, expiring session tokens.
type JWT struct {
	secretKey string
	method    jwt.SigningMethod
	exp       time.Duration
}

// New creates a JWT codec. algorithm must name an HMAC method ("HS256",
// "HS384", "HS512"); anything unknown falls back to HS256.
func New(secretKey, algorithm string, expiration time.Duration) *JWT {
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		method = jwt.SigningMethodHS256
	}
	return &JWT{
		secretKey: secretKey,
		method:    method,
		exp:       expiration,
	}
}

// Generate creates a signed token embedding the user identity claims and
// an absolute expiry computed from the configured lifetime.
func (j *JWT) Generate(ctx context.Context, email string, userID int, name string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     email,
		"user_id": userID,
		"name":    name,
		"exp":     now.Add(j.exp).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(j.method, claims)
	return token.SignedString([]byte(j.secretKey))
}

// Validate verifies signature and expiry of the token string.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.parse(tokenString)
	return err
}

// GetClaims parses the token string and returns the identity claims if the
// token is valid.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	mapClaims, err := j.parse(tokenString)
	if err != nil {
		return nil, err
	}

	out := &Claims{}
	if sub, ok := mapClaims["sub"].(string); ok {
		out.Subject = sub
	}
	// Numeric claims decode as float64.
	if id, ok := mapClaims["user_id"].(float64); ok {
		out.UserID = int(id)
	}
	if name, ok := mapClaims["name"].(string); ok {
		out.Name = name
	}
	return out, nil
}

// GetTokenFromRequest extracts the bearer token from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}

func (j *JWT) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secretKey), nil
	}, jwt.WithValidMethods([]string{j.method.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
