package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all process-wide settings. It is built once at startup and
// passed into components at construction time; nothing reads the
// environment after Load returns.
type Config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PostgresHost         string
	PostgresPort         int
	PostgresUser         string
	PostgresPassword     string
	PostgresDB           string
	PostgresMaxOpenConns int
	PostgresMaxIdleConns int

	JWTSecretKey  string
	JWTAlgorithm  string
	JWTExpMinutes int

	AuthAPIURL        string
	AuthTimeoutSecond int

	CORSOrigins []string

	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads the optional env file at path and builds a Config from the
// environment, applying defaults for anything unset.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{
		AppHost:          getEnv("APP_HOST", "localhost"),
		AppPort:          getEnv("APP_PORT", "8080"),
		LogLevel:         getEnv("APP_LOG_LEVEL", "info"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresUser:     getEnv("POSTGRES_USER", "user"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "password"),
		PostgresDB:       getEnv("POSTGRES_DB", "trails"),
		JWTSecretKey:     getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
		JWTAlgorithm:     getEnv("JWT_ALGORITHM", "HS256"),
		AuthAPIURL:       getEnv("AUTH_API_URL", "https://web.socem.plymouth.ac.uk/COMP2001/auth/api/users"),
		KafkaTopic:       getEnv("KAFKA_TOPIC", "trail-events"),
	}

	var err error
	if cfg.PostgresPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return nil, fmt.Errorf("invalid POSTGRES_PORT: %w", err)
	}
	if cfg.PostgresMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return nil, fmt.Errorf("invalid POSTGRES_MAX_OPEN_CONNS: %w", err)
	}
	if cfg.PostgresMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return nil, fmt.Errorf("invalid POSTGRES_MAX_IDLE_CONNS: %w", err)
	}
	if cfg.JWTExpMinutes, err = strconv.Atoi(getEnv("JWT_EXP_MINUTES", "30")); err != nil {
		return nil, fmt.Errorf("invalid JWT_EXP_MINUTES: %w", err)
	}
	if cfg.AuthTimeoutSecond, err = strconv.Atoi(getEnv("AUTH_TIMEOUT_SECOND", "10")); err != nil {
		return nil, fmt.Errorf("invalid AUTH_TIMEOUT_SECOND: %w", err)
	}

	cfg.CORSOrigins = splitList(getEnv("CORS_ORIGINS", "http://localhost,http://localhost:3000"))
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))

	return cfg, nil
}

// PostgresDSN returns the connection string for the pgx driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

// JWTExp returns the token lifetime as a duration.
func (c *Config) JWTExp() time.Duration {
	return time.Duration(c.JWTExpMinutes) * time.Minute
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
