package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/segmentio/kafka-go"

	"github.com/munawir355/muawir-alharbi/internal/config"
	"github.com/munawir355/muawir-alharbi/internal/facades"
	"github.com/munawir355/muawir-alharbi/internal/handlers"
	"github.com/munawir355/muawir-alharbi/internal/jwt"
	"github.com/munawir355/muawir-alharbi/internal/logger"
	"github.com/munawir355/muawir-alharbi/internal/middlewares"
	"github.com/munawir355/muawir-alharbi/internal/repositories"
	"github.com/munawir355/muawir-alharbi/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/munawir355/muawir-alharbi/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Trail Service API
// @version 1.0.0
// @description REST API for managing hiking trails and user associations
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, optional Kafka writer, and HTTP
// server. It wires routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.PostgresHost, cfg.PostgresPort)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Optional Kafka writer for trail mutation events
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBrokers...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer configured for topic %s", cfg.KafkaTopic)
	}

	// Initialize token codec and external verifier
	jwtCodec := jwt.New(cfg.JWTSecretKey, cfg.JWTAlgorithm, cfg.JWTExp())
	verifier := facades.NewCredentialVerifierFacade(cfg.AuthAPIURL, time.Duration(cfg.AuthTimeoutSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	trailReadRepo := repositories.NewTrailReadRepository(db)
	trailWriteRepo := repositories.NewTrailWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, verifier, jwtCodec)
	trailService := services.NewTrailService(trailReadRepo, trailWriteRepo, kafkaWriter)

	// Initialize handlers
	tokenHandler := handlers.NewTokenHandler(authService)
	meHandler := handlers.NewUsersMeHandler()
	protectedHandler := handlers.NewProtectedHandler()
	listTrailsHandler := handlers.NewListTrailsHandler(trailService)
	getTrailHandler := handlers.NewGetTrailHandler(trailService)
	createTrailHandler := handlers.NewCreateTrailHandler(trailService)
	updateTrailHandler := handlers.NewUpdateTrailHandler(trailService)
	deleteTrailHandler := handlers.NewDeleteTrailHandler(trailService)
	userTrailsHandler := handlers.NewUserTrailsHandler(trailService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
	}))
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/token", tokenHandler)
	r.Get("/api/trails", listTrailsHandler)
	r.Get("/api/trails/{trailID}", getTrailHandler)

	// Protected routes with the bearer-token guard
	authMiddleware := middlewares.AuthMiddleware(jwtCodec, userReadRepo)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/users/me", meHandler)
		r.Get("/protected", protectedHandler)
		r.Get("/api/users/{userID}/trails", userTrailsHandler)

		// Writes run inside a per-request transaction
		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))
			r.Post("/api/trails", createTrailHandler)
			r.Put("/api/trails/{trailID}", updateTrailHandler)
			r.Delete("/api/trails/{trailID}", deleteTrailHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
