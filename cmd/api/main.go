package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"

	"inkpress/internal/common/pagination"
	hhttp "inkpress/internal/handler/http"
	harticle "inkpress/internal/handler/http/article"
	hauth "inkpress/internal/handler/http/auth"
	"inkpress/internal/handler/http/requestid"
	"inkpress/internal/infra/adapter/persistence/mongodb"
	"inkpress/internal/infra/db"
	"inkpress/internal/infra/imagestore"
	"inkpress/internal/observability/logging"
	authservice "inkpress/internal/service/auth"
	artUC "inkpress/internal/usecase/article"
	"inkpress/pkg/config"
)

func main() {
	logger := initLogger()
	secret := validateJWTSecret(logger)

	database := db.Open()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := database.Client().Disconnect(ctx); err != nil {
			logger.Error("failed to disconnect database", slog.Any("error", err))
		}
	}()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := db.EnsureIndexes(ctx, database); err != nil {
			cancel()
			logger.Error("failed to ensure indexes", slog.Any("error", err))
			os.Exit(1)
		}
		cancel()
	}

	storageCfg, err := config.LoadStorageConfig()
	if err != nil {
		logger.Error("failed to load storage configuration", slog.Any("error", err))
		os.Exit(1)
	}
	images, err := imagestore.NewResolver(storageCfg, logger)
	if err != nil {
		logger.Error("failed to initialize image storage", slog.Any("error", err))
		os.Exit(1)
	}

	handler := setupServer(logger, database, images, secret, storageCfg)
	runServer(logger, handler)
}

// initLogger initializes the process-wide structured logger.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// validateJWTSecret enforces security requirements on JWT_SECRET before serving.
func validateJWTSecret(logger *slog.Logger) []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT_SECRET must not be a common weak value", slog.String("weak_value", weak))
			os.Exit(1)
		}
	}
	return []byte(secret)
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer configures the HTTP handler with all routes and middleware.
func setupServer(logger *slog.Logger, database *mongo.Database, images *imagestore.Resolver, secret []byte, storageCfg config.StorageConfig) http.Handler {
	users := mongodb.NewUserRepo(database)
	articles := mongodb.NewArticleRepo(database)

	authSvc := &authservice.Service{
		Users:    users,
		Images:   images,
		Logger:   logger,
		Secret:   secret,
		TokenTTL: config.GetEnvDuration("JWT_TTL", authservice.DefaultTokenTTL),
	}
	artSvc := &artUC.Service{
		Repo:   articles,
		Users:  users,
		Images: images,
		Logger: logger,
	}

	paginationCfg := pagination.LoadFromEnv()
	loginLimiter := hauth.NewLoginLimiter(
		config.GetEnvInt("LOGIN_RATE_PER_MINUTE", 10),
		config.GetEnvInt("LOGIN_RATE_BURST", 5),
	)

	mux := http.NewServeMux()
	hauth.Register(mux, authSvc, loginLimiter, logger)
	harticle.Register(mux, artSvc, secret, paginationCfg)

	mux.Handle("GET /healthz", &hhttp.HealthHandler{DB: database, Version: getVersion()})
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(storageCfg.Local.Dir))))

	corsCfg := hhttp.NewCORSConfig(config.GetEnvString("CORS_ALLOWED_ORIGINS", ""))

	var handler http.Handler = mux
	handler = hhttp.Metrics(handler)
	handler = hhttp.LimitRequestBody(int64(config.GetEnvInt("MAX_REQUEST_BYTES", 8<<20)))(handler)
	handler = hhttp.CORS(corsCfg)(handler)
	handler = hhttp.Recover(logger)(handler)
	handler = hhttp.Logging(logger)(handler)
	handler = requestid.Middleware(handler)
	return handler
}

// runServer starts the HTTP server and blocks until shutdown completes.
func runServer(logger *slog.Logger, handler http.Handler) {
	addr := ":" + config.GetEnvString("SERVER_PORT", "8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.String("addr", addr), slog.String("version", getVersion()))
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("shutting down", slog.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
		}
	}
	logger.Info("server stopped")
}
