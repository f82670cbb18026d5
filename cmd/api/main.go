package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"fineart/internal/config"
	pgRepo "fineart/internal/infra/adapter/persistence/postgres"
	"fineart/internal/infra/db"
	"fineart/internal/observability/tracing"

	articleUC "fineart/internal/usecase/article"
	artistUC "fineart/internal/usecase/artist"
	artworkUC "fineart/internal/usecase/artwork"
	exhibitionUC "fineart/internal/usecase/exhibition"

	hhttp "fineart/internal/handler/http"
	harticle "fineart/internal/handler/http/article"
	hartist "fineart/internal/handler/http/artist"
	hartwork "fineart/internal/handler/http/artwork"
	hauth "fineart/internal/handler/http/auth"
	hexhibition "fineart/internal/handler/http/exhibition"
	"fineart/internal/handler/http/middleware"
	"fineart/internal/handler/http/requestid"
	hupload "fineart/internal/handler/http/upload"
	authservice "fineart/internal/service/auth"
)

func main() {
	// Load .env for local development. Missing file is fine; production
	// supplies real environment variables.
	_ = godotenv.Load()

	logger := initLogger()
	validateJWTSecret(logger)

	cfg := loadConfig(logger)
	database := initDatabase(logger, cfg)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	seedAdmin(logger, cfg, database)

	version := getVersion()
	handler := setupServer(logger, cfg, database, version)

	runServer(logger, cfg, handler, version)
}

// initLogger initializes and returns a structured logger based on environment configuration.
func initLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// validateJWTSecret validates the JWT_SECRET environment variable for security requirements.
func validateJWTSecret(logger *slog.Logger) {
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
}

// loadConfig loads the YAML application configuration. The path comes from
// CONFIG_PATH, falling back to config.yaml in the working directory.
func loadConfig(logger *slog.Logger) *config.AppConfig {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := config.LoadAppConfig(path)
	if err != nil {
		logger.Error("failed to load configuration", slog.String("path", path), slog.Any("error", err))
		os.Exit(1)
	}
	return cfg
}

// initDatabase opens the database connection and runs migrations. Pool
// sizing comes from the YAML config; validation already guaranteed the
// duration strings parse.
func initDatabase(logger *slog.Logger, cfg *config.AppConfig) *sql.DB {
	lifetime, _ := time.ParseDuration(cfg.Database.ConnMaxLifetime)
	idleTime, _ := time.ParseDuration(cfg.Database.ConnMaxIdleTime)
	database := db.Open(db.ConnectionConfig{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: lifetime,
		ConnMaxIdleTime: idleTime,
	})
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// seedAdmin creates the initial admin account when seed credentials are
// configured. Without them the server still runs, but no mutations are
// possible until an admin exists.
func seedAdmin(logger *slog.Logger, cfg *config.AppConfig, database *sql.DB) {
	email := os.Getenv(cfg.Security.AdminSeed.EmailEnv)
	password := os.Getenv(cfg.Security.AdminSeed.PasswordEnv)
	if email == "" || password == "" {
		logger.Warn("admin seed credentials not set, skipping admin seeding",
			slog.String("email_env", cfg.Security.AdminSeed.EmailEnv),
			slog.String("password_env", cfg.Security.AdminSeed.PasswordEnv))
		return
	}

	svc := &authservice.Service{Users: pgRepo.NewUserRepo(database)}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := svc.SeedAdmin(ctx, email, password); err != nil {
		logger.Error("failed to seed admin user", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("admin user ready", slog.String("email", email))
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer configures and returns the HTTP handler with all routes and middleware.
func setupServer(logger *slog.Logger, cfg *config.AppConfig, database *sql.DB, version string) http.Handler {
	articleRepo := pgRepo.NewArticleRepo(database)
	artistRepo := pgRepo.NewArtistRepo(database)
	artworkRepo := pgRepo.NewArtworkRepo(database)
	exhibitionRepo := pgRepo.NewExhibitionRepo(database)
	userRepo := pgRepo.NewUserRepo(database)

	articleSvc := &articleUC.Service{Repo: articleRepo}
	artistSvc := &artistUC.Service{Repo: artistRepo}
	artworkSvc := &artworkUC.Service{Repo: artworkRepo, Artists: artistRepo}
	exhibitionSvc := &exhibitionUC.Service{Repo: exhibitionRepo}
	authSvc := &authservice.Service{Users: userRepo}

	mux := http.NewServeMux()
	harticle.Register(mux, articleSvc, logger)
	hartwork.Register(mux, artworkSvc, logger)
	hartist.Register(mux, artistSvc)
	hexhibition.Register(mux, exhibitionSvc, logger)
	hupload.Register(mux, hupload.Handler{
		Dir:     cfg.Upload.Dir,
		BaseURL: cfg.Upload.BaseURL,
		Logger:  logger,
	})

	mux.Handle("POST /api/auth/token", hauth.TokenHandler(authSvc))
	mux.Handle("GET /healthz", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the mux with the middleware chain.
// Order from the outside in: request ID, metrics, tracing, recovery,
// logging, CORS, body size limit, authentication.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	corsConfig, err := middleware.LoadCORSConfig()
	if err != nil {
		logger.Error("failed to load CORS configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("CORS enabled",
		slog.Any("allowed_origins", corsConfig.AllowedOrigins),
		slog.Any("allowed_methods", corsConfig.AllowedMethods),
		slog.Any("allowed_headers", corsConfig.AllowedHeaders),
		slog.Int("max_age", corsConfig.MaxAge))

	// Apply in reverse order (innermost to outermost). The upload endpoint
	// enforces its own larger body limit.
	chain := hauth.Authz(handler)
	chain = hhttp.LimitRequestBody(1<<20, "/api/uploads")(chain)
	chain = middleware.CORS(*corsConfig)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = hhttp.MetricsMiddleware(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, cfg *config.AppConfig, handler http.Handler, version string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTimeout, err := time.ParseDuration(cfg.Server.ShutdownTimeout)
	if err != nil {
		logger.Warn("invalid shutdown timeout, using 10s",
			slog.String("value", cfg.Server.ShutdownTimeout))
		shutdownTimeout = 10 * time.Second
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
