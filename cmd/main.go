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
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/lostfound-project/lostfound-api/internal/db"
	"github.com/lostfound-project/lostfound-api/internal/handlers"
	"github.com/lostfound-project/lostfound-api/internal/logger"
	"github.com/lostfound-project/lostfound-api/internal/middlewares"
	"github.com/lostfound-project/lostfound-api/internal/repositories"
	"github.com/lostfound-project/lostfound-api/internal/services"

	_ "github.com/lostfound-project/lostfound-api/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds all application settings, populated from the environment.
type config struct {
	Host         string `env:"APP_HOST" env-default:"localhost"`
	Port         string `env:"APP_PORT" env-default:"8080"`
	LogLevel     string `env:"APP_LOG_LEVEL" env-default:"info"`
	DatabasePath string `env:"DATABASE_PATH" env-default:"lostfound.db"`
}

// @title Lost & Found API
// @version 1.0.0
// @description Service for reporting lost and found items and managing their lifecycle
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
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

// parseConfig loads environment variables from a file, then populates the
// config struct from the environment.
func parseConfig(path string) (config, error) {
	_ = godotenv.Load(path)

	var cfg config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// run initializes the logger and database, wires the stores, services and
// handlers, and serves HTTP until a shutdown signal arrives.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Open SQLite database and bootstrap the schema
	logger.Log.Infof("Opening database %s", cfg.DatabasePath)
	sqlite, err := db.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("database open failed: %w", err)
	}
	defer sqlite.Close()
	if err := db.EnsureSchema(ctx, sqlite); err != nil {
		return fmt.Errorf("schema bootstrap failed: %w", err)
	}

	// Initialize repositories
	itemReadRepo := repositories.NewItemReadRepository(sqlite)
	itemWriteRepo := repositories.NewItemWriteRepository(sqlite)
	userReadRepo := repositories.NewUserReadRepository(sqlite)
	userWriteRepo := repositories.NewUserWriteRepository(sqlite)

	// Initialize services
	itemService := services.NewItemService(itemReadRepo, itemWriteRepo)
	authService := services.NewAuthService(userReadRepo, userWriteRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/", handlers.NewHealthHandler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/items", handlers.NewCreateItemHandler(itemService))
		r.Get("/items", handlers.NewListItemsHandler(itemService))
		r.Get("/items/{id}", handlers.NewGetItemHandler(itemService))
		r.Delete("/items/{id}", handlers.NewDeleteItemHandler(itemService))
		r.Put("/items/{id}/return", handlers.NewReturnItemHandler(itemService))

		r.Post("/users/register", handlers.NewRegisterHandler(authService))
		r.Post("/users/login", handlers.NewLoginHandler(authService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.Host, cfg.Port)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.Host, cfg.Port)
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
