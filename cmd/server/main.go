package main

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"estateadmin/internal/config"
	"estateadmin/internal/flash"
	"estateadmin/internal/formoptions"
	"estateadmin/internal/handler"
	"estateadmin/internal/middleware"
	"estateadmin/internal/repository/postgres"
	"estateadmin/internal/service"
	"estateadmin/internal/service/admin"
	"estateadmin/internal/upload"
	"estateadmin/internal/view"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	var logOutput io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, cfg.LogMaxFiles)
		if err != nil {
			log.Fatalf("Failed to setup log file: %v", err)
		}
		defer logFile.Close()
		logOutput = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger) // Set as default logger

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
		"upload_dir", cfg.UploadDir,
		"flash_backend", cfg.FlashBackend,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create pgx connection pool
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 2,
	)

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	projectRepo := postgres.NewProjectRepository(repoConfig)
	developerRepo := postgres.NewDeveloperRepository(repoConfig)
	userRepo := postgres.NewUserRepository(repoConfig)

	// Create services
	projectService := service.NewProjectService(projectRepo, logger)
	developerService := service.NewDeveloperService(developerRepo, logger)
	userService := service.NewUserService(userRepo, logger)

	// Initialize ward catalog
	formOptions, err := formoptions.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to initialize form options: %v", err)
	}

	uploadStore := upload.NewLocalStore(upload.Config{
		Dir:       cfg.UploadDir,
		URLPrefix: cfg.UploadURLPrefix,
	}, logger)

	workflow, err := admin.NewWorkflow(admin.Deps{
		Projects:   projectService,
		Developers: developerService,
		Users:      userService,
		Uploads:    uploadStore,
		Options:    formOptions,
		Config:     admin.Config{District: cfg.FormDistrict},
		Logger:     logger,
	})
	if err != nil {
		log.Fatalf("Failed to create admin workflow: %v", err)
	}

	// Flash store
	secureCookies := cfg.Environment == "prod"
	var flashStore flash.Store
	switch cfg.FlashBackend {
	case config.FlashBackendRedis:
		client, err := flash.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer client.Close()
		flashStore = flash.NewRedisStore(client, cfg.FlashTTL, secureCookies)
	default:
		flashStore = flash.NewCookieStore(secureCookies)
	}

	renderer, err := view.NewTemplateRenderer()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	adminHandler := handler.NewAdminHandler(workflow, flashStore, renderer, cfg.MaxUploadBytes, logger)
	healthHandler := handler.NewHealthHandler(pool)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Admin pages
	adminHandler.RegisterRoutes(mux)

	// Uploaded files
	uploadPrefix := cfg.UploadURLPrefix + "/"
	mux.Handle("GET "+uploadPrefix, http.StripPrefix(uploadPrefix, http.FileServer(http.Dir(cfg.UploadDir))))

	// Build middleware chain
	var handler http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → RequestLogger → Recovery → Routes
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.RequestLogger(logger)(handler)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		AllowCredentials: true,
	})
	handler = corsHandler.Handler(handler)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  30 * time.Second, // multipart uploads
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
	logger.Info("server stopped")
}
