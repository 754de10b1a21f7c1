package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/wuwarren/portfolio-backend/docs"
	"github.com/wuwarren/portfolio-backend/internal/config"
	"github.com/wuwarren/portfolio-backend/internal/handlers"
	"github.com/wuwarren/portfolio-backend/internal/i18n"
	"github.com/wuwarren/portfolio-backend/internal/logger"
	"github.com/wuwarren/portfolio-backend/internal/middlewares"
	"github.com/wuwarren/portfolio-backend/internal/repositories"
	"github.com/wuwarren/portfolio-backend/internal/services"
	"github.com/wuwarren/portfolio-backend/internal/storage"
	"go.uber.org/zap"
)

const maxRequestSize = 50 * 1024 * 1024 // 50MB for file uploads

// @title Portfolio Backend API
// @version 1.0
// @description API for a bilingual personal portfolio site

// @host localhost:8080
// @BasePath /api
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting portfolio backend")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize storage
	fileStorage := storage.NewLocalStorage(cfg.MediaBasePath)

	// Initialize repositories
	mediaRepo := repositories.NewMediaRepository(db, logger.Logger)
	wordRepo := repositories.NewWordRepository(db, logger.Logger)
	contactRepo := repositories.NewContactRepository(db, logger.Logger)
	adminRepo := repositories.NewAdminRepository(db, logger.Logger)
	experienceRepo := repositories.NewExperienceRepository(db, logger.Logger)

	// Initialize services
	mediaService := services.NewMediaService(mediaRepo, fileStorage, cfg.BaseURL, logger.Logger)
	wordService := services.NewWordService(wordRepo, logger.Logger)
	contactService := services.NewContactService(contactRepo, logger.Logger)
	adminService := services.NewAdminService(adminRepo, logger.Logger)
	translateService := services.NewTranslateService(cfg.TranslateURL, logger.Logger)
	experienceService := services.NewExperienceService(experienceRepo, translateService, logger.Logger)

	// Initialize handlers
	mediaHandler := handlers.NewMediaHandler(mediaService, logger.Logger)
	wordHandler := handlers.NewWordHandler(wordService, logger.Logger)
	contactHandler := handlers.NewContactHandler(contactService, logger.Logger)
	adminHandler := handlers.NewAdminHandler(adminService, logger.Logger)
	experienceHandler := handlers.NewExperienceHandler(experienceService, logger.Logger)
	pagesHandler := handlers.NewPagesHandler(cfg.PublicDir, logger.Logger)
	dictionaryHandler := handlers.NewDictionaryHandler(i18n.NewDictionaries(), logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(middlewares.LoggerMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(maxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// API routes
	r.Route("/api", func(r chi.Router) {
		mediaHandler.RegisterRoutes(r)
		wordHandler.RegisterRoutes(r)
		contactHandler.RegisterRoutes(r)
		adminHandler.RegisterRoutes(r)
		experienceHandler.RegisterRoutes(r)
		dictionaryHandler.RegisterRoutes(r)
	})

	// Page routes go through the locale redirect first
	r.Group(func(r chi.Router) {
		r.Use(i18n.RedirectMiddleware)
		r.NotFound(pagesHandler.ServePage)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second, // Longer timeout for file uploads
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "portfolio_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
