package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctor-listing/config"
	deliveryHttp "doctor-listing/internal/delivery/http"
	"doctor-listing/internal/delivery/http/handler"
	"doctor-listing/internal/delivery/http/middleware"
	domainRepo "doctor-listing/internal/domain/repository"
	"doctor-listing/internal/infrastructure/cache"
	"doctor-listing/internal/infrastructure/database"
	"doctor-listing/internal/repository"
	"doctor-listing/internal/usecase"
	"doctor-listing/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	setupLogger(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	log := logrus.StandardLogger()
	customValidator := validator.NewValidator()

	// Initialize the record store
	doctorRepo, err := app.initializeDoctorRepository(cfg, log, customValidator)
	if err != nil {
		app.Close()
		return nil, err
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, log, customValidator, doctorRepo)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Unknown log level %q, using info", level)
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// initializeDoctorRepository picks the record store supplier for STORE_SOURCE and
// optionally fronts it with the Redis cache
func (app *App) initializeDoctorRepository(cfg *config.Config, log *logrus.Logger, v *validator.CustomValidator) (domainRepo.DoctorRepository, error) {
	var doctorRepo domainRepo.DoctorRepository

	switch cfg.Store.Source {
	case config.StoreSourceFile:
		doctorRepo = repository.NewFileDoctorRepository(cfg.Store.File, log, v)
		logrus.Infof("Serving doctors from file %s", cfg.Store.File)

	case config.StoreSourcePostgres:
		db, err := database.NewPostgresConnection(cfg.DB, cfg.IsDev())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db

		if err := database.Migrate(db); err != nil {
			return nil, err
		}

		if cfg.Store.Seed {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			seeded, err := repository.SeedDoctors(ctx, db, repository.SampleDoctors())
			cancel()
			if err != nil {
				return nil, fmt.Errorf("failed to seed doctors: %w", err)
			}
			logrus.Infof("Seeded %d doctors", seeded)
		}

		doctorRepo = repository.NewDoctorRepository(db)
		logrus.Info("Serving doctors from PostgreSQL")

	default:
		doctorRepo = repository.NewSampleDoctorRepository()
		logrus.Info("Serving built-in sample doctors")
	}

	if cfg.Redis.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		cancel()
		if err != nil {
			return nil, err
		}
		app.RedisClient = redisClient
		doctorRepo = repository.NewCachedDoctorRepository(doctorRepo, redisClient, cfg.Redis.TTL, log)
	}

	return doctorRepo, nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, v *validator.CustomValidator, doctorRepo domainRepo.DoctorRepository) *http.Server {
	// Initialize usecases
	listingUsecase := usecase.NewDoctorListingUsecase(log, doctorRepo, cfg.Store.Source)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(listingUsecase, v)

	// Initialize middleware
	requestLoggerMiddleware := middleware.NewRequestLoggerMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, requestLoggerMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
