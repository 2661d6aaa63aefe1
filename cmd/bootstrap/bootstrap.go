package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"practice-booking-service/config"
	deliveryHttp "practice-booking-service/internal/delivery/http"
	"practice-booking-service/internal/delivery/http/handler"
	"practice-booking-service/internal/delivery/http/middleware"
	"practice-booking-service/internal/infrastructure/cache"
	"practice-booking-service/internal/infrastructure/database"
	"practice-booking-service/internal/metrics"
	"practice-booking-service/internal/repository"
	"practice-booking-service/internal/seed"
	"practice-booking-service/internal/service"
	"practice-booking-service/internal/usecase"
	"practice-booking-service/pkg/jwt"
	"practice-booking-service/pkg/validator"

	"github.com/gorilla/mux"
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
	Log         *logrus.Logger
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
	app.Log = setupLogger(cfg.App.LogLevel)
	app.Log.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env, app.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	app.Log.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis, app.Log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	app.Log.Info("Redis connected successfully")

	metrics.Register()

	// Initialize all layers
	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           NewRouter(cfg, db, redisClient, app.Log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("Unknown log level %q, using info", level)
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// NewRouter wires repositories, services, usecases and handlers into the
// HTTP router.
func NewRouter(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) *mux.Router {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	patientRepo := repository.NewPatientRepository()
	practiceUserRepo := repository.NewPracticeUserRepository()
	practiceRepo := repository.NewPracticeRepository()
	practitionerRepo := repository.NewPractitionerRepository()
	appointmentTypeRepo := repository.NewAppointmentTypeRepository()
	slotRepo := repository.NewAvailabilitySlotRepository()
	bookingRepo := repository.NewBookingRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	sessions := service.NewSessionStore(redisClient)
	locker := service.NewRedisLocker(redisClient, cfg.Booking.LockTTL)
	occupancy := service.NewOccupancyCache(db, redisClient, log, bookingRepo, cfg.Booking.OccupancyCacheTTL)
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, patientRepo, practiceUserRepo, jwtService, sessions)
	practiceUsecase := usecase.NewPracticeUsecase(db, log, practiceRepo, practitionerRepo, practiceUserRepo, auditService)
	practitionerUsecase := usecase.NewPractitionerUsecase(db, log, practiceRepo, practitionerRepo, appointmentTypeRepo, auditService)
	appointmentTypeUsecase := usecase.NewAppointmentTypeUsecase(db, log, appointmentTypeRepo, auditService)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, practiceRepo, practitionerRepo, slotRepo, locker, auditService)
	bookingUsecase := usecase.NewBookingUsecase(db, log, authUsecase, practiceRepo, practitionerRepo, appointmentTypeRepo, slotRepo, bookingRepo, locker, occupancy, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Auth:            handler.NewAuthHandler(authUsecase, customValidator, log),
		Practice:        handler.NewPracticeHandler(practiceUsecase, customValidator, log),
		Practitioner:    handler.NewPractitionerHandler(practitionerUsecase, customValidator, log),
		AppointmentType: handler.NewAppointmentTypeHandler(appointmentTypeUsecase, customValidator, log),
		Availability:    handler.NewAvailabilityHandler(availabilityUsecase, customValidator, log),
		Booking:         handler.NewBookingHandler(bookingUsecase, log),
		AuditLog:        handler.NewAuditLogHandler(auditLogUsecase, log),
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUsecase, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigins)
	requestLogger := middleware.NewRequestLogger(log)
	loginLimiter := middleware.NewRateLimiter(cfg.RateLimit.LoginPerSecond, cfg.RateLimit.LoginBurst)

	// Initialize router
	router := deliveryHttp.NewRouter(handlers, authMiddleware, corsMiddleware, requestLogger, loginLimiter)
	return router.Setup()
}

// NewSeeder builds the demo-data seeder over the same repositories the API uses.
func NewSeeder(db *gorm.DB, log *logrus.Logger) *seed.Seeder {
	return seed.NewSeeder(db, log, seed.Repositories{
		PracticeUsers:    repository.NewPracticeUserRepository(),
		Practices:        repository.NewPracticeRepository(),
		Practitioners:    repository.NewPractitionerRepository(),
		AppointmentTypes: repository.NewAppointmentTypeRepository(),
		Slots:            repository.NewAvailabilitySlotRepository(),
		Patients:         repository.NewPatientRepository(),
	})
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
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

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
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
