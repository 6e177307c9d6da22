package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-dashboard/config"
	"hospital-dashboard/internal/assistant"
	deliveryHttp "hospital-dashboard/internal/delivery/http"
	"hospital-dashboard/internal/delivery/http/handler"
	"hospital-dashboard/internal/delivery/http/middleware"
	"hospital-dashboard/internal/infrastructure/cache"
	"hospital-dashboard/internal/infrastructure/database"
	"hospital-dashboard/internal/infrastructure/storage"
	"hospital-dashboard/internal/llm"
	"hospital-dashboard/internal/repository"
	"hospital-dashboard/internal/service"
	"hospital-dashboard/internal/summary"
	"hospital-dashboard/internal/usecase"
	"hospital-dashboard/internal/voice"
	"hospital-dashboard/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Monitor     *service.AssistantMonitor
	Summaries   *summary.Builder
	Assistant   *assistant.Gateway
	Server      *http.Server

	gridFS *storage.GridFSStore
}

// New loads configuration, sets up logging and connects to the database.
// The assistant and HTTP layers are built on demand by InitAssistant and
// InitServer so CLI commands only pay for what they use.
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	app.Log = setupLogger(cfg.App.LogLevel)
	app.Log.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, app.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	app.Log.Info("Database connected successfully")

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// InitAssistant builds the summary builder, the optional Redis monitor and
// the assistant gateway.
func (app *App) InitAssistant() {
	cfg := app.Config

	records := repository.NewRecordReader(
		app.DB,
		repository.NewPatientRepository(),
		repository.NewMedicalHistoryRepository(),
		repository.NewConsultationNoteRepository(),
		repository.NewPrescriptionRepository(),
	)
	app.Summaries = summary.NewBuilder(records, nil)

	monitor := assistant.NopMonitor()
	if cfg.RedisEnabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis, app.Log)
		if err != nil {
			app.Log.Warnf("Redis unavailable, assistant cooldown disabled: %+v", err)
		} else {
			app.RedisClient = redisClient
			app.Monitor = service.NewAssistantMonitor(redisClient, app.Log, cfg.Assistant.QuotaCooldown)
			monitor = app.Monitor
			app.Log.Info("Redis connected successfully")
		}
	}

	// A typed nil would hide the missing credential from the gateway
	var chat llm.ChatClient
	if client := llm.NewOpenAIClient(cfg.Assistant); client != nil {
		chat = client
	} else {
		app.Log.Warn("OPENAI_API_KEY not set, assistant answers with essentials only")
	}

	app.Assistant = assistant.NewGateway(app.Summaries, chat, monitor, app.Log, assistant.Options{
		MaxTokens: cfg.Assistant.MaxTokens,
		Timeout:   cfg.Assistant.Timeout,
		Language:  cfg.Assistant.Language,
	})
}

// InitServer wires repositories, use cases, handlers and the router.
func (app *App) InitServer(ctx context.Context) error {
	cfg := app.Config
	log := app.Log

	if app.Assistant == nil {
		app.InitAssistant()
	}

	photoStore, err := app.newPhotoStore(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize photo storage: %w", err)
	}

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	patientRepo := repository.NewPatientRepository()
	historyRepo := repository.NewMedicalHistoryRepository()
	noteRepo := repository.NewConsultationNoteRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	photoService := service.NewPhotoService(photoStore, cfg.Storage.MaxPhotoSize)

	// Initialize usecases
	patientUsecase := usecase.NewPatientRecordUsecase(app.DB, log, patientRepo, historyRepo, noteRepo, prescriptionRepo, auditService, app.Summaries, photoService)
	noteUsecase := usecase.NewConsultationNoteUsecase(app.DB, log, patientRepo, noteRepo, auditService)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(app.DB, log, patientRepo, prescriptionRepo, auditService, cfg.App.DefaultPhysician)
	auditLogUsecase := usecase.NewAuditLogUsecase(app.DB, log, auditLogRepo)

	sqlDB, err := app.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}

	var stats handler.AssistantStatsReader
	if app.Monitor != nil {
		stats = app.Monitor
	}

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(sqlDB)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator, log)
	noteHandler := handler.NewConsultationNoteHandler(noteUsecase, customValidator)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionUsecase, customValidator, log)
	chatHandler := handler.NewChatHandler(app.Assistant)
	statsHandler := handler.NewAssistantStatsHandler(stats)
	voiceHandler := handler.NewVoiceHandler(voice.NewClient(cfg.Voice), customValidator, log)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize router
	router := deliveryHttp.NewRouter(
		log,
		healthHandler,
		patientHandler,
		noteHandler,
		prescriptionHandler,
		chatHandler,
		statsHandler,
		voiceHandler,
		auditLogHandler,
		middleware.NewCORSMiddleware(),
	)

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return nil
}

func (app *App) newPhotoStore(ctx context.Context) (storage.PhotoStore, error) {
	switch app.Config.Storage.Driver {
	case "gridfs":
		store, err := storage.NewGridFSStore(ctx, app.Config.Storage, app.Log)
		if err != nil {
			return nil, err
		}
		app.gridFS = store
		return store, nil
	case "local", "":
		return storage.NewLocalStore(app.Config.Storage.UploadDir)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", app.Config.Storage.Driver)
	}
}

// Migrate applies pending migrations and, when SEED_ON_START is set, loads
// the demo record into an empty database.
func (app *App) Migrate(ctx context.Context) error {
	if err := database.Migrate(app.DB, app.Log); err != nil {
		return err
	}
	if app.Config.App.SeedOnStart {
		if _, err := database.Seed(ctx, app.DB, app.Log); err != nil {
			return err
		}
	}
	return nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() error {
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
	return nil
}

// Close closes all connections (database, redis, mongo)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}

	if app.gridFS != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.gridFS.Close(ctx); err != nil {
			app.Log.Warnf("Failed to close mongo client: %+v", err)
		}
	}
}
