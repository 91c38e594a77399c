package app

import (
	"fmt"

	"visionvault_backend/database"
	"visionvault_backend/internal/config"
	"visionvault_backend/internal/email"
	"visionvault_backend/internal/handlers"
	"visionvault_backend/internal/logger"
	"visionvault_backend/internal/middleware"
	"visionvault_backend/internal/repositories"
	"visionvault_backend/internal/routes"
	"visionvault_backend/internal/services"
	"visionvault_backend/internal/storage"
	"visionvault_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the fully wired gin engine.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	ginRouter, _ := SetupRouterWithContainer(cfg, gormDB)
	return ginRouter
}

// SetupRouterWithContainer additionally exposes the wired services.
// Tests use it to reach the mock email provider.
func SetupRouterWithContainer(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, *ServiceContainer) {
	store, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg, store)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, store)

	return ginRouter, serviceContainer
}

// ServiceContainer groups the wired services so handlers and tests can
// reach them.
type ServiceContainer struct {
	Designer services.DesignerService
	Consumer services.ConsumerService
	JobPost  services.JobPostService
	Post     services.PostService
	Mailer   email.Provider
}

func initializeServices(cfg *config.Config, store storage.Storage) *ServiceContainer {
	var mailer email.Provider
	if cfg.Email.SMTPHost != "" {
		smtp, err := email.NewSMTPProvider(email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			logger.Fatal("Failed to initialize SMTP provider", "error", err)
		}
		mailer = smtp
	} else {
		logger.Warn("SMTP is not configured, outgoing email is captured by a mock provider")
		mailer = &MockEmailProvider{}
	}

	designerRepo := repositories.NewDesignerRepository()
	consumerRepo := repositories.NewConsumerRepository()
	jobPostRepo := repositories.NewJobPostRepository()
	postRepo := repositories.NewPostRepository()

	uploads := services.NewUploadService(store)
	designerCreds := services.NewCredentialService(repositories.NewDesignerCredentialStore(designerRepo))
	consumerCreds := services.NewCredentialService(repositories.NewConsumerCredentialStore(consumerRepo))

	return &ServiceContainer{
		Designer: services.NewDesignerService(designerRepo, designerCreds, uploads, mailer),
		Consumer: services.NewConsumerService(consumerRepo, consumerCreds, uploads, mailer),
		JobPost:  services.NewJobPostService(jobPostRepo, consumerRepo, uploads),
		Post:     services.NewPostService(postRepo, designerRepo, uploads),
		Mailer:   mailer,
	}
}

func initializeHandlers(sc *ServiceContainer) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		Designer: handlers.NewDesignerHandler(base, sc.Designer),
		Consumer: handlers.NewConsumerHandler(base, sc.Consumer),
		JobPost:  handlers.NewJobPostHandler(base, sc.JobPost),
		Post:     handlers.NewPostHandler(base, sc.Post),
	}
}

func initializeGinRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.MetricsMiddleware(),
		middleware.CORSMiddleware(),
		middleware.DBMiddleware(gormDB),
	)

	return ginRouter
}
