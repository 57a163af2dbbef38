package app

import (
	"context"
	"fmt"
	"time"

	"jobportal_backend/internal/config"
	"jobportal_backend/internal/database"
	"jobportal_backend/internal/email"
	"jobportal_backend/internal/handlers"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/media"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/routes"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/validator"
	"jobportal_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ginRouter, dispatcher := SetupRouter(cfg, gormDB)
	dispatcher.Start(ctx)
	defer dispatcher.Stop()

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full gin engine and the notification dispatcher.
// The dispatcher is returned unstarted so tests can drive it themselves.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, *workers.NotificationDispatcher) {
	provider := initEmailProvider(cfg)
	renderer := email.NewTemplateManager()

	notificationRepo := repositories.NewNotificationRepository(gormDB)
	dispatcher := workers.NewNotificationDispatcher(
		provider,
		renderer,
		notificationRepo,
		time.Duration(cfg.Email.TimeoutSecs)*time.Second,
	)

	var signer *media.Signer
	if cfg.Cloudinary.CloudName != "" && cfg.Cloudinary.APISecret != "" {
		signer = media.NewSigner(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
		logger.Info("Media signer initialized", "cloud_name", cfg.Cloudinary.CloudName)
	} else {
		logger.Warn("Media signing not configured; upload signatures disabled")
	}

	serviceContainer := services.NewServiceContainer(gormDB, signer, dispatcher)
	appHandlers := handlers.NewAppHandlers(validator.New(), serviceContainer)

	ginRouter := initGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter, dispatcher
}

func initEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP not configured; outbound mail disabled")
		return &email.NoopProvider{}
	}

	smtpCfg := &email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
		UseTLS:    cfg.Email.UseTLS,
		Timeout:   time.Duration(cfg.Email.TimeoutSecs) * time.Second,
	}
	provider, err := email.NewSMTPProvider(smtpCfg)
	if err != nil {
		logger.Warn("SMTP misconfigured; outbound mail disabled", "error", err)
		return &email.NoopProvider{}
	}
	logger.Info("SMTP provider initialized", "host", cfg.Email.SMTPHost)
	return provider
}

func initGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
	)
	return ginRouter
}
