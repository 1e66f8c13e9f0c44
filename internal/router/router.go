package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/momus-app/momus/backend/internal/handlers"
	"github.com/momus-app/momus/backend/internal/middleware"
	"github.com/momus-app/momus/backend/internal/models"
	"github.com/momus-app/momus/backend/internal/reactions"
	"github.com/momus-app/momus/backend/internal/repositories"
	"github.com/momus-app/momus/backend/pkg/config"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Post{},
		&models.Favorite{},
		&models.Comment{},
		&models.Message{},
		&models.Notification{},
		&models.ReportedPost{},
		&models.ReportedComment{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("Auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Reaction hub: lifecycle events fan out from repository writes ---
	hub := reactions.NewHub(reactions.Policy{
		NotifyPostAuthor:  cfg.NotifyPostAuthor,
		LegacySingleLevel: cfg.LegacyCommentCascade,
	})

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db, hub)
	profileRepo := repositories.NewPostgresProfileRepository(db, hub)
	postRepo := repositories.NewPostgresPostRepository(db, hub)
	commentRepo := repositories.NewPostgresCommentRepository(db, hub)
	favoriteRepo := repositories.NewPostgresFavoriteRepository(db)
	messageRepo := repositories.NewPostgresMessageRepository(db, hub)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)
	reportRepo := repositories.NewPostgresReportRepository(db)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, profileRepo)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// Profile routes (writes throttled at 10/h per profile)
	profileGroup := api.Group("", middleware.WriteRateLimiter(10))
	profileHandler := handlers.NewProfileHandler(profileRepo, userRepo, cfg.UploadDir)
	profileHandler.RegisterProfileRoutes(profileGroup)
	log.Println("Profile routes configured.")

	// Post routes (writes throttled at 5/h per profile)
	postGroup := api.Group("", middleware.WriteRateLimiter(5))
	postHandler := handlers.NewPostHandler(postRepo, cfg.UploadDir)
	postHandler.RegisterPostRoutes(postGroup)
	log.Println("Post routes configured.")

	// Favorite routes (writes throttled at 25/h per profile)
	favoriteGroup := api.Group("", middleware.WriteRateLimiter(25))
	favoriteHandler := handlers.NewFavoriteHandler(favoriteRepo, postRepo)
	favoriteHandler.RegisterFavoriteRoutes(favoriteGroup)
	log.Println("Favorite routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	// Message routes (writes throttled at 100/h per profile)
	messageGroup := api.Group("", middleware.WriteRateLimiter(100))
	messageHandler := handlers.NewMessageHandler(messageRepo, profileRepo)
	messageHandler.RegisterMessageRoutes(messageGroup)
	log.Println("Message routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	// Report routes
	reportHandler := handlers.NewReportHandler(reportRepo, postRepo, commentRepo)
	reportHandler.RegisterReportRoutes(api)

	// Moderation routes
	modGroup := api.Group("", middleware.ModeratorOnly(cfg))
	postHandler.RegisterModerationRoutes(modGroup)
	reportHandler.RegisterModerationRoutes(modGroup)
	log.Println("Report and moderation routes configured.")

	log.Println("All routes configured.")
}
