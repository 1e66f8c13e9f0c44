package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/momus-app/momus/backend/internal/router"
	"github.com/momus-app/momus/backend/pkg/config"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, cfg)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
