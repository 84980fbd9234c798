package main

import (
	"log"

	"github.com/egorrya/pattaya-grad/config"
	"github.com/egorrya/pattaya-grad/db"
	"github.com/egorrya/pattaya-grad/handlers"
	"github.com/egorrya/pattaya-grad/middleware"
	"github.com/egorrya/pattaya-grad/models"
	"github.com/egorrya/pattaya-grad/services"
	"github.com/egorrya/pattaya-grad/templates"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if !cfg.AdminConfigured() {
		log.Println("[WARNING] ADMIN_USER / ADMIN_PASS are not set; the admin surface will refuse all requests")
	}

	// Initialize database
	if err := db.Initialize(cfg.DatabaseURL, cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(&models.LandingContent{}, &models.LandingPage{}, &models.Lead{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize asset storage (local dir or Cloudflare R2)
	services.InitializeStorage(cfg)

	// Create Echo instance
	e := echo.New()
	e.Renderer = templates.NewRenderer()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.ContextKeyConfig, cfg)
			return next(c)
		}
	})

	// Static files
	e.Static("/assets", "static/assets")
	e.Static("/uploads", cfg.UploadDir)

	// Public pages
	e.GET("/", handlers.HomeHandler)
	e.GET("/success", handlers.HomeSuccessHandler)
	e.GET("/:slug", handlers.LandingPageHandler)
	e.GET("/:slug/success", handlers.LandingSuccessHandler)

	// Public lead intake
	e.POST("/api/lead", handlers.CreateLeadHandler)

	// Guarded lead reads
	e.GET("/api/lead", handlers.ListLeadsHandler, middleware.RequireAdminAPI())
	e.GET("/api/lead/export", handlers.ExportLeadsHandler, middleware.RequireAdminAPI())

	// Admin session
	e.POST("/api/admin/login", handlers.LoginHandler)
	e.POST("/api/admin/logout", handlers.LogoutHandler)

	// Guarded admin API
	adminAPI := e.Group("/api/admin")
	adminAPI.Use(middleware.RequireAdminAPI())
	{
		adminAPI.GET("/landing", handlers.GetLandingContentHandler)
		adminAPI.PATCH("/landing", handlers.UpdateLandingContentHandler)

		adminAPI.GET("/landings", handlers.ListLandingPagesHandler)
		adminAPI.POST("/landings", handlers.CreateLandingPageHandler)
		adminAPI.GET("/landings/:id", handlers.GetLandingPageHandler)
		adminAPI.PATCH("/landings/:id", handlers.UpdateLandingPageHandler)
		adminAPI.DELETE("/landings/:id", handlers.DeleteLandingPageHandler)

		adminAPI.POST("/uploads", handlers.UploadAssetHandler)
	}

	// Admin pages: everything under /admin except the login page redirects
	// to /admin/login until the guard passes
	adminPages := e.Group("/admin")
	adminPages.Use(middleware.RequireAdminPage())
	{
		adminPages.GET("/login", handlers.AdminLoginPageHandler)
		adminPages.GET("", handlers.AdminLeadsPageHandler)
		adminPages.GET("/edit", handlers.AdminEditPageHandler)
		adminPages.GET("/landings", handlers.AdminLandingsPageHandler)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
