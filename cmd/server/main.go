package main // Entry point package

import (
	"log" // Logging library

	"github.com/labstack/echo/v4" // Echo web framework
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/pressly/goose/v3" // SQL migrations

	"github.com/carlosRosario19/EventEase-Backend/internal/config"     // Internal config loader
	"github.com/carlosRosario19/EventEase-Backend/internal/database"   // MySQL connection pool
	"github.com/carlosRosario19/EventEase-Backend/internal/handler"    // HTTP handlers
	"github.com/carlosRosario19/EventEase-Backend/internal/middleware" // Error handler middleware
	"github.com/carlosRosario19/EventEase-Backend/internal/repository" // Data access
	"github.com/carlosRosario19/EventEase-Backend/internal/router"     // Route registration
	"github.com/carlosRosario19/EventEase-Backend/internal/service"    // Business rules
	"github.com/carlosRosario19/EventEase-Backend/internal/storage"    // Image store
)

const migrationsDir = "migrations"

func main() {
	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("mysql"); err != nil {
		log.Fatalf("set migration dialect: %v", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	images := storage.New(cfg.UploadDir)
	if err := images.Init(); err != nil {
		log.Fatalf("init image store: %v", err)
	}

	// Repositories, services, handlers: assembled once at startup, every
	// collaborator passed in explicitly.
	eventRepo := repository.NewEventRepo(db)
	memberRepo := repository.NewMemberRepo(db)
	userRepo := repository.NewUserRepo(db)

	eventService := service.NewEventService(eventRepo, memberRepo, images)
	memberService := service.NewMemberService(memberRepo, cfg.BcryptCost)

	authHandler := handler.NewAuthHandler(cfg, userRepo)
	eventHandler := handler.NewEventHandler(eventService)
	memberHandler := handler.NewMemberHandler(memberService)
	imageHandler := handler.NewImageHandler(images)

	e := echo.New() // Create Echo instance
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	router.RegisterRoutes(e) // Health check
	router.RegisterPublic(e, authHandler, eventHandler, memberHandler, imageHandler)
	router.RegisterMember(e, eventHandler, memberHandler, cfg.JWTSecret)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
