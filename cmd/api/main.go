package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/eventhive/eventhive_api/internal/auth"
	"github.com/eventhive/eventhive_api/internal/cache"
	"github.com/eventhive/eventhive_api/internal/config"
	"github.com/eventhive/eventhive_api/internal/database"
	"github.com/eventhive/eventhive_api/internal/handler"
	"github.com/eventhive/eventhive_api/internal/middleware"
	"github.com/eventhive/eventhive_api/internal/repository"
	"github.com/eventhive/eventhive_api/internal/service"
	"github.com/eventhive/eventhive_api/internal/utils"
	"github.com/eventhive/eventhive_api/internal/worker"
	"github.com/eventhive/eventhive_api/pkg/groq"
)

// main is the application entrypoint for the Event Hive API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting eventhive api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 4. Initialize repositories and cache
	adminRepo := repository.NewAdminRepository(db)
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	eventCache := cache.NewEventCache(redisClient, cfg.Worker.EventsCacheTTL)

	// 5. Initialize token manager and services
	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := service.NewAuthService(adminRepo, userRepo, tokens)
	eventSvc := service.NewEventService(eventRepo, eventCache)

	// AI description generation is optional; without an API key the
	// endpoint reports the generator as not configured.
	var generator service.Generator
	if cfg.Groq.APIKey != "" {
		generator = groq.NewClient(cfg.Groq.APIKey, cfg.Groq.Model)
	} else {
		log.Warn().Msg("GROQ_API_KEY not set - AI description generation disabled")
	}
	descriptionSvc := service.NewDescriptionService(generator)

	// 6. Initialize handlers and middleware
	authHandler := handler.NewAuthHandler(authSvc)
	eventHandler := handler.NewEventHandler(eventSvc, descriptionSvc)
	healthHandler := handler.NewHealthHandler(db)

	jwtMw := middleware.NewJWTMiddleware(tokens)
	signinLimiter := middleware.NewSigninRateLimiter()

	// 7. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, authHandler, eventHandler, healthHandler, jwtMw, signinLimiter)

	// 8. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 9. Start cache refresh worker
	go worker.NewCacheRefreshWorker(eventSvc, cfg.Worker.CacheRefreshInterval).Start(ctx)

	// 10. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 11. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 12. Cancel context to stop workers
	cancel()

	// 13. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// setupRoutes registers the route table.
func setupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	eventHandler *handler.EventHandler,
	healthHandler *handler.HealthHandler,
	jwtMw *middleware.JWTMiddleware,
	signinLimiter *middleware.SigninRateLimiter,
) {
	// Wrong verb on a known path is 405, not 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		utils.Error(c, http.StatusMethodNotAllowed, "Method not allowed")
	})

	api := router.Group("/api")

	api.GET("/health", healthHandler.GetHealth)

	// Public auth
	api.POST("/signin", signinLimiter.Handle(), authHandler.SignIn)
	api.POST("/signup", authHandler.UserSignUp)

	// Public event reads
	api.GET("/events", eventHandler.GetEvents)
	api.GET("/user/events/:id", eventHandler.GetEventByID)

	// Admin
	admin := api.Group("/admin")
	admin.POST("/signin", signinLimiter.Handle(), authHandler.AdminSignIn)
	admin.POST("/signup", authHandler.AdminSignUp)
	admin.POST("/ai_description", eventHandler.AIDescription)

	protected := admin.Group("")
	protected.Use(jwtMw.Handle(), jwtMw.RequireAdmin())
	{
		protected.POST("/create_event", eventHandler.CreateEvent)
		protected.GET("/admin_events", eventHandler.AdminEvents)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
