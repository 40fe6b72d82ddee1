// main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/leadgrid/leadgrid-backend/internal/api/handlers"
	"github.com/leadgrid/leadgrid-backend/internal/api/middleware"
	"github.com/leadgrid/leadgrid-backend/internal/config"
	"github.com/leadgrid/leadgrid-backend/internal/cron"
	"github.com/leadgrid/leadgrid-backend/internal/db"
	"github.com/leadgrid/leadgrid-backend/internal/repository"
	"github.com/leadgrid/leadgrid-backend/internal/seed"
	"github.com/leadgrid/leadgrid-backend/internal/service"
)

func main() {
	// ============================================
	// Load environment variables
	// ============================================
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// ============================================
	// Load configuration
	// ============================================
	cfg := config.Load()

	// ============================================
	// Set Gin mode
	// ============================================
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ============================================
	// Select the record store: Postgres, or the
	// in-memory fallback when no DATABASE_URL is
	// set. The choice is made once and injected.
	// ============================================
	var repos *repository.Repositories
	var pgDB *db.PostgresDB

	if cfg.UseMemoryStore() {
		log.Println("⚠️  DATABASE_URL not set - running on the in-memory store (development only)")
		repos = repository.NewMemoryRepositories(seed.DemoLeads)
	} else {
		log.Println("🔄 Running database migrations...")
		migrationsPath := "./internal/db/migrations"
		if err := db.RunMigrations(cfg.DatabaseURL, migrationsPath); err != nil {
			log.Fatalf("❌ Migration failed: %v", err)
		}

		var err error
		pgDB, err = db.NewPostgresDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ Failed to connect to PostgreSQL: %v", err)
		}
		defer pgDB.Close()

		repos = repository.NewRepositories(pgDB.Pool, pgDB.SQLX)
	}
	log.Println("📦 Repositories initialized")

	// ============================================
	// Initialize Redis (optional)
	// ============================================
	var redisDB *db.RedisDB
	if cfg.RedisURL != "" {
		var err error
		redisDB, err = db.NewRedisDB(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️ Failed to connect to Redis: %v (continuing without cache)", err)
			redisDB = nil
		} else {
			defer redisDB.Close()
			log.Println("⚡ Redis cache enabled")
		}
	}

	// ============================================
	// Initialize Services
	// ============================================
	services := service.NewServices(&service.ServiceDeps{
		Config: cfg,
		Repos:  repos,
		Redis:  redisDB,
	})
	log.Println("✨ All services initialized")

	// ============================================
	// Initialize Handlers
	// ============================================
	h := handlers.NewHandlers(services)

	// ============================================
	// Stale-enrichment sweep (persistent store only;
	// the memory store has no external enrichment worker)
	// ============================================
	if !cfg.UseMemoryStore() {
		scheduler := cron.NewScheduler(
			repos.LeadRepo,
			cfg.SweepSchedule,
			time.Duration(cfg.ProcessingTimeout)*time.Minute,
		)
		scheduler.Start()
		defer scheduler.Stop()
	}

	// ============================================
	// Create Gin Router
	// ============================================
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL, "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Session resolution on every request; rejection is per-route.
	r.Use(middleware.SessionMiddleware(services.Auth))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		store := "postgres"
		if cfg.UseMemoryStore() {
			store = "memory"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"store":     store,
			"cache":     getCacheStatus(redisDB),
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// ============================================
		// Public routes (anonymous callers tolerated)
		// ============================================
		auth := api.Group("/auth")
		{
			auth.GET("/me", h.Auth.Me)
			auth.POST("/callback", h.Auth.Callback)
			auth.POST("/logout", h.Auth.Logout)
		}

		// ============================================
		// Protected routes (require a resolved user)
		// ============================================
		leads := api.Group("/leads")
		leads.Use(middleware.RequireAuth())
		{
			leads.GET("", h.Lead.List)
			leads.POST("", h.Lead.Create)
			leads.GET("/:id", h.Lead.Get)
			leads.PATCH("/:id", h.Lead.Update)
			leads.DELETE("/:id", h.Lead.Delete)
		}
	}

	// ============================================
	// Start server with graceful shutdown
	// ============================================
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("🚀 Server listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Forced shutdown: %v", err)
	}
	log.Println("👋 Server stopped")
}

func getCacheStatus(redisDB *db.RedisDB) string {
	if redisDB == nil {
		return "disabled"
	}
	return "connected"
}
