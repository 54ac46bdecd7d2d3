// Package main provides the MindTrack API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mindtrackhq/mindtrack/internal/api"
	"github.com/mindtrackhq/mindtrack/internal/auth"
	"github.com/mindtrackhq/mindtrack/internal/config"
	"github.com/mindtrackhq/mindtrack/internal/database"
	"github.com/mindtrackhq/mindtrack/internal/environment"
	"github.com/mindtrackhq/mindtrack/internal/sentiment"
	"github.com/mindtrackhq/mindtrack/internal/wellness"
)

func main() {
	var (
		configPath  = flag.String("config", os.Getenv("MINDTRACK_CONFIG"), "Path to YAML config file")
		migrateOnly = flag.Bool("migrate", false, "Run migrations and exit")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.Auth.Secret == "" && !*migrateOnly {
		log.Fatal("JWT_SECRET is required")
	}

	// Run migrations
	log.Println("Running database migrations...")
	if err := database.Migrate(cfg.Database.URL); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations complete")

	if *migrateOnly {
		return
	}

	// Connect to database
	ctx := context.Background()
	db, err := database.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	authManager, err := auth.NewManager(auth.Config{
		Secret:   cfg.Auth.Secret,
		Issuer:   cfg.Auth.Issuer,
		Audience: cfg.Auth.Audience,
		TTL:      cfg.Auth.TokenTTL,
	})
	if err != nil {
		log.Fatalf("Failed to create auth manager: %v", err)
	}

	// Build the analysis engine
	analyzer := sentiment.New(sentiment.Config{})
	classifier := environment.New(environment.Config{})
	engine := wellness.NewEngine(analyzer)

	// Create API server
	server := api.NewServer(api.Config{
		DB:          db,
		AuthManager: authManager,
		Analyzer:    analyzer,
		Classifier:  classifier,
		Engine:      engine,
		RateLimit:   cfg.Server.RateLimit,
		RateBurst:   cfg.Server.RateBurst,
	})

	// Create HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      server,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped")
}
