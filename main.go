package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/safespace-id/safespace-backend/internal/adapter/gemini"
	"github.com/safespace-id/safespace-backend/internal/config"
	"github.com/safespace-id/safespace-backend/internal/repository"
	"github.com/safespace-id/safespace-backend/internal/service"
	transport "github.com/safespace-id/safespace-backend/internal/transport/http"
)

func main() {
	// Load .env if present; real env vars take precedence.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	cfg := config.Load()

	log.Printf("Starting SafeSpace backend...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Database: %s", cfg.DatabaseURL)

	// Initialize store
	db, err := repository.NewSQLiteStore(cfg.DatabaseURL, repository.Options{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer db.Close()

	if err := pingWithRetry(db, cfg.DBAcquireTimeout); err != nil {
		log.Fatalf("Database unreachable: %v", err)
	}
	log.Println("Database connection verified")

	// Initialize generation client
	generator := gemini.NewGenerator(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiTimeout)

	// Initialize service
	svc := service.New(db, generator, cfg)

	// Create the HTTP server
	e := transport.NewServer(svc)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("SafeSpace backend started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down SafeSpace backend...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("SafeSpace backend stopped")
}

// pingWithRetry verifies the database a few times before giving up, so the
// process survives a store that is a moment late at boot.
func pingWithRetry(db *repository.SQLiteStore, timeout time.Duration) error {
	var err error
	for attempt := 1; attempt <= 3; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err = db.Ping(ctx)
		cancel()
		if err == nil {
			return nil
		}
		log.Printf("ERROR: database ping attempt %d failed: %v", attempt, err)
		time.Sleep(2 * time.Second)
	}
	return err
}
