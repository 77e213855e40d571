package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/docpages/doc2jpeg/internal/api"
	"github.com/docpages/doc2jpeg/internal/config"
	"github.com/docpages/doc2jpeg/internal/converter"
	"github.com/docpages/doc2jpeg/internal/screenshot"
	"github.com/docpages/doc2jpeg/internal/workspace"
)

func main() {
	log.Println("Starting doc2jpeg...")

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	// Load configuration
	cfg := config.Load()
	log.Printf("Configuration loaded:")
	log.Printf("  HTTP Port: %d", cfg.HTTPPort)
	log.Printf("  Work Dir: %s", cfg.WorkDir)
	log.Printf("  JPEG Quality: %d", cfg.JPEGQuality)
	log.Printf("  Render DPI: %.0f", cfg.RenderDPI)
	log.Printf("  Max Upload: %d MB", cfg.MaxUploadMB)
	log.Printf("  Screenshot Timeout: %s", cfg.ScreenshotTimeout)

	if err := os.MkdirAll(cfg.WorkDir, 0o755); err != nil {
		log.Fatalf("Failed to create work dir: %v", err)
	}
	// Reclaim anything a previous process left behind.
	workspace.SweepStale(cfg.WorkDir, time.Hour)

	// Check external tools
	checkExternalTools(cfg)

	// Register builtin converters
	converter.RegisterBuiltinConverters(cfg.SofficeBin, cfg.FFmpegBin)

	shots := screenshot.NewCapturer(cfg.ScreenshotTimeout)
	server := api.NewServer(cfg, shots)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: server.Router,
	}

	go func() {
		log.Printf("doc2jpeg listening on %s", cfg.HTTPAddr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start API server: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Shutdown complete")
}

// checkExternalTools checks if required external tools are available
func checkExternalTools(cfg *config.Config) {
	tools := []string{cfg.SofficeBin, cfg.FFmpegBin}

	log.Println("Checking external tools:")
	for _, name := range tools {
		if _, err := exec.LookPath(name); err != nil {
			log.Printf("  ⚠️  %s: NOT FOUND (required for conversion)", name)
		} else {
			log.Printf("  ✅ %s: found", name)
		}
	}
}
