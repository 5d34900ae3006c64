// Package main implements the entry point for the Dual Class API server,
// which turns a technical concept and a persona into an illustrated
// metaphor lesson.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/dualclass-api/internal/config"
	"github.com/phrazzld/dualclass-api/internal/platform/logger"
)

// main is the entry point for the dualclass-api server.
func main() {
	fmt.Println("Dual Class API Server Starting...")

	ctx := context.Background()

	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to create application", "error", err)
		log.Fatalf("Failed to create application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		appLogger.Error("Server stopped with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"text_model", cfg.LLM.TextModel,
		"image_model", cfg.LLM.ImageModel,
		"public_dir", cfg.Assets.PublicDir)

	return cfg, appLogger, nil
}
