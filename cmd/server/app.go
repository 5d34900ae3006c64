package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/phrazzld/dualclass-api/internal/config"
	"github.com/phrazzld/dualclass-api/internal/platform/assets"
	"github.com/phrazzld/dualclass-api/internal/platform/gemini"
	"github.com/phrazzld/dualclass-api/internal/service"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	images        *assets.ImageStore
	fixtures      *assets.FixtureStore
	generator     *gemini.Client
	lessonService service.LessonService
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.images, err = assets.NewImageStore(cfg.Assets.PublicDir, cfg.Assets.GeneratedSubdir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image store: %w", err)
	}
	app.fixtures = assets.NewFixtureStore(filepath.Join(cfg.Assets.PublicDir, cfg.Assets.DataSubdir))
	logger.Info("Asset stores initialized",
		"generated_dir", app.images.Dir(),
		"fixture_dir", app.fixtures.Dir())

	app.generator, err = gemini.NewClient(ctx, logger.With("component", "gemini_client"), cfg.LLM, app.images)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	logger.Info("Gemini client initialized successfully",
		"text_model", cfg.LLM.TextModel,
		"image_model", cfg.LLM.ImageModel)

	app.lessonService, err = service.NewLessonService(app.generator, app.fixtures, cfg.LLM.TextModel, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create lesson service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
