package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/dualclass-api/internal/api"
	apiMiddleware "github.com/phrazzld/dualclass-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	lessonHandler := api.NewLessonHandler(app.lessonService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", lessonHandler.Generate)
		r.Post("/generate-error-mirror", lessonHandler.GenerateErrorMirror)
		r.Post("/check-answer", lessonHandler.CheckAnswer)
	})

	// Generated images, fallback images and fixtures are served from the
	// public directory at the URLs the API returns.
	static := http.FileServer(http.Dir(app.config.Assets.PublicDir))
	r.Handle("/images/*", static)
	r.Handle("/data/*", static)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
