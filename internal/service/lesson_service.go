package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/dualclass-api/internal/domain"
	"github.com/phrazzld/dualclass-api/internal/generation"
	"github.com/phrazzld/dualclass-api/internal/platform/logger"
	"github.com/phrazzld/dualclass-api/internal/redact"
)

// FixtureLoader reads a fixture file by name.
// assets.FixtureStore satisfies it.
type FixtureLoader interface {
	Load(name string) ([]byte, error)
}

// LessonService provides lesson generation operations
type LessonService interface {
	// Generate returns a lesson for the request: a demo fixture for demo
	// personas, otherwise a live generation, falling back to the chef
	// fixture when live generation fails.
	Generate(ctx context.Context, req domain.GenerationRequest) (*domain.Lesson, error)

	// GenerateErrorMirror produces the misconception enrichment for a
	// finished quiz. It has no fallback.
	GenerateErrorMirror(ctx context.Context, mirror domain.ErrorMirrorContext) (*domain.ErrorMirrorResult, error)
}

// lessonServiceImpl implements the LessonService interface
type lessonServiceImpl struct {
	generator generation.Generator
	fixtures  FixtureLoader
	model     string
	logger    *slog.Logger
	validate  *validator.Validate
	now       func() time.Time
}

// NewLessonService creates a new LessonService. model is reported in the
// metadata of live lessons.
func NewLessonService(
	generator generation.Generator,
	fixtures FixtureLoader,
	model string,
	logger *slog.Logger,
) (LessonService, error) {
	if generator == nil {
		return nil, fmt.Errorf("generator cannot be nil")
	}
	if fixtures == nil {
		return nil, fmt.Errorf("fixture loader cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &lessonServiceImpl{
		generator: generator,
		fixtures:  fixtures,
		model:     model,
		logger:    logger.With("component", "lesson_service"),
		validate:  validator.New(),
		now:       time.Now,
	}, nil
}

func (s *lessonServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

func (s *lessonServiceImpl) meta(start time.Time) domain.Meta {
	now := s.now()
	return domain.Meta{
		Timestamp:    now.UnixMilli(),
		ResponseTime: now.Sub(start).Milliseconds(),
	}
}

// Generate implements LessonService.
func (s *lessonServiceImpl) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.Lesson, error) {
	start := s.now()
	log := s.log(ctx)

	if strings.TrimSpace(req.Concept) == "" || strings.TrimSpace(req.Persona) == "" {
		return nil, fmt.Errorf("%w: concept and persona are required", ErrMissingFields)
	}
	mode, err := domain.ParseLessonStepMode(string(req.Mode))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, req.Mode)
	}

	if name, ok := DemoFixture(req.Persona); ok {
		lesson, err := s.loadFixture(name)
		if err != nil {
			return nil, NewLessonServiceError("generate", "failed to load demo fixture", err)
		}
		lesson.Meta = s.meta(start)
		lesson.Meta.Cached = true

		log.InfoContext(ctx, "Served demo fixture",
			"fixture", name,
			"response_time_ms", lesson.Meta.ResponseTime)
		return lesson, nil
	}

	lesson, err := s.generateLive(ctx, req.Concept, req.Persona, mode)
	if err != nil {
		log.WarnContext(ctx, "Live generation failed, serving fallback fixture",
			"fixture", ChefFixture,
			"error", redact.Error(err))

		lesson, err = s.loadFixture(ChefFixture)
		if err != nil {
			return nil, NewLessonServiceError("generate", "failed to load fallback fixture", err)
		}
		lesson.Meta = s.meta(start)
		lesson.Meta.Cached = true
		lesson.Meta.Fallback = true
		return lesson, nil
	}

	lesson.Meta = s.meta(start)
	lesson.Meta.Model = s.model

	log.InfoContext(ctx, "Generated live lesson",
		"model", s.model,
		"steps", len(lesson.Result.LessonSteps),
		"response_time_ms", lesson.Meta.ResponseTime)
	return lesson, nil
}

// generateLive runs the text call, validates the payload and attaches an
// image. Only text and validation failures are returned; an image failure
// substitutes FallbackImage.
func (s *lessonServiceImpl) generateLive(
	ctx context.Context,
	concept, persona string,
	mode domain.LessonStepMode,
) (*domain.Lesson, error) {
	text, err := s.generator.GenerateMetaphor(ctx, concept, persona, mode)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := generation.ParseJSON(text, &raw); err != nil {
		return nil, err
	}
	if err := domain.ValidateMetaphorJSON(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", generation.ErrInvalidResponse, err)
	}

	lesson, err := domain.NewLesson(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", generation.ErrInvalidResponse, err)
	}
	if err := domain.ValidateMetaphorResult(&lesson.Result, mode); err != nil {
		return nil, fmt.Errorf("%w: %w", generation.ErrInvalidResponse, err)
	}

	lesson.SetImageURL(s.lessonImage(ctx, lesson.Result.ImagePrompt))
	return lesson, nil
}

func (s *lessonServiceImpl) lessonImage(ctx context.Context, imagePrompt string) string {
	if strings.TrimSpace(imagePrompt) == "" {
		return PlaceholderImage
	}

	url, err := s.generator.GenerateImage(ctx, imagePrompt)
	if err != nil {
		s.log(ctx).WarnContext(ctx, "Image generation failed, using fallback",
			"fallback", FallbackImage,
			"error", redact.Error(err))
		return FallbackImage
	}
	return url
}

func (s *lessonServiceImpl) loadFixture(name string) (*domain.Lesson, error) {
	data, err := s.fixtures.Load(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFixtureUnavailable, err)
	}
	lesson, err := domain.NewLesson(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFixtureUnavailable, name, err)
	}
	return lesson, nil
}

// GenerateErrorMirror implements LessonService.
func (s *lessonServiceImpl) GenerateErrorMirror(
	ctx context.Context,
	mirror domain.ErrorMirrorContext,
) (*domain.ErrorMirrorResult, error) {
	if err := s.validate.Struct(mirror); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, fmt.Errorf("%w: %v", ErrMissingFields, verrs)
		}
		return nil, fmt.Errorf("%w: %v", ErrMissingFields, err)
	}

	log := s.log(ctx)
	log.InfoContext(ctx, "Generating error mirror",
		"wrong_options", len(mirror.WrongOptions()))

	result, err := s.generator.GenerateErrorMirror(ctx, mirror)
	if err != nil {
		return nil, NewLessonServiceError("generate_error_mirror", "model call failed",
			fmt.Errorf("%w: %w", ErrErrorMirrorFailed, err))
	}

	log.InfoContext(ctx, "Error mirror generation complete",
		"error_states", len(result.ErrorStates))
	return result, nil
}
