package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/dualclass-api/internal/config"
	"github.com/phrazzld/dualclass-api/internal/domain"
	"github.com/phrazzld/dualclass-api/internal/generation"
	"github.com/phrazzld/dualclass-api/internal/prompt"
	"github.com/phrazzld/dualclass-api/internal/redact"
	"google.golang.org/genai"
)

// PingPrompt is the probe sent by Ping.
const PingPrompt = "Say hello in one word"

// ContentGenerator is the subset of the genai SDK the client calls.
// *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// ImageSaver persists image bytes and returns their public path.
// assets.ImageStore satisfies it.
type ImageSaver interface {
	SaveImage(data []byte, mimeType string) (string, error)
}

// Client calls Gemini text and image models.
type Client struct {
	logger     *slog.Logger
	models     ContentGenerator
	images     ImageSaver
	textModel  string
	imageModel string
}

var (
	_ generation.Generator   = (*Client)(nil)
	_ generation.ImageEditor = (*Client)(nil)
)

// NewClient creates a Client backed by the Gemini API.
func NewClient(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig, images ImageSaver) (*Client, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	sdk, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return NewClientWithModels(logger, sdk.Models, images, cfg.TextModel, cfg.ImageModel)
}

// NewClientWithModels creates a Client around an existing ContentGenerator.
func NewClientWithModels(
	logger *slog.Logger,
	models ContentGenerator,
	images ImageSaver,
	textModel, imageModel string,
) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if models == nil {
		return nil, fmt.Errorf("%w: content generator cannot be nil", generation.ErrInvalidConfig)
	}
	if images == nil {
		return nil, fmt.Errorf("%w: image saver cannot be nil", generation.ErrInvalidConfig)
	}
	if textModel == "" || imageModel == "" {
		return nil, fmt.Errorf("%w: text and image model names are required", generation.ErrInvalidConfig)
	}

	return &Client{
		logger:     logger.With("component", "gemini"),
		models:     models,
		images:     images,
		textModel:  textModel,
		imageModel: imageModel,
	}, nil
}

// TextModel returns the model used for text calls.
func (c *Client) TextModel() string { return c.textModel }

// GenerateMetaphor asks the text model for a lesson and returns the JSON
// payload extracted from its answer. The payload is not parsed.
func (c *Client) GenerateMetaphor(
	ctx context.Context,
	concept, persona string,
	mode domain.LessonStepMode,
) (string, error) {
	text, err := c.generateText(ctx, prompt.BuildMetaphorPrompt(concept, persona, mode))
	if err != nil {
		return "", err
	}
	return generation.ExtractJSON(text), nil
}

// Ping sends PingPrompt to the text model and returns the trimmed answer.
func (c *Client) Ping(ctx context.Context) (string, error) {
	text, err := c.generateText(ctx, PingPrompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (c *Client) generateText(ctx context.Context, promptText string) (string, error) {
	if strings.TrimSpace(promptText) == "" {
		return "", ErrEmptyPrompt
	}

	c.logger.InfoContext(ctx, "Making Gemini API call",
		"model", c.textModel,
		"prompt_length", len(promptText))

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: promptText}},
	}}

	resp, err := c.models.GenerateContent(ctx, c.textModel, contents, &genai.GenerateContentConfig{})
	if err != nil {
		c.logger.ErrorContext(ctx, "Gemini text call failed", "model", c.textModel, "error", redact.Error(err))
		return "", mapError(err)
	}
	if err := checkResponse(resp); err != nil {
		c.logger.WarnContext(ctx, "Gemini text response rejected", "model", c.textModel, "error", redact.Error(err))
		return "", err
	}

	text := responseText(resp)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: response contains no text", generation.ErrInvalidResponse)
	}

	c.logger.DebugContext(ctx, "Gemini text call succeeded",
		"model", c.textModel,
		"response_length", len(text))
	return text, nil
}

// validateConfig checks the settings NewClient needs.
func validateConfig(cfg config.LLMConfig) error {
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.TextModel == "" {
		return fmt.Errorf("%w: text model name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ImageModel == "" {
		return fmt.Errorf("%w: image model name cannot be empty", generation.ErrInvalidConfig)
	}
	return nil
}
