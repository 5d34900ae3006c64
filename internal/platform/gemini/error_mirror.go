package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/phrazzld/dualclass-api/internal/domain"
	"github.com/phrazzld/dualclass-api/internal/generation"
	"github.com/phrazzld/dualclass-api/internal/prompt"
	"github.com/phrazzld/dualclass-api/internal/redact"
)

// PlaceholderImage stands in for any error mirror image that failed.
const PlaceholderImage = "/images/error_mirror_placeholder.png"

type errorStatePayload struct {
	domain.ErrorState
	WrongConnectionPrompt string `json:"wrong_connection_prompt"`
}

type errorMirrorPayload struct {
	ErrorStates             []errorStatePayload `json:"error_states"`
	FallbackError           errorStatePayload   `json:"fallback_error"`
	WhyText                 string              `json:"why_text"`
	CorrectConnectionPrompt string              `json:"correct_connection_prompt"`
	WhyImagePrompt          string              `json:"why_image_prompt"`
}

func (p *errorMirrorPayload) stateFor(optionID string) (errorStatePayload, bool) {
	want := strings.TrimSpace(optionID)
	for _, s := range p.ErrorStates {
		if strings.EqualFold(strings.TrimSpace(s.WrongOptionID), want) {
			return s, true
		}
	}
	return errorStatePayload{}, false
}

// GenerateErrorMirror asks the text model for misconception explanations
// of every wrong option, then requests the correct connection image, one
// wrong connection image per wrong option and the why image, in that
// order and one at a time. A failed image becomes PlaceholderImage.
func (c *Client) GenerateErrorMirror(ctx context.Context, mirror domain.ErrorMirrorContext) (*domain.ErrorMirrorResult, error) {
	text, err := c.generateText(ctx, prompt.BuildErrorMirrorPrompt(mirror))
	if err != nil {
		return nil, err
	}

	var payload errorMirrorPayload
	if err := generation.ParseJSON(text, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse error mirror response: %w", err)
	}

	correctImage := c.imageOrPlaceholder(ctx, "correct_connection", payload.CorrectConnectionPrompt)

	wrong := mirror.WrongOptions()
	wrongImages := make(map[string]string, len(wrong))
	firstWrongImage := ""
	for _, o := range wrong {
		subject := payload.FallbackError.WrongConnectionPrompt
		if s, ok := payload.stateFor(o.ID); ok && s.WrongConnectionPrompt != "" {
			subject = s.WrongConnectionPrompt
		}
		img := c.imageOrPlaceholder(ctx, "wrong_connection_"+o.ID, subject)
		wrongImages[o.ID] = img
		if firstWrongImage == "" {
			firstWrongImage = img
		}
	}

	whyImage := c.imageOrPlaceholder(ctx, "why_image", payload.WhyImagePrompt)

	modelStates := make([]domain.ErrorState, len(payload.ErrorStates))
	for i, s := range payload.ErrorStates {
		modelStates[i] = s.ErrorState
	}

	states := domain.ReconcileErrorStates(mirror, modelStates, payload.FallbackError.ErrorState)
	for i := range states {
		states[i].WrongConnectionVisual = wrongImages[states[i].WrongOptionID]
		states[i].CorrectConnectionVisual = correctImage
	}

	fallback := payload.FallbackError.ErrorState
	fallback.WrongConnectionVisual = PlaceholderImage
	if firstWrongImage != "" {
		fallback.WrongConnectionVisual = firstWrongImage
	}
	fallback.CorrectConnectionVisual = correctImage

	c.logger.InfoContext(ctx, "Error mirror generated",
		"wrong_options", len(wrong),
		"model_error_states", len(payload.ErrorStates))

	return &domain.ErrorMirrorResult{
		ErrorStates:   states,
		FallbackError: fallback,
		WhyText:       payload.WhyText,
		WhyImageURL:   whyImage,
	}, nil
}

// imageOrPlaceholder is the failure boundary of a single image slot.
func (c *Client) imageOrPlaceholder(ctx context.Context, slot, subject string) string {
	url, err := c.GenerateImage(ctx, subject)
	if err != nil {
		c.logger.WarnContext(ctx, "Error mirror image failed, using placeholder",
			"slot", slot,
			"error", redact.Error(err))
		return PlaceholderImage
	}
	return url
}
