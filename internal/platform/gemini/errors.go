package gemini

import (
	"errors"
	"fmt"
	"strings"

	"github.com/phrazzld/dualclass-api/internal/generation"
	"google.golang.org/genai"
)

// Error definitions for the gemini package.
var (
	// ErrEmptyPrompt is returned when a call is made with a blank prompt.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrEmptyImage is returned when an edit is requested without image bytes.
	ErrEmptyImage = errors.New("reference image cannot be empty")
)

// mapError wraps an SDK error in generation.ErrModel, keeping the HTTP
// status of API errors in the message.
func mapError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: gemini returned status %d: %w", generation.ErrModel, apiErr.Code, err)
	}
	return fmt.Errorf("%w: %w", generation.ErrModel, err)
}

// checkResponse rejects empty and safety-blocked responses.
func checkResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("%w: empty response", generation.ErrInvalidResponse)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return fmt.Errorf("%w: prompt blocked: %s", generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return fmt.Errorf("%w: no candidates in response", generation.ErrInvalidResponse)
	}
	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return fmt.Errorf("%w: response stopped by safety filters", generation.ErrContentBlocked)
	}
	return nil
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range content.Parts {
		if part != nil && part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}
