package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/phrazzld/dualclass-api/internal/generation"
	"github.com/phrazzld/dualclass-api/internal/prompt"
	"github.com/phrazzld/dualclass-api/internal/redact"
	"google.golang.org/genai"
)

// imageModalities asks the image model for text and image parts.
var imageModalities = []string{"TEXT", "IMAGE"}

// GenerateImage renders subject with the dual-lighting style, saves the
// first returned image and returns its public path.
func (c *Client) GenerateImage(ctx context.Context, subject string) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", ErrEmptyPrompt
	}

	parts := []*genai.Part{{Text: prompt.StyleImagePrompt(subject)}}
	data, mimeType, err := c.generateImageBytes(ctx, parts)
	if err != nil {
		return "", err
	}
	return c.save(ctx, data, mimeType)
}

// EditImage sends image with instruction to the image model, saves the
// edited image and returns its public path.
func (c *Client) EditImage(ctx context.Context, instruction string, image []byte, mimeType string) (string, error) {
	data, outType, err := c.EditImageBytes(ctx, instruction, image, mimeType)
	if err != nil {
		return "", err
	}
	return c.save(ctx, data, outType)
}

// EditImageBytes is EditImage without persistence: it returns the edited
// image bytes and their MIME type.
func (c *Client) EditImageBytes(ctx context.Context, instruction string, image []byte, mimeType string) ([]byte, string, error) {
	if strings.TrimSpace(instruction) == "" {
		return nil, "", ErrEmptyPrompt
	}
	if len(image) == 0 {
		return nil, "", ErrEmptyImage
	}

	parts := []*genai.Part{
		{InlineData: &genai.Blob{MIMEType: mimeType, Data: image}},
		{Text: instruction},
	}
	return c.generateImageBytes(ctx, parts)
}

func (c *Client) generateImageBytes(ctx context.Context, parts []*genai.Part) ([]byte, string, error) {
	c.logger.InfoContext(ctx, "Making Gemini image call", "model", c.imageModel)

	contents := []*genai.Content{{Role: "user", Parts: parts}}
	cfg := &genai.GenerateContentConfig{ResponseModalities: imageModalities}

	resp, err := c.models.GenerateContent(ctx, c.imageModel, contents, cfg)
	if err != nil {
		c.logger.ErrorContext(ctx, "Gemini image call failed", "model", c.imageModel, "error", redact.Error(err))
		return nil, "", mapError(err)
	}
	if err := checkResponse(resp); err != nil {
		c.logger.WarnContext(ctx, "Gemini image response rejected", "model", c.imageModel, "error", redact.Error(err))
		return nil, "", err
	}

	blob := firstImage(resp)
	if blob == nil {
		return nil, "", generation.ErrNoImageData
	}
	return blob.Data, blob.MIMEType, nil
}

func (c *Client) save(ctx context.Context, data []byte, mimeType string) (string, error) {
	url, err := c.images.SaveImage(data, mimeType)
	if err != nil {
		return "", fmt.Errorf("failed to save generated image: %w", err)
	}
	c.logger.InfoContext(ctx, "Saved generated image", "url", url, "bytes", len(data))
	return url, nil
}

// firstImage returns the first inline image part of any candidate.
func firstImage(resp *genai.GenerateContentResponse) *genai.Blob {
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			if strings.HasPrefix(part.InlineData.MIMEType, "image/") {
				return part.InlineData
			}
		}
	}
	return nil
}
