package generation

import (
	"context"

	"github.com/phrazzld/dualclass-api/internal/domain"
)

// Generator is the model capability the lesson service depends on.
// platform/gemini.Client implements it against the Gemini API.
type Generator interface {
	// GenerateMetaphor asks the text model for a lesson and returns the
	// extracted JSON text. The text is not parsed.
	GenerateMetaphor(ctx context.Context, concept, persona string, mode domain.LessonStepMode) (string, error)

	// GenerateImage renders a styled illustration for prompt and returns
	// its public path.
	GenerateImage(ctx context.Context, prompt string) (string, error)

	// GenerateErrorMirror produces misconception explanations and images
	// for every wrong option of a finished quiz.
	GenerateErrorMirror(ctx context.Context, mirror domain.ErrorMirrorContext) (*domain.ErrorMirrorResult, error)
}

// ImageEditor rewrites an existing image according to an instruction.
type ImageEditor interface {
	// EditImage sends image with prompt to the image model and returns the
	// public path of the edited result.
	EditImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}
