// Package mocks holds hand-written test doubles for the generation and
// lesson service interfaces.
//
// Each mock exposes one function field per method. A nil field falls back to
// canned values on the struct, so most tests set only what they assert on:
//
//	gen := &mocks.MockGenerator{
//	    GenerateImageFn: func(ctx context.Context, prompt string) (string, error) {
//	        return "/images/generated/generated_1.png", nil
//	    },
//	}
//	svc, err := service.NewLessonService(gen, fixtures, "gemini-test", logger)
//
// MockGenerator records every call it receives, so tests can also assert
// that the model was never reached.
package mocks
