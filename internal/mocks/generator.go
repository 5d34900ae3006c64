package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/dualclass-api/internal/domain"
	"github.com/phrazzld/dualclass-api/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// Function fields override the default responses when set
	GenerateMetaphorFn    func(ctx context.Context, concept, persona string, mode domain.LessonStepMode) (string, error)
	GenerateImageFn       func(ctx context.Context, prompt string) (string, error)
	GenerateErrorMirrorFn func(ctx context.Context, mirror domain.ErrorMirrorContext) (*domain.ErrorMirrorResult, error)

	// Default response values
	MetaphorJSON string
	ImageURL     string
	Mirror       *domain.ErrorMirrorResult
	Err          error

	// mu protects the call tracking state for concurrent test cases
	mu sync.Mutex

	// Call tracking for verification
	MetaphorCalls    []MetaphorCall
	ImagePrompts     []string
	ErrorMirrorCalls []domain.ErrorMirrorContext
}

// MetaphorCall records the arguments of one GenerateMetaphor call.
type MetaphorCall struct {
	Concept string
	Persona string
	Mode    domain.LessonStepMode
}

var _ generation.Generator = (*MockGenerator)(nil)

// GenerateMetaphor implements the generation.Generator interface
func (m *MockGenerator) GenerateMetaphor(
	ctx context.Context,
	concept, persona string,
	mode domain.LessonStepMode,
) (string, error) {
	m.mu.Lock()
	m.MetaphorCalls = append(m.MetaphorCalls, MetaphorCall{Concept: concept, Persona: persona, Mode: mode})
	m.mu.Unlock()

	if m.GenerateMetaphorFn != nil {
		return m.GenerateMetaphorFn(ctx, concept, persona, mode)
	}
	return m.MetaphorJSON, m.Err
}

// GenerateImage implements the generation.Generator interface
func (m *MockGenerator) GenerateImage(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.ImagePrompts = append(m.ImagePrompts, prompt)
	m.mu.Unlock()

	if m.GenerateImageFn != nil {
		return m.GenerateImageFn(ctx, prompt)
	}
	return m.ImageURL, m.Err
}

// GenerateErrorMirror implements the generation.Generator interface
func (m *MockGenerator) GenerateErrorMirror(
	ctx context.Context,
	mirror domain.ErrorMirrorContext,
) (*domain.ErrorMirrorResult, error) {
	m.mu.Lock()
	m.ErrorMirrorCalls = append(m.ErrorMirrorCalls, mirror)
	m.mu.Unlock()

	if m.GenerateErrorMirrorFn != nil {
		return m.GenerateErrorMirrorFn(ctx, mirror)
	}
	return m.Mirror, m.Err
}

// CallCount returns the total number of calls across all methods.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.MetaphorCalls) + len(m.ImagePrompts) + len(m.ErrorMirrorCalls)
}

// NewMockGeneratorWithLesson creates a MockGenerator that returns the
// given metaphor JSON and image URL.
func NewMockGeneratorWithLesson(metaphorJSON, imageURL string) *MockGenerator {
	return &MockGenerator{
		MetaphorJSON: metaphorJSON,
		ImageURL:     imageURL,
	}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{
		Err: err,
	}
}

// MockGeneratorThatFails creates a MockGenerator that simulates a model failure
func MockGeneratorThatFails() *MockGenerator {
	return NewMockGeneratorWithError(generation.ErrModel)
}

// MockGeneratorWithContentBlocked creates a MockGenerator that simulates content being blocked
func MockGeneratorWithContentBlocked() *MockGenerator {
	return NewMockGeneratorWithError(generation.ErrContentBlocked)
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.MetaphorCalls = nil
	m.ImagePrompts = nil
	m.ErrorMirrorCalls = nil
}
