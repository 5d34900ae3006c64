package mocks

import (
	"context"

	"github.com/phrazzld/dualclass-api/internal/domain"
)

// MockLessonService is a mock implementation of service.LessonService
type MockLessonService struct {
	GenerateFn            func(ctx context.Context, req domain.GenerationRequest) (*domain.Lesson, error)
	GenerateErrorMirrorFn func(ctx context.Context, mirror domain.ErrorMirrorContext) (*domain.ErrorMirrorResult, error)
}

// Generate calls the mocked GenerateFn
func (m *MockLessonService) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.Lesson, error) {
	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, req)
	}
	return nil, nil
}

// GenerateErrorMirror calls the mocked GenerateErrorMirrorFn
func (m *MockLessonService) GenerateErrorMirror(
	ctx context.Context,
	mirror domain.ErrorMirrorContext,
) (*domain.ErrorMirrorResult, error) {
	if m.GenerateErrorMirrorFn != nil {
		return m.GenerateErrorMirrorFn(ctx, mirror)
	}
	return nil, nil
}
