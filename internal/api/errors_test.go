package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/dualclass-api/internal/api/shared"
	"github.com/phrazzld/dualclass-api/internal/domain"
	"github.com/phrazzld/dualclass-api/internal/generation"
	"github.com/phrazzld/dualclass-api/internal/lesson"
	"github.com/phrazzld/dualclass-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing fields", fmt.Errorf("%w: concept", service.ErrMissingFields), http.StatusBadRequest},
		{"invalid mode", service.ErrInvalidMode, http.StatusBadRequest},
		{"domain validation", domain.NewValidationError("quiz_options", "is empty", nil), http.StatusBadRequest},
		{"unknown option", lesson.ErrUnknownOption, http.StatusBadRequest},
		{"fixture unavailable", &service.LessonServiceError{Operation: "generate", Err: service.ErrFixtureUnavailable}, http.StatusInternalServerError},
		{"error mirror failed", service.ErrErrorMirrorFailed, http.StatusInternalServerError},
		{"model error", generation.ErrModel, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, MsgUnexpected},
		{"missing fields", service.ErrMissingFields, MsgMissingFields},
		{"invalid mode", fmt.Errorf("%w: \"epic\"", service.ErrInvalidMode), MsgInvalidMode},
		{"unknown option", lesson.ErrUnknownOption, MsgUnknownOption},
		{"error mirror failed", fmt.Errorf("%w: %w", service.ErrErrorMirrorFailed, generation.ErrModel), MsgErrorMirrorFailed},
		{"fixture unavailable", service.ErrFixtureUnavailable, MsgLessonContentUnavailable},
		{"raw error is never exposed", errors.New("open /srv/public/data: permission denied"), MsgUnexpected},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		defaultMsg string
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "server error uses default message",
			err:        service.ErrFixtureUnavailable,
			defaultMsg: MsgGenerateFailed,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    MsgGenerateFailed,
		},
		{
			name:       "server error without default uses safe message",
			err:        service.ErrFixtureUnavailable,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    MsgLessonContentUnavailable,
		},
		{
			name:       "client error ignores default message",
			err:        service.ErrMissingFields,
			defaultMsg: MsgGenerateFailed,
			wantStatus: http.StatusBadRequest,
			wantMsg:    MsgMissingFields,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
			r = r.WithContext(shared.WithTraceID(r.Context(), "trace-1"))

			HandleAPIError(w, r, tc.err, tc.defaultMsg)

			assert.Equal(t, tc.wantStatus, w.Code)
			var body shared.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.wantMsg, body.Error)
			assert.Equal(t, "trace-1", body.TraceID)
		})
	}
}
