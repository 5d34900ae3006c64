package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/dualclass-api/internal/platform/logger"
	"github.com/phrazzld/dualclass-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)

	RespondWithJSON(w, r, http.StatusCreated, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"hello":"world"}`, w.Body.String())
}

func TestRespondWithJSON_NoHTMLEscaping(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)

	RespondWithJSON(w, r, http.StatusOK, map[string]string{"concept": "Salt & <Pepper>"})

	assert.Equal(t, `{"concept":"Salt & <Pepper>"}`+"\n", w.Body.String())
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
	r = r.WithContext(WithTraceID(r.Context(), "trace-abc"))

	RespondWithError(w, r, http.StatusBadRequest, "Concept and persona are required")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Concept and persona are required","trace_id":"trace-abc"}`, w.Body.String())
}

func TestRespondWithError_NoTraceID(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/generate", nil)

	RespondWithError(w, r, http.StatusBadRequest, "bad")

	assert.JSONEq(t, `{"error":"bad"}`, w.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "server error logs at error", status: http.StatusInternalServerError, wantLevel: "ERROR"},
		{name: "client error logs at debug", status: http.StatusBadRequest, wantLevel: "DEBUG"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, handler := testutils.NewTestLogger()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/generate-error-mirror", nil)
			ctx := logger.WithLogger(WithTraceID(r.Context(), "trace-xyz"), log)
			r = r.WithContext(ctx)

			cause := errors.New("open /home/alice/secret/key.json: permission denied")
			RespondWithErrorAndLog(w, r, tc.status, "Failed to generate error mirror content", cause)

			assert.Equal(t, tc.status, w.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "Failed to generate error mirror content", body.Error)
			assert.Equal(t, "trace-xyz", body.TraceID)
			assert.NotContains(t, w.Body.String(), "alice")

			entries := handler.Entries()
			require.Len(t, entries, 1)
			assert.Equal(t, "API error response", entries[0]["message"])
			assert.Equal(t, tc.wantLevel, entries[0]["level"])
			assert.Equal(t, "trace-xyz", entries[0]["trace_id"])

			logged, ok := entries[0]["error"].(string)
			require.True(t, ok)
			assert.False(t, strings.Contains(logged, "/home/alice"), "paths must be redacted in logs")
		})
	}
}
