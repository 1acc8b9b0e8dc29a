package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/test", nil)

	RespondWithJSON(recorder, req, http.StatusCreated, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "world", body["hello"])
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	t.Run("includes trace id when present", func(t *testing.T) {
		t.Parallel()
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)
		req = req.WithContext(SetTraceID(req.Context()))

		RespondWithError(recorder, req, http.StatusUnauthorized, "Invalid token")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid token", resp.Error)
		assert.Len(t, resp.TraceID, TraceIDLength*2)
	})

	t.Run("omits trace id when absent", func(t *testing.T) {
		t.Parallel()
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)

		RespondWithError(recorder, req, http.StatusNotFound, "Task not found")

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Empty(t, resp.TraceID)
	})
}

func TestRespondWithErrorAndLog_SanitizesError(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/test", nil)

	internal := errors.New("postgres://admin:hunter2@db/taskflow: connection refused")
	RespondWithErrorAndLog(recorder, req, http.StatusInternalServerError, "Something went wrong", internal)

	assert.NotContains(t, recorder.Body.String(), "hunter2")
	assert.Contains(t, recorder.Body.String(), "Something went wrong")
}

func TestTraceID(t *testing.T) {
	t.Parallel()

	ctx := SetTraceID(context.Background())
	first := GetTraceID(ctx)
	require.NotEmpty(t, first)

	second := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, first, second)
}
