package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow/taskflow-api/internal/domain"
	"github.com/taskflow/taskflow-api/internal/mocks"
	"github.com/taskflow/taskflow-api/internal/service"
	"github.com/taskflow/taskflow-api/internal/service/auth"
)

type commentTestEnv struct {
	router    *chi.Mux
	taskStore *mocks.MockTaskStore
}

func newCommentTestEnv(t *testing.T, principal *auth.Principal) *commentTestEnv {
	t.Helper()

	taskStore := mocks.NewMockTaskStore()
	commentStore := mocks.NewMockCommentStore()

	commentService, err := service.NewCommentService(commentStore, taskStore, nil)
	require.NoError(t, err)

	handler := NewCommentHandler(commentService)

	router := chi.NewRouter()
	router.Use(principalInjector(principal))
	router.Post("/api/comments", handler.CreateComment)
	router.Put("/api/comments/{id}", handler.UpdateComment)
	router.Delete("/api/comments/{id}", handler.DeleteComment)

	return &commentTestEnv{router: router, taskStore: taskStore}
}

func (e *commentTestEnv) seedTask(t *testing.T) *domain.Task {
	t.Helper()

	task, err := domain.NewTask(7, "write report", "", "high", time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, e.taskStore.Create(context.Background(), task))
	return task
}

func (e *commentTestEnv) do(method, target string, payload map[string]any) *httptest.ResponseRecorder {
	var req *http.Request
	if payload != nil {
		body, _ := json.Marshal(payload)
		req = httptest.NewRequest(method, target, bytes.NewBuffer(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, req)
	return recorder
}

func TestCommentHandler_Create(t *testing.T) {
	t.Parallel()

	env := newCommentTestEnv(t, &auth.Principal{UserID: 7, Username: "alice"})
	task := env.seedTask(t)

	recorder := env.do("POST", "/api/comments", map[string]any{
		"task_id": task.ID,
		"content": "looks good",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var resp CommentResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "looks good", resp.Content)
	assert.Equal(t, task.ID, resp.TaskID)
	assert.Equal(t, int64(7), resp.AuthorID)
	assert.Equal(t, "alice", resp.AuthorName)
}

func TestCommentHandler_Create_TaskMissing(t *testing.T) {
	t.Parallel()

	env := newCommentTestEnv(t, &auth.Principal{UserID: 7, Username: "alice"})

	recorder := env.do("POST", "/api/comments", map[string]any{
		"task_id": 99,
		"content": "looks good",
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCommentHandler_Create_RequiresPrincipal(t *testing.T) {
	t.Parallel()

	env := newCommentTestEnv(t, nil)
	task := env.seedTask(t)

	recorder := env.do("POST", "/api/comments", map[string]any{
		"task_id": task.ID,
		"content": "looks good",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestCommentHandler_Create_EmptyContent(t *testing.T) {
	t.Parallel()

	env := newCommentTestEnv(t, &auth.Principal{UserID: 7, Username: "alice"})
	task := env.seedTask(t)

	recorder := env.do("POST", "/api/comments", map[string]any{
		"task_id": task.ID,
		"content": "",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCommentHandler_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	env := newCommentTestEnv(t, &auth.Principal{UserID: 7, Username: "alice"})
	task := env.seedTask(t)

	recorder := env.do("POST", "/api/comments", map[string]any{
		"task_id": task.ID,
		"content": "looks good",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = env.do("PUT", "/api/comments/1", map[string]any{
		"task_id": task.ID,
		"content": "looks great",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp CommentResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "looks great", resp.Content)

	recorder = env.do("DELETE", "/api/comments/1", nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = env.do("DELETE", "/api/comments/1", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCommentHandler_Update_NotFound(t *testing.T) {
	t.Parallel()

	env := newCommentTestEnv(t, &auth.Principal{UserID: 7, Username: "alice"})

	recorder := env.do("PUT", "/api/comments/99", map[string]any{
		"task_id": 1,
		"content": "anything",
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
