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

	"github.com/taskflow/taskflow-api/internal/api/shared"
	"github.com/taskflow/taskflow-api/internal/domain"
	"github.com/taskflow/taskflow-api/internal/mocks"
	"github.com/taskflow/taskflow-api/internal/service"
	"github.com/taskflow/taskflow-api/internal/service/auth"
)

// principalInjector stamps a fixed principal on every request, standing in
// for the authentication middleware.
func principalInjector(p *auth.Principal) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p != nil {
				ctx := context.WithValue(r.Context(), shared.PrincipalContextKey, p)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

type taskTestEnv struct {
	router      *chi.Mux
	taskService service.TaskService
	taskStore   *mocks.MockTaskStore
}

func newTaskTestEnv(t *testing.T, principal *auth.Principal) *taskTestEnv {
	t.Helper()

	taskStore := mocks.NewMockTaskStore()
	commentStore := mocks.NewMockCommentStore()
	userStore := mocks.NewMockUserStore()

	taskService, err := service.NewTaskService(taskStore, commentStore, userStore, nil)
	require.NoError(t, err)

	handler := NewTaskHandler(taskService)

	router := chi.NewRouter()
	router.Use(principalInjector(principal))
	router.Get("/api/tasks", handler.ListTasks)
	router.Get("/api/tasks/user", handler.ListUserTasks)
	router.Get("/api/tasks/cart", handler.ListCartTasks)
	router.Get("/api/tasks/offered", handler.ListOfferedTasks)
	router.Get("/api/tasks/{id}", handler.GetTask)
	router.Post("/api/tasks", handler.CreateTask)
	router.Put("/api/tasks/{id}", handler.UpdateTask)
	router.Delete("/api/tasks/{id}", handler.DeleteTask)
	router.Put("/api/tasks/{id}/cart/add", handler.AddToCart)
	router.Put("/api/tasks/{id}/cart/remove", handler.RemoveFromCart)
	router.Put("/api/tasks/{id}/offered/add", handler.AddToOffered)
	router.Put("/api/tasks/{id}/offered/remove", handler.RemoveFromOffered)

	return &taskTestEnv{router: router, taskService: taskService, taskStore: taskStore}
}

func taskBody(t *testing.T, title, priority string) *bytes.Buffer {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"title":    title,
		"priority": priority,
		"due_date": time.Now().Add(24 * time.Hour).UTC(),
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func (e *taskTestEnv) do(method, target string, body *bytes.Buffer) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, req)
	return recorder
}

func TestTaskHandler_CreateAndGet(t *testing.T) {
	t.Parallel()

	env := newTaskTestEnv(t, &auth.Principal{UserID: 7, Username: "alice"})

	recorder := env.do("POST", "/api/tasks", taskBody(t, "write report", "high"))
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created TaskResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&created))
	assert.Equal(t, "write report", created.Title)
	assert.Equal(t, int64(7), created.UserID)
	assert.Equal(t, "todo", created.Status)
	assert.False(t, created.InCart)
	assert.False(t, created.Offered)

	recorder = env.do("GET", "/api/tasks/1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestTaskHandler_CreateWithoutPrincipal(t *testing.T) {
	t.Parallel()

	env := newTaskTestEnv(t, nil)

	recorder := env.do("POST", "/api/tasks", taskBody(t, "write report", "high"))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestTaskHandler_PublicListing(t *testing.T) {
	t.Parallel()

	// No principal: the listing is public.
	env := newTaskTestEnv(t, nil)

	task, err := domain.NewTask(7, "write report", "", "high", time.Time{})
	require.NoError(t, err)
	require.NoError(t, env.taskStore.Create(context.Background(), task))

	recorder := env.do("GET", "/api/tasks", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var tasks []TaskResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&tasks))
	assert.Len(t, tasks, 1)
}

func TestTaskHandler_BucketViews(t *testing.T) {
	t.Parallel()

	env := newTaskTestEnv(t, &auth.Principal{UserID: 7, Username: "alice"})

	recorder := env.do("POST", "/api/tasks", taskBody(t, "write report", "high"))
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = env.do("PUT", "/api/tasks/1/cart/add", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var moved TaskResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&moved))
	assert.True(t, moved.InCart)
	assert.Equal(t, "cart", moved.Status)

	recorder = env.do("GET", "/api/tasks/cart", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var cart []TaskResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&cart))
	assert.Len(t, cart, 1)

	recorder = env.do("PUT", "/api/tasks/1/cart/remove", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.do("PUT", "/api/tasks/1/offered/add", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&moved))
	assert.True(t, moved.Offered)

	recorder = env.do("GET", "/api/tasks/offered", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var offered []TaskResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&offered))
	assert.Len(t, offered, 1)

	recorder = env.do("PUT", "/api/tasks/1/offered/remove", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&moved))
	assert.Equal(t, "todo", moved.Status)
}

func TestTaskHandler_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	env := newTaskTestEnv(t, &auth.Principal{UserID: 7, Username: "alice"})

	recorder := env.do("POST", "/api/tasks", taskBody(t, "write report", "high"))
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = env.do("PUT", "/api/tasks/1", taskBody(t, "revise report", "low"))
	require.Equal(t, http.StatusOK, recorder.Code)

	var updated TaskResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&updated))
	assert.Equal(t, "revise report", updated.Title)
	assert.Equal(t, "low", updated.Priority)

	recorder = env.do("DELETE", "/api/tasks/1", nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = env.do("GET", "/api/tasks/1", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestTaskHandler_MissingTask(t *testing.T) {
	t.Parallel()

	env := newTaskTestEnv(t, &auth.Principal{UserID: 7, Username: "alice"})

	assert.Equal(t, http.StatusNotFound, env.do("GET", "/api/tasks/99", nil).Code)
	assert.Equal(t, http.StatusNotFound, env.do("PUT", "/api/tasks/99", taskBody(t, "x", "high")).Code)
	assert.Equal(t, http.StatusNotFound, env.do("DELETE", "/api/tasks/99", nil).Code)
	assert.Equal(t, http.StatusNotFound, env.do("PUT", "/api/tasks/99/cart/add", nil).Code)
}

func TestTaskHandler_InvalidPathID(t *testing.T) {
	t.Parallel()

	env := newTaskTestEnv(t, &auth.Principal{UserID: 7, Username: "alice"})

	assert.Equal(t, http.StatusBadRequest, env.do("GET", "/api/tasks/abc", nil).Code)
	assert.Equal(t, http.StatusBadRequest, env.do("DELETE", "/api/tasks/-1", nil).Code)
}

func TestTaskHandler_ValidationError(t *testing.T) {
	t.Parallel()

	env := newTaskTestEnv(t, &auth.Principal{UserID: 7, Username: "alice"})

	body, err := json.Marshal(map[string]any{"description": "no title"})
	require.NoError(t, err)

	recorder := env.do("POST", "/api/tasks", bytes.NewBuffer(body))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
