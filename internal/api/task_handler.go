package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/taskflow/taskflow-api/internal/api/shared"
	"github.com/taskflow/taskflow-api/internal/domain"
	"github.com/taskflow/taskflow-api/internal/service"
)

// TaskHandler handles task-related API requests.
type TaskHandler struct {
	taskService service.TaskService
	validator   *validator.Validate
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		validator:   validator.New(),
	}
}

// ListTasks handles GET /api/tasks. The listing is public; no principal is
// required.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListAll(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskListResponse(tasks))
}

// ListUserTasks handles GET /api/tasks/user.
func (h *TaskHandler) ListUserTasks(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListForUser(r.Context(), principal.UserID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskListResponse(tasks))
}

// ListCartTasks handles GET /api/tasks/cart.
func (h *TaskHandler) ListCartTasks(w http.ResponseWriter, r *http.Request) {
	h.listByBucket(w, r, h.taskService.CartTasks)
}

// ListOfferedTasks handles GET /api/tasks/offered.
func (h *TaskHandler) ListOfferedTasks(w http.ResponseWriter, r *http.Request) {
	h.listByBucket(w, r, h.taskService.OfferedTasks)
}

// GetTask handles GET /api/tasks/{id}. The response embeds the comment
// thread.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	comments, err := h.taskService.CommentsForTask(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponseWithComments(task, comments))
}

// CreateTask handles POST /api/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	input, ok := h.decodeTaskInput(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), principal.UserID, input)
	if err != nil {
		h.respondTaskError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewTaskResponse(task))
}

// UpdateTask handles PUT /api/tasks/{id}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	input, ok := h.decodeTaskInput(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, input)
	if err != nil {
		h.respondTaskError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// DeleteTask handles DELETE /api/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddToCart handles PUT /api/tasks/{id}/cart/add.
func (h *TaskHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.taskService.AddToCart)
}

// RemoveFromCart handles PUT /api/tasks/{id}/cart/remove.
func (h *TaskHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.taskService.RemoveFromCart)
}

// AddToOffered handles PUT /api/tasks/{id}/offered/add.
func (h *TaskHandler) AddToOffered(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.taskService.AddToOffered)
}

// RemoveFromOffered handles PUT /api/tasks/{id}/offered/remove.
func (h *TaskHandler) RemoveFromOffered(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.taskService.RemoveFromOffered)
}

func (h *TaskHandler) listByBucket(
	w http.ResponseWriter,
	r *http.Request,
	list func(ctx context.Context, userID int64) ([]*domain.Task, error),
) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	tasks, err := list(r.Context(), principal.UserID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskListResponse(tasks))
}

func (h *TaskHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	move func(ctx context.Context, id int64) (*domain.Task, error),
) {
	if _, ok := requirePrincipal(w, r); !ok {
		return
	}

	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	task, err := move(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

func (h *TaskHandler) decodeTaskInput(w http.ResponseWriter, r *http.Request) (service.TaskInput, bool) {
	var req TaskRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return service.TaskInput{}, false
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return service.TaskInput{}, false
	}

	return service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	}, true
}

func (h *TaskHandler) respondTaskError(w http.ResponseWriter, r *http.Request, err error) {
	// Domain validation failures are the caller's fault.
	if errors.Is(err, domain.ErrValidation) {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
