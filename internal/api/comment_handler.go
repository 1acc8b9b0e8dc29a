package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/taskflow/taskflow-api/internal/api/shared"
	"github.com/taskflow/taskflow-api/internal/domain"
	"github.com/taskflow/taskflow-api/internal/service"
)

// CommentHandler handles comment-related API requests.
type CommentHandler struct {
	commentService service.CommentService
	validator      *validator.Validate
}

// NewCommentHandler creates a new CommentHandler with the given dependencies.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		validator:      validator.New(),
	}
}

// CreateComment handles POST /api/comments. The authenticated principal
// becomes the comment's author.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var req CommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if req.TaskID <= 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "task_id is required")
		return
	}

	comment, err := h.commentService.CreateComment(r.Context(), req.TaskID, principal.UserID, req.Content)
	if err != nil {
		h.respondCommentError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewCommentResponse(service.CommentView{
		Comment:    comment,
		AuthorName: principal.Username,
	}))
}

// UpdateComment handles PUT /api/comments/{id}.
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req CommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	comment, err := h.commentService.UpdateComment(r.Context(), id, req.Content)
	if err != nil {
		h.respondCommentError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewCommentResponse(service.CommentView{
		Comment:    comment,
		AuthorName: principal.Username,
	}))
}

// DeleteComment handles DELETE /api/comments/{id}.
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePrincipal(w, r); !ok {
		return
	}

	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.commentService.DeleteComment(r.Context(), id); err != nil {
		h.respondCommentError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CommentHandler) respondCommentError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrValidation) {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
