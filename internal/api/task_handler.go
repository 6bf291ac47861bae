package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rkarlsb/taskline/internal/api/shared"
	"github.com/rkarlsb/taskline/internal/domain"
	"github.com/rkarlsb/taskline/internal/platform/logger"
	"github.com/rkarlsb/taskline/internal/store"
)

// TaskHandler handles task-related HTTP requests. Every operation is scoped
// to the principal attached to the request context by the auth middleware.
type TaskHandler struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskStore store.TaskStore, log *slog.Logger) *TaskHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskStore: taskStore,
		logger:    log.With(slog.String("component", "task_handler")),
	}
}

// principalFromRequest extracts the authenticated principal set by the auth
// middleware. A missing principal means the route was wired without the
// middleware, which is treated as an unauthorized request rather than a
// panic.
func (h *TaskHandler) principalFromRequest(
	w http.ResponseWriter,
	r *http.Request,
) (shared.Principal, bool) {
	principal, ok := r.Context().Value(shared.PrincipalContextKey).(shared.Principal)
	if !ok || principal.Username == "" {
		log := logger.FromContextOrDefault(r.Context(), h.logger)
		log.Warn("principal not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return shared.Principal{}, false
	}
	return principal, true
}

// taskIDFromRequest parses the {id} URL parameter.
func taskIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		return 0, domain.ErrInvalidID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

// List handles GET /todos requests.
// It returns the principal's tasks sorted by priority descending, ties
// broken by due date ascending.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	principal, ok := h.principalFromRequest(w, r)
	if !ok {
		return
	}

	tasks, err := h.taskStore.ListByOwner(r.Context(), principal.Username)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to list tasks", err)
		return
	}

	response := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		response = append(response, taskToResponse(task))
	}

	log.Debug("listed tasks",
		slog.String("username", principal.Username),
		slog.Int("count", len(response)))
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// Create handles POST /todos requests.
// The created record, including the server-assigned ID, is echoed back.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	principal, ok := h.principalFromRequest(w, r)
	if !ok {
		return
	}

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	task, err := domain.NewTask(principal.Username, req.Title, int(req.Priority), req.DueDate)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid task data", err)
		return
	}

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to create task"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("created task",
		slog.String("username", principal.Username),
		slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// Update handles PUT /todos/{id} requests.
// Ownership and existence are checked together, so a task owned by another
// user yields the same not-found response as a nonexistent ID.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	principal, ok := h.principalFromRequest(w, r)
	if !ok {
		return
	}

	id, err := taskIDFromRequest(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	updated, err := h.taskStore.Update(r.Context(), principal.Username, &domain.Task{
		ID:       id,
		Title:    req.Title,
		Priority: int(req.Priority),
		DueDate:  req.DueDate,
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
			return
		}
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to update task"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("updated task",
		slog.String("username", principal.Username),
		slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(updated))
}

// Delete handles DELETE /todos/{id} requests.
// Deletion is idempotent: removing a nonexistent or non-owned task succeeds
// without reporting what, if anything, was removed.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	principal, ok := h.principalFromRequest(w, r)
	if !ok {
		return
	}

	id, err := taskIDFromRequest(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	if err := h.taskStore.Delete(r.Context(), principal.Username, id); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to delete task", err)
		return
	}

	log.Debug("deleted task",
		slog.String("username", principal.Username),
		slog.Int64("task_id", id))
	w.WriteHeader(http.StatusOK)
}
