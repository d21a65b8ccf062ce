package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskhub/internal/apperrors"
	"taskhub/internal/service"
)

// TaskHandler handles task CRUD endpoints.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTaskRequest represents a task creation request. The id and
// createdAt come from the client; createdAt is stored as supplied.
type CreateTaskRequest struct {
	ID        string `json:"id" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Notes     string `json:"notes"`
	DueDate   string `json:"dueDate"`
	ListID    string `json:"listId" validate:"required"`
	CreatedAt string `json:"createdAt" validate:"required"`
	Completed bool   `json:"completed"`
}

// UpdateTaskRequest represents a partial task update. Pointer fields
// distinguish "absent" from "set to zero value".
type UpdateTaskRequest struct {
	Title     *string `json:"title"`
	Notes     *string `json:"notes"`
	DueDate   *string `json:"dueDate"`
	ListID    *string `json:"listId"`
	Completed *bool   `json:"completed"`
}

// Tasks godoc
// @Summary List the caller's tasks
// @Description Ordered by createdAt descending. Optionally filtered by listId; the filter matches stored listId values even when no such list exists.
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param listId query string false "Filter by list id"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /tasks [get]
func (h *TaskHandler) Tasks(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.Tasks(c.Request().Context(), userID, c.QueryParam("listId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"tasks": tasks})
}

// CreateTask godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTaskRequest true "Task data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.taskService.Create(c.Request().Context(), userID, service.CreateTaskInput{
		ID:        req.ID,
		Title:     req.Title,
		Notes:     req.Notes,
		DueDate:   req.DueDate,
		ListID:    req.ListID,
		CreatedAt: req.CreatedAt,
		Completed: req.Completed,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"task": task})
}

// UpdateTask godoc
// @Summary Partially update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task id"
// @Param request body UpdateTaskRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/{id} [patch]
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}

	task, err := h.taskService.Update(c.Request().Context(), userID, c.Param("id"), service.UpdateTaskInput{
		Title:     req.Title,
		Notes:     req.Notes,
		DueDate:   req.DueDate,
		ListID:    req.ListID,
		Completed: req.Completed,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"task": task})
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Security BearerAuth
// @Param id path string true "Task id"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	if err := h.taskService.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
