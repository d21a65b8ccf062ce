package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskhub/internal/apperrors"
	"taskhub/internal/service"
)

// ListHandler handles list CRUD endpoints.
type ListHandler struct {
	listService service.ListService
}

// NewListHandler creates a new list handler.
func NewListHandler(listService service.ListService) *ListHandler {
	return &ListHandler{listService: listService}
}

// CreateListRequest represents a list creation request. The id comes from
// the client and only has to be unique among the caller's own lists.
type CreateListRequest struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Icon  string `json:"icon" validate:"required"`
	Color string `json:"color"`
}

// Lists godoc
// @Summary List the caller's task lists
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /lists [get]
func (h *ListHandler) Lists(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	lists, err := h.listService.Lists(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"lists": lists})
}

// CreateList godoc
// @Summary Create a task list
// @Tags lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateListRequest true "List data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /lists [post]
func (h *ListHandler) CreateList(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var req CreateListRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	list, err := h.listService.Create(c.Request().Context(), userID, service.CreateListInput{
		ID:    req.ID,
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"list": list})
}

// DeleteList godoc
// @Summary Delete a task list
// @Description Default lists (inbox, personal, work, shopping) cannot be deleted. Tasks referencing the deleted list remain.
// @Tags lists
// @Security BearerAuth
// @Param id path string true "List id"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lists/{id} [delete]
func (h *ListHandler) DeleteList(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	if err := h.listService.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
