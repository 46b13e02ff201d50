package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskbrief/taskbrief/internal/domain"
	"github.com/taskbrief/taskbrief/internal/service"
	"github.com/taskbrief/taskbrief/internal/service/serviceutils"
)

type TodoHandler struct {
	svc service.TodoService
}

func NewTodoHandler(svc service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

type createTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ListHandler handles GET /todos. An empty collection is a 200 with [].
func (h *TodoHandler) ListHandler(c echo.Context) error {
	todos, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, todos)
}

// CreateHandler handles POST /todos.
func (h *TodoHandler) CreateHandler(c echo.Context) error {
	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errInvalidBody)
	}

	todo, err := h.svc.Create(c.Request().Context(), req.Title, req.Description)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, todo)
}

// UpdateHandler handles PUT /todos/:id. The body is a partial patch; omitted
// fields keep their stored values.
func (h *TodoHandler) UpdateHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var patch domain.TodoPatch
	if err := c.Bind(&patch); err != nil {
		return respondError(c, errInvalidBody)
	}

	todo, err := h.svc.Update(c.Request().Context(), id, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, todo)
}

// DeleteHandler handles DELETE /todos/:id.
func (h *TodoHandler) DeleteHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return serviceutils.ResponseMessage(c, http.StatusOK, "Todo deleted successfully")
}
