package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskbrief/taskbrief/internal/domain"
	"github.com/taskbrief/taskbrief/internal/handler"
	"github.com/taskbrief/taskbrief/internal/repository"
	"github.com/taskbrief/taskbrief/internal/service"
)

func newTodoHandler() (*echo.Echo, *handler.TodoHandler) {
	e := echo.New()
	svc := service.NewTodoService(repository.NewMemoryTodoRepository())
	return e, handler.NewTodoHandler(svc)
}

func jsonRequest(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeTodo(t *testing.T, rec *httptest.ResponseRecorder) domain.Todo {
	t.Helper()
	var todo domain.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todo))
	return todo
}

func TestCreateHandler(t *testing.T) {
	t.Run("missing title is a 400", func(t *testing.T) {
		e, h := newTodoHandler()
		c, rec := jsonRequest(e, http.MethodPost, `{"description":"no title"}`)

		if assert.NoError(t, h.CreateHandler(c)) {
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "title is required")
		}
	})

	t.Run("whitespace title is a 400", func(t *testing.T) {
		e, h := newTodoHandler()
		c, rec := jsonRequest(e, http.MethodPost, `{"title":"   "}`)

		if assert.NoError(t, h.CreateHandler(c)) {
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		}
	})

	t.Run("valid body is a 201 with the created record", func(t *testing.T) {
		e, h := newTodoHandler()
		c, rec := jsonRequest(e, http.MethodPost, `{"title":"Buy milk"}`)

		if assert.NoError(t, h.CreateHandler(c)) {
			assert.Equal(t, http.StatusCreated, rec.Code)
			todo := decodeTodo(t, rec)
			assert.NotZero(t, todo.ID)
			assert.Equal(t, "Buy milk", todo.Title)
			assert.False(t, todo.Completed)
		}
	})
}

func TestUpdateHandler(t *testing.T) {
	t.Run("malformed ID is a 400", func(t *testing.T) {
		e, h := newTodoHandler()
		c, rec := jsonRequest(e, http.MethodPut, `{"completed":true}`)
		c.SetPath("/todos/:id")
		c.SetParamNames("id")
		c.SetParamValues("not-a-number")

		if assert.NoError(t, h.UpdateHandler(c)) {
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "invalid todo ID format")
		}
	})

	t.Run("unknown ID is a 404", func(t *testing.T) {
		e, h := newTodoHandler()
		c, rec := jsonRequest(e, http.MethodPut, `{"completed":true}`)
		c.SetPath("/todos/:id")
		c.SetParamNames("id")
		c.SetParamValues("12345")

		if assert.NoError(t, h.UpdateHandler(c)) {
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Contains(t, rec.Body.String(), "todo not found")
		}
	})
}

func TestDeleteHandler(t *testing.T) {
	t.Run("malformed ID is a 400", func(t *testing.T) {
		e, h := newTodoHandler()
		c, rec := jsonRequest(e, http.MethodDelete, "")
		c.SetPath("/todos/:id")
		c.SetParamNames("id")
		c.SetParamValues("abc")

		if assert.NoError(t, h.DeleteHandler(c)) {
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		}
	})

	t.Run("unknown ID is a 404", func(t *testing.T) {
		e, h := newTodoHandler()
		c, rec := jsonRequest(e, http.MethodDelete, "")
		c.SetPath("/todos/:id")
		c.SetParamNames("id")
		c.SetParamValues("777")

		if assert.NoError(t, h.DeleteHandler(c)) {
			assert.Equal(t, http.StatusNotFound, rec.Code)
		}
	})
}

// TestTodoLifecycle walks the full CRUD contract the way the UI does.
func TestTodoLifecycle(t *testing.T) {
	e, h := newTodoHandler()

	create := func(body string) domain.Todo {
		c, rec := jsonRequest(e, http.MethodPost, body)
		require.NoError(t, h.CreateHandler(c))
		require.Equal(t, http.StatusCreated, rec.Code)
		return decodeTodo(t, rec)
	}

	list := func() []domain.Todo {
		c, rec := jsonRequest(e, http.MethodGet, "")
		require.NoError(t, h.ListHandler(c))
		require.Equal(t, http.StatusOK, rec.Code)
		var todos []domain.Todo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todos))
		return todos
	}

	milk := create(`{"title":"Buy milk"}`)
	assert.False(t, milk.Completed)
	bills := create(`{"title":"Pay bills","description":"due Friday"}`)

	todos := list()
	require.Len(t, todos, 2)
	assert.Equal(t, bills.ID, todos[0].ID, "newest first")
	assert.Equal(t, milk.ID, todos[1].ID)

	// Toggle the first created todo to completed.
	c, rec := jsonRequest(e, http.MethodPut, `{"completed":true}`)
	c.SetPath("/todos/:id")
	c.SetParamNames("id")
	c.SetParamValues(strconv.FormatInt(milk.ID, 10))
	require.NoError(t, h.UpdateHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decodeTodo(t, rec)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Buy milk", updated.Title)
	assert.False(t, updated.UpdatedAt.Before(milk.UpdatedAt))

	// Delete the second.
	c, rec = jsonRequest(e, http.MethodDelete, "")
	c.SetPath("/todos/:id")
	c.SetParamNames("id")
	c.SetParamValues(strconv.FormatInt(bills.ID, 10))
	require.NoError(t, h.DeleteHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Todo deleted successfully")

	todos = list()
	require.Len(t, todos, 1)
	assert.Equal(t, milk.ID, todos[0].ID)
}
