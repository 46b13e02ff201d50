// Package client is a typed Go client for the todo REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/taskbrief/taskbrief/internal/domain"
)

const DefaultBaseURL = "http://localhost:5000"

// APIError carries a non-success HTTP status and the server's error message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// SummarizeResponse mirrors the /summarize body. Success may be false even on
// a decodable response; callers must inspect it rather than rely on transport
// success alone.
type SummarizeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Summary string `json:"summary"`
	Error   string `json:"error"`
}

type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	var todos []domain.Todo
	if err := c.do(ctx, http.MethodGet, "/todos", nil, http.StatusOK, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (c *Client) CreateTodo(ctx context.Context, title, description string) (*domain.Todo, error) {
	body := map[string]string{"title": title, "description": description}
	var todo domain.Todo
	if err := c.do(ctx, http.MethodPost, "/todos", body, http.StatusCreated, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

func (c *Client) UpdateTodo(ctx context.Context, id int64, patch domain.TodoPatch) (*domain.Todo, error) {
	var todo domain.Todo
	path := fmt.Sprintf("/todos/%d", id)
	if err := c.do(ctx, http.MethodPut, path, patch, http.StatusOK, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

func (c *Client) DeleteTodo(ctx context.Context, id int64) error {
	var ack struct {
		Message string `json:"message"`
	}
	path := fmt.Sprintf("/todos/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, http.StatusOK, &ack)
}

// Summarize triggers the summary workflow. The body is decoded for any
// status, so a logical failure still yields the response (with Success false
// and possibly a partial Summary) instead of an error.
func (c *Client) Summarize(ctx context.Context) (*SummarizeResponse, error) {
	resp, err := c.send(ctx, http.MethodPost, "/summarize", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out SummarizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode summarize response: %w", err)
	}
	return &out, nil
}

func (c *Client) send(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, wantStatus int, out interface{}) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var serverErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&serverErr); err != nil || serverErr.Error == "" {
			serverErr.Error = resp.Status
		}
		return &APIError{StatusCode: resp.StatusCode, Message: serverErr.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
