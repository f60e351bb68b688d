package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"todo-backend/config"
	"todo-backend/pkg/entity/model"
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.URL, e.Code, e.Body)
}

// API calls the todo backend over HTTP.
type API struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPI creates an API client from config.C.Client
func NewAPI() *API {
	cfg := config.C.Client

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return NewAPIWithClient(cfg.BaseURL, &http.Client{Timeout: timeout})
}

// NewAPIWithClient creates an API client for baseURL.
func NewAPIWithClient(baseURL string, httpClient *http.Client) *API {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &API{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the backend base URL.
func (a *API) BaseURL() string {
	return a.baseURL
}

// List fetches every todo.
func (a *API) List(ctx context.Context) ([]model.Todo, error) {
	var todos []model.Todo
	if err := a.do(ctx, http.MethodGet, "/", nil, &todos); err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []model.Todo{}
	}
	return todos, nil
}

// Create posts a new todo and returns the stored row.
func (a *API) Create(ctx context.Context, text string) (*model.Todo, error) {
	var todo model.Todo
	if err := a.do(ctx, http.MethodPost, "/create", model.CreateTodoInput{Todo: text}, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// Update replaces the text of id. The returned todo is zero valued when the
// server reports no row.
func (a *API) Update(ctx context.Context, id int64, text string) (*model.Todo, error) {
	var todo model.Todo
	path := "/update/" + strconv.FormatInt(id, 10)
	if err := a.do(ctx, http.MethodPut, path, model.UpdateTodoInput{Todo: text}, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// Delete removes id.
func (a *API) Delete(ctx context.Context, id int64) error {
	return a.do(ctx, http.MethodDelete, "/"+strconv.FormatInt(id, 10), nil, nil)
}

func (a *API) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	url := a.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{
			Method: method,
			URL:    url,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(respBody)),
		}
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
