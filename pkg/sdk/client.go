package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ethanbaker/api/pkg/api_types"
)

// Client wraps calls to the task board API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the API served at baseURL (without the /api suffix)
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// WithHTTPClient replaces the underlying HTTP client
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.httpClient = httpClient
	return c
}

// do performs a request and returns the response body of a successful call
func (c *Client) do(ctx context.Context, method, path string, in any) ([]byte, error) {
	// Create request body if input is provided
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		body = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Method: method, Path: path, Code: resp.StatusCode, Body: string(b)}
	}

	return b, nil
}

// doJSON is a helper to perform JSON requests against the API envelope
func (c *Client) doJSON(ctx context.Context, method, path string, in any, out any) error {
	b, err := c.do(ctx, method, path, in)
	if err != nil {
		return err
	}

	// If no output expected, return early
	if out == nil {
		return nil
	}

	return json.Unmarshal(b, out)
}

// checkStatus turns a non-success envelope into an error
func checkStatus[T any](resp ApiResponse[T]) error {
	switch resp.Status {
	case api_types.StatusFail:
		return fmt.Errorf("request failed: %s", resp.Message)
	case api_types.StatusError:
		return fmt.Errorf("request error (%s): %v", resp.Message, resp.Error)
	}
	return nil
}

// Error is returned for responses outside the 2xx range
type Error struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[TASKBOARD]: '%s %s' failed: %d: %s", e.Method, e.Path, e.Code, e.Body)
}
