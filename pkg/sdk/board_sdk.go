package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

func boardPath(boardID string) string {
	return "/api/boards/" + url.PathEscape(boardID)
}

func taskPath(boardID, taskID string) string {
	return boardPath(boardID) + "/tasks/" + url.PathEscape(taskID)
}

// call performs a JSON request and unwraps the envelope's data
func call[T any](ctx context.Context, c *Client, method, path string, in any) (T, error) {
	var out ApiResponse[T]
	if err := c.doJSON(ctx, method, path, in, &out); err != nil {
		return out.Data, err
	}
	return out.Data, checkStatus(out)
}

/** Boards */

// CreateBoard starts a new board and returns its id
func (c *Client) CreateBoard(ctx context.Context, req *CreateBoardRequest) (string, error) {
	if req == nil {
		req = &CreateBoardRequest{}
	}

	out, err := call[CreateBoardResponse](ctx, c, http.MethodPost, "/api/boards", req)
	if err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", fmt.Errorf("no id returned")
	}
	return out.ID, nil
}

// ListBoards lists every live board
func (c *Client) ListBoards(ctx context.Context) (*ListBoardsResponse, error) {
	out, err := call[ListBoardsResponse](ctx, c, http.MethodGet, "/api/boards", nil)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBoard retrieves a board with its criteria and view
func (c *Client) GetBoard(ctx context.Context, boardID string) (*BoardResponse, error) {
	out, err := call[BoardResponse](ctx, c, http.MethodGet, boardPath(boardID), nil)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBoard ends a board session
func (c *Client) DeleteBoard(ctx context.Context, boardID string) error {
	_, err := call[any](ctx, c, http.MethodDelete, boardPath(boardID), nil)
	return err
}

/** Tasks */

// CreateTask adds a task to a board and returns its id
func (c *Client) CreateTask(ctx context.Context, boardID string, req *CreateTaskRequest) (string, error) {
	out, err := call[CreateTaskResponse](ctx, c, http.MethodPost, boardPath(boardID)+"/tasks", req)
	if err != nil {
		return "", err
	}
	return out.ID, nil
}

// GetTask retrieves a single task
func (c *Client) GetTask(ctx context.Context, boardID, taskID string) (*Task, error) {
	out, err := call[Task](ctx, c, http.MethodGet, taskPath(boardID, taskID), nil)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStatus moves a task to a new status
func (c *Client) UpdateStatus(ctx context.Context, boardID, taskID, status string) error {
	_, err := call[any](ctx, c, http.MethodPut, taskPath(boardID, taskID)+"/status", &UpdateStatusRequest{Status: status})
	return err
}

// UpdatePriority changes the priority of a task
func (c *Client) UpdatePriority(ctx context.Context, boardID, taskID, priority string) error {
	_, err := call[any](ctx, c, http.MethodPut, taskPath(boardID, taskID)+"/priority", &UpdatePriorityRequest{Priority: priority})
	return err
}

// DeleteTask removes a task
func (c *Client) DeleteTask(ctx context.Context, boardID, taskID string) error {
	_, err := call[any](ctx, c, http.MethodDelete, taskPath(boardID, taskID), nil)
	return err
}

/** View */

// SetFilter replaces the board's filter criteria
func (c *Client) SetFilter(ctx context.Context, boardID string, filter *Filter) error {
	_, err := call[any](ctx, c, http.MethodPut, boardPath(boardID)+"/filter", filter)
	return err
}

// ClearFilter resets every filter rule
func (c *Client) ClearFilter(ctx context.Context, boardID string) error {
	_, err := call[any](ctx, c, http.MethodDelete, boardPath(boardID)+"/filter", nil)
	return err
}

// ClearFromDate drops the lower date bound
func (c *Client) ClearFromDate(ctx context.Context, boardID string) error {
	_, err := call[any](ctx, c, http.MethodDelete, boardPath(boardID)+"/filter/from", nil)
	return err
}

// ClearToDate drops the upper date bound
func (c *Client) ClearToDate(ctx context.Context, boardID string) error {
	_, err := call[any](ctx, c, http.MethodDelete, boardPath(boardID)+"/filter/to", nil)
	return err
}

// SetSortOrder changes the priority ordering ("low" or "high")
func (c *Client) SetSortOrder(ctx context.Context, boardID, order string) error {
	_, err := call[any](ctx, c, http.MethodPut, boardPath(boardID)+"/sort", &SortRequest{Order: order})
	return err
}

// GetView retrieves the filtered, sorted and grouped board
func (c *Client) GetView(ctx context.Context, boardID string) (*ViewResponse, error) {
	out, err := call[ViewResponse](ctx, c, http.MethodGet, boardPath(boardID)+"/view", nil)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ExportCalendar downloads the board view as an iCalendar document
func (c *Client) ExportCalendar(ctx context.Context, boardID string) (string, error) {
	b, err := c.do(ctx, http.MethodGet, boardPath(boardID)+"/calendar.ics", nil)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

/** Health */

// Health checks that the API is reachable
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	out, err := call[HealthResponse](ctx, c, http.MethodGet, "/api/health", nil)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
