package sdk

import (
	"time"

	"github.com/ethanbaker/api/pkg/api_types"
)

// ApiResponse represents a standard API response structure
type ApiResponse[T any] struct {
	Status  api_types.StatusType `json:"status"`          // Status message
	Code    int                  `json:"code"`            // Status code
	Message string               `json:"message"`         // Human-readable message
	Data    T                    `json:"data,omitempty"`  // Optional data field for successful responses
	Error   any                  `json:"error,omitempty"` // Optional errors field for error responses
}

// AsGinResponse converts the ApiResponse to a format suitable for Gin framework
func (r ApiResponse[T]) AsGinResponse() (int, any) {
	return r.Code, r
}

func NewSuccess(message string) ApiResponse[any] {
	return ApiResponse[any]{
		Status:  api_types.StatusSuccess,
		Code:    200,
		Message: message,
	}
}

func NewSuccessResponse[T any](message string, data T) ApiResponse[T] {
	return ApiResponse[T]{
		Status:  api_types.StatusSuccess,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse builds an error envelope. Errors are flattened to their
// message since error values do not marshal to JSON.
func NewErrorResponse(code int, message string, err any) ApiResponse[any] {
	if e, ok := err.(error); ok {
		err = e.Error()
	}

	return ApiResponse[any]{
		Status:  api_types.StatusError,
		Code:    code,
		Message: message,
		Error:   err,
	}
}

/** Boards */

// CreateBoardRequest represents the request body for starting a new board
type CreateBoardRequest struct {
	Name string `json:"name"`          // Display name of the board (optional)
	Seed *bool  `json:"seed,omitempty"` // Whether to apply the configured template, defaults to true
}

// CreateBoardResponse is returned once a board is created
type CreateBoardResponse struct {
	ID string `json:"id"`
}

// BoardSummary describes a live board without its tasks
type BoardSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	LastSeen  time.Time `json:"last_seen"`
	TaskCount int       `json:"task_count"`
}

// ListBoardsResponse represents the response for listing boards
type ListBoardsResponse struct {
	Boards []BoardSummary `json:"boards"`
	Count  int            `json:"count"`
}

// BoardResponse is a board with its criteria and current view
type BoardResponse struct {
	BoardSummary
	Filter     Filter       `json:"filter"`
	Sort       string       `json:"sort"`
	SearchMode string       `json:"search_mode"`
	View       ViewResponse `json:"view"`
}

/** Tasks */

// Task represents a task in API responses
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Team        string     `json:"team"`
	Assignees   string     `json:"assignees"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// CreateTaskRequest represents the request body for adding a task.
// Status and priority default to "In Progress" and "P2".
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Team        string     `json:"team"`
	Assignees   string     `json:"assignees"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	StartDate   *time.Time `json:"start_date,omitempty"`
}

// CreateTaskResponse is returned once a task is created
type CreateTaskResponse struct {
	ID string `json:"id"`
}

// UpdateStatusRequest represents the request body for moving a task
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdatePriorityRequest represents the request body for changing a task's priority
type UpdatePriorityRequest struct {
	Priority string `json:"priority" binding:"required"`
}

/** View */

// Filter represents the filter criteria of a board
type Filter struct {
	FromDate  *time.Time `json:"from_date,omitempty"`
	ToDate    *time.Time `json:"to_date,omitempty"`
	Assignees string     `json:"assignees,omitempty"`
	Priority  string     `json:"priority,omitempty"`
	Search    string     `json:"search,omitempty"`
}

// SortRequest represents the request body for changing the sort order ("low" or "high")
type SortRequest struct {
	Order string `json:"order"`
}

// Column is one status column of the view
type Column struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Tasks  []Task `json:"tasks"`
}

// ViewResponse is the filtered, sorted board in column order
type ViewResponse struct {
	Columns []Column `json:"columns"`
	Total   int      `json:"total"`
}

// Column returns the column for a status, or an empty column if absent
func (v ViewResponse) Column(status string) Column {
	for _, c := range v.Columns {
		if c.Status == status {
			return c
		}
	}
	return Column{Status: status, Tasks: []Task{}}
}

/** Health */

// HealthResponse is returned by the health check
type HealthResponse struct {
	Uptime string `json:"uptime"`
}
