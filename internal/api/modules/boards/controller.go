package boards

import (
	"errors"
	"net/http"
	"time"

	"github.com/ethanbaker/taskboard/internal/calendar"
	"github.com/ethanbaker/taskboard/pkg/board"
	"github.com/ethanbaker/taskboard/pkg/sdk"
	"github.com/ethanbaker/taskboard/pkg/session"
	"github.com/gin-gonic/gin"
)

// CreateBoard handles POST requests to start a new board
func CreateBoard(c *gin.Context) {
	// An empty body creates an unnamed, seeded board
	var req sdk.CreateBoardRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
			return
		}
	}

	b, err := boardService.CreateBoard(c.Request.Context(), &req)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to create board", err).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("Board created successfully", sdk.CreateBoardResponse{ID: b.ID.String()}).AsGinResponse())
}

// ListBoards handles GET requests to list every live board
func ListBoards(c *gin.Context) {
	boards := boardService.ListBoards(c.Request.Context())

	resp := sdk.ListBoardsResponse{
		Boards: make([]sdk.BoardSummary, 0, len(boards)),
		Count:  len(boards),
	}
	for _, b := range boards {
		resp.Boards = append(resp.Boards, toSDKSummary(b))
	}

	c.JSON(sdk.NewSuccessResponse("Boards retrieved successfully", resp).AsGinResponse())
}

// GetBoard handles GET requests to retrieve a board by UUID
func GetBoard(c *gin.Context) {
	b, err := boardService.GetBoard(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		respondError(c, "Board not found", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Board retrieved successfully", toSDKBoard(b)).AsGinResponse())
}

// DeleteBoard handles DELETE requests to end a board session
func DeleteBoard(c *gin.Context) {
	if err := boardService.DeleteBoard(c.Request.Context(), c.Param("uuid")); err != nil {
		respondError(c, "Failed to delete board", err)
		return
	}

	c.JSON(sdk.NewSuccess("Board deleted successfully").AsGinResponse())
}

// CreateTask handles POST requests to add a task to a board
func CreateTask(c *gin.Context) {
	var req sdk.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}

	id, err := boardService.CreateTask(c.Request.Context(), c.Param("uuid"), &req)
	if err != nil {
		respondError(c, "Failed to create task", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Task created successfully", sdk.CreateTaskResponse{ID: id.String()}).AsGinResponse())
}

// GetTask handles GET requests to retrieve a single task
func GetTask(c *gin.Context) {
	task, err := boardService.GetTask(c.Request.Context(), c.Param("uuid"), c.Param("task"))
	if err != nil {
		respondError(c, "Task not found", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Task retrieved successfully", toSDKTask(task)).AsGinResponse())
}

// DeleteTask handles DELETE requests to remove a task
func DeleteTask(c *gin.Context) {
	if err := boardService.DeleteTask(c.Request.Context(), c.Param("uuid"), c.Param("task")); err != nil {
		respondError(c, "Failed to delete task", err)
		return
	}

	c.JSON(sdk.NewSuccess("Task deleted successfully").AsGinResponse())
}

// UpdateStatus handles PUT requests to move a task to another column
func UpdateStatus(c *gin.Context) {
	var req sdk.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}

	if err := boardService.UpdateStatus(c.Request.Context(), c.Param("uuid"), c.Param("task"), req.Status); err != nil {
		respondError(c, "Failed to update status", err)
		return
	}

	c.JSON(sdk.NewSuccess("Status updated successfully").AsGinResponse())
}

// UpdatePriority handles PUT requests to change a task's priority
func UpdatePriority(c *gin.Context) {
	var req sdk.UpdatePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}

	if err := boardService.UpdatePriority(c.Request.Context(), c.Param("uuid"), c.Param("task"), req.Priority); err != nil {
		respondError(c, "Failed to update priority", err)
		return
	}

	c.JSON(sdk.NewSuccess("Priority updated successfully").AsGinResponse())
}

// SetFilter handles PUT requests to replace a board's filter
func SetFilter(c *gin.Context) {
	var req sdk.Filter
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}

	if err := boardService.SetFilter(c.Request.Context(), c.Param("uuid"), &req); err != nil {
		respondError(c, "Failed to set filter", err)
		return
	}

	c.JSON(sdk.NewSuccess("Filter updated successfully").AsGinResponse())
}

// ClearFilter handles DELETE requests to reset a board's filter
func ClearFilter(c *gin.Context) {
	clearWith(c, "Filter cleared successfully", (*board.Engine).ClearFilter)
}

// ClearFromDate handles DELETE requests to drop the filter's lower date bound
func ClearFromDate(c *gin.Context) {
	clearWith(c, "From date cleared successfully", (*board.Engine).ClearFromDate)
}

// ClearToDate handles DELETE requests to drop the filter's upper date bound
func ClearToDate(c *gin.Context) {
	clearWith(c, "To date cleared successfully", (*board.Engine).ClearToDate)
}

func clearWith(c *gin.Context, message string, clear func(e *board.Engine)) {
	if err := boardService.ClearFilter(c.Request.Context(), c.Param("uuid"), clear); err != nil {
		respondError(c, "Failed to clear filter", err)
		return
	}

	c.JSON(sdk.NewSuccess(message).AsGinResponse())
}

// SetSortOrder handles PUT requests to change a board's priority ordering
func SetSortOrder(c *gin.Context) {
	var req sdk.SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}

	if err := boardService.SetSortOrder(c.Request.Context(), c.Param("uuid"), req.Order); err != nil {
		respondError(c, "Failed to set sort order", err)
		return
	}

	c.JSON(sdk.NewSuccess("Sort order updated successfully").AsGinResponse())
}

// GetView handles GET requests for a board's filtered, sorted columns
func GetView(c *gin.Context) {
	b, err := boardService.GetBoard(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		respondError(c, "Board not found", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("View retrieved successfully", toSDKView(b.Engine.View())).AsGinResponse())
}

// ExportCalendar handles GET requests for the board view as an iCalendar feed
func ExportCalendar(c *gin.Context) {
	b, err := boardService.GetBoard(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		respondError(c, "Board not found", err)
		return
	}

	feed := calendar.Export(b.Name, b.Engine.View(), time.Now())
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}

// respondError writes an error envelope with a status code matching the error
func respondError(c *gin.Context, message string, err error) {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, session.ErrBoardNotFound), errors.Is(err, ErrTaskNotFound):
		code = http.StatusNotFound
	case errors.Is(err, ErrInvalidID),
		errors.Is(err, board.ErrInvalidStatus),
		errors.Is(err, board.ErrInvalidPriority),
		errors.Is(err, board.ErrInvalidSortOrder):
		code = http.StatusBadRequest
	}

	c.JSON(sdk.NewErrorResponse(code, message, err).AsGinResponse())
}
