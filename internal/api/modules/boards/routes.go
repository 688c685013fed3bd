package boards

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the routes for the boards module
func RegisterRoutes(g *gin.RouterGroup) {
	group := g.Group("/boards")

	// Board session routes
	group.POST("", CreateBoard)         // Start a new board
	group.GET("", ListBoards)           // List live boards
	group.GET("/:uuid", GetBoard)       // Get a board with its current view
	group.DELETE("/:uuid", DeleteBoard) // End a board session

	// Task routes
	group.POST("/:uuid/tasks", CreateTask)                   // Add a task
	group.GET("/:uuid/tasks/:task", GetTask)                 // Get a single task
	group.DELETE("/:uuid/tasks/:task", DeleteTask)           // Remove a task
	group.PUT("/:uuid/tasks/:task/status", UpdateStatus)     // Move a task to another column
	group.PUT("/:uuid/tasks/:task/priority", UpdatePriority) // Change a task's priority

	// View routes
	group.PUT("/:uuid/filter", SetFilter)             // Replace the filter
	group.DELETE("/:uuid/filter", ClearFilter)        // Reset the filter
	group.DELETE("/:uuid/filter/from", ClearFromDate) // Drop the lower date bound
	group.DELETE("/:uuid/filter/to", ClearToDate)     // Drop the upper date bound
	group.PUT("/:uuid/sort", SetSortOrder)            // Change the priority ordering
	group.GET("/:uuid/view", GetView)                 // Get the filtered, sorted columns
	group.GET("/:uuid/calendar.ics", ExportCalendar)  // Export the view as an iCalendar feed
}
