package health

import (
	"time"

	"github.com/ethanbaker/taskboard/pkg/sdk"
	"github.com/gin-gonic/gin"
)

var started time.Time

// getStatus reports that the server is up and how long it has been running
func getStatus(c *gin.Context) {
	c.JSON(sdk.NewSuccessResponse("OK", sdk.HealthResponse{
		Uptime: time.Since(started).Round(time.Second).String(),
	}).AsGinResponse())
}
