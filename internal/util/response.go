package util

import (
	"net/http"

	"study_buddy_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error bodies carry a single free-text "detail" field. The API
// distinguishes exactly one failure kind (user not found, 404); everything
// else collapses to 500 with the underlying message.

func Detail(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}

func NotFound(c *gin.Context, detail string) {
	Detail(c, http.StatusNotFound, detail)
}

func InternalError(c *gin.Context, err error) {
	logger.Log.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString("request_id")),
		zap.Error(err),
	)
	Detail(c, http.StatusInternalServerError, err.Error())
}
