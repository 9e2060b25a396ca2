package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/songquanpeng/fal-relay/common/logger"
	"github.com/songquanpeng/fal-relay/relay/model"
)

func abortWithMessage(c *gin.Context, statusCode int, errType string, message string) {
	c.JSON(statusCode, model.ErrorResponse{
		Detail:    message,
		Type:      errType,
		RequestId: c.GetString(logger.RequestIdKey),
	})
	c.Abort()
	logger.Error(c.Request.Context(), message)
}
