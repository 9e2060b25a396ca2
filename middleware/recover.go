package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/songquanpeng/fal-relay/common/logger"
	"github.com/songquanpeng/fal-relay/relay/model"
)

func RelayPanicRecover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "panic detected: %v", err)
				logger.Errorf(ctx, "stacktrace from panic: %s", string(debug.Stack()))
				abortWithMessage(c, http.StatusInternalServerError, model.ErrorTypeUpstream,
					fmt.Sprintf("Panic detected, error: %v", err))
			}
		}()
		c.Next()
	}
}
