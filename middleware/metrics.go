package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/songquanpeng/fal-relay/monitor"
)

// Metrics 记录每个请求的延迟、状态码和并发数
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		monitor.IncrementConcurrent()
		defer monitor.DecrementConcurrent()

		c.Next()

		monitor.RecordRequest(time.Since(startTime), c.Writer.Status())
	}
}
