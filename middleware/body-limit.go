package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/songquanpeng/fal-relay/common/config"
	"github.com/songquanpeng/fal-relay/relay/model"
)

// 多出的 1MB 留给 multipart 的表单字段和边界
const formOverheadBytes = 1 << 20

// BodyLimit rejects requests whose declared body exceeds MAX_UPLOAD_SIZE_MB and caps the rest.
func BodyLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.MaxUploadSizeMB <= 0 {
			c.Next()
			return
		}
		limit := int64(config.MaxUploadSizeMB)<<20 + formOverheadBytes
		if c.Request.ContentLength > limit {
			abortWithMessage(c, http.StatusRequestEntityTooLarge, model.ErrorTypeImageTooLarge,
				fmt.Sprintf("Request body is too large. The maximum upload size is %d MB.", config.MaxUploadSizeMB))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
