package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/songquanpeng/fal-relay/common/config"
	"github.com/songquanpeng/fal-relay/common/logger"
	"github.com/songquanpeng/fal-relay/common/tempfile"
	"github.com/songquanpeng/fal-relay/relay/channel/fal"
	"github.com/songquanpeng/fal-relay/relay/output"
)

// upstreamContext keeps the request values (request id) but not its cancellation: a client
// disconnect must not abort the upstream generation. RELAY_TIMEOUT bounds the whole call.
func upstreamContext(c *gin.Context) (context.Context, context.CancelFunc) {
	ctx := context.WithoutCancel(c.Request.Context())
	if config.RelayTimeout > 0 {
		return context.WithTimeout(ctx, time.Duration(config.RelayTimeout)*time.Second)
	}
	return context.WithCancel(ctx)
}

// submitAndWait runs one model call and normalizes whatever it returned.
func submitAndWait(ctx context.Context, client fal.Client, modelId string, arguments map[string]any) (output.Result, error) {
	logger.Infof(ctx, "fal arguments for %s: %v", modelId, arguments)
	handle, err := client.Submit(ctx, modelId, arguments)
	if err != nil {
		return output.Result{}, err
	}
	payload, err := handle.Get(ctx)
	if err != nil {
		return output.Result{}, err
	}
	switch v := payload.(type) {
	case []byte:
		logger.Debugf(ctx, "raw output from fal (request %s): %d bytes", handle.RequestId(), len(v))
	default:
		logger.Debugf(ctx, "raw output from fal (request %s, type=%T): %v", handle.RequestId(), payload, payload)
	}
	return output.ParseWithContext(ctx, payload), nil
}

type resultFile struct {
	contentType string
	fileName    string
}

var (
	imageFile = resultFile{contentType: "image/jpeg", fileName: "generated.jpg"}
	videoFile = resultFile{contentType: "video/mp4", fileName: "generated.mp4"}
)

// writeResult answers with the URL wrapped by body, or streams a persisted file and removes it.
func writeResult(c *gin.Context, ctx context.Context, result output.Result, file resultFile, body func(url string) any) {
	if result.Kind == output.FilePath {
		defer tempfile.Remove(ctx, result.Value)
		logger.Infof(ctx, "serving temp file from: %s", result.Value)
		c.Header("Content-Type", file.contentType)
		c.FileAttachment(result.Value, file.fileName)
		return
	}
	c.JSON(http.StatusOK, body(result.Value))
}
