package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/songquanpeng/fal-relay/common/cloudflare"
	"github.com/songquanpeng/fal-relay/common/config"
	"github.com/songquanpeng/fal-relay/common/logger"
	"github.com/songquanpeng/fal-relay/relay/channel/fal"
	relayconstant "github.com/songquanpeng/fal-relay/relay/constant"
	controller "github.com/songquanpeng/fal-relay/relay/controller"
	"github.com/songquanpeng/fal-relay/relay/model"
)

// NewUpstreamClient builds the fal client used by a relay request.
var NewUpstreamClient = newUpstreamClient

func newUpstreamClient() fal.Client {
	client := fal.NewQueueClient()
	if config.UploadProvider == "r2" {
		return fal.WithUploader(client, fal.UploaderFunc(cloudflare.UploadFileToR2))
	}
	return client
}

func relayHelper(c *gin.Context, relayMode int, client fal.Client) *model.ErrorWithStatusCode {
	switch relayMode {
	case relayconstant.RelayModeImageGeneration:
		return controller.RelayGenerateImage(c, client)
	case relayconstant.RelayModeImageRestoration:
		return controller.RelayRestoreImage(c, client)
	case relayconstant.RelayModeTextToVideo:
		return controller.RelayTextToVideo(c, client)
	case relayconstant.RelayModeImageToVideo:
		return controller.RelayImageToVideo(c, client)
	}
	return model.NewErrorWithStatusCode(http.StatusNotFound, model.ErrorTypeInvalidRequest,
		fmt.Sprintf("Invalid URL (%s %s)", c.Request.Method, c.Request.URL.Path))
}

// Relay godoc
// @Summary      Relay a generation request to fal
// @Tags         relay
// @Accept       json,mpfd
// @Produce      json,jpeg
// @Failure      400  {object}  model.ErrorResponse
// @Failure      500  {object}  model.ErrorResponse
// @Router       /api/generate-image [post]
// @Router       /api/restore-image [post]
// @Router       /api/generate-video-from-text [post]
// @Router       /api/generate-video-from-image [post]
func Relay(c *gin.Context) {
	ctx := c.Request.Context()
	relayMode := relayconstant.Path2RelayMode(c.Request.URL.Path)
	logger.Infof(ctx, "relay: mode=%s, path=%s", relayconstant.RelayModeName(relayMode), c.Request.URL.Path)

	bizErr := relayHelper(c, relayMode, NewUpstreamClient())
	if bizErr == nil {
		return
	}
	if bizErr.StatusCode >= http.StatusInternalServerError {
		logger.Errorf(ctx, "relay error (status=%d, type=%s): %s", bizErr.StatusCode, bizErr.Type, bizErr.Message)
	} else {
		logger.Warnf(ctx, "relay rejected (status=%d, type=%s): %s", bizErr.StatusCode, bizErr.Type, bizErr.Message)
	}
	c.JSON(bizErr.StatusCode, model.ErrorResponse{
		Detail:    bizErr.Message,
		Type:      bizErr.Type,
		RequestId: c.GetString(logger.RequestIdKey),
	})
}

func RelayNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, model.ErrorResponse{
		Detail:    fmt.Sprintf("Invalid URL (%s %s)", c.Request.Method, c.Request.URL.Path),
		Type:      model.ErrorTypeInvalidRequest,
		RequestId: c.GetString(logger.RequestIdKey),
	})
}
