package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/songquanpeng/fal-relay/common/config"
	"github.com/songquanpeng/fal-relay/controller"
	"github.com/songquanpeng/fal-relay/middleware"
)

func SetRelayRouter(router *gin.Engine) {
	relayRouter := router.Group("/api")
	relayRouter.Use(middleware.RelayPanicRecover(), middleware.BodyLimit())
	if config.GzipEnabled {
		relayRouter.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	{
		relayRouter.POST("/generate-image", controller.Relay)
		relayRouter.POST("/restore-image", controller.Relay)
		relayRouter.POST("/generate-video-from-text", controller.Relay)
		relayRouter.POST("/generate-video-from-image", controller.Relay)
	}
}
