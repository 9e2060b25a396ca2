package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/songquanpeng/fal-relay/common/config"
	"github.com/songquanpeng/fal-relay/controller"
)

func SetApiRouter(router *gin.Engine) {
	apiRouter := router.Group("/api")
	if config.GzipEnabled {
		apiRouter.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	{
		apiRouter.GET("/health", controller.GetHealth)
		apiRouter.GET("/status", controller.GetStatus)
	}
}
