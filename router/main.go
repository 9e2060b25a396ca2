package router

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/songquanpeng/fal-relay/common/logger"
	"github.com/songquanpeng/fal-relay/controller"
	_ "github.com/songquanpeng/fal-relay/docs"
	"github.com/songquanpeng/fal-relay/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetRouter(router *gin.Engine) {
	router.Use(middleware.CORS())
	SetApiRouter(router)
	SetRelayRouter(router)

	// 默认使用内置的 doc.json，可通过 SWAGGER_JSON_URL 指向外部文档
	swaggerURL := os.Getenv("SWAGGER_JSON_URL")
	if swaggerURL == "" {
		swaggerURL = "/swagger/doc.json"
	}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL(swaggerURL),
	))
	logger.SysLog(fmt.Sprintf("Swagger UI enabled at /swagger/index.html (doc: %s)", swaggerURL))

	router.NoRoute(controller.RelayNotFound)
}
