package middleware

import (
	"github.com/gin-gonic/gin"
	cors "github.com/rs/cors/wrapper/gin"
	"github.com/songquanpeng/fal-relay/common/config"
)

func allowAnyOrigin(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return len(origins) == 0
}

func CORS() gin.HandlerFunc {
	options := cors.Options{
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-ID", "Content-Disposition"},
	}
	// 通配时回显请求的 Origin，才能和 AllowCredentials 一起使用
	if allowAnyOrigin(config.CorsAllowedOrigins) {
		options.AllowOriginFunc = func(origin string) bool {
			return true
		}
	} else {
		options.AllowedOrigins = config.CorsAllowedOrigins
	}
	return cors.New(options)
}
