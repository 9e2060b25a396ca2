package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/songquanpeng/fal-relay/common"
	"github.com/songquanpeng/fal-relay/common/config"
	"github.com/songquanpeng/fal-relay/monitor"
)

// GetHealth godoc
// @Summary  Liveness probe
// @Tags     misc
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /api/health [get]
func GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": config.ServiceName,
	})
}

// GetStatus godoc
// @Summary  Service version and model defaults
// @Tags     misc
// @Produce  json
// @Router   /api/status [get]
func GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "",
		"data": gin.H{
			"version":         common.Version,
			"start_time":      common.StartTime,
			"system_name":     config.SystemName,
			"instance_id":     config.InstanceId,
			"upload_provider": config.UploadProvider,
			"relay_timeout":   config.RelayTimeout,
			"models": gin.H{
				"image":                config.ImageModel,
				"text_to_video":        config.TextToVideoModel,
				"image_to_video":       config.ImageToVideoModel,
				"restoration":          config.RestorationModel,
				"restoration_fallback": config.RestorationFallbackModel,
			},
			"metrics": monitor.GetSnapshot(),
		},
	})
}
