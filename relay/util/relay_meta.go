package util

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/songquanpeng/fal-relay/common/logger"
	"github.com/songquanpeng/fal-relay/relay/constant"
)

type RelayMeta struct {
	Mode      int
	RequestId string
	// OriginModelName is the model name from the raw user request
	OriginModelName string
	// ActualModelName is the fal model id after mapping
	ActualModelName string
	// FallbackModelName is only set for restoration
	FallbackModelName string
	RequestURLPath    string
	StartTime         time.Time
}

func GetRelayMeta(c *gin.Context) *RelayMeta {
	return &RelayMeta{
		Mode:           constant.Path2RelayMode(c.Request.URL.Path),
		RequestId:      c.GetString(logger.RequestIdKey),
		RequestURLPath: c.Request.URL.Path,
		StartTime:      time.Now(),
	}
}

// SetModel records the requested model and resolves it through MODEL_MAPPING.
func (m *RelayMeta) SetModel(modelName string) {
	m.OriginModelName = modelName
	m.ActualModelName, _ = GetMappedModelName(modelName, GetModelMapping())
}

func (m *RelayMeta) Elapsed() time.Duration {
	return time.Since(m.StartTime)
}
