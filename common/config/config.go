package config

import (
	"os"
	"strings"

	"github.com/songquanpeng/fal-relay/common/env"
)

var SystemName = env.String("SYSTEM_NAME", "Fal Relay")

var ServiceName = env.String("SERVICE_NAME", "fal-relay")
var InstanceId = env.String("INSTANCE_ID", hostname())

var DebugEnabled = strings.ToLower(os.Getenv("DEBUG")) == "true"

// fal.ai
var FalKey = env.String("FAL_KEY", "")
var FalQueueURL = strings.TrimSuffix(env.String("FAL_QUEUE_URL", "https://queue.fal.run"), "/")
var FalRestURL = strings.TrimSuffix(env.String("FAL_REST_URL", "https://rest.alpha.fal.ai"), "/")
var FalPollIntervalMs = env.Int("FAL_POLL_INTERVAL_MS", 500)

// Upstream transport. RelayTimeout 为 0 时不设超时，一直等待上游返回
var RelayTimeout = env.Int("RELAY_TIMEOUT", 0) // unit is second
var RelayProxy = env.String("RELAY_PROXY", "")

// Default models, overridable per request where the endpoint accepts a model.
var (
	ImageModel               = env.String("IMAGE_MODEL", "fal-ai/imagen4/preview")
	TextToVideoModel         = env.String("TEXT_TO_VIDEO_MODEL", "fal-ai/minimax/hailuo-02/standard/text-to-video")
	ImageToVideoModel        = env.String("IMAGE_TO_VIDEO_MODEL", "fal-ai/kling-video/v2.1/master/image-to-video")
	RestorationModel         = env.String("RESTORATION_MODEL", "fal-ai/image-editing/photo-restoration")
	RestorationFallbackModel = env.String("RESTORATION_FALLBACK_MODEL", "fal-ai/nafnet/deblur")
)

// MODEL_MAPPING: JSON object of client alias -> fal model id
var ModelMapping = env.String("MODEL_MAPPING", "")

// Temp files for uploaded images and binary upstream results. Empty means os.TempDir().
var TempDir = env.String("TEMP_DIR", "")
var MaxUploadSizeMB = env.Int("MAX_UPLOAD_SIZE_MB", 32)

// UploadProvider selects where uploaded images are staged before submission: "fal" or "r2".
var UploadProvider = env.String("UPLOAD_PROVIDER", "fal")

var CfBucketFileName = env.String("CF_R2_BUCKET", "")
var CfFileAccessKey = env.String("CF_R2_ACCESS_KEY", "")
var CfFileSecretKey = env.String("CF_R2_SECRET_KEY", "")
var CfFileEndpoint = env.String("CF_R2_ENDPOINT", "")
var CfFilePublicUrl = strings.TrimSuffix(env.String("CF_R2_PUBLIC_URL", ""), "/")

var CorsAllowedOrigins = env.StringSlice("CORS_ALLOWED_ORIGINS", []string{"*"})
var GzipEnabled = env.Bool("GZIP_ENABLED", true)

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}
