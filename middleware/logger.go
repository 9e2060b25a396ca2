package middleware

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/songquanpeng/fal-relay/common/config"
	"github.com/songquanpeng/fal-relay/common/logger"
	"github.com/songquanpeng/fal-relay/relay/constant"
)

// AccessLogEntry HTTP 访问日志结构（JSON 格式）
type AccessLogEntry struct {
	Ts        string `json:"ts"`
	Level     string `json:"level"`
	RequestId string `json:"request_id"`
	Status    int    `json:"status"`
	LatencyMs int64  `json:"latency_ms"`
	ClientIP  string `json:"client_ip"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	Endpoint  string `json:"endpoint"`
	BodySize  int    `json:"body_size"`
	Error     string `json:"error,omitempty"`
	Service   string `json:"service"`
	Instance  string `json:"instance"`
}

func accessLogLevel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	}
	return "info"
}

func formatAccessLog(param gin.LogFormatterParams) string {
	// 只记录非 2xx 的请求，DEBUG 时全部记录
	if param.StatusCode < 300 && !config.DebugEnabled {
		return ""
	}

	var requestID string
	if v, ok := param.Keys[logger.RequestIdKey]; ok {
		requestID, _ = v.(string)
	}

	entry := AccessLogEntry{
		Ts:        param.TimeStamp.Format(time.RFC3339Nano),
		Level:     accessLogLevel(param.StatusCode),
		RequestId: requestID,
		Status:    param.StatusCode,
		LatencyMs: param.Latency.Milliseconds(),
		ClientIP:  param.ClientIP,
		Method:    param.Method,
		Path:      param.Path,
		Endpoint:  constant.RelayModeName(constant.Path2RelayMode(param.Path)),
		BodySize:  param.BodySize,
		Error:     param.ErrorMessage,
		Service:   config.ServiceName,
		Instance:  config.InstanceId,
	}

	jsonBytes, err := json.Marshal(entry)
	if err != nil {
		return `{"level":"error","msg":"access log marshal error"}` + "\n"
	}
	return string(jsonBytes) + "\n"
}

func SetUpLogger(server *gin.Engine) {
	server.Use(gin.LoggerWithFormatter(formatAccessLog))
}
