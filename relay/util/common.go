package util

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// GeneralErrorResponse covers the error bodies fal and similar upstreams return.
// detail is either a string or a list of validation items.
type GeneralErrorResponse struct {
	Detail  json.RawMessage `json:"detail"`
	Error   any             `json:"error"`
	Message string          `json:"message"`
	Msg     string          `json:"msg"`
}

type errorDetailItem struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

func (e GeneralErrorResponse) ToMessage() string {
	if len(e.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(e.Detail, &detail); err == nil && detail != "" {
			return detail
		}
		var items []errorDetailItem
		if err := json.Unmarshal(e.Detail, &items); err == nil && len(items) > 0 {
			parts := make([]string, 0, len(items))
			for _, item := range items {
				// 保留 type，错误分类依赖 image_too_small 等关键字
				switch {
				case item.Type != "" && item.Msg != "":
					parts = append(parts, fmt.Sprintf("%s: %s", item.Type, item.Msg))
				case item.Type != "":
					parts = append(parts, item.Type)
				case item.Msg != "":
					parts = append(parts, item.Msg)
				}
			}
			if len(parts) > 0 {
				return strings.Join(parts, "; ")
			}
		}
	}
	switch v := e.Error.(type) {
	case string:
		if v != "" {
			return v
		}
	case map[string]any:
		if msg, ok := v["message"].(string); ok && msg != "" {
			return msg
		}
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Msg
}

// UpstreamErrorMessage turns a non-2xx upstream body into a readable message.
func UpstreamErrorMessage(body []byte, statusCode int) string {
	var errResponse GeneralErrorResponse
	if err := json.Unmarshal(body, &errResponse); err == nil {
		if msg := errResponse.ToMessage(); msg != "" {
			return msg
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		if len(text) > 1000 {
			text = text[:1000]
		}
		return text
	}
	return fmt.Sprintf("upstream returned status %d %s", statusCode, http.StatusText(statusCode))
}
