package helper

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenRequestID 时间戳(YYYYMMDDHHmmss) + 8位UUID
func GenRequestID() string {
	return GetTimeString() + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

func GetTimeString() string {
	return time.Now().Format("20060102150405")
}
