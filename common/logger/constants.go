package logger

const (
	RequestIdKey = "X-Request-ID"
)

var LogDir string
