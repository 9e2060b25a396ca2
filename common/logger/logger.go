package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/songquanpeng/fal-relay/common/config"
	"github.com/songquanpeng/fal-relay/common/helper"
)

const (
	loggerDEBUG = "debug"
	loggerINFO  = "info"
	loggerWarn  = "warn"
	loggerError = "error"
)

// LogEntry JSON 日志结构
type LogEntry struct {
	Ts        string `json:"ts"`
	Level     string `json:"level"`
	RequestId string `json:"request_id,omitempty"`
	Msg       string `json:"msg"`
	Service   string `json:"service"`
	Instance  string `json:"instance"`
}

var setupLogLock sync.Mutex
var logFileDate string
var generalLogFile *os.File
var errorLogFile *os.File

// SetupLogger points gin's writers at daily log files under LogDir, keeping stdout/stderr.
// It is a no-op without LogDir or when today's files are already open.
func SetupLogger() {
	if LogDir == "" {
		return
	}
	setupLogLock.Lock()
	defer setupLogLock.Unlock()

	dateStr := time.Now().Format("20060102")
	if dateStr == logFileDate {
		return
	}

	// INFO/WARN/DEBUG
	generalLogPath := filepath.Join(LogDir, fmt.Sprintf("%s-%s.log", config.ServiceName, dateStr))
	fd, err := os.OpenFile(generalLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatal("failed to open general log file")
	}
	// ERROR only
	errorLogPath := filepath.Join(LogDir, fmt.Sprintf("%s-error-%s.log", config.ServiceName, dateStr))
	errFd, err := os.OpenFile(errorLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatal("failed to open error log file")
	}

	if generalLogFile != nil {
		_ = generalLogFile.Close()
	}
	if errorLogFile != nil {
		_ = errorLogFile.Close()
	}
	generalLogFile = fd
	errorLogFile = errFd
	logFileDate = dateStr

	gin.DefaultWriter = io.MultiWriter(os.Stdout, generalLogFile)
	gin.DefaultErrorWriter = io.MultiWriter(os.Stderr, errorLogFile)
}

// writeJSONLog 写入 JSON 格式日志
func writeJSONLog(writer io.Writer, level, requestId, msg string) {
	entry := LogEntry{
		Ts:        time.Now().Format(time.RFC3339Nano),
		Level:     level,
		RequestId: requestId,
		Msg:       msg,
		Service:   config.ServiceName,
		Instance:  config.InstanceId,
	}
	jsonBytes, err := json.Marshal(entry)
	if err != nil {
		_, _ = fmt.Fprintf(writer, `{"ts":"%s","level":"%s","msg":"json marshal error","service":"%s","instance":"%s"}`+"\n",
			entry.Ts, level, config.ServiceName, config.InstanceId)
		return
	}
	_, _ = writer.Write(append(jsonBytes, '\n'))
}

func SysLog(s string) {
	writeJSONLog(gin.DefaultWriter, loggerINFO, "", s)
}

func SysError(s string) {
	writeJSONLog(gin.DefaultErrorWriter, loggerError, "", s)
}

func Debug(ctx context.Context, msg string) {
	if config.DebugEnabled {
		logHelper(ctx, loggerDEBUG, msg)
	}
}

func Info(ctx context.Context, msg string) {
	logHelper(ctx, loggerINFO, msg)
}

func Warn(ctx context.Context, msg string) {
	logHelper(ctx, loggerWarn, msg)
}

func Error(ctx context.Context, msg string) {
	logHelper(ctx, loggerError, msg)
}

func Debugf(ctx context.Context, format string, a ...any) {
	if config.DebugEnabled {
		logHelper(ctx, loggerDEBUG, fmt.Sprintf(format, a...))
	}
}

func Infof(ctx context.Context, format string, a ...any) {
	Info(ctx, fmt.Sprintf(format, a...))
}

func Warnf(ctx context.Context, format string, a ...any) {
	Warn(ctx, fmt.Sprintf(format, a...))
}

func Errorf(ctx context.Context, format string, a ...any) {
	Error(ctx, fmt.Sprintf(format, a...))
}

// RequestIdFromContext returns the id set by the RequestId middleware, or "".
func RequestIdFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v := ctx.Value(RequestIdKey); v != nil {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

func logHelper(ctx context.Context, level string, msg string) {
	// ERROR -> DefaultErrorWriter, INFO/WARN/DEBUG -> DefaultWriter
	writer := gin.DefaultWriter
	if level == loggerError {
		writer = gin.DefaultErrorWriter
	}
	id := RequestIdFromContext(ctx)
	if id == "" {
		id = helper.GenRequestID()
	}
	writeJSONLog(writer, level, id, msg)

	// 跨天时切换日志文件
	if LogDir != "" && time.Now().Format("20060102") != logFileDate {
		go SetupLogger()
	}
}

func FatalLog(v ...any) {
	msg := fmt.Sprint(v...)
	writeJSONLog(gin.DefaultErrorWriter, "fatal", "", msg)
	os.Exit(1)
}
