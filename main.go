package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/songquanpeng/fal-relay/common"
	"github.com/songquanpeng/fal-relay/common/cloudflare"
	"github.com/songquanpeng/fal-relay/common/config"
	"github.com/songquanpeng/fal-relay/common/logger"
	"github.com/songquanpeng/fal-relay/common/tempfile"
	"github.com/songquanpeng/fal-relay/middleware"
	"github.com/songquanpeng/fal-relay/monitor"
	"github.com/songquanpeng/fal-relay/router"
)

// monitorGoroutines 定期记录 goroutine 数量和内存，长时间挂起的上游调用会体现在这里
func monitorGoroutines() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		snapshot := monitor.GetSnapshot()
		if snapshot.GoroutineCount > 5000 {
			logger.SysError(fmt.Sprintf("high goroutine count detected: %d (in-flight requests: %d)", snapshot.GoroutineCount, snapshot.Concurrent))
		} else if config.DebugEnabled {
			logger.SysLog(fmt.Sprintf("goroutines: %d, in-flight requests: %d, memory: %dMB",
				snapshot.GoroutineCount, snapshot.Concurrent, snapshot.MemoryAllocMB))
		}
	}
}

func checkConfig() {
	if config.FalKey == "" {
		logger.SysError("FAL_KEY is not set, upstream calls will be rejected")
	}
	switch config.UploadProvider {
	case "fal":
	case "r2":
		if !cloudflare.R2Configured() {
			logger.FatalLog("UPLOAD_PROVIDER is r2 but CF_R2_* settings are incomplete")
		}
	default:
		logger.FatalLog("unknown UPLOAD_PROVIDER: " + config.UploadProvider)
	}
	if info, err := os.Stat(tempfile.Dir()); err != nil || !info.IsDir() {
		logger.FatalLog("temp dir is not usable: " + tempfile.Dir())
	}
	if config.RelayTimeout > 0 {
		logger.SysLog(fmt.Sprintf("upstream timeout: %ds", config.RelayTimeout))
	}
}

func main() {
	common.Init()
	logger.SetupLogger()
	logger.SysLog(fmt.Sprintf("%s %s started", config.SystemName, common.Version))
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	if config.DebugEnabled {
		logger.SysLog("running in debug mode")
	}
	checkConfig()
	logger.SysLog(fmt.Sprintf("upload provider: %s, go %s", config.UploadProvider, runtime.Version()))

	go monitorGoroutines()

	server := gin.New()
	server.Use(gin.Recovery())
	server.Use(middleware.RequestId())
	server.Use(middleware.Metrics())
	middleware.SetUpLogger(server)
	server.MaxMultipartMemory = int64(config.MaxUploadSizeMB) << 20

	router.SetRouter(server)

	var port = os.Getenv("PORT")
	if port == "" {
		port = strconv.Itoa(*common.Port)
	}
	err := server.Run(":" + port)
	if err != nil {
		logger.FatalLog("failed to start HTTP server: " + err.Error())
	}
}
