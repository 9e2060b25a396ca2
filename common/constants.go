package common

import "time"

var Version = "v0.0.0" // set at build time: -ldflags "-X github.com/songquanpeng/fal-relay/common.Version=..."
var StartTime = time.Now().Unix()
