package util

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/songquanpeng/fal-relay/common/config"
	"github.com/songquanpeng/fal-relay/common/logger"
)

var (
	modelMappingOnce sync.Once
	modelMapping     map[string]string
)

// ParseModelMapping reads a JSON object of alias -> fal model id, e.g. {"flux-dev": "fal-ai/flux/dev"}.
func ParseModelMapping(raw string) (map[string]string, error) {
	if raw == "" {
		return nil, nil
	}
	mapping := make(map[string]string)
	if err := json.Unmarshal([]byte(raw), &mapping); err != nil {
		return nil, err
	}
	return mapping, nil
}

// GetModelMapping returns the MODEL_MAPPING config, parsed once.
func GetModelMapping() map[string]string {
	modelMappingOnce.Do(func() {
		var err error
		modelMapping, err = ParseModelMapping(config.ModelMapping)
		if err != nil {
			logger.SysError(fmt.Sprintf("failed to parse MODEL_MAPPING, ignoring it: %s", err.Error()))
			modelMapping = nil
		}
	})
	return modelMapping
}

func GetMappedModelName(modelName string, mapping map[string]string) (string, bool) {
	if mapping == nil {
		return modelName, false
	}
	if mappedModelName := mapping[modelName]; mappedModelName != "" {
		return mappedModelName, true
	}
	return modelName, false
}
