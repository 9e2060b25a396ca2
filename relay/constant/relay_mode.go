package constant

import "strings"

const (
	RelayModeUnknown = iota
	RelayModeImageGeneration
	RelayModeImageRestoration
	RelayModeTextToVideo
	RelayModeImageToVideo
)

func Path2RelayMode(path string) int {
	relayMode := RelayModeUnknown
	if strings.HasSuffix(path, "/generate-image") {
		relayMode = RelayModeImageGeneration
	} else if strings.HasSuffix(path, "/restore-image") {
		relayMode = RelayModeImageRestoration
	} else if strings.HasSuffix(path, "/generate-video-from-text") {
		relayMode = RelayModeTextToVideo
	} else if strings.HasSuffix(path, "/generate-video-from-image") {
		relayMode = RelayModeImageToVideo
	}
	return relayMode
}

// RelayModeName is used in logs.
func RelayModeName(relayMode int) string {
	switch relayMode {
	case RelayModeImageGeneration:
		return "generate-image"
	case RelayModeImageRestoration:
		return "restore-image"
	case RelayModeTextToVideo:
		return "generate-video-from-text"
	case RelayModeImageToVideo:
		return "generate-video-from-image"
	}
	return "unknown"
}
