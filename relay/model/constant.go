package model

// Error.Type values returned to clients.
const (
	ErrorTypeInvalidRequest    = "invalid_request"
	ErrorTypeImageTooSmall     = "image_too_small"
	ErrorTypeImageTooLarge     = "image_too_large"
	ErrorTypeUnsupportedFormat = "unsupported_format"
	ErrorTypeNoResult          = "no_result"
	ErrorTypeUpstream          = "upstream_error"
	ErrorTypeFallbackExhausted = "fallback_exhausted"
)
