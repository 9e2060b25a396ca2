package fal

import (
	"fmt"

	"github.com/songquanpeng/fal-relay/relay/util"
)

// APIError is a non-2xx answer from fal. Message keeps the upstream error type tokens
// (image_too_small, image_load_error, ...) that callers classify on.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("fal api error (status %d): %s", e.StatusCode, e.Message)
}

func newAPIError(statusCode int, body []byte) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    util.UpstreamErrorMessage(body, statusCode),
	}
}
