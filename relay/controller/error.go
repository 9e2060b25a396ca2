package controller

import (
	"errors"
	"net/http"
	"strings"

	relaymodel "github.com/songquanpeng/fal-relay/relay/model"
)

const (
	imageTooSmallMessage     = "Image is too small. Please upload an image that is at least 300x300 pixels."
	imageTooLargeMessage     = "Image is too large. Please upload a smaller image."
	unsupportedFormatMessage = "Unsupported image format. Please upload a JPEG or PNG image."
	fallbackExhaustedMessage = "Image restoration failed. Please try a different image."

	noImageResultMessage       = "No image URL found in response from the FAL API!"
	noVideoResultMessage       = "No video URL found in response from the video generation service"
	noImageVideoResultMessage  = "No video URL in response"
	generateImageFailurePrefix = "Failed to generate image: "
)

var classifyRules = []struct {
	substrings []string
	errType    string
	message    string
}{
	{[]string{"image_too_small", "Image dimensions are too small"}, relaymodel.ErrorTypeImageTooSmall, imageTooSmallMessage},
	{[]string{"image_too_large"}, relaymodel.ErrorTypeImageTooLarge, imageTooLargeMessage},
	{[]string{"image_load_error", "unsupported_format", "invalid_image"}, relaymodel.ErrorTypeUnsupportedFormat, unsupportedFormatMessage},
}

// ClassifyError maps an upstream failure to the error returned to the client. Matching is a
// case-sensitive substring search over the error text; anything unrecognised is a 500 that
// keeps the original message. Errors that already carry a status pass through unchanged.
func ClassifyError(err error) *relaymodel.ErrorWithStatusCode {
	if err == nil {
		return nil
	}
	var statusErr *relaymodel.StatusError
	if errors.As(err, &statusErr) && statusErr.Err != nil {
		return statusErr.Err
	}
	message := err.Error()
	for _, rule := range classifyRules {
		for _, s := range rule.substrings {
			if strings.Contains(message, s) {
				return relaymodel.NewErrorWithStatusCode(http.StatusBadRequest, rule.errType, rule.message)
			}
		}
	}
	return relaymodel.NewErrorWithStatusCode(http.StatusInternalServerError, relaymodel.ErrorTypeUpstream, message)
}

func noResultError(message string) *relaymodel.ErrorWithStatusCode {
	return relaymodel.NewErrorWithStatusCode(http.StatusInternalServerError, relaymodel.ErrorTypeNoResult, message)
}

func fallbackExhaustedError() *relaymodel.ErrorWithStatusCode {
	return relaymodel.NewErrorWithStatusCode(http.StatusInternalServerError, relaymodel.ErrorTypeFallbackExhausted, fallbackExhaustedMessage)
}

func bindError(err error) *relaymodel.ErrorWithStatusCode {
	return relaymodel.InvalidRequestError(err.Error())
}
