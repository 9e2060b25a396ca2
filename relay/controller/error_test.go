package controller

import (
	"errors"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/songquanpeng/fal-relay/relay/channel/fal"
	relaymodel "github.com/songquanpeng/fal-relay/relay/model"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
		wantMsg    string
	}{
		{"image_too_small token", errors.New("detail: image_too_small"), http.StatusBadRequest, relaymodel.ErrorTypeImageTooSmall, imageTooSmallMessage},
		{"too small prose", errors.New("Image dimensions are too small (120x80)"), http.StatusBadRequest, relaymodel.ErrorTypeImageTooSmall, imageTooSmallMessage},
		{"too large", &fal.APIError{StatusCode: 422, Message: "image_too_large: max 4096px"}, http.StatusBadRequest, relaymodel.ErrorTypeImageTooLarge, imageTooLargeMessage},
		{"load error", errors.New("image_load_error: cannot decode"), http.StatusBadRequest, relaymodel.ErrorTypeUnsupportedFormat, unsupportedFormatMessage},
		{"unsupported format", errors.New("unsupported_format"), http.StatusBadRequest, relaymodel.ErrorTypeUnsupportedFormat, unsupportedFormatMessage},
		{"invalid image", errors.New("invalid_image"), http.StatusBadRequest, relaymodel.ErrorTypeUnsupportedFormat, unsupportedFormatMessage},
		{"too small wins over too large", errors.New("image_too_large or image_too_small"), http.StatusBadRequest, relaymodel.ErrorTypeImageTooSmall, imageTooSmallMessage},
		{"case sensitive", errors.New("IMAGE_TOO_SMALL"), http.StatusInternalServerError, relaymodel.ErrorTypeUpstream, "IMAGE_TOO_SMALL"},
		{"generic keeps message", errors.New("weird upstream 503"), http.StatusInternalServerError, relaymodel.ErrorTypeUpstream, "weird upstream 503"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyError(tt.err)
			assert.Equal(t, tt.wantStatus, got.StatusCode)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantMsg, got.Message)
		})
	}
}

func TestClassifyErrorPassThrough(t *testing.T) {
	original := relaymodel.NewErrorWithStatusCode(http.StatusTeapot, "custom", "image_too_small but already handled")
	err := pkgerrors.Wrap(original.AsError(), "submit failed")
	assert.Same(t, original, ClassifyError(err))
	assert.Nil(t, ClassifyError(nil))
}
