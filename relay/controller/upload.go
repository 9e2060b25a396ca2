package controller

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/songquanpeng/fal-relay/common/config"
	"github.com/songquanpeng/fal-relay/common/image"
	"github.com/songquanpeng/fal-relay/common/logger"
	"github.com/songquanpeng/fal-relay/common/tempfile"
	relaymodel "github.com/songquanpeng/fal-relay/relay/model"
)

// saveUploadedImage validates the uploaded image and copies it to a temp file.
// The caller owns the returned path and must remove it.
func saveUploadedImage(ctx context.Context, fileHeader *multipart.FileHeader) (string, *relaymodel.ErrorWithStatusCode) {
	contentType := fileHeader.Header.Get("Content-Type")
	if !image.IsValidContentType(contentType) {
		logger.Warnf(ctx, "rejected upload %s with content type %q", fileHeader.Filename, contentType)
		return "", relaymodel.InvalidRequestError(image.InvalidFormatMessage)
	}
	if limit := int64(config.MaxUploadSizeMB) << 20; limit > 0 && fileHeader.Size > limit {
		return "", relaymodel.NewErrorWithStatusCode(http.StatusBadRequest, relaymodel.ErrorTypeImageTooLarge,
			fmt.Sprintf("Image is too large. The maximum upload size is %d MB.", config.MaxUploadSizeMB))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", relaymodel.InvalidRequestError("failed to read uploaded image: " + err.Error())
	}
	defer file.Close()

	path, err := tempfile.Write(file, tempfile.ImageSuffix)
	if err != nil {
		logger.Errorf(ctx, "failed to save uploaded image: %s", err.Error())
		return "", relaymodel.NewErrorWithStatusCode(http.StatusInternalServerError, relaymodel.ErrorTypeUpstream, "failed to save uploaded image")
	}
	logger.Infof(ctx, "saved temp file to: %s", path)

	if width, height, format, err := image.GetImageSizeFromFile(path); err == nil {
		logger.Infof(ctx, "uploaded image %s: %dx%d %s, %d bytes", fileHeader.Filename, width, height, format, fileHeader.Size)
	} else {
		logger.Warnf(ctx, "could not decode uploaded image %s: %s", fileHeader.Filename, err.Error())
	}
	return path, nil
}
