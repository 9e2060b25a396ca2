package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/songquanpeng/fal-relay/common"
	"github.com/songquanpeng/fal-relay/common/config"
	"github.com/songquanpeng/fal-relay/common/logger"
	"github.com/songquanpeng/fal-relay/common/tempfile"
	"github.com/songquanpeng/fal-relay/monitor"
	"github.com/songquanpeng/fal-relay/relay/channel/fal"
	relaymodel "github.com/songquanpeng/fal-relay/relay/model"
	"github.com/songquanpeng/fal-relay/relay/util"
)

func RelayGenerateImage(c *gin.Context, client fal.Client) *relaymodel.ErrorWithStatusCode {
	meta := util.GetRelayMeta(c)
	var request relaymodel.GenerateImageRequest
	if err := common.UnmarshalBodyReusable(c, &request); err != nil {
		return bindError(err)
	}
	meta.SetModel(request.GetModel(config.ImageModel))

	ctx, cancel := upstreamContext(c)
	defer cancel()
	logger.Infof(ctx, "generating image with prompt: %s, model: %s", request.Prompt, meta.ActualModelName)

	result, err := submitAndWait(ctx, client, meta.ActualModelName, buildTextToImageArgs(&request))
	if err != nil {
		logger.Errorf(ctx, "error in image generation: %s", err.Error())
		errWithCode := *ClassifyError(err)
		if errWithCode.Type == relaymodel.ErrorTypeUpstream {
			errWithCode.Message = generateImageFailurePrefix + errWithCode.Message
		}
		return &errWithCode
	}
	if result.IsAbsent() {
		return noResultError(noImageResultMessage)
	}
	logger.Infof(ctx, "image generated by %s in %s", meta.ActualModelName, meta.Elapsed())
	writeResult(c, ctx, result, imageFile, func(url string) any {
		return relaymodel.ImageResponse{ImageURL: url}
	})
	return nil
}

// RelayRestoreImage runs the restoration model and, if it fails or returns nothing, retries
// once with the fallback model on the same uploaded image.
func RelayRestoreImage(c *gin.Context, client fal.Client) *relaymodel.ErrorWithStatusCode {
	meta := util.GetRelayMeta(c)
	var request relaymodel.RestoreImageRequest
	if err := common.UnmarshalBodyReusable(c, &request); err != nil {
		return bindError(err)
	}
	meta.SetModel(config.RestorationModel)
	meta.FallbackModelName, _ = util.GetMappedModelName(config.RestorationFallbackModel, util.GetModelMapping())

	ctx, cancel := upstreamContext(c)
	defer cancel()

	path, errWithCode := saveUploadedImage(ctx, request.Image)
	if errWithCode != nil {
		return errWithCode
	}
	defer tempfile.Remove(ctx, path)

	imageURL, err := client.Upload(ctx, path)
	if err != nil {
		logger.Errorf(ctx, "failed to upload image for restoration: %s", err.Error())
		return ClassifyError(err)
	}
	logger.Infof(ctx, "uploaded file to fal storage: %s", imageURL)

	result, err := submitAndWait(ctx, client, meta.ActualModelName, buildRestorationArgs(&request, imageURL))
	if err == nil && result.IsAbsent() {
		err = errors.New(noImageResultMessage)
	}
	if err != nil {
		logger.Warnf(ctx, "restoration with %s failed: %s, trying fallback model %s", meta.ActualModelName, err.Error(), meta.FallbackModelName)
		monitor.RecordFallback()
		result, err = submitAndWait(ctx, client, meta.FallbackModelName, map[string]any{"image_url": imageURL})
		if err == nil && result.IsAbsent() {
			err = errors.New("fallback model returned invalid output")
		}
		if err != nil {
			logger.Errorf(ctx, "fallback model also failed: %s", err.Error())
			return fallbackExhaustedError()
		}
	}
	writeResult(c, ctx, result, imageFile, func(url string) any {
		return relaymodel.RestoreImageResponse{RestoredImageURL: url}
	})
	return nil
}
