package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/songquanpeng/fal-relay/common"
	"github.com/songquanpeng/fal-relay/common/config"
	"github.com/songquanpeng/fal-relay/common/logger"
	"github.com/songquanpeng/fal-relay/common/tempfile"
	"github.com/songquanpeng/fal-relay/relay/channel/fal"
	relaymodel "github.com/songquanpeng/fal-relay/relay/model"
	"github.com/songquanpeng/fal-relay/relay/util"
)

func RelayTextToVideo(c *gin.Context, client fal.Client) *relaymodel.ErrorWithStatusCode {
	meta := util.GetRelayMeta(c)
	var request relaymodel.TextToVideoRequest
	if err := common.UnmarshalBodyReusable(c, &request); err != nil {
		return bindError(err)
	}
	if request.Model == "" {
		request.Model = config.TextToVideoModel
	}
	meta.SetModel(request.Model)

	ctx, cancel := upstreamContext(c)
	defer cancel()
	logger.Infof(ctx, "generating video with prompt: %s, model: %s", request.Prompt, meta.ActualModelName)

	result, err := submitAndWait(ctx, client, meta.ActualModelName, buildTextToVideoArgs(&request))
	if err != nil {
		logger.Errorf(ctx, "video generation error: %s", err.Error())
		return ClassifyError(err)
	}
	if result.IsAbsent() {
		return noResultError(noVideoResultMessage)
	}
	logger.Infof(ctx, "video generated by %s in %s", meta.ActualModelName, meta.Elapsed())
	writeResult(c, ctx, result, videoFile, func(url string) any {
		return relaymodel.VideoResponse{VideoURL: url}
	})
	return nil
}

func RelayImageToVideo(c *gin.Context, client fal.Client) *relaymodel.ErrorWithStatusCode {
	meta := util.GetRelayMeta(c)
	var request relaymodel.ImageToVideoRequest
	if err := common.UnmarshalBodyReusable(c, &request); err != nil {
		return bindError(err)
	}
	if request.Model == "" {
		request.Model = config.ImageToVideoModel
	}
	meta.SetModel(request.Model)

	ctx, cancel := upstreamContext(c)
	defer cancel()

	path, errWithCode := saveUploadedImage(ctx, request.Image)
	if errWithCode != nil {
		return errWithCode
	}
	defer tempfile.Remove(ctx, path)

	imageURL, err := client.Upload(ctx, path)
	if err != nil {
		logger.Errorf(ctx, "failed to upload image for video generation: %s", err.Error())
		return ClassifyError(err)
	}
	logger.Infof(ctx, "uploaded image url: %s", imageURL)

	result, err := submitAndWait(ctx, client, meta.ActualModelName, buildImageToVideoArgs(&request, imageURL))
	if err != nil {
		logger.Errorf(ctx, "image to video generation error: %s", err.Error())
		return ClassifyError(err)
	}
	if result.IsAbsent() {
		return noResultError(noImageVideoResultMessage)
	}
	logger.Infof(ctx, "video generated by %s in %s", meta.ActualModelName, meta.Elapsed())
	writeResult(c, ctx, result, videoFile, func(url string) any {
		return relaymodel.VideoResponse{VideoURL: url}
	})
	return nil
}
