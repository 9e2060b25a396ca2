package controller

import (
	relaymodel "github.com/songquanpeng/fal-relay/relay/model"
)

// Optional parameters equal to the upstream default are left out of the arguments.
const (
	defaultAspectRatio      = "1:1"
	defaultNumImages        = 1
	defaultGuidanceScale    = 3.5
	defaultInferenceSteps   = 30
	defaultSafetyTolerance  = "2"
	defaultOutputFormat     = "jpeg"
	defaultVideoAspectRatio = "16:9"
	defaultVideoDuration    = "8s"
	defaultVideoResolution  = "720p"
	defaultImageToVideoSecs = "5"
)

func buildTextToImageArgs(request *relaymodel.GenerateImageRequest) map[string]any {
	args := map[string]any{"prompt": request.Prompt}
	if request.NegativePrompt != nil && *request.NegativePrompt != "" {
		args["negative_prompt"] = *request.NegativePrompt
	}
	if request.AspectRatio != nil && *request.AspectRatio != defaultAspectRatio {
		args["aspect_ratio"] = *request.AspectRatio
	}
	if request.NumImages != nil && *request.NumImages != defaultNumImages {
		args["num_images"] = *request.NumImages
	}
	if request.Seed != nil {
		args["seed"] = *request.Seed
	}
	return args
}

func buildRestorationArgs(request *relaymodel.RestoreImageRequest, imageURL string) map[string]any {
	args := map[string]any{"image_url": imageURL}
	if request.GuidanceScale != nil && *request.GuidanceScale != defaultGuidanceScale {
		args["guidance_scale"] = *request.GuidanceScale
	}
	if request.NumInferenceSteps != nil && *request.NumInferenceSteps != defaultInferenceSteps {
		args["num_inference_steps"] = *request.NumInferenceSteps
	}
	if request.SafetyTolerance != nil && *request.SafetyTolerance != defaultSafetyTolerance {
		args["safety_tolerance"] = *request.SafetyTolerance
	}
	if request.OutputFormat != nil && *request.OutputFormat != defaultOutputFormat {
		args["output_format"] = *request.OutputFormat
	}
	if request.AspectRatio != nil {
		args["aspect_ratio"] = *request.AspectRatio
	}
	if request.Seed != nil {
		args["seed"] = *request.Seed
	}
	if request.SyncMode != nil && *request.SyncMode {
		args["sync_mode"] = true
	}
	return args
}

func buildTextToVideoArgs(request *relaymodel.TextToVideoRequest) map[string]any {
	args := map[string]any{"prompt": request.Prompt}
	if request.AspectRatio != nil && *request.AspectRatio != defaultVideoAspectRatio {
		args["aspect_ratio"] = *request.AspectRatio
	}
	if request.Duration != nil && *request.Duration != defaultVideoDuration {
		args["duration"] = *request.Duration
	}
	if request.NegativePrompt != nil {
		args["negative_prompt"] = *request.NegativePrompt
	}
	if request.EnhancePrompt != nil && !*request.EnhancePrompt {
		args["enhance_prompt"] = false
	}
	if request.Seed != nil {
		args["seed"] = *request.Seed
	}
	if request.Resolution != nil && *request.Resolution != defaultVideoResolution {
		args["resolution"] = *request.Resolution
	}
	if request.GenerateAudio != nil && !*request.GenerateAudio {
		args["generate_audio"] = false
	}
	return args
}

func buildImageToVideoArgs(request *relaymodel.ImageToVideoRequest, imageURL string) map[string]any {
	args := map[string]any{"image_url": imageURL}
	if request.Prompt != nil && *request.Prompt != "" {
		args["prompt"] = *request.Prompt
	}
	if request.Duration != nil && *request.Duration != defaultImageToVideoSecs {
		args["duration"] = *request.Duration
	}
	if request.PromptOptimizer != nil && !*request.PromptOptimizer {
		args["prompt_optimizer"] = false
	}
	return args
}
