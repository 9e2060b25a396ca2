package model

import "mime/multipart"

type GenerateImageRequest struct {
	Prompt         string  `json:"prompt" form:"prompt" binding:"required"`
	NegativePrompt *string `json:"negative_prompt,omitempty" form:"negative_prompt"`
	AspectRatio    *string `json:"aspect_ratio,omitempty" form:"aspect_ratio" binding:"omitempty,aspect_ratio"`
	NumImages      *int    `json:"num_images,omitempty" form:"num_images" binding:"omitempty,min=1,max=4"`
	Seed           *int    `json:"seed,omitempty" form:"seed"`
	Model          string  `json:"model,omitempty" form:"model"`
	// ModelName 兼容旧客户端字段
	ModelName string `json:"model_name,omitempty" form:"model_name"`
}

func (r *GenerateImageRequest) GetModel(defaultModel string) string {
	if r.Model != "" {
		return r.Model
	}
	if r.ModelName != "" {
		return r.ModelName
	}
	return defaultModel
}

type RestoreImageRequest struct {
	Image             *multipart.FileHeader `form:"image" binding:"required"`
	GuidanceScale     *float64              `form:"guidance_scale" binding:"omitempty,gt=0"`
	NumInferenceSteps *int                  `form:"num_inference_steps" binding:"omitempty,min=1"`
	SafetyTolerance   *string               `form:"safety_tolerance" binding:"omitempty,oneof=1 2 3 4 5 6"`
	OutputFormat      *string               `form:"output_format" binding:"omitempty,oneof=jpeg png"`
	AspectRatio       *string               `form:"aspect_ratio" binding:"omitempty,aspect_ratio"`
	Seed              *int                  `form:"seed"`
	SyncMode          *bool                 `form:"sync_mode"`
}

type ImageResponse struct {
	ImageURL string `json:"image_url"`
}

type RestoreImageResponse struct {
	RestoredImageURL string `json:"restored_image_url"`
}
