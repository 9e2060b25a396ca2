package model

import "mime/multipart"

type TextToVideoRequest struct {
	Prompt         string  `json:"prompt" form:"prompt" binding:"required"`
	Model          string  `json:"model,omitempty" form:"model"`
	AspectRatio    *string `json:"aspect_ratio,omitempty" form:"aspect_ratio" binding:"omitempty,aspect_ratio"`
	Duration       *string `json:"duration,omitempty" form:"duration"`
	NegativePrompt *string `json:"negative_prompt,omitempty" form:"negative_prompt"`
	EnhancePrompt  *bool   `json:"enhance_prompt,omitempty" form:"enhance_prompt"`
	Seed           *int    `json:"seed,omitempty" form:"seed"`
	Resolution     *string `json:"resolution,omitempty" form:"resolution"`
	GenerateAudio  *bool   `json:"generate_audio,omitempty" form:"generate_audio"`
}

type ImageToVideoRequest struct {
	Image           *multipart.FileHeader `form:"image" binding:"required"`
	Prompt          *string               `form:"prompt"`
	Duration        *string               `form:"duration"`
	PromptOptimizer *bool                 `form:"prompt_optimizer"`
	Model           string                `form:"model"`
}

type VideoResponse struct {
	VideoURL string `json:"video_url"`
}
