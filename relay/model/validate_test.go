package model

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestGenerateImageRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		request GenerateImageRequest
		wantErr bool
	}{
		{"prompt only", GenerateImageRequest{Prompt: "a cat"}, false},
		{"missing prompt", GenerateImageRequest{}, true},
		{"portrait ratio", GenerateImageRequest{Prompt: "a cat", AspectRatio: strPtr("9:16")}, false},
		{"bad ratio", GenerateImageRequest{Prompt: "a cat", AspectRatio: strPtr("wide")}, true},
		{"four images", GenerateImageRequest{Prompt: "a cat", NumImages: intPtr(4)}, false},
		{"five images", GenerateImageRequest{Prompt: "a cat", NumImages: intPtr(5)}, true},
		{"zero images", GenerateImageRequest{Prompt: "a cat", NumImages: intPtr(0)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.request)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateImageRequestGetModel(t *testing.T) {
	assert.Equal(t, "fal-ai/default", (&GenerateImageRequest{}).GetModel("fal-ai/default"))
	assert.Equal(t, "fal-ai/a", (&GenerateImageRequest{Model: "fal-ai/a", ModelName: "fal-ai/b"}).GetModel("x"))
	assert.Equal(t, "fal-ai/b", (&GenerateImageRequest{ModelName: "fal-ai/b"}).GetModel("x"))
}

func TestStatusError(t *testing.T) {
	err := InvalidRequestError("bad").AsError()
	var statusErr *StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 400, statusErr.Err.StatusCode)
	assert.Equal(t, "bad", err.Error())
}
