package controller

import (
	"errors"
	"net/http"
	"testing"

	"github.com/songquanpeng/fal-relay/common/config"
	relaymodel "github.com/songquanpeng/fal-relay/relay/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelayTextToVideo(t *testing.T) {
	t.Run("returns the video url", func(t *testing.T) {
		client := newFakeClient(t)
		client.results[config.TextToVideoModel] = videoPayload("https://cdn/v.mp4")

		w := serve(RelayTextToVideo, client, jsonRequest(t, "/api/generate-video-from-text", map[string]any{
			"prompt":   "waves at dusk",
			"duration": "8s",
		}))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "https://cdn/v.mp4", decodeBody(t, w)["video_url"])
		assert.Equal(t, map[string]any{"prompt": "waves at dusk"}, client.calls[0].arguments)
	})

	t.Run("custom model", func(t *testing.T) {
		client := newFakeClient(t)
		client.results["fal-ai/veo3"] = videoPayload("https://cdn/veo.mp4")

		w := serve(RelayTextToVideo, client, jsonRequest(t, "/api/generate-video-from-text", map[string]any{
			"prompt": "waves",
			"model":  "fal-ai/veo3",
		}))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "fal-ai/veo3", client.calls[0].modelId)
	})

	t.Run("no video in response", func(t *testing.T) {
		client := newFakeClient(t)
		client.results[config.TextToVideoModel] = &fakeHandle{payload: map[string]any{"video": map[string]any{"file_name": "v.mp4"}}}

		w := serve(RelayTextToVideo, client, jsonRequest(t, "/api/generate-video-from-text", map[string]any{"prompt": "x"}))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, noVideoResultMessage, decodeBody(t, w)["detail"])
	})

	t.Run("upstream error", func(t *testing.T) {
		client := newFakeClient(t)
		client.results[config.TextToVideoModel] = &fakeHandle{err: errors.New("weird upstream 503")}

		w := serve(RelayTextToVideo, client, jsonRequest(t, "/api/generate-video-from-text", map[string]any{"prompt": "x"}))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "weird upstream 503", body["detail"])
		assert.Equal(t, relaymodel.ErrorTypeUpstream, body["type"])
	})
}

func TestRelayImageToVideo(t *testing.T) {
	t.Run("uploads the image and returns the video url", func(t *testing.T) {
		dir := useTempDir(t)
		client := newFakeClient(t)
		client.results[config.ImageToVideoModel] = videoPayload("https://cdn/kling.mp4")

		w := serve(RelayImageToVideo, client, multipartRequest(t, "/api/generate-video-from-image", "image/png", map[string]string{
			"prompt":   "slow zoom",
			"duration": "5",
		}))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "https://cdn/kling.mp4", decodeBody(t, w)["video_url"])
		assert.Equal(t, map[string]any{"image_url": client.uploadURL, "prompt": "slow zoom"}, client.calls[0].arguments)
		assertDirEmpty(t, dir)
	})

	t.Run("image too small", func(t *testing.T) {
		dir := useTempDir(t)
		client := newFakeClient(t)
		client.results[config.ImageToVideoModel] = &fakeHandle{err: errors.New("Image dimensions are too small")}

		w := serve(RelayImageToVideo, client, multipartRequest(t, "/api/generate-video-from-image", "image/jpeg", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, relaymodel.ErrorTypeImageTooSmall, decodeBody(t, w)["type"])
		assertDirEmpty(t, dir)
	})

	t.Run("no video in response", func(t *testing.T) {
		dir := useTempDir(t)
		client := newFakeClient(t)
		client.results[config.ImageToVideoModel] = &fakeHandle{payload: map[string]any{}}

		w := serve(RelayImageToVideo, client, multipartRequest(t, "/api/generate-video-from-image", "image/jpeg", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, noImageVideoResultMessage, decodeBody(t, w)["detail"])
		assertDirEmpty(t, dir)
	})

	t.Run("invalid content type", func(t *testing.T) {
		useTempDir(t)
		client := newFakeClient(t)

		w := serve(RelayImageToVideo, client, multipartRequest(t, "/api/generate-video-from-image", "text/plain", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, client.uploads)
	})

	t.Run("missing image", func(t *testing.T) {
		client := newFakeClient(t)

		w := serve(RelayImageToVideo, client, jsonRequest(t, "/api/generate-video-from-image", map[string]any{"prompt": "x"}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, relaymodel.ErrorTypeInvalidRequest, decodeBody(t, w)["type"])
	})
}
