package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/songquanpeng/fal-relay/common/logger"
	"github.com/songquanpeng/fal-relay/controller"
	"github.com/songquanpeng/fal-relay/middleware"
	"github.com/songquanpeng/fal-relay/relay/channel/fal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHandle struct {
	payload any
}

func (h stubHandle) RequestId() string {
	return "stub"
}

func (h stubHandle) Get(ctx context.Context) (any, error) {
	return h.payload, nil
}

type stubClient struct {
	payload any
}

func (s stubClient) Upload(ctx context.Context, filePath string) (string, error) {
	return "https://v3.fal.media/files/stub.jpg", nil
}

func (s stubClient) Submit(ctx context.Context, modelId string, arguments map[string]any) (fal.Handle, error) {
	return stubHandle{payload: s.payload}, nil
}

func newTestServer(t *testing.T, client fal.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	prev := controller.NewUpstreamClient
	controller.NewUpstreamClient = func() fal.Client { return client }
	t.Cleanup(func() { controller.NewUpstreamClient = prev })

	server := gin.New()
	server.Use(middleware.RequestId())
	SetRouter(server)
	return server
}

func TestHealth(t *testing.T) {
	server := newTestServer(t, stubClient{})
	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestStatus(t *testing.T) {
	server := newTestServer(t, stubClient{})
	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Models map[string]string `json:"models"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Data.Models["image"])
}

func TestRelayRoute(t *testing.T) {
	server := newTestServer(t, stubClient{payload: map[string]any{"images": []any{map[string]any{"url": "https://cdn/a.png"}}}})
	req := httptest.NewRequest(http.MethodPost, "/api/generate-image", bytes.NewBufferString(`{"prompt":"a fox"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"image_url":"https://cdn/a.png"}`, w.Body.String())
}

func TestRelayErrorBody(t *testing.T) {
	server := newTestServer(t, stubClient{payload: map[string]any{}})
	req := httptest.NewRequest(http.MethodPost, "/api/generate-video-from-text", bytes.NewBufferString(`{"prompt":"waves"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(logger.RequestIdKey, "rid-1")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{
		"detail": "No video URL found in response from the video generation service",
		"type": "no_result",
		"request_id": "rid-1"
	}`, w.Body.String())
}

func TestNotFound(t *testing.T) {
	server := newTestServer(t, stubClient{})
	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid URL (GET /api/unknown)")
}

func TestSwaggerDoc(t *testing.T) {
	server := newTestServer(t, stubClient{})
	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Contains(t, doc["paths"], "/api/restore-image")
}
