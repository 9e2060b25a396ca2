package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/songquanpeng/fal-relay/common/config"
	"github.com/songquanpeng/fal-relay/relay/channel/fal"
	relaymodel "github.com/songquanpeng/fal-relay/relay/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeHandle struct {
	payload any
	err     error
}

func (h *fakeHandle) RequestId() string {
	return "fake-request"
}

func (h *fakeHandle) Get(ctx context.Context) (any, error) {
	return h.payload, h.err
}

type submitCall struct {
	modelId   string
	arguments map[string]any
}

type fakeClient struct {
	mu         sync.Mutex
	t          *testing.T
	uploadURL  string
	uploadErr  error
	results    map[string]*fakeHandle
	submitErrs map[string]error
	uploads    []string
	calls      []submitCall
}

func newFakeClient(t *testing.T) *fakeClient {
	return &fakeClient{
		t:          t,
		uploadURL:  "https://v3.fal.media/files/upload.jpg",
		results:    map[string]*fakeHandle{},
		submitErrs: map[string]error{},
	}
}

func (f *fakeClient) Upload(ctx context.Context, filePath string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, err := os.Stat(filePath)
	assert.NoError(f.t, err, "uploaded file should exist during upload")
	f.uploads = append(f.uploads, filePath)
	return f.uploadURL, f.uploadErr
}

func (f *fakeClient) Submit(ctx context.Context, modelId string, arguments map[string]any) (fal.Handle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, submitCall{modelId: modelId, arguments: arguments})
	if err := f.submitErrs[modelId]; err != nil {
		return nil, err
	}
	if handle, ok := f.results[modelId]; ok {
		return handle, nil
	}
	return &fakeHandle{}, nil
}

type relayFunc func(c *gin.Context, client fal.Client) *relaymodel.ErrorWithStatusCode

func serve(handler relayFunc, client fal.Client, req *http.Request) *httptest.ResponseRecorder {
	engine := gin.New()
	engine.POST("/api/:endpoint", func(c *gin.Context) {
		if errWithCode := handler(c, client); errWithCode != nil {
			c.JSON(errWithCode.StatusCode, gin.H{"detail": errWithCode.Message, "type": errWithCode.Type})
		}
	})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func jsonRequest(t *testing.T, path string, body any) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func multipartRequest(t *testing.T, path string, contentType string, fields map[string]string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="image"; filename="photo.png"`)
	h.Set("Content-Type", contentType)
	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(pngBytes(t))
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// useTempDir points temp files at a fresh directory so tests can check nothing is left behind.
func useTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev := config.TempDir
	config.TempDir = dir
	t.Cleanup(func() { config.TempDir = prev })
	return dir
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp files left behind")
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func urlPayload(url string) *fakeHandle {
	return &fakeHandle{payload: map[string]any{"images": []any{map[string]any{"url": url}}}}
}

func videoPayload(url string) *fakeHandle {
	return &fakeHandle{payload: map[string]any{"video": map[string]any{"url": url}}}
}
