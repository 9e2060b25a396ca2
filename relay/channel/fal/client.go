package fal

import "context"

// Uploader stages a local file somewhere the upstream models can fetch it from.
type Uploader interface {
	Upload(ctx context.Context, filePath string) (string, error)
}

// Handle is a submitted request. Get blocks until the upstream result is available.
// The payload is whatever the model returned: a decoded JSON value or raw bytes.
type Handle interface {
	RequestId() string
	Get(ctx context.Context) (any, error)
}

type Client interface {
	Uploader
	Submit(ctx context.Context, modelId string, arguments map[string]any) (Handle, error)
}

type UploaderFunc func(ctx context.Context, filePath string) (string, error)

func (f UploaderFunc) Upload(ctx context.Context, filePath string) (string, error) {
	return f(ctx, filePath)
}

type clientWithUploader struct {
	Client
	uploader Uploader
}

func (c *clientWithUploader) Upload(ctx context.Context, filePath string) (string, error) {
	return c.uploader.Upload(ctx, filePath)
}

// WithUploader keeps client's submit path but stages files through uploader.
func WithUploader(client Client, uploader Uploader) Client {
	if uploader == nil {
		return client
	}
	return &clientWithUploader{Client: client, uploader: uploader}
}
