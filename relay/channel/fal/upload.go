package fal

import (
	"bytes"
	"context"
	"encoding/json"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/songquanpeng/fal-relay/common/logger"
)

// Upload pushes a local file to fal storage and returns its public URL.
func (c *QueueClient) Upload(ctx context.Context, filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", errors.Wrap(err, "read upload file failed")
	}
	contentType := DetectContentType(filePath, data)
	initiate, err := json.Marshal(UploadInitiateRequest{
		ContentType: contentType,
		FileName:    filepath.Base(filePath),
	})
	if err != nil {
		return "", errors.Wrap(err, "marshal upload request failed")
	}
	resp, err := c.doRequest(ctx, http.MethodPost, c.RestURL+uploadInitiatePath, bytes.NewReader(initiate), "application/json")
	if err != nil {
		return "", err
	}
	var upload UploadInitiateResponse
	if err := decodeJSONResponse(resp, &upload); err != nil {
		return "", errors.Wrap(err, "initiate upload failed")
	}
	if upload.UploadURL == "" || upload.FileURL == "" {
		return "", errors.New("fal storage returned no upload url")
	}

	// upload_url 是预签名地址，不带 Authorization
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, upload.UploadURL, bytes.NewReader(data))
	if err != nil {
		return "", errors.Wrap(err, "new upload request failed")
	}
	req.Header.Set("Content-Type", contentType)
	putResp, err := c.httpClient().Do(req)
	if err != nil {
		return "", errors.Wrap(err, "upload file failed")
	}
	defer putResp.Body.Close()
	if putResp.StatusCode < 200 || putResp.StatusCode >= 300 {
		return "", &APIError{StatusCode: putResp.StatusCode, Message: "upload to fal storage failed"}
	}
	logger.Debugf(ctx, "uploaded %s (%d bytes) to %s", filepath.Base(filePath), len(data), upload.FileURL)
	return upload.FileURL, nil
}

// DetectContentType prefers the file extension and falls back to sniffing the content.
func DetectContentType(filePath string, data []byte) string {
	if ext := filepath.Ext(filePath); ext != "" {
		if contentType := mime.TypeByExtension(ext); contentType != "" {
			return contentType
		}
	}
	if len(data) > 0 {
		return http.DetectContentType(data)
	}
	return defaultContentType
}
