package fal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/songquanpeng/fal-relay/common/config"
	"github.com/songquanpeng/fal-relay/common/logger"
	"github.com/songquanpeng/fal-relay/relay/util"
)

// QueueClient talks to the fal queue (queue.fal.run) and storage REST APIs.
type QueueClient struct {
	Key          string
	QueueURL     string
	RestURL      string
	PollInterval time.Duration
	HTTPClient   *http.Client
}

func NewQueueClient() *QueueClient {
	return &QueueClient{
		Key:          config.FalKey,
		QueueURL:     config.FalQueueURL,
		RestURL:      config.FalRestURL,
		PollInterval: time.Duration(config.FalPollIntervalMs) * time.Millisecond,
		HTTPClient:   util.HTTPClient,
	}
}

func (c *QueueClient) GetRequestURL(modelId string) string {
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(c.QueueURL, "/"), strings.Trim(modelId, "/"))
}

func (c *QueueClient) SetupRequestHeader(req *http.Request) {
	if c.Key != "" {
		req.Header.Set("Authorization", "Key "+c.Key)
	}
	req.Header.Set("Accept", "application/json")
}

func (c *QueueClient) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *QueueClient) pollInterval() time.Duration {
	if c.PollInterval > 0 {
		return c.PollInterval
	}
	return 500 * time.Millisecond
}

func (c *QueueClient) doRequest(ctx context.Context, method, url string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, errors.Wrap(err, "new request failed")
	}
	c.SetupRequestHeader(req)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s failed", method, url)
	}
	return resp, nil
}

func (c *QueueClient) Submit(ctx context.Context, modelId string, arguments map[string]any) (Handle, error) {
	if strings.Trim(modelId, "/") == "" {
		return nil, errors.New("model id is empty")
	}
	if arguments == nil {
		arguments = map[string]any{}
	}
	jsonData, err := json.Marshal(arguments)
	if err != nil {
		return nil, errors.Wrap(err, "marshal arguments failed")
	}
	resp, err := c.doRequest(ctx, http.MethodPost, c.GetRequestURL(modelId), bytes.NewReader(jsonData), "application/json")
	if err != nil {
		return nil, err
	}
	var submitResp QueueSubmitResponse
	if err := decodeJSONResponse(resp, &submitResp); err != nil {
		return nil, err
	}
	if submitResp.RequestID == "" {
		return nil, errors.New("fal queue returned no request_id")
	}
	// 旧版队列接口不返回 status_url / response_url，按 app id 拼接
	base := c.GetRequestURL(appId(modelId)) + "/requests/" + submitResp.RequestID
	if submitResp.ResponseURL == "" {
		submitResp.ResponseURL = base
	}
	if submitResp.StatusURL == "" {
		submitResp.StatusURL = base + "/status"
	}
	logger.Debugf(ctx, "fal request submitted: model=%s, fal_request_id=%s", modelId, submitResp.RequestID)
	return &queueHandle{client: c, modelId: modelId, submit: submitResp}, nil
}

// appId keeps owner/app of a model id such as fal-ai/kling-video/v2.1/master/image-to-video.
func appId(modelId string) string {
	parts := strings.Split(strings.Trim(modelId, "/"), "/")
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, "/")
}

type queueHandle struct {
	client  *QueueClient
	modelId string
	submit  QueueSubmitResponse
}

func (h *queueHandle) RequestId() string {
	return h.submit.RequestID
}

func (h *queueHandle) Get(ctx context.Context) (any, error) {
	ticker := time.NewTicker(h.client.pollInterval())
	defer ticker.Stop()
	for {
		status, err := h.status(ctx)
		if err != nil {
			return nil, err
		}
		switch status.Status {
		case QueueStatusCompleted:
			if status.Error != "" {
				msg := status.Error
				if status.ErrorType != "" {
					msg = status.ErrorType + ": " + msg
				}
				return nil, &APIError{StatusCode: http.StatusInternalServerError, Message: msg}
			}
			if status.ResponseURL != "" {
				h.submit.ResponseURL = status.ResponseURL
			}
			return h.result(ctx)
		case QueueStatusInQueue, QueueStatusInProgress:
		default:
			logger.Debugf(ctx, "fal request %s: unexpected status %q", h.submit.RequestID, status.Status)
		}
		select {
		case <-ctx.Done():
			return nil, errors.Wrapf(ctx.Err(), "waiting for fal request %s", h.submit.RequestID)
		case <-ticker.C:
		}
	}
}

func (h *queueHandle) status(ctx context.Context) (*QueueStatusResponse, error) {
	resp, err := h.client.doRequest(ctx, http.MethodGet, h.submit.StatusURL, nil, "")
	if err != nil {
		return nil, err
	}
	var status QueueStatusResponse
	if err := decodeJSONResponse(resp, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// result returns the decoded JSON payload, or the raw bytes when the model answered with binary content.
func (h *queueHandle) result(ctx context.Context) (any, error) {
	resp, err := h.client.doRequest(ctx, http.MethodGet, h.submit.ResponseURL, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response failed")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, body)
	}
	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "json") || (contentType == "" && json.Valid(body)) {
		if len(bytes.TrimSpace(body)) == 0 {
			return nil, nil
		}
		var payload any
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, errors.Wrap(err, "decode result failed")
		}
		return payload, nil
	}
	return body, nil
}

func decodeJSONResponse(resp *http.Response, v any) error {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response failed")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.Wrapf(err, "decode response failed: %s", util.UpstreamErrorMessage(body, resp.StatusCode))
	}
	return nil
}
