package common

import (
	"bytes"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const KeyRequestBody = "key_request_body"

func GetRequestBody(c *gin.Context) ([]byte, error) {
	requestBody, _ := c.Get(KeyRequestBody)
	if requestBody != nil {
		return requestBody.([]byte), nil
	}
	requestBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	_ = c.Request.Body.Close()
	c.Set(KeyRequestBody, requestBody)
	return requestBody.([]byte), nil
}

func UnmarshalBodyReusable(c *gin.Context, v any) error {
	contentType := c.Request.Header.Get("Content-Type")

	// multipart 含文件，直接绑定，不缓存请求体
	if strings.HasPrefix(contentType, "multipart/form-data") {
		return c.ShouldBindWith(v, binding.FormMultipart)
	}

	requestBody, err := GetRequestBody(c)
	if err != nil {
		return err
	}

	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") {
		c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		return c.ShouldBindWith(v, binding.Form)
	}

	// 没有 Content-Type 或 application/json 都按 JSON 处理
	c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
	return c.ShouldBindJSON(v)
}
