package cloudflare

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	commonConfig "github.com/songquanpeng/fal-relay/common/config"
	"github.com/songquanpeng/fal-relay/common/logger"
)

const objectPrefix = "fal-relay-uploads"

// R2Configured reports whether every CF_R2_* setting needed for uploads is present.
func R2Configured() bool {
	return commonConfig.CfFileAccessKey != "" && commonConfig.CfFileSecretKey != "" &&
		commonConfig.CfBucketFileName != "" && commonConfig.CfFileEndpoint != ""
}

// getExtensionFromMimeType 根据 MIME 类型获取文件扩展名
func getExtensionFromMimeType(mimeType string) string {
	mimeType = strings.ToLower(mimeType)
	switch {
	case strings.Contains(mimeType, "jpeg"), strings.Contains(mimeType, "jpg"):
		return ".jpg"
	case strings.Contains(mimeType, "png"):
		return ".png"
	case strings.Contains(mimeType, "webp"):
		return ".webp"
	default:
		return ".jpg"
	}
}

func detectContentType(filePath string, data []byte) string {
	if contentType := mime.TypeByExtension(filepath.Ext(filePath)); contentType != "" {
		return contentType
	}
	return http.DetectContentType(data)
}

// objectKey: fal-relay-uploads/20060102-150405-<uuid>.ext
func objectKey(now time.Time, contentType string) string {
	filename := fmt.Sprintf("%s-%s%s", now.Format("20060102-150405"), uuid.New().String(), getExtensionFromMimeType(contentType))
	return path.Join(objectPrefix, filename)
}

// publicURL 优先使用公共访问 URL（如自定义域），否则使用 Path-Style 的 endpoint 地址
func publicURL(key string) string {
	if commonConfig.CfFilePublicUrl != "" {
		return fmt.Sprintf("%s/%s", commonConfig.CfFilePublicUrl, key)
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(commonConfig.CfFileEndpoint, "/"), commonConfig.CfBucketFileName, key)
}

func newS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("auto"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			commonConfig.CfFileAccessKey, commonConfig.CfFileSecretKey, "")),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create AWS config")
	}
	// Path-Style 避免虚拟主机风格的子域名 TLS 问题
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(commonConfig.CfFileEndpoint)
		o.UsePathStyle = true
	}), nil
}

// UploadFileToR2 uploads a local file and returns its public URL.
func UploadFileToR2(ctx context.Context, filePath string) (string, error) {
	if !R2Configured() {
		return "", errors.New("R2 configuration is incomplete")
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", errors.Wrap(err, "failed to read upload file")
	}
	contentType := detectContentType(filePath, data)
	key := objectKey(time.Now(), contentType)

	client, err := newS3Client(ctx)
	if err != nil {
		return "", err
	}
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(commonConfig.CfBucketFileName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload to R2")
	}

	resultUrl := publicURL(key)
	logger.Infof(ctx, "image uploaded to R2: %s (size: %d bytes)", resultUrl, len(data))
	return resultUrl, nil
}
