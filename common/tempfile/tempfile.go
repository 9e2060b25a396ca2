package tempfile

import (
	"context"
	"io"
	"os"

	"github.com/songquanpeng/fal-relay/common/config"
	"github.com/songquanpeng/fal-relay/common/logger"
)

// ImageSuffix is the fixed extension given to uploaded images and binary upstream results.
const ImageSuffix = ".jpg"

func Dir() string {
	if config.TempDir != "" {
		return config.TempDir
	}
	return os.TempDir()
}

// Write copies r into a new temp file and returns its path. On failure nothing is left behind.
func Write(r io.Reader, suffix string) (string, error) {
	f, err := os.CreateTemp(Dir(), "fal-relay-*"+suffix)
	if err != nil {
		return "", err
	}
	path := f.Name()
	if _, err = io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}

// Remove deletes path. Failures are logged and never returned.
func Remove(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return
		}
		logger.Warnf(ctx, "error cleaning up temp file %s: %s", path, err.Error())
		return
	}
	logger.Debugf(ctx, "cleaned up temp file: %s", path)
}
