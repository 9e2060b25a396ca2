package image

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	_ "golang.org/x/image/webp"
)

// AllowedContentTypes are the upload content types accepted at the HTTP boundary.
var AllowedContentTypes = []string{"image/jpeg", "image/png", "image/jpg"}

const InvalidFormatMessage = "Invalid file format. Only JPEG, PNG, and JPG are allowed."

func IsValidContentType(contentType string) bool {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	for _, allowed := range AllowedContentTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}

// GetImageSize decodes only the image header.
func GetImageSize(r io.Reader) (width int, height int, format string, err error) {
	config, format, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0, "", err
	}
	return config.Width, config.Height, format, nil
}

func GetImageSizeFromFile(path string) (width int, height int, format string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, "", err
	}
	defer f.Close()
	return GetImageSize(f)
}
