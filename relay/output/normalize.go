// Package output turns whatever a fal model returned into a single URL or local file.
package output

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/songquanpeng/fal-relay/common/logger"
	"github.com/songquanpeng/fal-relay/common/tempfile"
)

type Kind int

const (
	Absent Kind = iota
	URL
	FilePath
)

func (k Kind) String() string {
	switch k {
	case URL:
		return "url"
	case FilePath:
		return "file"
	default:
		return "absent"
	}
}

type Result struct {
	Kind  Kind
	Value string
}

func (r Result) IsAbsent() bool {
	return r.Kind == Absent
}

var absent = Result{Kind: Absent}

// Parse extracts the result from an upstream payload. It never fails: anything it cannot
// interpret is Absent. Byte payloads are written to a temp .jpg file that the caller removes.
func Parse(payload any) Result {
	return ParseWithContext(context.Background(), payload)
}

func ParseWithContext(ctx context.Context, payload any) Result {
	switch v := payload.(type) {
	case nil:
		return absent
	case []byte:
		return persist(ctx, bytes.NewReader(v))
	case io.Reader:
		return persist(ctx, v)
	case string:
		return parseString(v)
	case []any:
		return scanList(v)
	case map[string]any:
		return parseMap(v)
	}
	return absent
}

func persist(ctx context.Context, r io.Reader) Result {
	path, err := tempfile.Write(r, tempfile.ImageSuffix)
	if err != nil {
		logger.Errorf(ctx, "failed to persist upstream bytes: %s", err.Error())
		return absent
	}
	return Result{Kind: FilePath, Value: path}
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func parseString(s string) Result {
	s = strings.TrimSpace(s)
	if isHTTPURL(s) {
		return Result{Kind: URL, Value: s}
	}
	return absent
}

// scanList returns the first element that is an http(s) string or a map holding a url.
// The url of a map element is returned untrimmed.
func scanList(items []any) Result {
	for _, item := range items {
		switch v := item.(type) {
		case string:
			if r := parseString(v); !r.IsAbsent() {
				return r
			}
		case map[string]any:
			if u, ok := v["url"].(string); ok {
				return Result{Kind: URL, Value: u}
			}
		}
	}
	return absent
}

func urlOf(v any) (string, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	u, ok := m["url"].(string)
	return u, ok
}

func parseMap(m map[string]any) Result {
	if images, ok := m["images"].([]any); ok && len(images) > 0 {
		if u, ok := urlOf(images[0]); ok {
			return Result{Kind: URL, Value: u}
		}
	}
	if u, ok := urlOf(m["video"]); ok {
		return Result{Kind: URL, Value: u}
	}
	nested, ok := m["output"]
	if !ok || isEmpty(nested) {
		nested = m["url"]
	}
	switch v := nested.(type) {
	case string:
		return parseString(v)
	case []any:
		return scanList(v)
	}
	return absent
}

func isEmpty(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	case bool:
		return !v
	case float64:
		return v == 0
	}
	return false
}
