package fetch

import (
	"bytes"
	"strings"

	"github.com/willert-dev/memoria/pkg/model"
)

// contentTypeExtensions maps substrings of the response content type to file
// extensions, checked in order.
var contentTypeExtensions = []struct {
	match     string
	extension string
}{
	{match: "jpeg", extension: "jpg"},
	{match: "jpg", extension: "jpg"},
	{match: "png", extension: "png"},
	{match: "heic", extension: "heic"},
	{match: "mp4", extension: "mp4"},
	{match: "quicktime", extension: "mov"},
	{match: "mov", extension: "mov"},
	{match: "webp", extension: "webp"},
}

// DetectExtension classifies a payload. Detection order: content-type header,
// then magic numbers in the first bytes, then a fallback based on the
// record's media kind.
func DetectExtension(contentType string, data []byte, kind model.MediaKind) string {
	if ext, ok := extensionFromContentType(contentType); ok {
		return ext
	}
	if ext, ok := extensionFromMagicBytes(data); ok {
		return ext
	}
	if kind == model.MediaKindVideo {
		return "mp4"
	}
	return "jpg"
}

func extensionFromContentType(contentType string) (string, bool) {
	normalized := strings.ToLower(contentType)
	if normalized == "" {
		return "", false
	}
	for _, entry := range contentTypeExtensions {
		if strings.Contains(normalized, entry.match) {
			return entry.extension, true
		}
	}
	return "", false
}

// extensionFromMagicBytes inspects the first 12 bytes of the payload.
func extensionFromMagicBytes(data []byte) (string, bool) {
	if len(data) >= 3 && bytes.Equal(data[:3], []byte{0xFF, 0xD8, 0xFF}) {
		return "jpg", true
	}
	if len(data) >= 4 && bytes.Equal(data[:4], []byte{0x89, 0x50, 0x4E, 0x47}) {
		return "png", true
	}
	if len(data) >= 8 && bytes.Equal(data[4:8], []byte("ftyp")) {
		// ISO base media container; heic/mif1 brands are stills.
		if len(data) >= 12 {
			brand := string(data[8:12])
			if brand == "heic" || brand == "mif1" {
				return "heic", true
			}
		}
		return "mp4", true
	}
	return "", false
}
