package assets

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// IsDataURL reports whether ref is a self-contained encoded image payload as
// opposed to a stored public URL. The upload step passes URL-form references
// through untouched.
func IsDataURL(ref string) bool {
	return strings.HasPrefix(ref, "data:image")
}

// EncodeDataURL wraps raw image bytes in a transportable data URL.
func EncodeDataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL extracts the binary payload from a data URL produced by
// EncodeDataURL (or by any standards-shaped base64 data URL).
func DecodeDataURL(ref string) ([]byte, error) {
	idx := strings.IndexByte(ref, ',')
	if !IsDataURL(ref) || idx < 0 {
		return nil, fmt.Errorf("not an image data URL")
	}
	data, err := base64.StdEncoding.DecodeString(ref[idx+1:])
	if err != nil {
		return nil, fmt.Errorf("decode image payload: %w", err)
	}
	return data, nil
}
