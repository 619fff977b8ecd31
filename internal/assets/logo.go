// Package assets loads the optional company logo for embedding in rendered
// invoices.
package assets

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
)

// maxLogoBytes caps logo files; anything bigger bloats every rendered
// document since the image is inlined.
const maxLogoBytes = 2 << 20

// LoadLogo reads an image file and returns it as a data URI suitable for an
// <img src>. The content type is sniffed from the file bytes.
func LoadLogo(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("read logo: %w", err)
	}
	if info.Size() > maxLogoBytes {
		return "", fmt.Errorf("logo %s is too large (%d bytes, max %d)", path, info.Size(), maxLogoBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read logo: %w", err)
	}

	contentType := http.DetectContentType(data)
	switch contentType {
	case "image/png", "image/jpeg", "image/gif", "image/webp":
	default:
		return "", fmt.Errorf("logo %s is not a supported image (%s)", path, contentType)
	}

	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
}
