package domain

import (
	"encoding/base64"
	"strings"
	"time"
)

// FileExtension is the suffix of every stored QR code artifact.
const FileExtension = ".png"

type QRCode struct {
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

// EncodeURL derives the stored filename for a URL. The encoding is reversible
// so listings can report the original URL without a separate index.
func EncodeURL(url string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(url)) + FileExtension
}

// DecodeFilename recovers the original URL from a filename produced by EncodeURL.
func DecodeFilename(filename string) (string, error) {
	name, ok := strings.CutSuffix(filename, FileExtension)
	if !ok {
		return "", ErrInvalidFilename
	}
	raw, err := base64.RawURLEncoding.DecodeString(name)
	if err != nil {
		return "", ErrInvalidFilename
	}
	return string(raw), nil
}

// ValidateFilename rejects names that could escape the QR directory or that
// were not produced by EncodeURL. Client-supplied filenames must pass this
// before any filesystem access.
func ValidateFilename(filename string) error {
	if filename == "" || strings.ContainsAny(filename, `/\`) || strings.Contains(filename, "..") {
		return ErrInvalidFilename
	}
	_, err := DecodeFilename(filename)
	return err
}
