package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	urls := []string{
		"https://example.com",
		"https://example.com/path?q=1&r=2",
		"http://localhost:8000",
		"https://example.com/ünïcode",
	}

	for _, url := range urls {
		filename := EncodeURL(url)
		assert.True(t, len(filename) > len(FileExtension))

		decoded, err := DecodeFilename(filename)
		assert.NoError(t, err)
		assert.Equal(t, url, decoded)
	}
}

func TestDecodeFilename_MissingExtension(t *testing.T) {
	_, err := DecodeFilename("aGVsbG8")
	assert.ErrorIs(t, err, ErrInvalidFilename)
}

func TestDecodeFilename_NotBase64(t *testing.T) {
	_, err := DecodeFilename("not/base64!.png")
	assert.ErrorIs(t, err, ErrInvalidFilename)
}

func TestValidateFilename(t *testing.T) {
	assert.NoError(t, ValidateFilename(EncodeURL("https://example.com")))

	bad := []string{
		"",
		"../../etc/passwd",
		"sub/dir.png",
		`sub\dir.png`,
		"plain.png",
		"noextension",
	}
	for _, name := range bad {
		assert.ErrorIs(t, ValidateFilename(name), ErrInvalidFilename, "filename %q", name)
	}
}
