package qrcode

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G'}

func TestEncoderEncode(t *testing.T) {
	enc, err := NewEncoder("red", "white")
	require.NoError(t, err)

	png, err := enc.Encode("https://example.com", 256)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngSignature))
}

func TestNewEncoder_InvalidColor(t *testing.T) {
	_, err := NewEncoder("crimsonish", "white")
	assert.Error(t, err)

	_, err = NewEncoder("red", "#12345")
	assert.Error(t, err)
}

func TestParseColor_Names(t *testing.T) {
	c, err := ParseColor("red")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xff, 0x00, 0x00, 0xff}, c)

	c, err = ParseColor(" White ")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, c)
}

func TestParseColor_Hex(t *testing.T) {
	c, err := ParseColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xff, 0x80, 0x00, 0xff}, c)

	c, err = ParseColor("#f80")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xff, 0x88, 0x00, 0xff}, c)
}

func TestParseColor_Invalid(t *testing.T) {
	for _, s := range []string{"", "notacolor", "#zzzzzz", "#12"} {
		_, err := ParseColor(s)
		assert.Error(t, err, "color %q", s)
	}
}
