// Package qrcode renders URL payloads into PNG images with configurable
// fill and background colors.
package qrcode

import (
	"fmt"
	"image/color"

	qr "github.com/skip2/go-qrcode"
)

type Encoder struct {
	fill color.Color
	back color.Color
}

// NewEncoder builds an encoder from color names or hex values, typically the
// FILL_COLOR and BACK_COLOR settings.
func NewEncoder(fillColor, backColor string) (*Encoder, error) {
	fill, err := ParseColor(fillColor)
	if err != nil {
		return nil, fmt.Errorf("fill color: %w", err)
	}
	back, err := ParseColor(backColor)
	if err != nil {
		return nil, fmt.Errorf("back color: %w", err)
	}
	return &Encoder{fill: fill, back: back}, nil
}

// Encode renders content as a size x size pixel PNG.
func (e *Encoder) Encode(content string, size int) ([]byte, error) {
	q, err := qr.New(content, qr.Medium)
	if err != nil {
		return nil, fmt.Errorf("build qr code: %w", err)
	}
	q.ForegroundColor = e.fill
	q.BackgroundColor = e.back
	return q.PNG(size)
}
