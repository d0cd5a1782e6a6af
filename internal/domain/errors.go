package domain

import "errors"

var (
	ErrQRCodeNotFound  = errors.New("qr code not found")
	ErrQRCodeExists    = errors.New("qr code already exists")
	ErrInvalidURL      = errors.New("url is required")
	ErrInvalidFilename = errors.New("invalid qr code filename")
)
