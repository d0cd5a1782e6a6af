package domain

import "context"

// QRCodeRepository stores rendered QR code images. The canonical
// implementation is a shared directory also mounted by the file server, so
// filenames are the only keys.
type QRCodeRepository interface {
	Save(ctx context.Context, filename string, png []byte) error
	Exists(ctx context.Context, filename string) (bool, error)
	Path(ctx context.Context, filename string) (string, error)
	List(ctx context.Context) ([]*QRCode, error)
	Delete(ctx context.Context, filename string) error
	Ping(ctx context.Context) error
}

// Encoder renders content into a PNG image of the given edge length in pixels.
type Encoder interface {
	Encode(content string, size int) ([]byte, error)
}
