package usecase

import (
	"context"
	"time"

	"qr-code-service/internal/domain"
)

const (
	DefaultSize = 256
	minSize     = 64
	maxSize     = 2048
)

type QRCodeUseCase struct {
	repo    domain.QRCodeRepository
	encoder domain.Encoder
}

func NewQRCodeUseCase(repo domain.QRCodeRepository, encoder domain.Encoder) *QRCodeUseCase {
	return &QRCodeUseCase{repo: repo, encoder: encoder}
}

// Create renders a QR code for url and stores it under the derived filename.
// Returns ErrQRCodeExists when the same URL was already rendered; the caller
// can recover the existing filename with domain.EncodeURL.
func (uc *QRCodeUseCase) Create(ctx context.Context, url string, size int) (*domain.QRCode, error) {
	if url == "" {
		return nil, domain.ErrInvalidURL
	}

	if size <= 0 {
		size = DefaultSize
	}
	if size < minSize {
		size = minSize
	}
	if size > maxSize {
		size = maxSize
	}

	filename := domain.EncodeURL(url)

	exists, err := uc.repo.Exists(ctx, filename)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrQRCodeExists
	}

	png, err := uc.encoder.Encode(url, size)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Save(ctx, filename, png); err != nil {
		return nil, err
	}

	return &domain.QRCode{
		Filename:  filename,
		URL:       url,
		SizeBytes: int64(len(png)),
		CreatedAt: time.Now(),
	}, nil
}

func (uc *QRCodeUseCase) List(ctx context.Context) ([]*domain.QRCode, error) {
	return uc.repo.List(ctx)
}

// Path resolves a stored QR code to a servable file path.
func (uc *QRCodeUseCase) Path(ctx context.Context, filename string) (string, error) {
	if err := domain.ValidateFilename(filename); err != nil {
		return "", err
	}
	return uc.repo.Path(ctx, filename)
}

func (uc *QRCodeUseCase) Delete(ctx context.Context, filename string) error {
	if err := domain.ValidateFilename(filename); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, filename)
}
