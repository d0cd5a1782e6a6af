package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"qr-code-service/internal/domain"
)

// FilesystemQRCodeRepository stores one PNG per QR code under a single
// directory. The same directory is mounted read-only by the file server, so
// writes must never expose a partially written image.
type FilesystemQRCodeRepository struct {
	root string
}

func NewFilesystemQRCodeRepository(root string) (*FilesystemQRCodeRepository, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create qr code dir: %w", err)
	}
	return &FilesystemQRCodeRepository{root: root}, nil
}

func (r *FilesystemQRCodeRepository) Save(ctx context.Context, filename string, png []byte) error {
	if err := domain.ValidateFilename(filename); err != nil {
		return err
	}

	// Write-then-rename so a concurrent reader sees either nothing or the
	// complete image.
	tmp, err := os.CreateTemp(r.root, ".qr-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(png); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write qr code: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("chmod qr code: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(r.root, filename)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store qr code: %w", err)
	}
	return nil
}

func (r *FilesystemQRCodeRepository) Exists(ctx context.Context, filename string) (bool, error) {
	if err := domain.ValidateFilename(filename); err != nil {
		return false, err
	}
	info, err := os.Stat(filepath.Join(r.root, filename))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat qr code: %w", err)
	}
	return info.Mode().IsRegular(), nil
}

func (r *FilesystemQRCodeRepository) Path(ctx context.Context, filename string) (string, error) {
	if err := domain.ValidateFilename(filename); err != nil {
		return "", err
	}
	path := filepath.Join(r.root, filename)
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", domain.ErrQRCodeNotFound
	}
	if err != nil {
		return "", fmt.Errorf("stat qr code: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", domain.ErrQRCodeNotFound
	}
	return path, nil
}

func (r *FilesystemQRCodeRepository) List(ctx context.Context) ([]*domain.QRCode, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return nil, fmt.Errorf("read qr code dir: %w", err)
	}

	codes := make([]*domain.QRCode, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		url, err := domain.DecodeFilename(entry.Name())
		if err != nil {
			// Foreign files in the shared directory are not ours to report.
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		codes = append(codes, &domain.QRCode{
			Filename:  entry.Name(),
			URL:       url,
			SizeBytes: info.Size(),
			CreatedAt: info.ModTime(),
		})
	}

	sort.Slice(codes, func(i, j int) bool { return codes[i].Filename < codes[j].Filename })
	return codes, nil
}

func (r *FilesystemQRCodeRepository) Delete(ctx context.Context, filename string) error {
	if err := domain.ValidateFilename(filename); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(r.root, filename))
	if errors.Is(err, fs.ErrNotExist) {
		return domain.ErrQRCodeNotFound
	}
	if err != nil {
		return fmt.Errorf("delete qr code: %w", err)
	}
	return nil
}

// Ping verifies the QR directory is still present and writable, the
// filesystem equivalent of a database health check.
func (r *FilesystemQRCodeRepository) Ping(ctx context.Context) error {
	info, err := os.Stat(r.root)
	if err != nil {
		return fmt.Errorf("qr code dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("qr code dir %s is not a directory", r.root)
	}
	probe, err := os.CreateTemp(r.root, ".ping-*")
	if err != nil {
		return fmt.Errorf("qr code dir not writable: %w", err)
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}
