package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"qr-code-service/internal/domain"
)

// MockQRCodeRepo is a mock of QRCodeRepository.
type MockQRCodeRepo struct {
	mock.Mock
}

func (m *MockQRCodeRepo) Save(ctx context.Context, filename string, png []byte) error {
	args := m.Called(ctx, filename, png)
	return args.Error(0)
}

func (m *MockQRCodeRepo) Exists(ctx context.Context, filename string) (bool, error) {
	args := m.Called(ctx, filename)
	return args.Bool(0), args.Error(1)
}

func (m *MockQRCodeRepo) Path(ctx context.Context, filename string) (string, error) {
	args := m.Called(ctx, filename)
	return args.String(0), args.Error(1)
}

func (m *MockQRCodeRepo) List(ctx context.Context) ([]*domain.QRCode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.QRCode), args.Error(1)
}

func (m *MockQRCodeRepo) Delete(ctx context.Context, filename string) error {
	args := m.Called(ctx, filename)
	return args.Error(0)
}

func (m *MockQRCodeRepo) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockEncoder is a mock of Encoder.
type MockEncoder struct {
	mock.Mock
}

func (m *MockEncoder) Encode(content string, size int) ([]byte, error) {
	args := m.Called(content, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
