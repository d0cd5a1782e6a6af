package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "http://localhost", cfg.Server.BaseURL)
	assert.Equal(t, "qr_codes", cfg.Server.DownloadFolder)

	assert.Equal(t, "./qr_codes", cfg.QRCode.Dir)
	assert.Equal(t, "red", cfg.QRCode.FillColor)
	assert.Equal(t, "white", cfg.QRCode.BackColor)

	assert.Equal(t, 80, cfg.FileServer.Port)
	assert.Equal(t, "./qr_codes", cfg.FileServer.StaticDir)
	assert.Equal(t, "http://localhost:8000", cfg.FileServer.UpstreamURL)
	assert.Equal(t, 30*time.Second, cfg.FileServer.UpstreamTimeout)

	assert.Empty(t, cfg.Auth.Token)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("QR_CODE_DIR", "/myapp/qr_codes")
	t.Setenv("FILL_COLOR", "black")
	t.Setenv("BACK_COLOR", "yellow")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("UPSTREAM_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/myapp/qr_codes", cfg.QRCode.Dir)
	assert.Equal(t, "black", cfg.QRCode.FillColor)
	assert.Equal(t, "yellow", cfg.QRCode.BackColor)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.FileServer.UpstreamTimeout)
}

func TestLoad_BadTimeoutFallsBack(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.FileServer.UpstreamTimeout)
}
