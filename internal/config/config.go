package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	QRCode     QRCodeConfig
	FileServer FileServerConfig
	Auth       AuthConfig
	Logger     LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int

	// BaseURL and DownloadFolder form the public download links, pointing at
	// the file server rather than this process.
	BaseURL        string
	DownloadFolder string
}

type QRCodeConfig struct {
	Dir       string
	FillColor string
	BackColor string
}

type FileServerConfig struct {
	Host            string
	Port            int
	StaticDir       string
	UpstreamURL     string
	UpstreamTimeout time.Duration
}

type AuthConfig struct {
	Token string
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8000)
	v.SetDefault("SERVER_BASE_URL", "http://localhost")
	v.SetDefault("DOWNLOAD_FOLDER", "qr_codes")
	v.SetDefault("QR_CODE_DIR", "./qr_codes")
	v.SetDefault("FILL_COLOR", "red")
	v.SetDefault("BACK_COLOR", "white")
	v.SetDefault("FILESERVER_HOST", "0.0.0.0")
	v.SetDefault("FILESERVER_PORT", 80)
	v.SetDefault("STATIC_DIR", "./qr_codes")
	v.SetDefault("UPSTREAM_URL", "http://localhost:8000")
	v.SetDefault("UPSTREAM_TIMEOUT", "30s")
	v.SetDefault("AUTH_TOKEN", "")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	timeout, err := time.ParseDuration(v.GetString("UPSTREAM_TIMEOUT"))
	if err != nil {
		timeout = 30 * time.Second
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:           v.GetString("SERVER_HOST"),
			Port:           v.GetInt("SERVER_PORT"),
			BaseURL:        v.GetString("SERVER_BASE_URL"),
			DownloadFolder: v.GetString("DOWNLOAD_FOLDER"),
		},
		QRCode: QRCodeConfig{
			Dir:       v.GetString("QR_CODE_DIR"),
			FillColor: v.GetString("FILL_COLOR"),
			BackColor: v.GetString("BACK_COLOR"),
		},
		FileServer: FileServerConfig{
			Host:            v.GetString("FILESERVER_HOST"),
			Port:            v.GetInt("FILESERVER_PORT"),
			StaticDir:       v.GetString("STATIC_DIR"),
			UpstreamURL:     v.GetString("UPSTREAM_URL"),
			UpstreamTimeout: timeout,
		},
		Auth: AuthConfig{
			Token: v.GetString("AUTH_TOKEN"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}
