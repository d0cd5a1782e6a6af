// Package cli implements qrctl, an admin tool operating directly on the
// shared QR code directory without going through the HTTP API.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"qr-code-service/internal/config"
	"qr-code-service/internal/qrcode"
	"qr-code-service/internal/repository"
	"qr-code-service/internal/usecase"
)

var rootCmd = &cobra.Command{
	Use:   "qrctl",
	Short: "Manage the QR code directory shared with the file server",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// mustUseCase wires the same storage and encoder as the API server, from the
// same environment variables.
func mustUseCase() *usecase.QRCodeUseCase {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	repo, err := repository.NewFilesystemQRCodeRepository(cfg.QRCode.Dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open qr code dir:", err)
		os.Exit(1)
	}
	encoder, err := qrcode.NewEncoder(cfg.QRCode.FillColor, cfg.QRCode.BackColor)
	if err != nil {
		fmt.Fprintln(os.Stderr, "init encoder:", err)
		os.Exit(1)
	}
	return usecase.NewQRCodeUseCase(repo, encoder)
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
}
