package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"qr-code-service/internal/domain"
	"qr-code-service/internal/usecase"
)

var generateCmd = &cobra.Command{
	Use:   "generate <url>",
	Short: "Render a QR code PNG into the shared directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, _ := cmd.Flags().GetInt("size")
		uc := mustUseCase()

		qr, err := uc.Create(cmd.Context(), args[0], size)
		if errors.Is(err, domain.ErrQRCodeExists) {
			fmt.Println("Already exists:", domain.EncodeURL(args[0]))
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Println("Wrote:", qr.Filename)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored QR codes and their URLs",
	RunE: func(cmd *cobra.Command, args []string) error {
		uc := mustUseCase()
		codes, err := uc.List(cmd.Context())
		if err != nil {
			return err
		}
		for _, qr := range codes {
			fmt.Printf("%s\t%d\t%s\n", qr.Filename, qr.SizeBytes, qr.URL)
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <filename>",
	Short: "Remove a stored QR code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		uc := mustUseCase()
		if err := uc.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted:", args[0])
		return nil
	},
}

func init() {
	generateCmd.Flags().Int("size", usecase.DefaultSize, "image edge length in pixels")
}
