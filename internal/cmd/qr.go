package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ton-community/wallets-list/internal/config"
	"github.com/ton-community/wallets-list/registry"
)

type qrFlags struct {
	input     string
	outputDir string
	size      int
}

// NewQRCmd creates the command that exports connect-link QR codes.
func NewQRCmd() *cobra.Command {
	flags := &qrFlags{}

	cmd := &cobra.Command{
		Use:   "qr",
		Short: "Export a QR code for every wallet's universal link",
		Long: `Renders a scannable PNG of every wallet's universal_url, named after
the wallet's derived icon filename. Wallets without a universal link
are skipped.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQR(cmd, flags)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "wallets-v2.json", "Path to the wallets list (falls back to WALLETS_FILE)")
	cmd.Flags().StringVar(&flags.outputDir, "output-dir", "qr", "Directory for the QR code PNGs")
	cmd.Flags().IntVar(&flags.size, "size", 256, "Side length of the QR code PNGs in pixels")

	return cmd
}

func runQR(cmd *cobra.Command, flags *qrFlags) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	wallets, err := registry.LoadWallets(walletsInputPath(cmd, flags.input, cfg))
	if err != nil {
		return err
	}

	written, err := registry.ExportQRCodes(wallets, flags.outputDir, flags.size)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"codes": written,
		"path":  flags.outputDir,
	}).Info("exported connect-link QR codes")

	return nil
}
