package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ton-community/wallets-list/internal/config"
	"github.com/ton-community/wallets-list/registry"
)

type checkAssetsFlags struct {
	input     string
	assetsDir string
}

// NewCheckAssetsCmd creates the command that verifies the committed
// wallet icons against the registry.
func NewCheckAssetsCmd() *cobra.Command {
	flags := &checkAssetsFlags{}

	cmd := &cobra.Command{
		Use:   "check-assets",
		Short: "Verify the committed wallet icons against the registry",
		Long: `Verifies that every wallet's derived icon exists in the assets
directory as a valid 288x288 PNG and that no stray files are left
behind. Set SKIP_PNG_SIZE_CHECK to accept any dimensions and
SKIP_EXTRA_IMAGES_CHECK to downgrade stray files to warnings.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheckAssets(cmd, flags)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "wallets-v2.json", "Path to the wallets list (falls back to WALLETS_FILE)")
	cmd.Flags().StringVar(&flags.assetsDir, "assets-dir", "assets", "Directory holding the wallet icons")

	return cmd
}

func runCheckAssets(cmd *cobra.Command, flags *checkAssetsFlags) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	wallets, err := registry.LoadWallets(walletsInputPath(cmd, flags.input, cfg))
	if err != nil {
		return err
	}

	problems, err := registry.CheckAssets(wallets, flags.assetsDir, registry.AssetCheckOptions{
		SkipSizeCheck:        cfg.SkipPNGSizeCheck,
		SkipExtraImagesCheck: cfg.SkipExtraImagesCheck,
	})
	if err != nil {
		return err
	}

	return reportProblems(cmd.OutOrStdout(), len(wallets), problems)
}
