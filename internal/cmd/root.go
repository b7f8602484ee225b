package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ton-community/wallets-list/internal/config"
)

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "wallets",
		Short: "Tools for maintaining the TON wallets list",
		Long: `Tools for maintaining the TON wallets list: rewriting icon URLs to the
proxied asset host, rendering the server configuration, and checking
the registry before it is published.`,
		PersistentPreRun: func(*cobra.Command, []string) {
			configureLogging(verbose)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(NewProxyURLsCmd())
	cmd.AddCommand(NewNginxConfCmd())
	cmd.AddCommand(NewCSPCmd())
	cmd.AddCommand(NewValidateCmd())
	cmd.AddCommand(NewCheckAssetsCmd())
	cmd.AddCommand(NewQRCmd())

	return cmd
}

// configureLogging sets up logrus for plain console output.
func configureLogging(verbose bool) {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// walletsInputPath resolves the wallets list path for commands that
// read the registry: an explicitly set --input wins over the
// WALLETS_FILE environment variable, which wins over the flag default.
func walletsInputPath(cmd *cobra.Command, flagValue string, cfg *config.Config) string {
	if cmd.Flags().Changed("input") || cfg.WalletsFile == "" {
		return flagValue
	}
	return cfg.WalletsFile
}
