package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ton-community/wallets-list/internal/config"
	"github.com/ton-community/wallets-list/internal/fileio"
	"github.com/ton-community/wallets-list/registry"
)

type cspFlags struct {
	input  string
	output string
}

// NewCSPCmd creates the command that builds the frame-src policy from
// wallet deep links.
func NewCSPCmd() *cobra.Command {
	flags := &cspFlags{}

	cmd := &cobra.Command{
		Use:   "csp",
		Short: "Build the frame-src policy covering wallet deep links",
		Long: `Collects the deepLink scheme of every wallet and prints a frame-src
Content-Security-Policy directive covering them, for pages that open
wallets in frames.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCSP(cmd, flags)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "wallets-v2.json", "Path to the wallets list (falls back to WALLETS_FILE)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Write the policy to a file instead of stdout")

	return cmd
}

func runCSP(cmd *cobra.Command, flags *cspFlags) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	wallets, err := registry.LoadWallets(walletsInputPath(cmd, flags.input, cfg))
	if err != nil {
		return err
	}

	policy, err := registry.CSPFrameSrc(wallets)
	if err != nil {
		return err
	}

	if flags.output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), policy)
		return nil
	}

	if err := fileio.WriteFileAtomic(flags.output, []byte(policy+"\n"), 0644); err != nil {
		return err
	}
	logrus.WithField("path", flags.output).Info("wrote frame-src policy")

	return nil
}
