package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ton-community/wallets-list/internal/config"
	"github.com/ton-community/wallets-list/registry"
)

type validateFlags struct {
	input string
}

// NewValidateCmd creates the command that checks every wallet entry
// for presence and shape problems.
func NewValidateCmd() *cobra.Command {
	flags := &validateFlags{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check every wallet entry for presence and shape problems",
		Long: `Checks every entry of the wallets list: required fields, URL shapes,
bridge and feature declarations, and cross-entry uniqueness of
app_name, image URL and derived icon filename. All problems are
reported at once, each with a fix hint.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, flags)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "wallets-v2.json", "Path to the wallets list (falls back to WALLETS_FILE)")

	return cmd
}

func runValidate(cmd *cobra.Command, flags *validateFlags) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	entries, err := registry.LoadList(walletsInputPath(cmd, flags.input, cfg))
	if err != nil {
		return err
	}

	problems := registry.ValidateList(entries)
	return reportProblems(cmd.OutOrStdout(), len(entries), problems)
}
