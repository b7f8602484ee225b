package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/ton-community/wallets-list/registry"
)

// reportProblems prints every problem with its fix hint. A non-empty
// problem list is returned as an error so the command exits non-zero.
func reportProblems(out io.Writer, checked int, problems []registry.Problem) error {
	if len(problems) == 0 {
		_, _ = color.New(color.FgGreen).Fprintf(out, "✔ checked %d wallets, no problems found\n", checked)
		return nil
	}

	for _, p := range problems {
		_, _ = color.New(color.FgRed).Fprintf(out, "✗ %s: %s\n", p.Wallet, p.Message)
		if p.Fix != "" {
			fmt.Fprintf(out, "  FIX: %s\n", p.Fix)
		}
	}

	return fmt.Errorf("found %d problems across %d wallets", len(problems), checked)
}
