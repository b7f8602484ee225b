package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ton-community/wallets-list/internal/config"
	"github.com/ton-community/wallets-list/internal/fileio"
	"github.com/ton-community/wallets-list/internal/model"
	"github.com/ton-community/wallets-list/registry"
)

type proxyURLsFlags struct {
	input   string
	output  string
	origins string
	baseURL string
}

// NewProxyURLsCmd creates the command that rewrites wallet icon URLs to
// the proxied asset host.
func NewProxyURLsCmd() *cobra.Command {
	flags := &proxyURLsFlags{}

	cmd := &cobra.Command{
		Use:   "proxy-urls",
		Short: "Rewrite wallet icon URLs to the proxied asset host",
		Long: `Reads the wallets list, derives a canonical asset filename from every
wallet's app_name and points its image URL at the proxy base URL. The
distinct origins of the replaced URLs are written alongside, in
first-seen order, for the server configuration.

The base URL comes from --base-url, falling back to the BASE_URL
environment variable. Every other field of every entry passes through
byte-for-byte, so re-running the command on its own output changes
nothing.`,
		RunE: func(*cobra.Command, []string) error {
			return runProxyURLs(flags)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "wallets-v2.json", "Path to the wallets list")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "wallets-v2.proxy.json", "Path for the rewritten list")
	cmd.Flags().StringVar(&flags.origins, "origins", "origins.json", "Path for the extracted origins (empty disables)")
	cmd.Flags().StringVar(&flags.baseURL, "base-url", "", "Base URL prepended to derived filenames (falls back to BASE_URL)")

	return cmd
}

func runProxyURLs(flags *proxyURLsFlags) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	baseURL := flags.baseURL
	if baseURL == "" {
		baseURL = cfg.BaseURL
	}
	if baseURL == "" {
		return model.NewConfigError("no base URL: pass --base-url or set BASE_URL", nil)
	}

	entries, err := registry.LoadList(flags.input)
	if err != nil {
		return err
	}

	rewriter := &registry.Rewriter{BaseURL: baseURL}
	rewritten, origins, err := rewriter.RewriteAll(entries)
	if err != nil {
		return err
	}

	if err := fileio.WriteJSON(flags.output, rewritten); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"wallets": len(rewritten),
		"path":    flags.output,
	}).Info("wrote rewritten wallets list")

	if flags.origins == "" {
		logrus.Debug("origins output disabled")
		return nil
	}
	if err := fileio.WriteJSON(flags.origins, origins); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"origins": len(origins),
		"path":    flags.origins,
	}).Info("wrote image origins")

	return nil
}
