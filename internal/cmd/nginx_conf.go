package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ton-community/wallets-list/internal/fileio"
	"github.com/ton-community/wallets-list/internal/model"
	"github.com/ton-community/wallets-list/nginx"
)

type nginxConfFlags struct {
	origins            string
	template           string
	output             string
	assetsPrefix       string
	serverName         string
	cacheDurationOK    string
	cacheDurationNotOK string
}

// NewNginxConfCmd creates the command that renders the server config
// from its template and the extracted origins.
func NewNginxConfCmd() *cobra.Command {
	flags := &nginxConfFlags{}

	cmd := &cobra.Command{
		Use:   "nginx-conf",
		Short: "Render the server config from its template",
		Long: `Renders the nginx server configuration from the config template,
expanding the extracted image origins into one allow-list stanza per
origin. The template file itself is never modified.`,
		RunE: func(*cobra.Command, []string) error {
			return runNginxConf(flags)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&flags.origins, "origins", "origins.json", "Path to the extracted origins")
	cmd.Flags().StringVar(&flags.template, "template", "server/nginx.conf.tmpl", "Path to the config template")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "server/nginx.conf", "Path for the rendered config")
	cmd.Flags().StringVar(&flags.assetsPrefix, "assets-prefix", "assets", "URL path prefix the icons are served under")
	cmd.Flags().StringVar(&flags.serverName, "server-name", "config.ton.org", "Value of the server_name directive")
	cmd.Flags().StringVar(&flags.cacheDurationOK, "cache-duration-ok", "10m", "Cache duration for successfully served icons")
	cmd.Flags().StringVar(&flags.cacheDurationNotOK, "cache-duration-notok", "2m", "Cache duration for negative responses")

	return cmd
}

func runNginxConf(flags *nginxConfFlags) error {
	var origins []string
	if err := fileio.ReadJSON(flags.origins, &origins); err != nil {
		return model.NewDataError("failed to load origins list", err)
	}
	// A bare null unmarshals into a nil slice without an error.
	if origins == nil {
		return model.NewDataError(fmt.Sprintf("%s is not a JSON array of strings", flags.origins), nil)
	}

	rendered, err := nginx.RenderFile(flags.template, &nginx.Params{
		Origins:            origins,
		AssetsPrefix:       flags.assetsPrefix,
		ServerName:         flags.serverName,
		CacheDurationOK:    flags.cacheDurationOK,
		CacheDurationNotOK: flags.cacheDurationNotOK,
	})
	if err != nil {
		return err
	}

	if dir := filepath.Dir(flags.output); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return model.NewConfigError("failed to create output directory", err)
		}
	}
	if err := fileio.WriteFileAtomic(flags.output, rendered, 0644); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"origins": len(origins),
		"path":    flags.output,
	}).Info("rendered server config")

	return nil
}
