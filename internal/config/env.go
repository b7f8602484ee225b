package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config contains the environment-provided parameters of the toolchain.
// Command-line flags always take precedence over values found here.
type Config struct {
	// BaseURL is the fallback for --base-url of the proxy-urls command.
	BaseURL string `envconfig:"BASE_URL"`
	// WalletsFile overrides the default wallets list path for commands
	// that read the registry.
	WalletsFile string `envconfig:"WALLETS_FILE"`
	// SkipPNGSizeCheck accepts icons of any dimensions in check-assets.
	SkipPNGSizeCheck bool `envconfig:"SKIP_PNG_SIZE_CHECK" default:"false"`
	// SkipExtraImagesCheck downgrades unreferenced asset files from
	// failures to warnings in check-assets.
	SkipExtraImagesCheck bool `envconfig:"SKIP_EXTRA_IMAGES_CHECK" default:"false"`
}

// FromEnv loads configuration from environment variables.
// Callers pass the returned struct down explicitly; there is no
// package-level instance.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return cfg, nil
}
