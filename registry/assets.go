package registry

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ton-community/wallets-list/internal/common"
	"github.com/ton-community/wallets-list/internal/model"
)

// Icon dimensions the registry serves
const (
	iconWidth  = 288
	iconHeight = 288
)

// AssetCheckOptions controls which asset checks run.
type AssetCheckOptions struct {
	// SkipSizeCheck accepts icons of any dimensions.
	SkipSizeCheck bool
	// SkipExtraImagesCheck downgrades unreferenced asset files from
	// problems to warnings.
	SkipExtraImagesCheck bool
}

// CheckAssets verifies that every wallet's derived icon exists in
// assetsDir as a decodable 288x288 PNG and reports asset files no
// wallet references. Only the PNG header is decoded; pixels are never
// processed.
func CheckAssets(wallets []model.Wallet, assetsDir string, opts AssetCheckOptions) ([]Problem, error) {
	problems := make([]Problem, 0)
	expected := make(map[string]string) // filename -> app_name

	for _, w := range wallets {
		stem := common.FormatFilename(w.AppName)
		if stem == "" {
			problems = append(problems, Problem{
				Wallet:  w.AppName,
				Message: "app_name has no characters an icon filename could be derived from",
				Fix:     "include at least one latin letter or digit in app_name",
			})
			continue
		}

		filename := stem + ".png"
		expected[filename] = w.AppName
		problems = append(problems, checkIcon(w.AppName, filepath.Join(assetsDir, filename), opts)...)
	}

	extra, err := unreferencedAssets(assetsDir, expected)
	if err != nil {
		return nil, err
	}
	for _, filename := range extra {
		if opts.SkipExtraImagesCheck {
			logrus.WithField("file", filename).Warn("asset file is not referenced by any wallet")
			continue
		}
		problems = append(problems, Problem{
			Wallet:  filename,
			Message: "asset file is not referenced by any wallet",
			Fix:     "remove the file or add the wallet entry that uses it",
		})
	}

	return problems, nil
}

func checkIcon(appName, path string, opts AssetCheckOptions) []Problem {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Problem{{
				Wallet:  appName,
				Message: fmt.Sprintf("icon %s is missing", path),
				Fix:     fmt.Sprintf("add the wallet icon as %s", path),
			}}
		}
		return []Problem{{
			Wallet:  appName,
			Message: fmt.Sprintf("icon %s cannot be read: %v", path, err),
			Fix:     "fix the file permissions",
		}}
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		return []Problem{{
			Wallet:  appName,
			Message: fmt.Sprintf("icon %s is not a valid PNG", path),
			Fix:     "re-export the icon as a PNG file",
		}}
	}

	if !opts.SkipSizeCheck && (cfg.Width != iconWidth || cfg.Height != iconHeight) {
		return []Problem{{
			Wallet:  appName,
			Message: fmt.Sprintf("icon %s must be %dx%d, got %dx%d", path, iconWidth, iconHeight, cfg.Width, cfg.Height),
			Fix:     fmt.Sprintf("resize the icon to %dx%d", iconWidth, iconHeight),
		}}
	}

	return nil
}

// unreferencedAssets lists .png files in assetsDir that no wallet's
// derived filename points at, in directory order.
func unreferencedAssets(assetsDir string, expected map[string]string) ([]string, error) {
	entries, err := os.ReadDir(assetsDir)
	if err != nil {
		if os.IsNotExist(err) {
			// Missing icons were already reported per wallet
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read assets directory: %w", err)
	}

	extra := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".png") {
			continue
		}
		if _, ok := expected[entry.Name()]; !ok {
			extra = append(extra, entry.Name())
		}
	}

	return extra, nil
}
