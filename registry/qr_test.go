package registry_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ton-community/wallets-list/internal/model"
	"github.com/ton-community/wallets-list/registry"
)

func TestExportQRCodes(t *testing.T) {
	t.Parallel()

	outDir := filepath.Join(t.TempDir(), "qr")
	wallets := []model.Wallet{
		{AppName: "telegram-wallet", UniversalURL: "https://t.me/wallet?attach=wallet"},
		{AppName: "tonkeeper", UniversalURL: "https://app.tonkeeper.com/ton-connect"},
		{AppName: "no-link-wallet"},
	}

	written, err := registry.ExportQRCodes(wallets, outDir, 256)
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	// Derived filenames, scannable size, skipped wallet absent
	f, err := os.Open(filepath.Join(outDir, "telegram_wallet.png"))
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.Width)
	assert.Equal(t, 256, cfg.Height)

	_, err = os.Stat(filepath.Join(outDir, "tonkeeper.png"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(outDir, "no_link_wallet.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestExportQRCodesNoUniversalURLs(t *testing.T) {
	t.Parallel()

	outDir := filepath.Join(t.TempDir(), "qr")

	written, err := registry.ExportQRCodes([]model.Wallet{{AppName: "tonhub"}}, outDir, 256)
	require.NoError(t, err)
	assert.Zero(t, written)

	// The directory is still created, just empty
	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExportQRCodesUnderivableAppName(t *testing.T) {
	t.Parallel()

	_, err := registry.ExportQRCodes([]model.Wallet{
		{AppName: "???", UniversalURL: "https://example.com"},
	}, filepath.Join(t.TempDir(), "qr"), 256)
	require.Error(t, err)
	assert.True(t, model.IsDataError(err))
}

func TestExportQRCodesUnwritableOutputDir(t *testing.T) {
	t.Parallel()

	outDir := filepath.Join(t.TempDir(), "qr")
	require.NoError(t, os.WriteFile(outDir, []byte("in the way"), 0644))

	_, err := registry.ExportQRCodes([]model.Wallet{
		{AppName: "tonkeeper", UniversalURL: "https://app.tonkeeper.com/ton-connect"},
	}, outDir, 256)
	require.Error(t, err)
	assert.True(t, model.IsConfigError(err))
}
