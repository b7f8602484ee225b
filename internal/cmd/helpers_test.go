package cmd_test

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ton-community/wallets-list/internal/cmd"
)

// walletsFixture is a small registry that passes validation: two
// wallets, two image origins, one deep link.
const walletsFixture = `[
  {
    "app_name": "telegram-wallet",
    "name": "Wallet",
    "image": "https://old.example.com/icons/telegram.png",
    "about_url": "https://wallet.tg/",
    "universal_url": "https://t.me/wallet?attach=wallet",
    "bridge": [{"type": "sse", "url": "https://walletbot.me/tonconnect-bridge/bridge"}],
    "platforms": ["ios", "android"],
    "features": [{"name": "SendTransaction", "maxMessages": 255, "extraCurrencySupported": false}]
  },
  {
    "app_name": "tonkeeper",
    "name": "Tonkeeper",
    "image": "https://tonkeeper.com/assets/icon.png",
    "about_url": "https://tonkeeper.com",
    "deepLink": "tonkeeper-tc://",
    "bridge": [{"type": "js", "key": "tonkeeper"}],
    "platforms": ["ios", "android"],
    "features": [{"name": "SendTransaction", "maxMessages": 255, "extraCurrencySupported": true}]
  }
]`

// execute runs the CLI with args and captures its command output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := cmd.NewRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// writePNG writes a real PNG of the given dimensions.
func writePNG(t *testing.T, path string, width, height int) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, width, height))))
}

// unsetEnv removes variables for the duration of the test, restoring
// the original values afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()

	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
