package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/ton-community/wallets-list/internal/model"
)

func TestProxyURLs(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "wallets-v2.json")
	output := filepath.Join(dir, "wallets-v2.proxy.json")
	origins := filepath.Join(dir, "origins.json")
	writeFile(t, input, walletsFixture)

	_, err := execute(t,
		"proxy-urls",
		"--base-url", "https://config.ton.org/assets/",
		"-i", input,
		"-o", output,
		"--origins", origins,
	)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "https://config.ton.org/assets/telegram_wallet.png", gjson.GetBytes(data, "0.image").String())
	assert.Equal(t, "https://config.ton.org/assets/tonkeeper.png", gjson.GetBytes(data, "1.image").String())

	// Everything except image passes through untouched.
	assert.Equal(t, "Wallet", gjson.GetBytes(data, "0.name").String())
	assert.Equal(t, "https://walletbot.me/tonconnect-bridge/bridge", gjson.GetBytes(data, "0.bridge.0.url").String())
	assert.Equal(t, "tonkeeper-tc://", gjson.GetBytes(data, "1.deepLink").String())

	originsData, err := os.ReadFile(origins)
	require.NoError(t, err)
	assert.Equal(t, "[\n  \"https://old.example.com\",\n  \"https://tonkeeper.com\"\n]\n", string(originsData))
}

func TestProxyURLsBaseURLFromEnv(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "wallets-v2.json")
	output := filepath.Join(dir, "out.json")
	writeFile(t, input, walletsFixture)
	t.Setenv("BASE_URL", "https://cdn.example.org/icons/")

	_, err := execute(t, "proxy-urls", "-i", input, "-o", output, "--origins", "")
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.org/icons/telegram_wallet.png", gjson.GetBytes(data, "0.image").String())
}

func TestProxyURLsFlagBeatsEnv(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "wallets-v2.json")
	output := filepath.Join(dir, "out.json")
	writeFile(t, input, walletsFixture)
	t.Setenv("BASE_URL", "https://ignored.example.org/")

	_, err := execute(t,
		"proxy-urls",
		"--base-url", "https://config.ton.org/assets/",
		"-i", input,
		"-o", output,
		"--origins", "",
	)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "https://config.ton.org/assets/telegram_wallet.png", gjson.GetBytes(data, "0.image").String())
}

func TestProxyURLsNoBaseURL(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "wallets-v2.json")
	output := filepath.Join(dir, "out.json")
	writeFile(t, input, walletsFixture)
	unsetEnv(t, "BASE_URL")

	_, err := execute(t, "proxy-urls", "-i", input, "-o", output)
	require.Error(t, err)
	assert.True(t, model.IsConfigError(err))
	assert.Contains(t, err.Error(), "no base URL")
	assert.NoFileExists(t, output)
}

func TestProxyURLsMissingInput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.json")

	_, err := execute(t,
		"proxy-urls",
		"--base-url", "https://config.ton.org/assets/",
		"-i", filepath.Join(dir, "absent.json"),
		"-o", output,
	)
	require.Error(t, err)
	assert.True(t, model.IsDataError(err))
	assert.Contains(t, err.Error(), "does not exist")
	assert.NoFileExists(t, output)
}

func TestProxyURLsNullInputWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "wallets-v2.json")
	output := filepath.Join(dir, "out.json")
	origins := filepath.Join(dir, "origins.json")
	writeFile(t, input, `null`)

	_, err := execute(t,
		"proxy-urls",
		"--base-url", "https://config.ton.org/assets/",
		"-i", input,
		"-o", output,
		"--origins", origins,
	)
	require.Error(t, err)
	assert.True(t, model.IsDataError(err))
	assert.Contains(t, err.Error(), "not a JSON array")
	assert.NoFileExists(t, output)
	assert.NoFileExists(t, origins)
}

func TestProxyURLsInvalidEntryWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "wallets-v2.json")
	output := filepath.Join(dir, "out.json")
	origins := filepath.Join(dir, "origins.json")
	writeFile(t, input, `[{"app_name": "good", "image": "https://a.com/i.png"}, {"app_name": "broken"}]`)

	_, err := execute(t,
		"proxy-urls",
		"--base-url", "https://config.ton.org/assets/",
		"-i", input,
		"-o", output,
		"--origins", origins,
	)
	require.Error(t, err)
	assert.True(t, model.IsDataError(err))
	assert.NoFileExists(t, output)
	assert.NoFileExists(t, origins)
}

func TestProxyURLsIdempotent(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "wallets-v2.json")
	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")
	writeFile(t, input, walletsFixture)

	_, err := execute(t, "proxy-urls", "--base-url", "https://config.ton.org/assets/", "-i", input, "-o", first, "--origins", "")
	require.NoError(t, err)

	_, err = execute(t, "proxy-urls", "--base-url", "https://config.ton.org/assets/", "-i", first, "-o", second, "--origins", "")
	require.NoError(t, err)

	firstData, err := os.ReadFile(first)
	require.NoError(t, err)
	secondData, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstData), string(secondData))
}

func TestProxyURLsOriginsDisabled(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "wallets-v2.json")
	output := filepath.Join(dir, "out.json")
	writeFile(t, input, walletsFixture)

	_, err := execute(t, "proxy-urls", "--base-url", "https://config.ton.org/assets/", "-i", input, "-o", output, "--origins", "")
	require.NoError(t, err)

	assert.FileExists(t, output)
	assert.NoFileExists(t, filepath.Join(dir, "origins.json"))
}
