package model

// BridgeType identifies how a wallet connects to dapps.
type BridgeType string

const (
	BridgeTypeSSE BridgeType = "sse"
	BridgeTypeJS  BridgeType = "js"
)

// Bridge represents a single bridge descriptor of a wallet.
// An "sse" bridge carries the bridge URL, a "js" bridge carries the
// injected-provider key.
type Bridge struct {
	Type BridgeType `json:"type"`
	URL  string     `json:"url,omitempty"`
	Key  string     `json:"key,omitempty"`
}

// Platform identifies a client platform a wallet runs on.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformChrome  Platform = "chrome"
	PlatformFirefox Platform = "firefox"
	PlatformSafari  Platform = "safari"
	PlatformMacOS   Platform = "macos"
	PlatformWindows Platform = "windows"
	PlatformLinux   Platform = "linux"
)

// Known reports whether p is one of the supported platform identifiers.
func (p Platform) Known() bool {
	switch p {
	case PlatformIOS, PlatformAndroid, PlatformChrome, PlatformFirefox,
		PlatformSafari, PlatformMacOS, PlatformWindows, PlatformLinux:
		return true
	}
	return false
}

// FeatureName identifies a wallet feature declaration.
type FeatureName string

const (
	FeatureSendTransaction FeatureName = "SendTransaction"
	FeatureSignData        FeatureName = "SignData"
)

// SignDataType is a payload kind the SignData feature can sign.
type SignDataType string

const (
	SignDataTypeText   SignDataType = "text"
	SignDataTypeBinary SignDataType = "binary"
	SignDataTypeCell   SignDataType = "cell"
)

// Known reports whether t is one of the supported SignData payload kinds.
func (t SignDataType) Known() bool {
	switch t {
	case SignDataTypeText, SignDataTypeBinary, SignDataTypeCell:
		return true
	}
	return false
}

// Feature represents one feature declaration of a wallet.
// SendTransaction carries MaxMessages and ExtraCurrencySupported,
// SignData carries Types. ExtraCurrencySupported is a pointer so a
// missing value can be told apart from an explicit false.
type Feature struct {
	Name                   FeatureName    `json:"name"`
	MaxMessages            int            `json:"maxMessages,omitempty"`
	ExtraCurrencySupported *bool          `json:"extraCurrencySupported,omitempty"`
	Types                  []SignDataType `json:"types,omitempty"`
}

// Wallet represents one entry of the wallets list. Field names follow
// the published registry format (deepLink is camelCase there).
type Wallet struct {
	AppName      string     `json:"app_name"`
	Name         string     `json:"name"`
	Image        string     `json:"image"`
	AboutURL     string     `json:"about_url"`
	UniversalURL string     `json:"universal_url,omitempty"`
	DeepLink     string     `json:"deepLink,omitempty"`
	Bridge       []Bridge   `json:"bridge"`
	Platforms    []Platform `json:"platforms"`
	Features     []Feature  `json:"features"`
}
