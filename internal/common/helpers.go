package common

import (
	"fmt"
	"net/url"
	"strings"
)

// FormatFilename derives the canonical asset filename stem from a wallet
// app_name: lowercase, every run of characters outside [a-z0-9] becomes a
// single underscore, leading and trailing underscores are trimmed.
// Example: FormatFilename("Architec.ton") = "architec_ton"
func FormatFilename(appName string) string {
	lower := strings.ToLower(appName)

	var b strings.Builder
	b.Grow(len(lower))

	prevUnderscore := false
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevUnderscore = false
			continue
		}
		// Collapse a run of disallowed characters into one underscore
		if !prevUnderscore {
			b.WriteByte('_')
			prevUnderscore = true
		}
	}

	return strings.Trim(b.String(), "_")
}

// OriginOf extracts the scheme://host origin of an absolute URL, keeping
// an explicit port but dropping path, query and fragment.
// Example: OriginOf("https://old.example.com/icons/w.png?v=2") = "https://old.example.com"
func OriginOf(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse URL '%s': %w", rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("URL '%s' has no scheme or host", rawURL)
	}
	return u.Scheme + "://" + u.Host, nil
}

// DeepLinkScheme returns the scheme of a deep link with a trailing colon,
// the form CSP source lists expect.
// Example: DeepLinkScheme("tonkeeper-tc://connect") = "tonkeeper-tc:"
func DeepLinkScheme(link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("failed to parse deep link '%s': %w", link, err)
	}
	if u.Scheme == "" {
		return "", fmt.Errorf("deep link '%s' has no scheme", link)
	}
	return u.Scheme + ":", nil
}

// IsWebURL reports whether s is an absolute http(s) URL with a host.
func IsWebURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
