package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ton-community/wallets-list/internal/common"
	"github.com/ton-community/wallets-list/internal/model"
)

// CSPFrameSrc builds the frame-src directive covering every wallet
// deep-link scheme, for the Content-Security-Policy of pages that open
// wallets in frames. Schemes are deduplicated and sorted; http: and
// https: are always present and never repeated.
func CSPFrameSrc(wallets []model.Wallet) (string, error) {
	seen := make(map[string]bool)
	schemes := make([]string, 0)

	for _, w := range wallets {
		if w.DeepLink == "" {
			continue
		}

		scheme, err := common.DeepLinkScheme(w.DeepLink)
		if err != nil {
			return "", model.NewDataError(fmt.Sprintf("wallet '%s': invalid deepLink", w.AppName), err)
		}
		if scheme == "http:" || scheme == "https:" {
			continue
		}

		if !seen[scheme] {
			seen[scheme] = true
			schemes = append(schemes, scheme)
		}
	}

	if len(schemes) == 0 {
		return "frame-src http: https:;", nil
	}

	sort.Strings(schemes)
	return "frame-src http: https: " + strings.Join(schemes, " ") + ";", nil
}
