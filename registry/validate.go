package registry

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ton-community/wallets-list/internal/common"
	"github.com/ton-community/wallets-list/internal/model"
)

// Problem describes one failed check, attributed to a wallet (or the
// list itself) with an actionable fix hint.
type Problem struct {
	Wallet  string
	Message string
	Fix     string
}

// ValidateList checks every entry for presence and shape problems and
// returns all of them, never stopping at the first. Deeper semantic
// validation of field contents is out of scope.
func ValidateList(entries []json.RawMessage) []Problem {
	problems := make([]Problem, 0)

	if len(entries) == 0 {
		return append(problems, Problem{
			Wallet:  "wallets list",
			Message: "list is empty",
			Fix:     "add at least one wallet entry",
		})
	}

	seenNames := make(map[string]string)  // app_name -> first label
	seenImages := make(map[string]string) // image URL -> app_name
	seenFiles := make(map[string]string)  // derived filename stem -> app_name

	for i, entry := range entries {
		label := entryLabel(entry)
		if label == "unnamed" {
			label = fmt.Sprintf("entry %d", i)
		}

		var w model.Wallet
		if err := json.Unmarshal(entry, &w); err != nil {
			problems = append(problems, Problem{
				Wallet:  label,
				Message: fmt.Sprintf("entry does not match the registry format: %v", err),
				Fix:     "make the entry a JSON object with correctly typed fields",
			})
			continue
		}

		problems = append(problems, validateWallet(label, &w)...)

		if w.AppName != "" {
			if _, dup := seenNames[w.AppName]; dup {
				problems = append(problems, Problem{
					Wallet:  label,
					Message: fmt.Sprintf("app_name '%s' is already used", w.AppName),
					Fix:     "give every wallet a unique app_name",
				})
			}
			seenNames[w.AppName] = label

			if stem := common.FormatFilename(w.AppName); stem != "" {
				if other, dup := seenFiles[stem]; dup {
					problems = append(problems, Problem{
						Wallet:  label,
						Message: fmt.Sprintf("derived icon filename '%s.png' collides with wallet '%s'", stem, other),
						Fix:     "rename one app_name so the derived filenames differ",
					})
				} else {
					seenFiles[stem] = w.AppName
				}
			}
		}

		if w.Image != "" {
			if other, dup := seenImages[w.Image]; dup {
				problems = append(problems, Problem{
					Wallet:  label,
					Message: fmt.Sprintf("image URL is already used by wallet '%s'", other),
					Fix:     "give every wallet its own icon URL",
				})
			} else {
				seenImages[w.Image] = w.AppName
			}
		}
	}

	return problems
}

func validateWallet(label string, w *model.Wallet) []Problem {
	problems := make([]Problem, 0)

	var missing []string
	if w.AppName == "" {
		missing = append(missing, "app_name")
	}
	if w.Name == "" {
		missing = append(missing, "name")
	}
	if w.Image == "" {
		missing = append(missing, "image")
	}
	if w.AboutURL == "" {
		missing = append(missing, "about_url")
	}
	if len(w.Bridge) == 0 {
		missing = append(missing, "bridge")
	}
	if len(w.Platforms) == 0 {
		missing = append(missing, "platforms")
	}
	if len(w.Features) == 0 {
		missing = append(missing, "features")
	}
	if len(missing) > 0 {
		problems = append(problems, Problem{
			Wallet:  label,
			Message: "missing required fields: " + strings.Join(missing, ", "),
			Fix:     "add the listed fields to the wallet entry",
		})
	}

	if w.AppName != "" && common.FormatFilename(w.AppName) == "" {
		problems = append(problems, Problem{
			Wallet:  label,
			Message: fmt.Sprintf("app_name '%s' has no characters an icon filename could be derived from", w.AppName),
			Fix:     "include at least one latin letter or digit in app_name",
		})
	}

	problems = append(problems, validateURLs(label, w)...)
	problems = append(problems, validateBridges(label, w.Bridge)...)
	problems = append(problems, validatePlatforms(label, w.Platforms)...)
	problems = append(problems, validateFeatures(label, w.Features)...)

	return problems
}

func validateURLs(label string, w *model.Wallet) []Problem {
	problems := make([]Problem, 0)

	if w.Image != "" && !common.IsWebURL(w.Image) {
		problems = append(problems, Problem{
			Wallet:  label,
			Message: fmt.Sprintf("image '%s' is not a valid URL", w.Image),
			Fix:     "use an absolute http(s) URL",
		})
	}
	if w.AboutURL != "" && !common.IsWebURL(w.AboutURL) {
		problems = append(problems, Problem{
			Wallet:  label,
			Message: fmt.Sprintf("about_url '%s' is not a valid URL", w.AboutURL),
			Fix:     "use an absolute http(s) URL",
		})
	}
	if w.UniversalURL != "" && !common.IsWebURL(w.UniversalURL) {
		problems = append(problems, Problem{
			Wallet:  label,
			Message: fmt.Sprintf("universal_url '%s' is not a valid URL", w.UniversalURL),
			Fix:     "use an absolute http(s) URL",
		})
	}

	return problems
}

func validateBridges(label string, bridges []model.Bridge) []Problem {
	problems := make([]Problem, 0)
	seen := make(map[model.BridgeType]bool)

	for _, b := range bridges {
		switch b.Type {
		case model.BridgeTypeSSE:
			if !common.IsWebURL(b.URL) {
				problems = append(problems, Problem{
					Wallet:  label,
					Message: "sse bridge needs a valid url",
					Fix:     "point the sse bridge at its http(s) endpoint",
				})
			}
		case model.BridgeTypeJS:
			if b.Key == "" {
				problems = append(problems, Problem{
					Wallet:  label,
					Message: "js bridge needs a non-empty key",
					Fix:     "set the injected-provider key of the js bridge",
				})
			}
		default:
			problems = append(problems, Problem{
				Wallet:  label,
				Message: fmt.Sprintf("unknown bridge type '%s'", b.Type),
				Fix:     "use one of: sse, js",
			})
		}

		if seen[b.Type] {
			problems = append(problems, Problem{
				Wallet:  label,
				Message: fmt.Sprintf("bridge type '%s' is declared more than once", b.Type),
				Fix:     "declare at most one bridge per type",
			})
		}
		seen[b.Type] = true
	}

	return problems
}

func validatePlatforms(label string, platforms []model.Platform) []Problem {
	problems := make([]Problem, 0)

	for _, p := range platforms {
		if !p.Known() {
			problems = append(problems, Problem{
				Wallet:  label,
				Message: fmt.Sprintf("unknown platform '%s'", p),
				Fix:     "use one of: ios, android, chrome, firefox, safari, macos, windows, linux",
			})
		}
	}

	return problems
}

func validateFeatures(label string, features []model.Feature) []Problem {
	problems := make([]Problem, 0)
	seen := make(map[model.FeatureName]bool)
	hasSendTransaction := false

	for _, f := range features {
		switch f.Name {
		case model.FeatureSendTransaction:
			hasSendTransaction = true
			if f.MaxMessages < 1 {
				problems = append(problems, Problem{
					Wallet:  label,
					Message: "SendTransaction feature needs maxMessages (positive integer)",
					Fix:     "declare how many messages one transaction may carry",
				})
			}
			if f.ExtraCurrencySupported == nil {
				problems = append(problems, Problem{
					Wallet:  label,
					Message: "SendTransaction feature needs extraCurrencySupported (boolean)",
					Fix:     "declare whether extra currencies are supported",
				})
			}
		case model.FeatureSignData:
			if len(f.Types) == 0 {
				problems = append(problems, Problem{
					Wallet:  label,
					Message: "SignData feature needs at least one payload type",
					Fix:     "declare the supported types: text, binary, cell",
				})
			}
			for _, st := range f.Types {
				if !st.Known() {
					problems = append(problems, Problem{
						Wallet:  label,
						Message: fmt.Sprintf("unknown SignData payload type '%s'", st),
						Fix:     "use one of: text, binary, cell",
					})
				}
			}
		default:
			problems = append(problems, Problem{
				Wallet:  label,
				Message: fmt.Sprintf("unknown feature '%s'", f.Name),
				Fix:     "use one of: SendTransaction, SignData",
			})
		}

		if seen[f.Name] {
			problems = append(problems, Problem{
				Wallet:  label,
				Message: fmt.Sprintf("feature '%s' is declared more than once", f.Name),
				Fix:     "declare every feature at most once",
			})
		}
		seen[f.Name] = true
	}

	if len(features) > 0 && !hasSendTransaction {
		problems = append(problems, Problem{
			Wallet:  label,
			Message: "SendTransaction feature is required",
			Fix:     "declare the SendTransaction feature",
		})
	}

	return problems
}
