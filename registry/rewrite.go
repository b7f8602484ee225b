package registry

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/ton-community/wallets-list/internal/common"
	"github.com/ton-community/wallets-list/internal/model"
)

// Rewriter redirects wallet icon URLs to a proxied asset host.
type Rewriter struct {
	// BaseURL is prepended verbatim to every derived filename; callers
	// supply a value ending in a slash.
	BaseURL string
}

// RewriteAll points every entry's image at BaseURL plus the filename
// derived from its app_name and collects the distinct origins of the
// replaced URLs in first-seen order. The pass is all-or-nothing: the
// first invalid entry aborts with a DataError and no partial result.
// Every other byte of every entry passes through unchanged.
func (r *Rewriter) RewriteAll(entries []json.RawMessage) ([]json.RawMessage, []string, error) {
	rewritten := make([]json.RawMessage, 0, len(entries))
	origins := make([]string, 0)
	seen := make(map[string]bool)

	for i, entry := range entries {
		out, origin, err := r.rewriteEntry(i, entry)
		if err != nil {
			return nil, nil, err
		}

		rewritten = append(rewritten, out)
		if !seen[origin] {
			seen[origin] = true
			origins = append(origins, origin)
		}
	}

	return rewritten, origins, nil
}

func (r *Rewriter) rewriteEntry(index int, entry json.RawMessage) (json.RawMessage, string, error) {
	if !gjson.ParseBytes(entry).IsObject() {
		return nil, "", model.NewDataError(fmt.Sprintf("entry %d is not a JSON object", index), nil)
	}

	naming := namingField(entry)
	if naming == "" {
		return nil, "", model.NewDataError(fmt.Sprintf("entry %d: app_name is missing or empty (and no name to fall back to)", index), nil)
	}

	image := gjson.GetBytes(entry, "image")
	if image.Type != gjson.String || image.Str == "" {
		return nil, "", model.NewDataError(fmt.Sprintf("wallet '%s': image is missing or empty", naming), nil)
	}

	origin, err := common.OriginOf(image.Str)
	if err != nil {
		return nil, "", model.NewDataError(fmt.Sprintf("wallet '%s': image is not an absolute URL", naming), err)
	}

	stem := common.FormatFilename(naming)
	if stem == "" {
		return nil, "", model.NewDataError(fmt.Sprintf("wallet '%s': app_name has no characters a filename could be derived from", naming), nil)
	}

	filename := stem + ".png"
	newURL := r.BaseURL + filename

	out, err := sjson.SetBytes(entry, "image", newURL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to rewrite image of '%s': %w", naming, err)
	}

	logrus.WithFields(logrus.Fields{
		"wallet":   naming,
		"filename": filename,
		"image":    newURL,
	}).Debug("rewrote image URL")

	return out, origin, nil
}

// namingField returns the string filenames are derived from: app_name,
// falling back to the display name when no app_name is present.
func namingField(entry json.RawMessage) string {
	if appName := gjson.GetBytes(entry, "app_name"); appName.Type == gjson.String && appName.Str != "" {
		return appName.Str
	}
	if name := gjson.GetBytes(entry, "name"); name.Type == gjson.String && name.Str != "" {
		return name.Str
	}
	return ""
}
