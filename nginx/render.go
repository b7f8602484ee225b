package nginx

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/ton-community/wallets-list/internal/fileio"
	"github.com/ton-community/wallets-list/internal/model"
)

// Params carries the values substituted into the server config
// template.
type Params struct {
	// Origins is expanded into one allow-list stanza per origin, in
	// input order.
	Origins []string
	// AssetsPrefix is the URL path segment icons are served under.
	AssetsPrefix string
	// ServerName becomes the server_name directive.
	ServerName string
	// CacheDurationOK is the client cache lifetime of served icons.
	CacheDurationOK string
	// CacheDurationNotOK is the cache lifetime of negative responses.
	CacheDurationNotOK string
}

// data maps Params onto the placeholder names the template contract
// uses.
func (p *Params) data() map[string]any {
	return map[string]any{
		"origins":              p.Origins,
		"assets_prefix":        p.AssetsPrefix,
		"server_name":          p.ServerName,
		"cache_duration_ok":    p.CacheDurationOK,
		"cache_duration_notok": p.CacheDurationNotOK,
	}
}

// RenderFile renders the template at templatePath with p.
func RenderFile(templatePath string, p *Params) ([]byte, error) {
	raw, err := fileio.ReadFile(templatePath)
	if err != nil {
		return nil, model.NewConfigError(fmt.Sprintf("failed to read template '%s'", templatePath), err)
	}
	return Render(filepath.Base(templatePath), string(raw), p)
}

// Render renders the template text with p. A placeholder the params do
// not cover fails with a ConfigError instead of rendering empty.
func Render(name, text string, p *Params) ([]byte, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, model.NewConfigError(fmt.Sprintf("failed to parse template '%s'", name), err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p.data()); err != nil {
		return nil, model.NewConfigError(fmt.Sprintf("failed to render template '%s'", name), err)
	}

	return buf.Bytes(), nil
}
