// Package receipt renders order snapshots into HTML receipts.
package receipt

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"github.com/metinatakli/cinex/internal/domain"
	"github.com/shopspring/decimal"
)

//go:embed "templates"
var templateFS embed.FS

type HTMLRenderer struct {
	tmpl *template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.New("receipt.tmpl").
		Funcs(template.FuncMap{
			"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
			"when":  func(t time.Time) string { return t.UTC().Format("Mon, Jan 2 2006 15:04 MST") },
		}).
		ParseFS(templateFS, "templates/receipt.tmpl")
	if err != nil {
		return nil, err
	}

	return &HTMLRenderer{tmpl: tmpl}, nil
}

// Render uses only what the snapshot captured at checkout, never live catalog data.
func (r *HTMLRenderer) Render(snapshot domain.OrderSnapshot) ([]byte, error) {
	var buf bytes.Buffer

	if err := r.tmpl.Execute(&buf, snapshot); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
