package calendar

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/newswise/calpdf/internal/assets"
)

// Page text defaults and limits, in runes.
const (
	DefaultTitle    = "NewsWise 2026 Calendar"
	MaxTitleLength  = 200
	MaxFooterLength = 200
)

// Sheet is the physical size of a page in millimetres.
type Sheet struct {
	WidthMM  float64
	HeightMM float64
}

// Document holds what every page of one calendar shares.
type Document struct {
	Title  string
	Sheet  Sheet
	Notes  map[time.Month]string // Markdown, keyed by month
	Footer string                // plain text, empty for none
}

// PageBuilder renders month pages. Safe for sequential reuse.
type PageBuilder struct {
	tmpl  *template.Template
	style template.CSS
	md    goldmark.Markdown
}

// pageData is the template view of one page.
type pageData struct {
	Title    string
	Heading  string
	WidthMM  float64
	HeightMM float64
	Weekdays []string
	Weeks    [][]Day
	Style    template.CSS
	Note     template.HTML
	Footer   string
}

// NewPageBuilder loads the month template and the named style from loader.
// A nil loader uses the built-in assets; an empty style uses the default.
func NewPageBuilder(loader assets.AssetLoader, style string) (*PageBuilder, error) {
	if loader == nil {
		loader = assets.NewEmbeddedLoader()
	}
	if style == "" {
		style = assets.DefaultStyleName
	}

	src, err := loader.LoadTemplate(assets.MonthTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading page template: %w", err)
	}
	tmpl, err := template.New(assets.MonthTemplateName).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	css, err := loader.LoadStyle(style)
	if err != nil {
		return nil, fmt.Errorf("loading style %q: %w", style, err)
	}

	// Raw HTML in notes is dropped; goldmark escapes it unless WithUnsafe is set.
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	return &PageBuilder{
		tmpl:  tmpl,
		style: template.CSS(css), // #nosec G203 -- styles come from built-ins or the user's own theme directory
		md:    md,
	}, nil
}

// HTML renders m as a complete HTML document.
func (b *PageBuilder) HTML(ctx context.Context, doc Document, m Month) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	note, err := b.renderNote(doc.Notes[m.Month])
	if err != nil {
		return "", fmt.Errorf("rendering note for %s: %w", m.Title(), err)
	}

	weekdays := make([]string, len(m.Weekdays))
	for i, wd := range m.Weekdays {
		weekdays[i] = wd.String()[:3]
	}

	data := pageData{
		Title:    doc.Title,
		Heading:  m.Title(),
		WidthMM:  doc.Sheet.WidthMM,
		HeightMM: doc.Sheet.HeightMM,
		Weekdays: weekdays,
		Weeks:    m.Weeks,
		Style:    b.style,
		Note:     note,
		Footer:   doc.Footer,
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing page template: %w", err)
	}
	return buf.String(), nil
}

func (b *PageBuilder) renderNote(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := b.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil // #nosec G203 -- goldmark output without WithUnsafe
}
