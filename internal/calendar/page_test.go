package calendar

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/newswise/calpdf/internal/assets"
)

func newTestDocument() Document {
	return Document{
		Title: "NewsWise 2026 Calendar",
		Sheet: Sheet{WidthMM: 297, HeightMM: 210},
		Notes: map[time.Month]string{
			time.April: "Press freedom day on the **3rd of May** <script>alert(1)</script>",
		},
	}
}

// ---------------------------------------------------------------------------
// TestPageBuilder_HTML - Page markup
// ---------------------------------------------------------------------------

func TestPageBuilder_HTML(t *testing.T) {
	t.Parallel()

	b, err := NewPageBuilder(nil, "")
	if err != nil {
		t.Fatalf("NewPageBuilder() error = %v", err)
	}
	m, err := NewMonth(2026, time.January, time.Monday)
	if err != nil {
		t.Fatal(err)
	}

	html, err := b.HTML(context.Background(), newTestDocument(), m)
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}

	for _, want := range []string{
		"<h1>January 2026</h1>",
		"NewsWise 2026 Calendar",
		"size: 297mm 210mm",
		"<th>Mon</th>",
		">31</td>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML() missing %q", want)
		}
	}
	if strings.Contains(html, `class="note"`) {
		t.Error("January has no note but a note section was rendered")
	}
	if strings.Contains(html, "<footer>") {
		t.Error("footer rendered without footer text")
	}
	if strings.Index(html, "<th>Mon</th>") > strings.Index(html, "<th>Sun</th>") {
		t.Error("Monday column should come before Sunday with a Monday week start")
	}
}

func TestPageBuilder_HTML_Note(t *testing.T) {
	t.Parallel()

	b, err := NewPageBuilder(nil, "")
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewMonth(2026, time.April, time.Sunday)
	if err != nil {
		t.Fatal(err)
	}

	html, err := b.HTML(context.Background(), newTestDocument(), m)
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	if !strings.Contains(html, "<strong>3rd of May</strong>") {
		t.Error("Markdown emphasis in note was not rendered")
	}
	if strings.Contains(html, "<script>") {
		t.Error("raw HTML from note leaked into the page")
	}
}

func TestPageBuilder_HTML_EscapesTitle(t *testing.T) {
	t.Parallel()

	b, err := NewPageBuilder(nil, "")
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewMonth(2026, time.May, time.Monday)
	if err != nil {
		t.Fatal(err)
	}

	doc := newTestDocument()
	doc.Title = `<b>Q&A</b>`
	html, err := b.HTML(context.Background(), doc, m)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(html, "<b>Q&A</b>") {
		t.Error("title was not escaped")
	}
}

func TestPageBuilder_HTML_CanceledContext(t *testing.T) {
	t.Parallel()

	b, err := NewPageBuilder(nil, "")
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewMonth(2026, time.May, time.Monday)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := b.HTML(ctx, newTestDocument(), m); err == nil {
		t.Error("HTML() with canceled context should fail")
	}
}

func TestNewPageBuilder_Styles(t *testing.T) {
	t.Parallel()

	t.Run("built-in newsroom style", func(t *testing.T) {
		t.Parallel()

		b, err := NewPageBuilder(nil, "newsroom")
		if err != nil {
			t.Fatalf("NewPageBuilder() error = %v", err)
		}
		m, err := NewMonth(2026, time.June, time.Monday)
		if err != nil {
			t.Fatal(err)
		}
		html, err := b.HTML(context.Background(), newTestDocument(), m)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(html, "#b3122e") {
			t.Error("newsroom stylesheet not inlined")
		}
		if !strings.Contains(html, "size: 297mm 210mm") {
			t.Error("page size rule missing with a non-default style")
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		t.Parallel()

		_, err := NewPageBuilder(nil, "nope")
		if !errors.Is(err, assets.ErrStyleNotFound) {
			t.Errorf("NewPageBuilder() error = %v, want ErrStyleNotFound", err)
		}
	})

	t.Run("theme directory overrides style", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(dir, "styles"), 0o755); err != nil {
			t.Fatal(err)
		}
		css := "td { color: rebeccapurple; }"
		if err := os.WriteFile(filepath.Join(dir, "styles", "house.css"), []byte(css), 0o644); err != nil {
			t.Fatal(err)
		}
		resolver, err := assets.NewAssetResolver(dir)
		if err != nil {
			t.Fatal(err)
		}

		b, err := NewPageBuilder(resolver, "house")
		if err != nil {
			t.Fatalf("NewPageBuilder() error = %v", err)
		}
		m, err := NewMonth(2026, time.June, time.Monday)
		if err != nil {
			t.Fatal(err)
		}
		html, err := b.HTML(context.Background(), newTestDocument(), m)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(html, css) {
			t.Error("custom stylesheet not inlined")
		}
		if !strings.Contains(html, "<h1>June 2026</h1>") {
			t.Error("built-in template should be used when the theme has none")
		}
	})
}

func TestPageBuilder_HTML_Footer(t *testing.T) {
	t.Parallel()

	b, err := NewPageBuilder(nil, "")
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewMonth(2026, time.May, time.Monday)
	if err != nil {
		t.Fatal(err)
	}

	doc := newTestDocument()
	doc.Footer = "Desk <planning> & events"
	html, err := b.HTML(context.Background(), doc, m)
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	if !strings.Contains(html, "<footer>Desk &lt;planning&gt; &amp; events</footer>") {
		t.Error("footer missing or not escaped")
	}
}
