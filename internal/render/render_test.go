package render

// Notes:
// - Browser-free tests only: request builders, assembly markup and the
//   guards that return before Chrome is launched
// - Real capture and assembly live in render_integration_test.go

import (
	"context"
	"encoding/base64"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/go-rod/rod/lib/proto"
)

var a4 = Settings{WidthMM: 297, HeightMM: 210, Scale: 2, JPEGQuality: 95}

// ---------------------------------------------------------------------------
// Settings
// ---------------------------------------------------------------------------

func TestSettings_Viewport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		settings     Settings
		wantW, wantH int
	}{
		{"A4 landscape", a4, 1123, 794},
		{"A4 portrait", Settings{WidthMM: 210, HeightMM: 297}, 794, 1123},
		{"zero size", Settings{}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, h := tt.settings.Viewport()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Viewport() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Request builders
// ---------------------------------------------------------------------------

func TestRenderer_ViewportOverride(t *testing.T) {
	t.Parallel()

	r := New(a4, 0, nil)
	got := r.viewportOverride()

	if got.Width != 1123 || got.Height != 794 {
		t.Errorf("viewport = %dx%d, want 1123x794", got.Width, got.Height)
	}
	if got.DeviceScaleFactor != 2 {
		t.Errorf("DeviceScaleFactor = %v, want 2", got.DeviceScaleFactor)
	}
	if got.Mobile {
		t.Error("Mobile should be false")
	}
}

func TestRenderer_ScreenshotRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		quality     int
		wantQuality int
	}{
		{"configured quality", 95, 95},
		{"clamped high", 250, 100},
		{"clamped low", -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := a4
			s.JPEGQuality = tt.quality
			req := New(s, 0, nil).screenshotRequest()

			if req.Format != proto.PageCaptureScreenshotFormatJpeg {
				t.Errorf("Format = %q, want jpeg", req.Format)
			}
			if req.Quality == nil || *req.Quality != tt.wantQuality {
				t.Errorf("Quality = %v, want %d", req.Quality, tt.wantQuality)
			}
		})
	}
}

func TestBuildPrintOptions(t *testing.T) {
	t.Parallel()

	opts := buildPrintOptions(a4)

	if got := *opts.PaperWidth; math.Abs(got-297/25.4) > 1e-9 {
		t.Errorf("PaperWidth = %v, want %v", got, 297/25.4)
	}
	if got := *opts.PaperHeight; math.Abs(got-210/25.4) > 1e-9 {
		t.Errorf("PaperHeight = %v, want %v", got, 210/25.4)
	}
	for name, m := range map[string]*float64{
		"MarginTop":    opts.MarginTop,
		"MarginBottom": opts.MarginBottom,
		"MarginLeft":   opts.MarginLeft,
		"MarginRight":  opts.MarginRight,
	} {
		if m == nil || *m != 0 {
			t.Errorf("%s = %v, want 0", name, m)
		}
	}
	if !opts.PrintBackground {
		t.Error("PrintBackground should be true")
	}
	if !opts.PreferCSSPageSize {
		t.Error("PreferCSSPageSize should be true")
	}
}

// ---------------------------------------------------------------------------
// Assembly markup
// ---------------------------------------------------------------------------

func TestBuildAssemblyHTML(t *testing.T) {
	t.Parallel()

	images := [][]byte{[]byte("first"), []byte("second"), []byte("third")}
	got := buildAssemblyHTML(a4, images)

	if n := strings.Count(got, `<div class="sheet">`); n != len(images) {
		t.Errorf("sheet count = %d, want %d", n, len(images))
	}
	if !strings.Contains(got, "size: 297mm 210mm") {
		t.Error("missing @page size rule")
	}

	// Images must appear in input order.
	last := -1
	for i, img := range images {
		idx := strings.Index(got, base64.StdEncoding.EncodeToString(img))
		if idx < 0 {
			t.Fatalf("image %d not embedded", i)
		}
		if idx < last {
			t.Errorf("image %d out of order", i)
		}
		last = idx
	}
}

// ---------------------------------------------------------------------------
// Guards
// ---------------------------------------------------------------------------

func TestRenderer_Assemble_NoPages(t *testing.T) {
	t.Parallel()

	r := New(a4, 0, nil)
	_, err := r.Assemble(context.Background(), nil)
	if !errors.Is(err, ErrNoPages) {
		t.Errorf("Assemble(nil) error = %v, want ErrNoPages", err)
	}
}

func TestRenderer_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(a4, 0, nil)
	if _, err := r.CapturePage(ctx, "<html></html>"); !errors.Is(err, context.Canceled) {
		t.Errorf("CapturePage() error = %v, want context.Canceled", err)
	}
	if _, err := r.Assemble(ctx, [][]byte{{0xff}}); !errors.Is(err, context.Canceled) {
		t.Errorf("Assemble() error = %v, want context.Canceled", err)
	}
	if r.browser != nil {
		t.Error("browser should not be launched for a canceled context")
	}
}

func TestRenderer_CloseWithoutBrowser(t *testing.T) {
	t.Parallel()

	r := New(a4, 0, nil)
	if err := r.Close(); err != nil {
		t.Errorf("Close() on idle renderer = %v, want nil", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	r := New(a4, -1, nil)
	if r.timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", r.timeout, DefaultTimeout)
	}
	if r.logger == nil {
		t.Error("logger should default to a no-op logger")
	}
}
