// Package render rasterizes HTML pages in headless Chrome and assembles the
// resulting images into a PDF, one image per sheet.
package render

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"

	"github.com/newswise/calpdf/internal/fileutil"
	"github.com/newswise/calpdf/internal/process"
)

// Sentinel errors for browser operations.
var (
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPageCapture    = errors.New("failed to capture page image")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrNoPages        = errors.New("no page images to assemble")
)

// cssPixelsPerMM is Chrome's fixed 96 DPI CSS pixel density.
const cssPixelsPerMM = 96 / 25.4

const mmPerInch = 25.4

// DefaultTimeout bounds each browser wait when the context has no deadline.
const DefaultTimeout = 30 * time.Second

// Settings fixes the sheet geometry and image encoding.
type Settings struct {
	WidthMM     float64
	HeightMM    float64
	Scale       float64 // device scale factor used while rasterizing
	JPEGQuality int     // 0-100
}

// Viewport returns the sheet size in CSS pixels.
func (s Settings) Viewport() (width, height int) {
	return int(math.Round(s.WidthMM * cssPixelsPerMM)), int(math.Round(s.HeightMM * cssPixelsPerMM))
}

// Renderer drives one lazily launched Chrome instance.
// It is not safe for concurrent use.
type Renderer struct {
	settings Settings
	timeout  time.Duration
	logger   *zap.Logger

	launcher *launcher.Launcher
	browser  *rod.Browser
}

// New returns a Renderer. Chrome is not started until the first page is
// rendered. A nil logger disables logging.
func New(settings Settings, timeout time.Duration, logger *zap.Logger) *Renderer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{settings: settings, timeout: timeout, logger: logger}
}

// ensureBrowser lazily launches and connects to Chrome.
func (r *Renderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Pre-installed browser for containers; rod downloads Chromium otherwise.
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	start := time.Now()
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.launcher = l
	r.browser = browser
	r.logger.Debug("browser started", zap.Int("pid", l.PID()), zap.Duration("elapsed", time.Since(start)))
	return nil
}

// Close shuts the browser down and kills any orphaned child processes.
func (r *Renderer) Close() error {
	if r.browser == nil {
		return nil
	}
	err := r.browser.Close()
	r.browser = nil

	if r.launcher != nil {
		process.KillProcessGroup(r.launcher.PID())
		r.launcher.Kill()
		r.launcher.Cleanup()
		r.launcher = nil
	}
	r.logger.Debug("browser closed")
	return err
}

// CapturePage loads htmlContent and returns a JPEG of exactly one sheet at
// the configured scale and quality.
func (r *Renderer) CapturePage(ctx context.Context, htmlContent string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	page, err := r.openPage(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = page.Close() }()

	if err := page.SetViewport(r.viewportOverride()); err != nil {
		return nil, fmt.Errorf("%w: setting viewport: %v", ErrPageCapture, err)
	}

	img, err := page.Screenshot(false, r.screenshotRequest())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCapture, err)
	}
	return img, nil
}

// Assemble prints images, in order, as a PDF with one full-bleed image per
// sheet.
func (r *Renderer) Assemble(ctx context.Context, images [][]byte) ([]byte, error) {
	if len(images) == 0 {
		return nil, ErrNoPages
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, cleanup, err := fileutil.WriteTempFile(buildAssemblyHTML(r.settings, images), "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	page, err := r.openPage(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = page.Close() }()

	reader, err := page.PDF(buildPrintOptions(r.settings))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdfBuf, nil
}

// openPage opens filePath in a new tab bound to ctx and waits for load.
func (r *Renderer) openPage(ctx context.Context, filePath string) (*rod.Page, error) {
	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if timeout = time.Until(deadline); timeout <= 0 {
			_ = page.Close()
			return nil, context.DeadlineExceeded
		}
	}

	bound := page.Context(ctx).Timeout(timeout)
	if err := bound.WaitLoad(); err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	return bound, nil
}

func (r *Renderer) viewportOverride() *proto.EmulationSetDeviceMetricsOverride {
	w, h := r.settings.Viewport()
	return &proto.EmulationSetDeviceMetricsOverride{
		Width:             w,
		Height:            h,
		DeviceScaleFactor: r.settings.Scale,
	}
}

func (r *Renderer) screenshotRequest() *proto.PageCaptureScreenshot {
	quality := min(max(r.settings.JPEGQuality, 0), 100)
	return &proto.PageCaptureScreenshot{
		Format:  proto.PageCaptureScreenshotFormatJpeg,
		Quality: &quality,
	}
}

// buildPrintOptions sizes the paper to the sheet with no margins.
func buildPrintOptions(s Settings) *proto.PagePrintToPDF {
	zero := 0.0
	return &proto.PagePrintToPDF{
		PaperWidth:        floatPtr(s.WidthMM / mmPerInch),
		PaperHeight:       floatPtr(s.HeightMM / mmPerInch),
		MarginTop:         &zero,
		MarginBottom:      &zero,
		MarginLeft:        &zero,
		MarginRight:       &zero,
		PrintBackground:   true,
		PreferCSSPageSize: true,
	}
}

// buildAssemblyHTML lays out one image per printed sheet. The sheet box is a
// pixel shorter than the paper so rounding never spills onto an extra page.
func buildAssemblyHTML(s Settings, images [][]byte) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<!DOCTYPE html><html><head><meta charset="utf-8"><style>
@page { size: %[1]vmm %[2]vmm; margin: 0; }
html, body { margin: 0; padding: 0; }
.sheet { width: %[1]vmm; height: calc(%[2]vmm - 1px); overflow: hidden; break-after: page; }
.sheet:last-child { break-after: auto; }
.sheet img { display: block; width: 100%%; height: 100%%; object-fit: fill; }
</style></head><body>`, s.WidthMM, s.HeightMM)

	for _, img := range images {
		b.WriteString(`<div class="sheet"><img src="data:image/jpeg;base64,`)
		b.WriteString(base64.StdEncoding.EncodeToString(img))
		b.WriteString(`"></div>`)
	}
	b.WriteString("</body></html>")
	return b.String()
}

func floatPtr(v float64) *float64 {
	return &v
}
