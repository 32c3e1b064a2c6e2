package calpdf

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/newswise/calpdf/internal/assets"
	"github.com/newswise/calpdf/internal/calendar"
	"github.com/newswise/calpdf/internal/dateutil"
	"github.com/newswise/calpdf/internal/inspect"
	"github.com/newswise/calpdf/internal/render"
)

// pageRenderer rasterizes pages and assembles them into a PDF.
type pageRenderer interface {
	CapturePage(ctx context.Context, html string) ([]byte, error)
	Assemble(ctx context.Context, images [][]byte) ([]byte, error)
	Close() error
}

var _ pageRenderer = (*render.Renderer)(nil)

// Generator produces the calendar PDF: one sheet per month of CalendarYear.
// Create with NewGenerator, call Generate, and Close when done.
//
// A Generator is not safe for concurrent use; run one Generate at a time.
type Generator struct {
	cfg      generatorConfig
	state    *StateManager
	logger   *zap.Logger
	pages    *calendar.PageBuilder
	renderer pageRenderer
}

// NewGenerator creates a Generator. The browser is started lazily by the
// first Generate call.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg: generatorConfig{
			timeout:   defaultTimeout,
			weekStart: time.Monday,
			title:     DefaultTitle,
			now:       time.Now,
		},
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.cfg.weekStart != time.Monday && g.cfg.weekStart != time.Sunday {
		return nil, fmt.Errorf("%w: %s (must be Monday or Sunday)", ErrInvalidWeekStart, g.cfg.weekStart)
	}
	if utf8.RuneCountInString(g.cfg.title) > MaxTitleLength {
		return nil, fmt.Errorf("%w: %d characters (max %d)", ErrTitleTooLong, utf8.RuneCountInString(g.cfg.title), MaxTitleLength)
	}

	if utf8.RuneCountInString(g.cfg.footer) > MaxFooterLength {
		return nil, fmt.Errorf("%w: footer is %d characters (max %d)", ErrInvalidFooter, utf8.RuneCountInString(g.cfg.footer), MaxFooterLength)
	}
	if _, err := dateutil.Expand(g.cfg.footer, time.Time{}); err != nil {
		return nil, fmt.Errorf("footer: %w", err)
	}

	if g.state == nil {
		g.state = NewStateManager()
	}

	resolver, err := assets.NewAssetResolver(g.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("initializing assets: %w", err)
	}
	pages, err := calendar.NewPageBuilder(resolver, g.cfg.style)
	if err != nil {
		return nil, fmt.Errorf("initializing page builder: %w", err)
	}
	g.pages = pages
	if resolver.HasCustomLoader() {
		g.logger.Debug("using theme directory", zap.String("path", g.cfg.assetPath))
	}

	if g.renderer == nil {
		g.renderer = render.New(renderSettings(Config()), g.cfg.timeout, g.logger.Named("render"))
	}
	return g, nil
}

// renderSettings maps the output configuration onto renderer settings.
func renderSettings(c PDFConfig) render.Settings {
	return render.Settings{
		WidthMM:     c.PageWidth,
		HeightMM:    c.PageHeight,
		Scale:       c.Scale,
		JPEGQuality: c.JPEGQuality(),
	}
}

// Generate renders all twelve months, assembles them into one PDF and checks
// the result before returning it.
//
// Progress is reported through the state manager after each page. On failure
// the state is marked failed and both a Failure result and the underlying
// error are returned. A panicking renderer is reported as ErrInternal; a
// panicking progress subscriber is not recovered.
func (g *Generator) Generate(ctx context.Context) (Result, error) {
	start := time.Now()

	months, err := calendar.Build(CalendarYear, g.cfg.weekStart)
	if err != nil {
		return g.fail(err)
	}

	total := len(months)
	g.state.Start(total)
	g.logger.Info("generation started", zap.Int("pages", total), zap.Stringer("weekStart", g.cfg.weekStart))

	footer, err := dateutil.Expand(g.cfg.footer, g.cfg.now())
	if err != nil {
		return g.fail(fmt.Errorf("footer: %w", err))
	}

	doc := calendar.Document{
		Title:  g.cfg.title,
		Sheet:  calendar.Sheet{WidthMM: PageWidthMM, HeightMM: PageHeightMM},
		Notes:  g.cfg.notes,
		Footer: footer,
	}

	images := make([][]byte, 0, total)
	for i, m := range months {
		if err := ctx.Err(); err != nil {
			return g.fail(err)
		}

		html, err := g.pages.HTML(ctx, doc, m)
		if err != nil {
			return g.fail(fmt.Errorf("building %s: %w", m.Title(), err))
		}

		img, err := g.capture(ctx, html)
		if err != nil {
			return g.fail(fmt.Errorf("rendering %s: %w", m.Title(), err))
		}
		images = append(images, img)

		page := i + 1
		g.logger.Debug("page rendered", zap.String("month", m.Title()), zap.Int("page", page), zap.Int("bytes", len(img)))
		if err := g.state.UpdateProgress(page, progressMessage(m, page, total)); err != nil {
			return g.fail(fmt.Errorf("progress subscriber: %w", err))
		}
	}

	pdf, err := g.assemble(ctx, images)
	if err != nil {
		return g.fail(fmt.Errorf("assembling PDF: %w", err))
	}

	if err := verifyPDF(pdf, total); err != nil {
		return g.fail(err)
	}

	g.state.Complete()
	g.logger.Info("generation complete", zap.Int("bytes", len(pdf)), zap.Duration("elapsed", time.Since(start)))
	return NewSuccess(pdf), nil
}

// capture calls the renderer, turning a panic into ErrInternal.
func (g *Generator) capture(ctx context.Context, html string) (img []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			img, err = nil, fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()
	return g.renderer.CapturePage(ctx, html)
}

// assemble calls the renderer, turning a panic into ErrInternal.
func (g *Generator) assemble(ctx context.Context, images [][]byte) (pdf []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			pdf, err = nil, fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()
	return g.renderer.Assemble(ctx, images)
}

// fail records err on the state manager and shapes the failure result.
func (g *Generator) fail(err error) (Result, error) {
	msg := err.Error()
	g.state.Fail(msg)
	g.logger.Error("generation failed", zap.Error(err))
	return NewFailure(msg), err
}

func progressMessage(m calendar.Month, page, total int) string {
	return fmt.Sprintf("Rendered %s (%d/%d)", m.Title(), page, total)
}

// verifyPDF checks that pdf has want pages, each of the configured size.
func verifyPDF(pdf []byte, want int) error {
	doc, err := inspect.Open(pdf)
	if err != nil {
		return err
	}
	n, err := doc.PageCount()
	if err != nil {
		return err
	}
	if n != want {
		return fmt.Errorf("%w: got %d, want %d", ErrPageCount, n, want)
	}
	for p := 1; p <= n; p++ {
		w, h, err := doc.PageSizeMM(p)
		if err != nil {
			return err
		}
		if !ValidatePageDimensions(w, h) {
			return fmt.Errorf("%w: page %d is %vx%v mm, want %dx%d mm", ErrPageSize, p, w, h, PageWidthMM, PageHeightMM)
		}
	}
	return nil
}

// State returns a snapshot of the current generation state.
func (g *Generator) State() GenerationState {
	return g.state.State()
}

// OnProgress registers fn for per-page progress notifications.
func (g *Generator) OnProgress(fn ProgressFunc) {
	g.state.OnProgress(fn)
}

// Close releases resources (headless Chrome browser).
func (g *Generator) Close() error {
	if g.renderer != nil {
		return g.renderer.Close()
	}
	return nil
}
