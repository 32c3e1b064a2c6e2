package calpdf

import (
	"maps"
	"time"

	"go.uber.org/zap"

	"github.com/newswise/calpdf/internal/calendar"
)

// Option configures a Generator.
type Option func(*Generator)

// generatorConfig holds internal configuration for Generator.
type generatorConfig struct {
	timeout   time.Duration
	weekStart time.Weekday
	title     string
	notes     map[time.Month]string
	style     string
	assetPath string
	footer    string
	now       func() time.Time
}

// Defaults applied by NewGenerator.
const (
	defaultTimeout  = 30 * time.Second
	DefaultTitle    = calendar.DefaultTitle
	MaxTitleLength  = calendar.MaxTitleLength
	MaxFooterLength = calendar.MaxFooterLength
)

// WithTimeout bounds each browser wait.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("calpdf: WithTimeout duration must be positive")
	}
	return func(g *Generator) {
		g.cfg.timeout = d
	}
}

// WithLogger sets the logger. A nil logger keeps the default no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithStateManager makes the generator report into m instead of a private
// manager, so callers can observe state they already hold.
func WithStateManager(m *StateManager) Option {
	return func(g *Generator) {
		if m != nil {
			g.state = m
		}
	}
}

// WithWeekStart sets the first column of every month grid.
// Only time.Sunday and time.Monday are accepted; NewGenerator rejects others.
func WithWeekStart(d time.Weekday) Option {
	return func(g *Generator) {
		g.cfg.weekStart = d
	}
}

// WithTitle sets the brand title printed on every page.
func WithTitle(title string) Option {
	return func(g *Generator) {
		g.cfg.title = title
	}
}

// WithNotes attaches a Markdown note to selected months. The map is copied.
func WithNotes(notes map[time.Month]string) Option {
	return func(g *Generator) {
		g.cfg.notes = maps.Clone(notes)
	}
}

// WithStyle selects the page stylesheet by name, e.g. "default" or
// "newsroom". With WithAssetPath the theme directory is searched first.
func WithStyle(name string) Option {
	return func(g *Generator) {
		g.cfg.style = name
	}
}

// WithAssetPath sets a theme directory holding styles/*.css and
// templates/month.html. Files it lacks fall back to the built-in assets.
func WithAssetPath(dir string) Option {
	return func(g *Generator) {
		g.cfg.assetPath = dir
	}
}

// WithFooter sets a line printed at the bottom of every page. {date} and
// {date:FORMAT} placeholders are replaced with the generation date; see
// package dateutil for the accepted formats. NewGenerator rejects a
// malformed placeholder with ErrInvalidFooter.
func WithFooter(text string) Option {
	return func(g *Generator) {
		g.cfg.footer = text
	}
}

// withClock replaces time.Now for footer dates (tests).
func withClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.cfg.now = now
	}
}

// withRenderer injects the page renderer (tests).
func withRenderer(r pageRenderer) Option {
	return func(g *Generator) {
		g.renderer = r
	}
}
