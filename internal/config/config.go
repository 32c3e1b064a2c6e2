// Package config loads the optional YAML file that customizes calendar content
// and rendering. Page geometry, quality and the output filename are fixed and
// cannot be configured.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/newswise/calpdf/internal/calendar"
	"github.com/newswise/calpdf/internal/fileutil"
	"github.com/newswise/calpdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// Field length limits. Title and footer use calendar.MaxTitleLength and
// calendar.MaxFooterLength.
const (
	MaxNoteLength  = 2000
	MaxPathLength  = 4096
	MaxStyleLength = 64
)

// Week start values accepted in calendar.weekStart.
const (
	WeekStartMonday = "monday"
	WeekStartSunday = "sunday"
)

// appDir is the directory under the user config dir searched for named configs.
const appDir = "calpdf"

// Config holds every user-adjustable setting.
type Config struct {
	Calendar CalendarConfig `yaml:"calendar"`
	Output   OutputConfig   `yaml:"output"`
	Render   RenderConfig   `yaml:"render"`
}

// CalendarConfig defines page content.
type CalendarConfig struct {
	Title     string      `yaml:"title"`
	WeekStart string      `yaml:"weekStart"` // "monday" (default) or "sunday"
	Style     string      `yaml:"style"`     // stylesheet name, empty = "default"
	Footer    string      `yaml:"footer"`    // supports {date} and {date:FORMAT}
	Notes     []MonthNote `yaml:"notes"`
}

// MonthNote is Markdown text printed under one month's grid.
type MonthNote struct {
	Month int    `yaml:"month"` // 1-12
	Text  string `yaml:"text"`
}

// OutputConfig defines where the PDF is written.
type OutputConfig struct {
	Dir string `yaml:"dir"` // empty = current directory
}

// RenderConfig defines browser rendering options.
type RenderConfig struct {
	Timeout   string `yaml:"timeout"`   // Go duration, e.g. "90s"
	AssetPath string `yaml:"assetPath"` // theme directory with styles/ and templates/
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Calendar: CalendarConfig{
			Title:     calendar.DefaultTitle,
			WeekStart: WeekStartMonday,
		},
	}
}

// Validate checks field lengths and enumerated values.
// Called by LoadConfig; exported for callers that build Config by hand.
func (c *Config) Validate() error {
	if err := validateFieldLength("calendar.title", c.Calendar.Title, calendar.MaxTitleLength); err != nil {
		return err
	}

	switch strings.ToLower(c.Calendar.WeekStart) {
	case "", WeekStartMonday, WeekStartSunday:
	default:
		return fmt.Errorf("%w: calendar.weekStart %q (must be monday or sunday)", ErrInvalidField, c.Calendar.WeekStart)
	}

	seen := make(map[int]bool, len(c.Calendar.Notes))
	for i, n := range c.Calendar.Notes {
		if n.Month < 1 || n.Month > 12 {
			return fmt.Errorf("%w: calendar.notes[%d].month %d (must be 1-12)", ErrInvalidField, i, n.Month)
		}
		if seen[n.Month] {
			return fmt.Errorf("%w: calendar.notes[%d].month %d is duplicated", ErrInvalidField, i, n.Month)
		}
		seen[n.Month] = true
		if err := validateFieldLength(fmt.Sprintf("calendar.notes[%d].text", i), n.Text, MaxNoteLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("calendar.style", c.Calendar.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("calendar.footer", c.Calendar.Footer, calendar.MaxFooterLength); err != nil {
		return err
	}

	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.assetPath", c.Render.AssetPath, MaxPathLength); err != nil {
		return err
	}

	if c.Render.Timeout != "" {
		if _, err := c.TimeoutDuration(); err != nil {
			return err
		}
	}

	return nil
}

// WeekStartDay returns the first weekday column of the month grid.
func (c *Config) WeekStartDay() time.Weekday {
	if strings.EqualFold(c.Calendar.WeekStart, WeekStartSunday) {
		return time.Sunday
	}
	return time.Monday
}

// NotesByMonth indexes notes by month. Empty texts are skipped.
func (c *Config) NotesByMonth() map[time.Month]string {
	notes := make(map[time.Month]string, len(c.Calendar.Notes))
	for _, n := range c.Calendar.Notes {
		if strings.TrimSpace(n.Text) == "" {
			continue
		}
		notes[time.Month(n.Month)] = n.Text
	}
	return notes
}

// TimeoutDuration parses render.timeout. Zero means "use the default".
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Render.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Render.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: render.timeout %q: %v", ErrInvalidField, c.Render.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: render.timeout %q (must be positive)", ErrInvalidField, c.Render.Timeout)
	}
	return d, nil
}

// validateFieldLength counts runes, matching the limits NewGenerator applies.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if n := utf8.RuneCountInString(value); n > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, n, maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is read as a file; otherwise it is
// searched for by name (see SearchPaths). Missing files are an error.
// Unset fields keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists, in lookup order, the files tried for a config name:
// ./name.yaml, ./name.yml, then the same under <user config dir>/calpdf/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDir, name+ext))
		}
	}

	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
