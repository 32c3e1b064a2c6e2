package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/newswise/calpdf/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // CALPDF_CONFIG: config file name or path
	OutputDir  string        // CALPDF_OUTPUT_DIR: output directory
	Title      string        // CALPDF_TITLE: brand title on every page
	WeekStart  string        // CALPDF_WEEK_START: monday or sunday
	Style      string        // CALPDF_STYLE: page style name
	Footer     string        // CALPDF_FOOTER: footer line
	AssetPath  string        // CALPDF_ASSET_PATH: theme directory
	Timeout    time.Duration // CALPDF_TIMEOUT: browser timeout
}

// knownEnvVars lists valid CALPDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"CALPDF_CONFIG":     true,
	"CALPDF_OUTPUT_DIR": true,
	"CALPDF_TITLE":      true,
	"CALPDF_WEEK_START": true,
	"CALPDF_STYLE":      true,
	"CALPDF_FOOTER":     true,
	"CALPDF_ASSET_PATH": true,
	"CALPDF_TIMEOUT":    true,
}

// loadEnvFile reads KEY=value pairs from path into the process environment.
// Variables that are already set win over the file.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEnvFile, path, err)
	}
	return nil
}

// loadEnvConfig reads configuration from environment variables.
// An unparsable or non-positive CALPDF_TIMEOUT is ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("CALPDF_CONFIG"),
		OutputDir:  os.Getenv("CALPDF_OUTPUT_DIR"),
		Title:      os.Getenv("CALPDF_TITLE"),
		WeekStart:  os.Getenv("CALPDF_WEEK_START"),
		Style:      os.Getenv("CALPDF_STYLE"),
		Footer:     os.Getenv("CALPDF_FOOTER"),
		AssetPath:  os.Getenv("CALPDF_ASSET_PATH"),
	}

	if timeout := os.Getenv("CALPDF_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars prints warnings for unrecognized CALPDF_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "CALPDF_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment values over the loaded config.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags). The timeout is resolved
// separately in resolveTimeout.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Title != "" {
		cfg.Calendar.Title = env.Title
	}
	if env.WeekStart != "" {
		cfg.Calendar.WeekStart = env.WeekStart
	}
	if env.Style != "" {
		cfg.Calendar.Style = env.Style
	}
	if env.Footer != "" {
		cfg.Calendar.Footer = env.Footer
	}
	if env.AssetPath != "" {
		cfg.Render.AssetPath = env.AssetPath
	}
}
