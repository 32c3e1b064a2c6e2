package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/newswise/calpdf"
	"github.com/newswise/calpdf/internal/config"
	"github.com/newswise/calpdf/internal/fileutil"
	"github.com/newswise/calpdf/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrWritePDF       = errors.New("failed to write PDF file")
	ErrEnvFile        = errors.New("failed to load env file")
	ErrInvalidTimeout = errors.New("invalid timeout")
	ErrUnexpectedArgs = errors.New("unexpected arguments")
	ErrInvalidResult  = errors.New("generator returned an invalid result")
)

// runGenerate parses flags, resolves configuration, renders the calendar and
// writes it to <output dir>/<calpdf.Filename()>.
func runGenerate(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseGenerateFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedArgs, err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: %s", ErrUnexpectedArgs, strings.Join(positional, " "))
	}

	if flags.envFile != "" {
		if err := loadEnvFile(flags.envFile); err != nil {
			return err
		}
	}
	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	cfg, err := resolveConfig(flags, envCfg)
	if err != nil {
		return err
	}

	timeout, err := resolveTimeout(flags.timeout, envCfg, cfg)
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common.verbose)
	defer func() { _ = logger.Sync() }()

	opts := []calpdf.Option{
		calpdf.WithLogger(logger),
		calpdf.WithTitle(cfg.Calendar.Title),
		calpdf.WithWeekStart(cfg.WeekStartDay()),
		calpdf.WithNotes(cfg.NotesByMonth()),
		calpdf.WithStyle(cfg.Calendar.Style),
		calpdf.WithFooter(cfg.Calendar.Footer),
		calpdf.WithAssetPath(cfg.Render.AssetPath),
	}
	if timeout > 0 {
		opts = append(opts, calpdf.WithTimeout(timeout))
	}

	gen, err := env.NewGenerator(opts...)
	if err != nil {
		if errors.Is(err, calpdf.ErrStyleNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForStyleNotFound())
		}
		return err
	}
	defer func() { _ = gen.Close() }()

	if !flags.common.quiet {
		fmt.Fprintln(env.Stdout, calpdf.StatusStarting)
		gen.OnProgress(func(page, total int, msg string) error {
			fmt.Fprintf(env.Stdout, "[%2d/%d] %s\n", page, total, msg)
			return nil
		})
	}

	start := env.Now()
	res, err := gen.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generating calendar: %w%s", err, hintFor(err))
	}

	pdf, err := pdfBytes(res)
	if err != nil {
		return err
	}

	path, err := fileutil.WriteOutput(cfg.Output.Dir, calpdf.Filename(), pdf)
	if err != nil {
		return fmt.Errorf("%w: %v%s", ErrWritePDF, err, hints.ForOutputDirectory())
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "%s: %s", calpdf.StatusComplete, path)
		if flags.common.verbose {
			fmt.Fprintf(env.Stdout, " (%d bytes, %v)", len(pdf), env.Now().Sub(start).Round(time.Millisecond))
		}
		fmt.Fprintln(env.Stdout)
	}
	return nil
}

// resolveConfig loads the config file named by flag or env (flag wins), then
// layers env and flag values on top and validates the result.
func resolveConfig(flags *generateFlags, envCfg *envConfig) (*config.Config, error) {
	cfg := config.DefaultConfig()

	name := flags.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags applies explicitly set CLI flags over cfg.
func mergeFlags(flags *generateFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.calendar.title != "" {
		cfg.Calendar.Title = flags.calendar.title
	}
	if flags.calendar.weekStart != "" {
		cfg.Calendar.WeekStart = flags.calendar.weekStart
	}
	if flags.calendar.style != "" {
		cfg.Calendar.Style = flags.calendar.style
	}
	if flags.calendar.footer != "" {
		cfg.Calendar.Footer = flags.calendar.footer
	}
	if flags.assetPath != "" {
		cfg.Render.AssetPath = flags.assetPath
	}
}

// resolveTimeout picks the browser timeout: flag > env > config.
// Zero means the library default.
func resolveTimeout(flagValue string, envCfg *envConfig, cfg *config.Config) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidTimeout, flagValue, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: %q (must be positive)", ErrInvalidTimeout, flagValue)
		}
		return d, nil
	}
	if envCfg.Timeout > 0 {
		return envCfg.Timeout, nil
	}
	return cfg.TimeoutDuration()
}

// pdfBytes validates res and extracts the document.
func pdfBytes(res calpdf.Result) ([]byte, error) {
	if !calpdf.IsValidPDFResult(res) {
		return nil, ErrInvalidResult
	}
	switch v := res.(type) {
	case calpdf.Success:
		return v.Bytes(), nil
	case *calpdf.Success:
		return v.Bytes(), nil
	case calpdf.Failure:
		return nil, errors.New(v.Message)
	case *calpdf.Failure:
		return nil, errors.New(v.Message)
	default:
		return nil, ErrInvalidResult
	}
}

// hintFor returns advice for well-known generation failures.
func hintFor(err error) string {
	switch {
	case errors.Is(err, calpdf.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	default:
		return ""
	}
}
