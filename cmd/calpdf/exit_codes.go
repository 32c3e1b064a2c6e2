package main

import (
	"context"
	"errors"
	"os"

	"github.com/newswise/calpdf"
	"github.com/newswise/calpdf/internal/config"
)

// Exit codes for the calpdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // PDF written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors

	ExitInterrupted = 130 // Canceled by SIGINT/SIGTERM (128 + SIGINT)
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// User interrupt (exit 130)
	if errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}

	// Browser errors (exit 4)
	if errors.Is(err, calpdf.ErrBrowserConnect) ||
		errors.Is(err, calpdf.ErrPageCreate) ||
		errors.Is(err, calpdf.ErrPageLoad) ||
		errors.Is(err, calpdf.ErrPageCapture) ||
		errors.Is(err, calpdf.ErrPDFGeneration) ||
		errors.Is(err, context.DeadlineExceeded) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrEnvFile) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, calpdf.ErrInvalidWeekStart) ||
		errors.Is(err, calpdf.ErrTitleTooLong) ||
		errors.Is(err, calpdf.ErrInvalidFooter) ||
		errors.Is(err, calpdf.ErrStyleNotFound) ||
		errors.Is(err, calpdf.ErrTemplateNotFound) ||
		errors.Is(err, calpdf.ErrInvalidAssetName) ||
		errors.Is(err, calpdf.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrUnexpectedArgs) {
		return ExitUsage
	}

	return ExitGeneral
}
