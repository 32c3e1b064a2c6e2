// Package hints appends actionable advice to CLI error messages.
// Every hint is formatted as "\n  hint: <text>".
package hints

import (
	"os"
	"strings"

	"github.com/newswise/calpdf/internal/fileutil"
)

// IsInContainer detects Docker by the /.dockerenv marker file.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect suggests the go-rod environment variables that usually
// fix a failed Chrome launch.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use an installed Chrome")
	}

	return formatHints(hints)
}

// ForTimeout suggests raising the render timeout.
func ForTimeout() string {
	return format("rendering twelve pages on a cold browser can be slow, use --timeout 3m")
}

// ForConfigNotFound suggests --config, or the user config location that was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/calendar.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(filepathSlash(p), ".config/calpdf") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForStyleNotFound lists the ways to provide a page style.
func ForStyleNotFound() string {
	return format("use --style default or newsroom, or add styles/<name>.css under --asset-path")
}

// ForOutputDirectory is shown when the output file cannot be written.
func ForOutputDirectory() string {
	return format("check the output directory is writable or pass --output")
}

func filepathSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
