package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// calendarFlags holds page content flags.
type calendarFlags struct {
	title     string
	weekStart string
	style     string
	footer    string
}

// generateFlags holds every flag of the generate command.
type generateFlags struct {
	common    commonFlags
	calendar  calendarFlags
	output    string
	timeout   string
	assetPath string
	envFile   string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addCalendarFlags adds page content flags to a FlagSet.
func addCalendarFlags(fs *flag.FlagSet, f *calendarFlags) {
	fs.StringVar(&f.title, "title", "", "brand title printed on every page")
	fs.StringVar(&f.weekStart, "week-start", "", "first weekday column: monday, sunday")
	fs.StringVarP(&f.style, "style", "s", "", "page style name (built-in: default, newsroom)")
	fs.StringVar(&f.footer, "footer", "", "footer line; {date} and {date:FORMAT} expand to today")
}

// parseGenerateFlags parses generate command flags and returns positional args.
// Usage is written to usageOut when parsing fails.
func parseGenerateFlags(args []string, usageOut io.Writer) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(usageOut)
	f := &generateFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "browser timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.assetPath, "asset-path", "", "theme directory with styles/ and templates/")
	fs.StringVar(&f.envFile, "env-file", "", "load CALPDF_* variables from a dotenv file")

	addCommonFlags(fs, &f.common)
	addCalendarFlags(fs, &f.calendar)

	fs.Usage = func() { printGenerateUsage(usageOut) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
