package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: calpdf [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Render the calendar PDF (default)")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'calpdf help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: calpdf generate [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render twelve A4 landscape month pages into NewsWise_2026_Calendar.pdf.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: current directory)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --env-file <path>     Load CALPDF_* variables from a dotenv file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Calendar:")
	fmt.Fprintln(w, "      --title <s>           Brand title printed on every page")
	fmt.Fprintln(w, "      --week-start <s>      First weekday column: monday, sunday")
	fmt.Fprintln(w, "  -s, --style <name>        Page style: default, newsroom, or one from --asset-path")
	fmt.Fprintln(w, "      --footer <s>          Footer line; {date} or {date:long} expand to today")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -t, --timeout <d>         Browser timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --asset-path <dir>    Theme directory with styles/*.css and templates/month.html")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  CALPDF_CONFIG, CALPDF_OUTPUT_DIR, CALPDF_TITLE, CALPDF_WEEK_START,")
	fmt.Fprintln(w, "  CALPDF_STYLE, CALPDF_FOOTER, CALPDF_ASSET_PATH, CALPDF_TIMEOUT.")
	fmt.Fprintln(w, "  Flags override environment, which overrides the config file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success, 1 general error, 2 usage/config, 3 file I/O, 4 browser, 130 interrupted")
}

// runHelp prints help for the command named in args.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: calpdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Print the calpdf version.")
	case "help":
		printUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "unknown help topic: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
