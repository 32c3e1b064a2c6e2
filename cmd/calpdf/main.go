package main

import (
	"context"
	"fmt"
	"os"
	"slices"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	verbose := slices.Contains(os.Args, "-v") || slices.Contains(os.Args, "--verbose")

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := run(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// run dispatches the command in args and returns the process exit code.
// Without a command, or when the first argument is a flag, it generates.
func run(ctx context.Context, args []string, env *Environment) int {
	cmdArgs := args[1:]
	command := "generate"
	if len(cmdArgs) > 0 && !isFlag(cmdArgs[0]) {
		command, cmdArgs = cmdArgs[0], cmdArgs[1:]
	}

	switch command {
	case "generate":
		return report(env, runGenerate(ctx, cmdArgs, env))
	case "version":
		fmt.Fprintf(env.Stdout, "calpdf %s\n", Version)
		return ExitSuccess
	case "help":
		return runHelp(cmdArgs, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", command)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// report prints err, if any, and maps it to an exit code.
func report(env *Environment, err error) int {
	if err == nil {
		return ExitSuccess
	}
	code := exitCodeFor(err)
	if code == ExitInterrupted {
		fmt.Fprintln(env.Stderr, "interrupted: no PDF was written")
		return code
	}
	fmt.Fprintf(env.Stderr, "error: %v\n", err)
	return code
}

func isFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}
