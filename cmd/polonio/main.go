// Command polonio is the CLI entry point for the Polonio templating
// language: it dispatches help/version/run/serve and, for any other
// non-flag argument, treats it as a file to run (spec.md §6).
package main

import (
	"fmt"
	"os"

	polonio "github.com/gabitoju/polonio"
)

const version = "0.1.0"

func printUsage(w *os.File) {
	fmt.Fprint(w, `Usage: polonio <command|file>

Commands:
  polonio help                Show this help message
  polonio version             Show version information
  polonio run <file.pol>      Run a Polonio template
  polonio <file.pol>          Shorthand for run
  polonio serve ...           Development server (coming soon)
`)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage(os.Stderr)
		return 1
	}

	command := args[0]
	switch {
	case command == "help":
		printUsage(os.Stdout)
		return 0
	case command == "version":
		fmt.Println(version)
		return 0
	case command == "run":
		return handleRun(args[1:])
	case command == "serve":
		fmt.Fprintln(os.Stderr, "serve: not implemented yet")
		return 1
	case !isFlag(command) && !isKnownCommand(command):
		return handleRun(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage(os.Stderr)
		return 1
	}
}

func handleRun(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "run: missing file argument")
		printUsage(os.Stderr)
		return 1
	}
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "run: too many arguments")
		printUsage(os.Stderr)
		return 1
	}

	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, formatIOError(path, err))
		return 1
	}

	output, err := polonio.Run(string(content), path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	fmt.Print(output)
	return 0
}

func formatIOError(path string, err error) string {
	return fmt.Sprintf("%s:1:1: %s", path, err.Error())
}

func isFlag(arg string) bool {
	return len(arg) > 0 && arg[0] == '-'
}

func isKnownCommand(arg string) bool {
	switch arg {
	case "help", "version", "run", "serve":
		return true
	default:
		return false
	}
}
