// Command cornsmith rates joke corniness and curates the joke corpus:
// auditing, deduplicating, cleaning, and reclassifying the level→jokes
// JSON database.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/punnyland/cornsmith/internal/config"
	"github.com/punnyland/cornsmith/internal/log"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: cornsmith <command> [flags]

Commands:
  rate        Rate jokes given as arguments or piped on stdin
  audit       Produce a corpus health report
  dupes       Report near-duplicate corpus entries
  reclassify  Move jokes to their predicted corniness levels
  clean       Strip explanation cruft from every corpus entry
  drift       Compare two audit reports
  stats       Print per-level corpus counts
  version     Print version and exit

Global flags:
  -h, --help      Show this help

Run 'cornsmith <command> --help' for more information on a command.
`

func run() int {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	first := os.Args[1]
	switch first {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	switch first {
	case "rate":
		return runRate(os.Args[2:])
	case "audit":
		return runAudit(os.Args[2:])
	case "dupes":
		return runDupes(os.Args[2:])
	case "reclassify":
		return runReclassify(os.Args[2:])
	case "clean":
		return runClean(os.Args[2:])
	case "drift":
		return runDrift(os.Args[2:])
	case "stats":
		return runStats(os.Args[2:])
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "cornsmith: unknown command %q\n\n%s", first, usageText)
		return 2
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("cornsmith %s\n", version)
}

// loadConfig loads configuration by either using the specified path or
// discovering a .cornsmith.yml from the current directory.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return config.Default(), nil
	}
	discovered, err := config.Discover(cwd)
	if err != nil || discovered == "" {
		return config.Default(), nil
	}
	return config.Load(discovered)
}

// corpusPath resolves the corpus file: the flag wins over the config.
func corpusPath(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.Corpus
}

func newLogger(verbose bool) *log.Logger {
	return &log.Logger{Enabled: verbose, Prefix: "cornsmith: ", W: os.Stderr}
}

// printJSON writes an indented JSON document to stdout.
func printJSON(value any) error {
	content, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(content))
	return nil
}

// isStdinPipe returns true if stdin is a pipe (not a terminal).
func isStdinPipe() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

func fail(err error) int {
	fmt.Fprintf(os.Stderr, "cornsmith: %v\n", err)
	return 2
}
