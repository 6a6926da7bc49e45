package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"github.com/punnyland/cornsmith/internal/corn"
	"github.com/punnyland/cornsmith/internal/output"
)

// runRate implements the "rate" subcommand: rate jokes given as
// arguments, or piped one per line on stdin.
func runRate(args []string) int {
	fs := flag.NewFlagSet("rate", flag.ContinueOnError)
	var (
		configPath string
		asJSON     bool
	)
	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.BoolVar(&asJSON, "json", false, "Emit full ratings as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cornsmith rate [flags] [jokes...]\n\n"+
			"Rate joke corniness on the 1-5 scale.\n\n"+
			"Jokes are passed as arguments, or one per line on stdin when piped.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	jokes := fs.Args()
	if len(jokes) == 0 {
		if !isStdinPipe() {
			fs.Usage()
			return 2
		}
		var err error
		jokes, err = readLines(os.Stdin)
		if err != nil {
			return fail(err)
		}
	}
	if len(jokes) == 0 {
		return 0
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return fail(err)
	}
	rater, err := cfg.Rater()
	if err != nil {
		return fail(err)
	}

	ratings := make([]corn.Rating, 0, len(jokes))
	invalid := 0
	for _, joke := range jokes {
		rating := rater.Rate(joke)
		ratings = append(ratings, rating)
		if !rating.Valid {
			invalid++
		}
	}

	var formatter output.Formatter = &output.TextFormatter{Color: isatty.IsTerminal(os.Stdout.Fd())}
	if asJSON {
		formatter = &output.JSONFormatter{}
	}
	if err := formatter.Format(os.Stdout, ratings); err != nil {
		return fail(err)
	}

	if invalid > 0 {
		return 1
	}
	return 0
}

func readLines(f *os.File) ([]string, error) {
	lines := make([]string, 0)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return lines, nil
}
