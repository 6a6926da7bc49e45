package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	flag "github.com/spf13/pflag"

	"github.com/punnyland/cornsmith/internal/corpus"
	"github.com/punnyland/cornsmith/internal/curate"
)

// runAudit implements the "audit" subcommand: corpus health reports.
func runAudit(args []string) int {
	fs := flag.NewFlagSet("audit", flag.ContinueOnError)
	var (
		configPath string
		outDir     string
		verbose    bool
	)
	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&outDir, "out", "o", "", "Directory to write <name>.audit.json reports to")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Verbose diagnostics on stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cornsmith audit [flags] [corpus...]\n\n"+
			"Audit corpus health: distribution, balance, issues, duplicates.\n\n"+
			"Corpus arguments may be paths or doublestar glob patterns\n"+
			"(for example 'data/**/*.json'). With no arguments the configured\n"+
			"corpus is audited.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return fail(err)
	}
	curator, err := cfg.CuratorWith(newLogger(verbose))
	if err != nil {
		return fail(err)
	}
	validator, err := cfg.Validator()
	if err != nil {
		return fail(err)
	}

	paths, err := expandCorpusArgs(fs.Args(), cfg.Corpus)
	if err != nil {
		return fail(err)
	}

	for _, path := range paths {
		c, err := corpus.Load(path)
		if err != nil {
			return fail(err)
		}
		report := curator.Audit(c, validator)

		if outDir == "" {
			if err := printJSON(report); err != nil {
				return fail(err)
			}
			continue
		}
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		reportPath := filepath.Join(outDir, base+".audit.json")
		if err := corpus.WriteReport(reportPath, report); err != nil {
			return fail(err)
		}
		fmt.Printf("audit report: %s\n", reportPath)
	}
	return 0
}

// expandCorpusArgs resolves corpus arguments, expanding doublestar
// patterns against the filesystem. Plain paths pass through untouched
// so a missing file still reports a read error instead of vanishing.
func expandCorpusArgs(args []string, fallback string) ([]string, error) {
	if len(args) == 0 {
		return []string{fallback}, nil
	}

	paths := make([]string, 0, len(args))
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			paths = append(paths, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad corpus pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("corpus pattern %q matched nothing", arg)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

// runDupes implements the "dupes" subcommand: near-duplicate report.
func runDupes(args []string) int {
	fs := flag.NewFlagSet("dupes", flag.ContinueOnError)
	var (
		configPath string
		corpusFile string
		threshold  float64
	)
	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVar(&corpusFile, "corpus", "", "Override corpus file path")
	fs.Float64VarP(&threshold, "threshold", "t", 0, "Similarity threshold 0-100 (0 uses the configured value)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cornsmith dupes [flags]\n\n"+
			"Report near-duplicate corpus entries as JSON.\n"+
			"Exits 1 when duplicates are found.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "cornsmith: dupes takes no arguments\n")
		return 2
	}
	if threshold < 0 || threshold > 100 {
		return fail(fmt.Errorf("threshold %g is out of range (0-100]", threshold))
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return fail(err)
	}
	if threshold == 0 {
		threshold = cfg.Curator.SimilarityThreshold
	}

	c, err := corpus.Load(corpusPath(corpusFile, cfg))
	if err != nil {
		return fail(err)
	}
	candidates := curate.FindDuplicates(c, threshold)
	if err := printJSON(candidates); err != nil {
		return fail(err)
	}
	if len(candidates) > 0 {
		return 1
	}
	return 0
}

// runDrift implements the "drift" subcommand: compare two audits.
func runDrift(args []string) int {
	fs := flag.NewFlagSet("drift", flag.ContinueOnError)
	var (
		baselinePath  string
		candidatePath string
		outPath       string
	)
	fs.StringVar(&baselinePath, "baseline", "", "Path to baseline audit report json")
	fs.StringVar(&candidatePath, "candidate", "", "Path to candidate audit report json")
	fs.StringVarP(&outPath, "out", "o", "", "Path to write drift report json (default stdout)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cornsmith drift --baseline a.json --candidate b.json [flags]\n\n"+
			"Compare two audit reports: per-level count and share deltas.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if baselinePath == "" || candidatePath == "" {
		return fail(errors.New("drift requires --baseline and --candidate"))
	}

	baseline, err := curate.ReadAudit(baselinePath)
	if err != nil {
		return fail(err)
	}
	candidate, err := curate.ReadAudit(candidatePath)
	if err != nil {
		return fail(err)
	}
	drift := curate.CompareAudits(baseline, candidate)

	if outPath == "" {
		if err := printJSON(drift); err != nil {
			return fail(err)
		}
		return 0
	}
	if err := corpus.WriteReport(outPath, drift); err != nil {
		return fail(err)
	}
	fmt.Printf("drift report: %s\n", outPath)
	return 0
}

// runStats implements the "stats" subcommand: per-level counts.
func runStats(args []string) int {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	var (
		configPath string
		corpusFile string
		asJSON     bool
	)
	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVar(&corpusFile, "corpus", "", "Override corpus file path")
	fs.BoolVar(&asJSON, "json", false, "Emit statistics as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cornsmith stats [flags]\n\n"+
			"Print per-level and total corpus counts.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return fail(err)
	}
	c, err := corpus.Load(corpusPath(corpusFile, cfg))
	if err != nil {
		return fail(err)
	}

	if asJSON {
		if err := printJSON(c.Stats()); err != nil {
			return fail(err)
		}
		return 0
	}

	stats := c.Stats()
	for _, level := range c.Levels() {
		s := stats[level]
		fmt.Printf("level %d: %4d jokes (%5.1f%%)  length min/avg/max %d/%.0f/%d\n",
			level, s.Count, 100*s.Share, s.MinLength, s.AvgLength, s.MaxLength)
	}
	fmt.Printf("total:   %4d jokes  balance %.1f\n", c.Total(), curate.BalanceScore(c))
	return 0
}
