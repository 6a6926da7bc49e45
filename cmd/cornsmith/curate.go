package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/punnyland/cornsmith/internal/corpus"
	"github.com/punnyland/cornsmith/internal/curate"
	"github.com/punnyland/cornsmith/internal/ledger"
)

// runReclassify implements the "reclassify" subcommand: move jokes to
// their predicted levels.
func runReclassify(args []string) int {
	fs := flag.NewFlagSet("reclassify", flag.ContinueOnError)
	var (
		configPath    string
		corpusFile    string
		ledgerPath    string
		outPath       string
		minConfidence float64
		dryRun        bool
		noBackup      bool
		verbose       bool
	)
	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVar(&corpusFile, "corpus", "", "Override corpus file path")
	fs.StringVar(&ledgerPath, "ledger", "", "Record applied moves in this sqlite database")
	fs.StringVarP(&outPath, "out", "o", "", "Path to write the run result json (default stdout summary)")
	fs.Float64Var(&minConfidence, "min-confidence", curate.DefaultMediumConfidence, "Apply only moves at or above this confidence")
	fs.BoolVarP(&dryRun, "dry-run", "n", false, "Plan and simulate without writing the corpus")
	fs.BoolVar(&noBackup, "no-backup", false, "Skip the pre-write backup")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Verbose diagnostics on stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cornsmith reclassify [flags]\n\n"+
			"Classify every stored joke and move the confident mismatches to\n"+
			"their predicted level. The corpus file is backed up before it is\n"+
			"rewritten unless --no-backup is set.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "cornsmith: reclassify takes no arguments\n")
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

	opts := curate.ApplyOptions{
		MinConfidence: minConfidence,
		DryRun:        dryRun,
		NoBackup:      noBackup,
	}
	if ledgerPath != "" && !dryRun {
		l, err := ledger.Open(ledgerPath)
		if err != nil {
			return fail(err)
		}
		defer func() { _ = l.Close() }()
		opts.Recorder = l
	}

	result, err := curator.Reclassify(corpusPath(corpusFile, cfg), opts)
	if err != nil {
		return fail(err)
	}

	if outPath != "" {
		if err := corpus.WriteReport(outPath, result); err != nil {
			return fail(err)
		}
	}

	tiers := result.Plan.TierCounts()
	verb := "applied"
	if dryRun {
		verb = "would apply"
	}
	fmt.Printf("run %s: %d jokes, %d already correct\n", result.RunID, result.Plan.Total, result.Plan.AlreadyCorrect)
	fmt.Printf("moves: %d high, %d medium, %d low confidence\n",
		tiers[curate.TierHigh], tiers[curate.TierMedium], tiers[curate.TierLow])
	fmt.Printf("%s %d moves, skipped %d stale\n", verb, len(result.Applied), result.Skipped)
	if result.BackupPath != "" {
		fmt.Printf("backup: %s\n", result.BackupPath)
	}
	return 0
}

// runClean implements the "clean" subcommand: strip explanation cruft
// from every corpus entry.
func runClean(args []string) int {
	fs := flag.NewFlagSet("clean", flag.ContinueOnError)
	var (
		configPath string
		corpusFile string
		outPath    string
		dryRun     bool
		noBackup   bool
		verbose    bool
	)
	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVar(&corpusFile, "corpus", "", "Override corpus file path")
	fs.StringVarP(&outPath, "out", "o", "", "Path to write the run result json (default stdout summary)")
	fs.BoolVarP(&dryRun, "dry-run", "n", false, "Report what would change without writing the corpus")
	fs.BoolVar(&noBackup, "no-backup", false, "Skip the pre-write backup")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Verbose diagnostics on stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cornsmith clean [flags]\n\n"+
			"Run the strip-rule pipeline over every corpus entry, removing\n"+
			"trailing explanations, chat noise, and stray punctuation.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "cornsmith: clean takes no arguments\n")
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

	result, err := curator.CleanFile(corpusPath(corpusFile, cfg), dryRun, noBackup)
	if err != nil {
		return fail(err)
	}

	if outPath != "" {
		if err := corpus.WriteReport(outPath, result); err != nil {
			return fail(err)
		}
	}

	verb := "cleaned"
	if dryRun {
		verb = "would clean"
	}
	fmt.Printf("run %s: %s %d of %d entries\n", result.RunID, verb, len(result.Changed), result.Total)
	for _, entry := range result.Changed {
		fmt.Printf("  level %d entry %d:\n    - %s\n    + %s\n", entry.Level, entry.Index, entry.Before, entry.After)
	}
	if result.BackupPath != "" {
		fmt.Printf("backup: %s\n", result.BackupPath)
	}
	return 0
}
