package curate

import (
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/punnyland/cornsmith/internal/clean"
	"github.com/punnyland/cornsmith/internal/corn"
	"github.com/punnyland/cornsmith/internal/corpus"
	"github.com/punnyland/cornsmith/internal/log"
)

// Confidence tier labels for planned moves.
const (
	TierHigh   = "high"
	TierMedium = "medium"
	TierLow    = "low"
)

// Default confidence tier cut-offs.
const (
	DefaultHighConfidence   = 0.6
	DefaultMediumConfidence = 0.4
)

// Config tunes the curator's thresholds.
type Config struct {
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	HighConfidence      float64 `yaml:"high_confidence"`
	MediumConfidence    float64 `yaml:"medium_confidence"`
}

// DefaultCuratorConfig returns the built-in curator thresholds.
func DefaultCuratorConfig() Config {
	return Config{
		SimilarityThreshold: DefaultSimilarityThreshold,
		HighConfidence:      DefaultHighConfidence,
		MediumConfidence:    DefaultMediumConfidence,
	}
}

// Move is one planned relocation of a joke to its predicted level.
type Move struct {
	Joke       string  `json:"joke"`
	FromLevel  int     `json:"from_level"`
	ToLevel    int     `json:"to_level"`
	Confidence float64 `json:"confidence"`
	Tier       string  `json:"tier"`
}

// Plan is the computed set of corpus entries whose predicted level
// differs from their stored level. Moves keep corpus order, so a plan
// is reproducible for the same corpus and configuration.
type Plan struct {
	Total          int    `json:"total"`
	AlreadyCorrect int    `json:"already_correct"`
	Moves          []Move `json:"moves,omitempty"`
}

// TierCounts returns how many planned moves fall into each tier.
func (p Plan) TierCounts() map[string]int {
	counts := map[string]int{TierHigh: 0, TierMedium: 0, TierLow: 0}
	for _, move := range p.Moves {
		counts[move.Tier]++
	}
	return counts
}

// Recorder persists the history of applied curation runs. Implemented
// by the ledger; a nil Recorder disables history.
type Recorder interface {
	RecordRun(runID string, minConfidence float64, applied int, skipped int) error
	RecordMove(runID string, fromLevel int, toLevel int, joke string) error
}

// Curator plans and applies corpus maintenance operations.
type Curator struct {
	cfg        Config
	classifier *corn.Classifier
	logger     *log.Logger
}

// New builds a curator. A nil logger disables diagnostics.
func New(cfg Config, classifier *corn.Classifier, logger *log.Logger) *Curator {
	if cfg.SimilarityThreshold <= 0 {
		cfg.SimilarityThreshold = DefaultSimilarityThreshold
	}
	if cfg.HighConfidence <= 0 {
		cfg.HighConfidence = DefaultHighConfidence
	}
	if cfg.MediumConfidence <= 0 {
		cfg.MediumConfidence = DefaultMediumConfidence
	}
	if logger == nil {
		logger = &log.Logger{}
	}
	return &Curator{cfg: cfg, classifier: classifier, logger: logger}
}

// Plan classifies every stored joke and returns the moves needed to
// bring the corpus in line with its predicted levels. Plan never
// mutates the corpus.
func (cu *Curator) Plan(c corpus.Corpus) Plan {
	plan := Plan{Total: c.Total()}
	for _, level := range c.Levels() {
		for _, joke := range c[level] {
			predicted, confidence := cu.classifier.Classify(joke)
			if predicted == level {
				plan.AlreadyCorrect++
				continue
			}
			plan.Moves = append(plan.Moves, Move{
				Joke:       joke,
				FromLevel:  level,
				ToLevel:    predicted,
				Confidence: confidence,
				Tier:       cu.tier(confidence),
			})
		}
	}
	cu.logger.Printf("plan: %d jokes, %d already correct, %d moves", plan.Total, plan.AlreadyCorrect, len(plan.Moves))
	return plan
}

func (cu *Curator) tier(confidence float64) string {
	switch {
	case confidence >= cu.cfg.HighConfidence:
		return TierHigh
	case confidence >= cu.cfg.MediumConfidence:
		return TierMedium
	default:
		return TierLow
	}
}

// ApplyResult is the outcome of applying a plan to a corpus.
type ApplyResult struct {
	Corpus  corpus.Corpus
	Applied []Move
	Skipped int
}

// Apply executes the plan's moves at or above minConfidence on a clone
// of the corpus. Moves whose joke is no longer at the source level are
// counted as skipped rather than failing the batch, so a plan computed
// against a stale corpus still applies cleanly.
func (cu *Curator) Apply(c corpus.Corpus, plan Plan, minConfidence float64) ApplyResult {
	result := ApplyResult{Corpus: c.Clone()}
	for _, move := range plan.Moves {
		if move.Confidence < minConfidence {
			continue
		}
		if !result.Corpus.Move(move.Joke, move.FromLevel, move.ToLevel) {
			result.Skipped++
			cu.logger.Printf("skip: %q not found at level %d", move.Joke, move.FromLevel)
			continue
		}
		result.Applied = append(result.Applied, move)
	}
	return result
}

// ApplyOptions control a file-backed curation run.
type ApplyOptions struct {
	MinConfidence float64
	DryRun        bool
	NoBackup      bool
	Recorder      Recorder
}

// RunResult summarizes one file-backed curation run.
type RunResult struct {
	RunID      string `json:"run_id"`
	Plan       Plan   `json:"plan"`
	Applied    []Move `json:"applied,omitempty"`
	Skipped    int    `json:"skipped"`
	BackupPath string `json:"backup_path,omitempty"`
	DryRun     bool   `json:"dry_run"`
}

// Reclassify loads the corpus at path, plans, and applies the moves at
// or above MinConfidence. A backup is taken before the file is
// rewritten; if the backup fails the corpus file is left untouched.
// Dry runs plan and simulate but never write.
func (cu *Curator) Reclassify(path string, opts ApplyOptions) (*RunResult, error) {
	c, err := corpus.Load(path)
	if err != nil {
		return nil, err
	}

	result := &RunResult{RunID: ulid.Make().String(), DryRun: opts.DryRun}
	result.Plan = cu.Plan(c)

	applied := cu.Apply(c, result.Plan, opts.MinConfidence)
	result.Applied = applied.Applied
	result.Skipped = applied.Skipped

	if opts.DryRun || len(applied.Applied) == 0 {
		return result, nil
	}

	backupPath, err := cu.persist(path, applied.Corpus, opts.NoBackup)
	if err != nil {
		return nil, err
	}
	result.BackupPath = backupPath

	if err := cu.record(opts.Recorder, result, opts.MinConfidence); err != nil {
		return nil, err
	}
	return result, nil
}

// ChangedEntry is one joke rewritten by the cleaning pipeline.
type ChangedEntry struct {
	Level  int    `json:"level"`
	Index  int    `json:"index"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// CleanCorpus runs the strip-rule pipeline over every entry of a clone
// and returns the cleaned corpus with the list of changed entries.
func CleanCorpus(c corpus.Corpus) (corpus.Corpus, []ChangedEntry) {
	cleaned := c.Clone()
	changed := make([]ChangedEntry, 0)
	for _, level := range cleaned.Levels() {
		for i, joke := range cleaned[level] {
			after, modified := clean.Clean(joke)
			if !modified {
				continue
			}
			cleaned[level][i] = after
			changed = append(changed, ChangedEntry{Level: level, Index: i, Before: joke, After: after})
		}
	}
	return cleaned, changed
}

// CleanResult summarizes one file-backed cleaning run.
type CleanResult struct {
	RunID      string         `json:"run_id"`
	Total      int            `json:"total"`
	Changed    []ChangedEntry `json:"changed,omitempty"`
	BackupPath string         `json:"backup_path,omitempty"`
	DryRun     bool           `json:"dry_run"`
}

// CleanFile loads the corpus at path, cleans every entry, and writes
// the result back with the same backup discipline as Reclassify.
func (cu *Curator) CleanFile(path string, dryRun bool, noBackup bool) (*CleanResult, error) {
	c, err := corpus.Load(path)
	if err != nil {
		return nil, err
	}

	cleaned, changed := CleanCorpus(c)
	result := &CleanResult{
		RunID:   ulid.Make().String(),
		Total:   c.Total(),
		Changed: changed,
		DryRun:  dryRun,
	}
	if dryRun || len(changed) == 0 {
		return result, nil
	}

	backupPath, err := cu.persist(path, cleaned, noBackup)
	if err != nil {
		return nil, err
	}
	result.BackupPath = backupPath
	return result, nil
}

// persist backs up the corpus file, then atomically replaces it. The
// backup happens first so a persist failure is always recoverable.
func (cu *Curator) persist(path string, c corpus.Corpus, noBackup bool) (string, error) {
	backupPath := ""
	if !noBackup {
		var err error
		backupPath, err = corpus.Backup(path)
		if err != nil {
			return "", fmt.Errorf("backup before write: %w", err)
		}
		cu.logger.Printf("backup: %s", backupPath)
	}
	if err := corpus.Save(path, c); err != nil {
		return "", err
	}
	return backupPath, nil
}

func (cu *Curator) record(recorder Recorder, result *RunResult, minConfidence float64) error {
	if recorder == nil {
		return nil
	}
	if err := recorder.RecordRun(result.RunID, minConfidence, len(result.Applied), result.Skipped); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	for _, move := range result.Applied {
		if err := recorder.RecordMove(result.RunID, move.FromLevel, move.ToLevel, move.Joke); err != nil {
			return fmt.Errorf("record move: %w", err)
		}
	}
	return nil
}
