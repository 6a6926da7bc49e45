// Package config loads the aggregate cornsmith configuration: content
// standards, pun vocabulary, classifier profiles, and curator
// thresholds, all from one YAML file. Every section is optional and
// falls back to the built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/punnyland/cornsmith/internal/corn"
	"github.com/punnyland/cornsmith/internal/curate"
	"github.com/punnyland/cornsmith/internal/log"
	"github.com/punnyland/cornsmith/internal/punsign"
	"github.com/punnyland/cornsmith/internal/validate"
)

const configFileName = ".cornsmith.yml"

// DefaultCorpusPath is used when neither the config file nor the CLI
// names a corpus.
const DefaultCorpusPath = "jokes.json"

// Config is the top-level configuration.
type Config struct {
	Corpus     string          `yaml:"corpus"`
	Validate   validate.Config `yaml:"validate"`
	PunSignals punsign.Config  `yaml:"pun_signals"`
	Classifier corn.Config     `yaml:"classifier"`
	Curator    curate.Config   `yaml:"curator"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Corpus:     DefaultCorpusPath,
		Validate:   validate.Default(),
		PunSignals: punsign.Default(),
		Classifier: corn.DefaultConfig(),
		Curator:    curate.DefaultCuratorConfig(),
	}
}

// Load reads and parses a config file, fills defaults for omitted
// sections, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Discover walks up the directory tree from startDir looking for a
// .cornsmith.yml config file. It stops at a .git directory (the
// repository root) or the filesystem root. Returns the path to the
// config file, or "" if none was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (cfg *Config) applyDefaults() {
	def := Default()
	if cfg.Corpus == "" {
		cfg.Corpus = def.Corpus
	}
	if cfg.Validate.ForbiddenTerms == nil {
		cfg.Validate.ForbiddenTerms = def.Validate.ForbiddenTerms
	}
	if cfg.Validate.ExplanationMarkers == nil {
		cfg.Validate.ExplanationMarkers = def.Validate.ExplanationMarkers
	}
	if cfg.PunSignals.SoundAlikes == nil {
		cfg.PunSignals.SoundAlikes = def.PunSignals.SoundAlikes
	}
	if cfg.PunSignals.Vocabulary == nil {
		cfg.PunSignals.Vocabulary = def.PunSignals.Vocabulary
	}
	if cfg.PunSignals.WordplayPhrases == nil {
		cfg.PunSignals.WordplayPhrases = def.PunSignals.WordplayPhrases
	}
	// Zero-valued lengths, profiles, and curator thresholds fall back
	// inside their packages' constructors.
}

func (cfg *Config) validate() error {
	if cfg.Validate.MaxLength < 0 || cfg.Validate.MinLength < 0 {
		return fmt.Errorf("validate: length bounds must be non-negative")
	}
	if cfg.Validate.MaxLength > 0 && cfg.Validate.MinLength > cfg.Validate.MaxLength {
		return fmt.Errorf("validate: min_length %d exceeds max_length %d", cfg.Validate.MinLength, cfg.Validate.MaxLength)
	}
	if cfg.Curator.SimilarityThreshold < 0 || cfg.Curator.SimilarityThreshold > 100 {
		return fmt.Errorf("curator: similarity_threshold must be between 0 and 100")
	}
	for name, v := range map[string]float64{
		"high_confidence":   cfg.Curator.HighConfidence,
		"medium_confidence": cfg.Curator.MediumConfidence,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("curator: %s must be between 0 and 1", name)
		}
	}
	if cfg.Curator.HighConfidence > 0 && cfg.Curator.MediumConfidence > cfg.Curator.HighConfidence {
		return fmt.Errorf("curator: medium_confidence exceeds high_confidence")
	}
	return nil
}

// Rater builds the configured joke rater.
func (cfg *Config) Rater() (*corn.Rater, error) {
	return corn.NewRater(cfg.Validate, cfg.Classifier, cfg.PunSignals)
}

// Validator builds the configured content validator.
func (cfg *Config) Validator() (*validate.Validator, error) {
	return validate.New(cfg.Validate)
}

// CuratorWith builds the configured curator wired to logger.
func (cfg *Config) CuratorWith(logger *log.Logger) (*curate.Curator, error) {
	extractor, err := punsign.New(cfg.PunSignals)
	if err != nil {
		return nil, err
	}
	classifier, err := corn.NewClassifier(cfg.Classifier, extractor)
	if err != nil {
		return nil, err
	}
	return curate.New(cfg.Curator, classifier, logger), nil
}
