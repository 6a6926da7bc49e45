package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir string, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".cornsmith.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_PartialConfigFillsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), `
corpus: data/jokes.json
validate:
  max_length: 200
curator:
  similarity_threshold: 90
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Corpus != "data/jokes.json" {
		t.Fatalf("Corpus = %q", cfg.Corpus)
	}
	if cfg.Validate.MaxLength != 200 {
		t.Fatalf("MaxLength = %d, want 200", cfg.Validate.MaxLength)
	}
	if len(cfg.Validate.ForbiddenTerms) == 0 {
		t.Fatal("forbidden terms not defaulted")
	}
	if len(cfg.PunSignals.Vocabulary) == 0 {
		t.Fatal("pun vocabulary not defaulted")
	}
	if cfg.Curator.SimilarityThreshold != 90 {
		t.Fatalf("SimilarityThreshold = %f, want 90", cfg.Curator.SimilarityThreshold)
	}
}

func TestLoad_EmptyConfigEqualsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Corpus != DefaultCorpusPath {
		t.Fatalf("Corpus = %q, want %q", cfg.Corpus, DefaultCorpusPath)
	}
	if len(cfg.Validate.ExplanationMarkers) == 0 || len(cfg.PunSignals.SoundAlikes) == 0 {
		t.Fatal("defaults not applied to empty config")
	}
}

func TestLoad_Rejections(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "corpus: [", "parsing config file"},
		{"inverted lengths", "validate:\n  min_length: 100\n  max_length: 50\n", "min_length 100 exceeds max_length 50"},
		{"similarity out of range", "curator:\n  similarity_threshold: 150\n", "similarity_threshold"},
		{"confidence out of range", "curator:\n  high_confidence: 1.5\n", "high_confidence"},
		{"inverted tiers", "curator:\n  high_confidence: 0.3\n  medium_confidence: 0.5\n", "medium_confidence exceeds high_confidence"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeConfig(t, t.TempDir(), tc.content)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("Load error = %v, want containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	want := writeConfig(t, root, "corpus: jokes.json\n")

	got, err := Discover(nested)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if got != want {
		t.Fatalf("Discover = %q, want %q", got, want)
	}
}

func TestDiscover_StopsAtGitBoundary(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeConfig(t, root, "corpus: jokes.json\n")

	repo := filepath.Join(root, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	inner := filepath.Join(repo, "pkg")
	if err := os.MkdirAll(inner, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := Discover(inner)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if got != "" {
		t.Fatalf("Discover = %q, want empty (config above the repo root)", got)
	}
}

func TestBuilders(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if _, err := cfg.Rater(); err != nil {
		t.Fatalf("Rater: %v", err)
	}
	if _, err := cfg.Validator(); err != nil {
		t.Fatalf("Validator: %v", err)
	}
	if _, err := cfg.CuratorWith(nil); err != nil {
		t.Fatalf("CuratorWith: %v", err)
	}
}
