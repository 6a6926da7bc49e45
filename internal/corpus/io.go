package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/punnyland/cornsmith/internal/corn"
)

// Load reads and schema-checks a corpus file. The document must be a
// JSON object with exactly the keys "1" through "5", each holding a
// non-empty array of strings; anything else fails with a diagnostic
// naming the offending key. Entry-level content problems do not fail
// Load, they are surfaced by Verify.
func Load(path string) (Corpus, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return Parse(content)
}

// Parse decodes and schema-checks a corpus document.
func Parse(content []byte) (Corpus, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("parse corpus json: %w", err)
	}

	corpus := make(Corpus, corn.MaxLevel)
	for level := corn.MinLevel; level <= corn.MaxLevel; level++ {
		key := strconv.Itoa(level)
		entry, ok := raw[key]
		if !ok {
			return nil, fmt.Errorf("corpus key %q is missing", key)
		}
		delete(raw, key)

		var jokes []string
		if err := json.Unmarshal(entry, &jokes); err != nil {
			return nil, fmt.Errorf("corpus key %q must be an array of strings: %w", key, err)
		}
		if len(jokes) == 0 {
			return nil, fmt.Errorf("corpus key %q holds an empty array", key)
		}
		corpus[level] = jokes
	}

	if len(raw) > 0 {
		keys := make([]string, 0, len(raw))
		for key := range raw {
			keys = append(keys, key)
		}
		return nil, fmt.Errorf("corpus has unexpected keys: %s", strings.Join(keys, ", "))
	}
	return corpus, nil
}

// Save writes the corpus atomically: the document goes to a temp file
// in the target directory and is renamed into place, so a crash
// mid-write never leaves a truncated corpus behind.
func Save(path string, c Corpus) error {
	doc := make(map[string][]string, len(c))
	for level, jokes := range c {
		doc[strconv.Itoa(level)] = jokes
	}
	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal corpus: %w", err)
	}
	content = append(content, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".corpus-*.json")
	if err != nil {
		return fmt.Errorf("create temp corpus: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp corpus: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp corpus: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace corpus: %w", err)
	}
	return nil
}

// Backup copies the corpus file to an adjacent timestamp-ordered
// backup and returns the backup path. Mutating operations take a
// backup before writing; a backup failure must abort the mutation.
func Backup(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read corpus for backup: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name := fmt.Sprintf("%s.backup-%s.json", base, ulid.Make())
	backupPath := filepath.Join(filepath.Dir(path), name)
	if err := os.WriteFile(backupPath, content, 0o644); err != nil {
		return "", fmt.Errorf("write corpus backup: %w", err)
	}
	return backupPath, nil
}

// WriteReport writes an indented JSON report document.
func WriteReport(path string, value any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	content, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	content = append(content, '\n')
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
