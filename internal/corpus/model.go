// Package corpus models the joke corpus: a mapping from corniness
// level to an ordered list of joke strings, persisted as a single JSON
// document keyed "1" through "5". Loading enforces that shape; the
// content of individual entries is checked separately by Verify so a
// dirty corpus can still be loaded and repaired.
package corpus

import (
	"sort"
	"unicode/utf8"

	"github.com/punnyland/cornsmith/internal/corn"
)

// Corpus maps corniness level to the ordered jokes stored at that
// level. Order within a level is preserved across load and save.
type Corpus map[int][]string

// New returns an empty corpus with every level present.
func New() Corpus {
	c := make(Corpus, corn.MaxLevel)
	for level := corn.MinLevel; level <= corn.MaxLevel; level++ {
		c[level] = []string{}
	}
	return c
}

// Levels returns the corpus levels in ascending order.
func (c Corpus) Levels() []int {
	levels := make([]int, 0, len(c))
	for level := range c {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	return levels
}

// Total returns the number of jokes across all levels.
func (c Corpus) Total() int {
	total := 0
	for _, jokes := range c {
		total += len(jokes)
	}
	return total
}

// Counts returns the per-level joke counts.
func (c Corpus) Counts() map[int]int {
	counts := make(map[int]int, len(c))
	for level, jokes := range c {
		counts[level] = len(jokes)
	}
	return counts
}

// Clone returns a deep copy. Mutating batch operations work on a clone
// so a failed run never leaves the in-memory corpus half-modified.
func (c Corpus) Clone() Corpus {
	clone := make(Corpus, len(c))
	for level, jokes := range c {
		clone[level] = append([]string(nil), jokes...)
	}
	return clone
}

// Add appends a joke to a level.
func (c Corpus) Add(level int, joke string) {
	c[level] = append(c[level], joke)
}

// Remove deletes the first occurrence of joke at level and reports
// whether it was present. Callers moving jokes between levels use the
// report to count stale plan entries instead of failing the batch.
func (c Corpus) Remove(level int, joke string) bool {
	jokes := c[level]
	for i, current := range jokes {
		if current == joke {
			c[level] = append(jokes[:i], jokes[i+1:]...)
			return true
		}
	}
	return false
}

// Move relocates the first occurrence of joke from one level to
// another and reports whether the joke was found at the source level.
func (c Corpus) Move(joke string, fromLevel int, toLevel int) bool {
	if !c.Remove(fromLevel, joke) {
		return false
	}
	c.Add(toLevel, joke)
	return true
}

// LevelStats summarizes one level of the corpus.
type LevelStats struct {
	Count     int     `json:"count"`
	Share     float64 `json:"share"`
	MinLength int     `json:"min_length"`
	AvgLength float64 `json:"avg_length"`
	MaxLength int     `json:"max_length"`
}

// Stats computes per-level statistics over the corpus.
func (c Corpus) Stats() map[int]LevelStats {
	total := c.Total()
	stats := make(map[int]LevelStats, len(c))
	for level, jokes := range c {
		s := LevelStats{Count: len(jokes)}
		if total > 0 {
			s.Share = float64(len(jokes)) / float64(total)
		}
		lengthSum := 0
		for i, joke := range jokes {
			length := utf8.RuneCountInString(joke)
			lengthSum += length
			if i == 0 || length < s.MinLength {
				s.MinLength = length
			}
			if length > s.MaxLength {
				s.MaxLength = length
			}
		}
		if len(jokes) > 0 {
			s.AvgLength = float64(lengthSum) / float64(len(jokes))
		}
		stats[level] = s
	}
	return stats
}
