// Package curate drives corpus maintenance: near-duplicate detection,
// confidence-tiered reclassification plans, batch application with
// backup discipline, and audit/drift reports.
package curate

import (
	"github.com/punnyland/cornsmith/internal/corpus"
	"github.com/punnyland/cornsmith/internal/textnorm"
)

// DefaultSimilarityThreshold is the similarity score, on the 0-100
// scale, above which two jokes are reported as near-duplicates.
const DefaultSimilarityThreshold = 85

// Similarity scores how close two jokes are on a 0-100 scale. Texts
// that are equal after normalization score 100 outright; otherwise the
// score is the overlap coefficient of the stemmed token sets, which
// stays tolerant of rewording and containment ("A gummy bear" inside a
// longer retelling still scores 100).
func Similarity(a string, b string) float64 {
	normA, normB := textnorm.Normalize(a), textnorm.Normalize(b)
	if normA == "" || normB == "" {
		return 0
	}
	if normA == normB {
		return 100
	}

	setA, setB := textnorm.StemmedTokenSet(a), textnorm.StemmedTokenSet(b)
	smaller := len(setA)
	if len(setB) < smaller {
		smaller = len(setB)
	}
	if smaller == 0 {
		return 0
	}
	intersection := 0
	for token := range setA {
		if _, ok := setB[token]; ok {
			intersection++
		}
	}
	return 100 * float64(intersection) / float64(smaller)
}

// DuplicateCandidate is one near-duplicate pair found in the corpus.
// The first entry is always the one that appears earlier in level,
// then index, order.
type DuplicateCandidate struct {
	LevelA     int     `json:"level_a"`
	IndexA     int     `json:"index_a"`
	JokeA      string  `json:"joke_a"`
	LevelB     int     `json:"level_b"`
	IndexB     int     `json:"index_b"`
	JokeB      string  `json:"joke_b"`
	Similarity float64 `json:"similarity"`
}

type indexedJoke struct {
	level int
	index int
	joke  string
}

// FindDuplicates reports every pair of corpus entries, across levels,
// whose similarity is at or above threshold. A threshold of 0 selects
// the default; values above 100 are clamped to 100 so exact duplicates
// are always reported.
//
// This is O(n²) over corpus entries. It is acceptable for the current
// corpus sizes, but much larger corpora should switch to an indexed
// approach to reduce pairwise comparisons.
func FindDuplicates(c corpus.Corpus, threshold float64) []DuplicateCandidate {
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	if threshold > 100 {
		threshold = 100
	}

	entries := make([]indexedJoke, 0, c.Total())
	for _, level := range c.Levels() {
		for i, joke := range c[level] {
			entries = append(entries, indexedJoke{level: level, index: i, joke: joke})
		}
	}

	candidates := make([]DuplicateCandidate, 0)
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			score := Similarity(entries[i].joke, entries[j].joke)
			if score < threshold {
				continue
			}
			candidates = append(candidates, DuplicateCandidate{
				LevelA:     entries[i].level,
				IndexA:     entries[i].index,
				JokeA:      entries[i].joke,
				LevelB:     entries[j].level,
				IndexB:     entries[j].index,
				JokeB:      entries[j].joke,
				Similarity: score,
			})
		}
	}
	return candidates
}
