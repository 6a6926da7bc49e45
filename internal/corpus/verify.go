package corpus

import (
	"fmt"

	"github.com/punnyland/cornsmith/internal/textnorm"
	"github.com/punnyland/cornsmith/internal/validate"
)

// Issue is one content problem found in a stored joke. Issues are
// data, not errors: a corpus full of them still loads and saves.
type Issue struct {
	Level    int      `json:"level"`
	Index    int      `json:"index"`
	Joke     string   `json:"joke"`
	Problems []string `json:"problems"`
}

// Verify runs the content validator over every entry and flags exact
// same-level duplicates under normalization. The result is ordered by
// level, then by index.
func Verify(c Corpus, v *validate.Validator) []Issue {
	issues := make([]Issue, 0)
	for _, level := range c.Levels() {
		seen := make(map[string]int, len(c[level]))
		for i, joke := range c[level] {
			problems := append([]string(nil), v.Validate(joke).Issues...)

			normalized := textnorm.Normalize(joke)
			if first, ok := seen[normalized]; ok && normalized != "" {
				problems = append(problems, fmt.Sprintf("exact duplicate of entry %d at this level", first))
			} else {
				seen[normalized] = i
			}

			if len(problems) > 0 {
				issues = append(issues, Issue{Level: level, Index: i, Joke: joke, Problems: problems})
			}
		}
	}
	return issues
}
