package curate

import (
	"fmt"
	"math"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/punnyland/cornsmith/internal/corpus"
	"github.com/punnyland/cornsmith/internal/validate"
)

// AuditReport is the full health report for one corpus snapshot.
type AuditReport struct {
	RunID           string                    `json:"run_id"`
	GeneratedAt     string                    `json:"generated_at"`
	Total           int                       `json:"total"`
	Levels          map[int]corpus.LevelStats `json:"levels"`
	BalanceScore    float64                   `json:"balance_score"`
	Issues          []corpus.Issue            `json:"issues,omitempty"`
	Duplicates      []DuplicateCandidate      `json:"duplicates,omitempty"`
	Misclassified   int                       `json:"misclassified"`
	Recommendations []string                  `json:"recommendations,omitempty"`
}

// Audit produces the health report: per-level statistics, the balance
// score, per-entry content issues, near-duplicate candidates, and the
// number of entries whose predicted level disagrees with storage.
func (cu *Curator) Audit(c corpus.Corpus, v *validate.Validator) AuditReport {
	report := AuditReport{
		RunID:        ulid.Make().String(),
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
		Total:        c.Total(),
		Levels:       c.Stats(),
		BalanceScore: BalanceScore(c),
		Issues:       corpus.Verify(c, v),
		Duplicates:   FindDuplicates(c, cu.cfg.SimilarityThreshold),
	}
	report.Misclassified = len(cu.Plan(c).Moves)
	report.Recommendations = cu.recommendations(c, report)
	return report
}

// BalanceScore scores how evenly the corpus spreads across levels on a
// 0-100 scale: 100 minus twice the mean absolute deviation, in
// percentage points, from an equal share per level.
func BalanceScore(c corpus.Corpus) float64 {
	total := c.Total()
	levels := c.Levels()
	if total == 0 || len(levels) == 0 {
		return 0
	}

	ideal := 100.0 / float64(len(levels))
	deviation := 0.0
	for _, level := range levels {
		share := 100 * float64(len(c[level])) / float64(total)
		deviation += math.Abs(share - ideal)
	}
	score := 100 - 2*deviation/float64(len(levels))
	if score < 0 {
		return 0
	}
	return score
}

func (cu *Curator) recommendations(c corpus.Corpus, report AuditReport) []string {
	recs := make([]string, 0, 4)

	total := c.Total()
	if total > 0 {
		ideal := 1.0 / float64(len(c.Levels()))
		for _, level := range c.Levels() {
			share := float64(len(c[level])) / float64(total)
			if share < ideal/2 {
				recs = append(recs, fmt.Sprintf("level %d is underrepresented (%.0f%% of corpus)", level, 100*share))
			}
		}
	}
	if n := len(report.Duplicates); n > 0 {
		recs = append(recs, fmt.Sprintf("%d near-duplicate pairs at or above %.0f similarity", n, cu.cfg.SimilarityThreshold))
	}
	if n := len(report.Issues); n > 0 {
		recs = append(recs, fmt.Sprintf("%d entries carry content issues", n))
	}
	if report.Misclassified > 0 {
		recs = append(recs, fmt.Sprintf("%d entries classify to a different level; run reclassify", report.Misclassified))
	}
	return recs
}
