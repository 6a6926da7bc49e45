// Package corn scores joke text on the 1-5 corniness scale and produces
// full quality ratings. Scoring is deterministic pattern and keyword
// matching over per-level profiles; there is no model and no randomness.
package corn

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/punnyland/cornsmith/internal/punsign"
	"github.com/punnyland/cornsmith/internal/textnorm"
	"github.com/punnyland/cornsmith/internal/validate"
)

// Scoring weights. A setup-pattern hit counts once per level no matter
// how many of the level's patterns match.
const (
	setupWeight     = 15
	indicatorWeight = 8
	formatWeight    = 5
	markerWeight    = 3
	lengthBonus     = 3
	shortPenalty    = 2
	longPenalty     = 1
	longSlack       = 20
)

// Confidence shaping: a winning score at or above StrongScore marks a
// strong absolute win and boosts the relative confidence.
const (
	defaultStrongScore = 20
	confidenceBoost    = 1.2
	neutralConfidence  = 0.1
)

// Config holds the classifier configuration: one profile per level plus
// the absolute-score threshold for the confidence boost.
type Config struct {
	Profiles    map[int]Profile `yaml:"profiles"`
	StrongScore float64         `yaml:"strong_score"`
}

// DefaultConfig returns the built-in classifier configuration.
func DefaultConfig() Config {
	return Config{Profiles: DefaultProfiles(), StrongScore: defaultStrongScore}
}

// Classifier assigns corniness levels. Build one with NewClassifier;
// it is safe for concurrent use once built.
type Classifier struct {
	profiles    map[int]compiledProfile
	strongScore float64
	extractor   *punsign.Extractor
}

// NewClassifier compiles cfg's profiles and wires the given pun-signal
// extractor. A nil extractor gets the default vocabulary.
func NewClassifier(cfg Config, extractor *punsign.Extractor) (*Classifier, error) {
	profiles, err := compileProfiles(cfg.Profiles)
	if err != nil {
		return nil, err
	}
	if cfg.StrongScore == 0 {
		cfg.StrongScore = defaultStrongScore
	}
	if extractor == nil {
		extractor, err = punsign.New(punsign.Default())
		if err != nil {
			return nil, err
		}
	}
	return &Classifier{
		profiles:    profiles,
		strongScore: cfg.StrongScore,
		extractor:   extractor,
	}, nil
}

// Classify rates a joke's corniness level and the confidence of that
// rating. It never fails: text with no signal at all degenerates to the
// lowest level with neutral confidence. Ties go to the lower level.
func (c *Classifier) Classify(joke string) (int, float64) {
	if textnorm.Normalize(joke) == "" {
		return MinLevel, neutralConfidence
	}

	scores := c.scores(joke)

	best := MinLevel
	total := 0.0
	for level := MinLevel; level <= MaxLevel; level++ {
		total += scores[level]
		if scores[level] > scores[best] {
			best = level
		}
	}

	if total <= 0 {
		return best, neutralConfidence
	}
	confidence := scores[best] / total
	if scores[best] >= c.strongScore {
		confidence *= confidenceBoost
	}
	if confidence > 1 {
		confidence = 1
	}
	if confidence < 0 {
		confidence = 0
	}
	return best, confidence
}

// scores computes the per-level score vector.
func (c *Classifier) scores(joke string) map[int]float64 {
	lowered := strings.ToLower(joke)
	structure := punsign.AnalyzeStructure(joke)
	scores := make(map[int]float64, MaxLevel)

	for level := MinLevel; level <= MaxLevel; level++ {
		profile := c.profiles[level]
		score := profile.BaseScore

		for _, re := range profile.setup {
			if re.MatchString(joke) {
				score += setupWeight
				break
			}
		}

		for _, indicator := range profile.PunIndicators {
			if strings.Contains(lowered, strings.ToLower(indicator)) {
				score += indicatorWeight
			}
		}

		for _, format := range profile.QuestionFormats {
			if strings.HasPrefix(lowered, strings.ToLower(format)) {
				score += formatWeight
				break
			}
		}

		for _, marker := range profile.CornMarkers {
			if strings.Contains(lowered, strings.ToLower(marker)) {
				score += markerWeight
			}
		}

		switch length := utf8.RuneCountInString(joke); {
		case length >= profile.Length.Min && length <= profile.Length.Max:
			score += lengthBonus
		case length < profile.Length.Min:
			score -= shortPenalty
		case length > profile.Length.Max+longSlack:
			score -= longPenalty
		}

		scores[level] = score
	}

	// Q&A shape is the classic level 2-3 territory.
	if structure.IsQAFormat {
		scores[2] += 5
		scores[3] += 3
	}

	// Pun density shifts mass monotonically toward the higher levels.
	switch puns := c.extractor.Count(joke); {
	case puns == 0:
		scores[1] += 8
	case puns == 1:
		scores[2] += 5
		scores[3] += 3
	case puns == 2:
		scores[3] += 6
		scores[4] += 3
	default:
		scores[4] += 6
		scores[5] += 4
	}

	return scores
}

// Rating is the full quality assessment of one joke. Ratings are
// computed on demand and never persisted as the primary record.
type Rating struct {
	Joke            string            `json:"joke"`
	Valid           bool              `json:"valid"`
	Issues          []string          `json:"issues,omitempty"`
	Level           int               `json:"corniness_level"`
	Confidence      float64           `json:"confidence"`
	Quality         float64           `json:"quality_score"`
	Length          int               `json:"length"`
	PunCount        int               `json:"pun_count"`
	Structure       punsign.Structure `json:"structure"`
	Recommendations []string          `json:"recommendations,omitempty"`
}

// Rater combines validation, classification, and pun counting into one
// Rating per joke.
type Rater struct {
	validator  *validate.Validator
	classifier *Classifier
	extractor  *punsign.Extractor
}

// NewRater builds a rater from the three component configurations.
func NewRater(vcfg validate.Config, ccfg Config, pcfg punsign.Config) (*Rater, error) {
	validator, err := validate.New(vcfg)
	if err != nil {
		return nil, err
	}
	extractor, err := punsign.New(pcfg)
	if err != nil {
		return nil, err
	}
	classifier, err := NewClassifier(ccfg, extractor)
	if err != nil {
		return nil, err
	}
	return &Rater{validator: validator, classifier: classifier, extractor: extractor}, nil
}

// DefaultRater builds a rater from the built-in configuration.
func DefaultRater() (*Rater, error) {
	return NewRater(validate.Default(), DefaultConfig(), punsign.Default())
}

// Rate produces the full rating for one joke.
func (r *Rater) Rate(joke string) Rating {
	result := r.validator.Validate(joke)
	level, confidence := r.classifier.Classify(joke)
	puns := r.extractor.Count(joke)
	structure := punsign.AnalyzeStructure(joke)

	length := utf8.RuneCountInString(joke)
	preferred := r.classifier.profiles[level].PreferredLength
	quality := 100.0
	quality -= float64(len(result.Issues)) * 10
	if preferred > 0 && length > preferred {
		quality -= float64(length-preferred) * 0.1
	}
	if quality < 0 {
		quality = 0
	}
	if quality > 100 {
		quality = 100
	}

	return Rating{
		Joke:            joke,
		Valid:           result.OK,
		Issues:          result.Issues,
		Level:           level,
		Confidence:      confidence,
		Quality:         quality,
		Length:          length,
		PunCount:        puns,
		Structure:       structure,
		Recommendations: r.recommendations(joke, length, level, result.Issues, puns, preferred),
	}
}

func (r *Rater) recommendations(joke string, length int, level int, issues []string, puns int, preferred int) []string {
	recs := make([]string, 0, 3)
	if preferred > 0 && length > preferred {
		recs = append(recs, fmt.Sprintf("consider shortening (current %d chars, preferred <=%d for level %d)", length, preferred, level))
	}
	if len(issues) > 0 {
		recs = append(recs, "fix content issues before using")
	}
	if puns == 0 && level > MinLevel {
		recs = append(recs, "consider adding wordplay elements")
	}
	if !strings.ContainsAny(joke, "?!") && joke != "" {
		recs = append(recs, "consider punctuation for emphasis")
	}
	return recs
}
