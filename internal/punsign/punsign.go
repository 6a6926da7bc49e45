// Package punsign extracts the lexical and structural signals that feed
// corniness scoring: hyphenated coinages, sound-alike substitutions,
// stock wordplay phrases, and the Q&A shape of a joke.
package punsign

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxCount caps the pun count; beyond this density the exact number
// stops being informative.
const MaxCount = 5

// Length band labels. Short <60 chars, medium 60-119, long >=120.
const (
	BandShort  = "short"
	BandMedium = "medium"
	BandLong   = "long"
)

// Config is the pun vocabulary. All matching is case-insensitive;
// Vocabulary entries are matched on word boundaries so "sea" does not
// fire inside "season".
type Config struct {
	SoundAlikes     []string `yaml:"sound_alikes"`
	Vocabulary      []string `yaml:"vocabulary"`
	WordplayPhrases []string `yaml:"wordplay_phrases"`
}

// Default returns the built-in pun vocabulary.
func Default() Config {
	return Config{
		SoundAlikes: []string{
			"impasta", "gummy bear", "ground beef", "can't opener",
			"outstanding", "make up", "auto-tuna", "bulldozer",
			"sofishticated", "two-tired", "tyrannosaurus wrecks",
		},
		Vocabulary: []string{
			"moo", "paws", "fur", "tail", "purr", "beef",
			"udderly", "dairy", "bear", "bee", "sea",
		},
		WordplayPhrases: []string{
			"grew on me", "lost interest", "time flies", "crack up",
			"turned myself around", "make up everything",
		},
	}
}

// Structure holds the purely syntactic features of a joke.
type Structure struct {
	HasQuestion      bool   `json:"has_question"`
	QuestionCount    int    `json:"question_count"`
	ExclamationCount int    `json:"exclamation_count"`
	IsQAFormat       bool   `json:"is_qa_format"`
	LengthBand       string `json:"length_band"`
}

// Extractor counts pun signals using a compiled vocabulary. Build one
// with New; it is safe for concurrent use once built.
type Extractor struct {
	cfg        Config
	vocabulary []*regexp.Regexp
}

// hyphenatedRe matches hyphenated coinages like "auto-tuna" or
// "moo-sician", the strongest single signal of invented wordplay.
var hyphenatedRe = regexp.MustCompile(`\b[a-z]+(?:'[a-z]+)?-[a-z]+\b`)

// qaFormatRe matches the classic interrogative setup followed by a
// punchline after the question mark.
var qaFormatRe = regexp.MustCompile(`(?i)^(what|why|how|where|when)\b.+\?.+`)

// New compiles an extractor from cfg. Vocabulary entries become
// word-boundary regexes; invalid entries are rejected up front.
func New(cfg Config) (*Extractor, error) {
	vocabulary := make([]*regexp.Regexp, 0, len(cfg.Vocabulary))
	for _, word := range cfg.Vocabulary {
		trimmed := strings.ToLower(strings.TrimSpace(word))
		if trimmed == "" {
			continue
		}
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(trimmed) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("compile vocabulary word %q: %w", word, err)
		}
		vocabulary = append(vocabulary, re)
	}
	return &Extractor{cfg: cfg, vocabulary: vocabulary}, nil
}

// Count estimates how many pun/wordplay elements a joke carries,
// capped at MaxCount. Hyphenated coinages weigh double; the domain
// vocabulary contributes one point, or two when stacked.
func (e *Extractor) Count(joke string) int {
	lowered := strings.ToLower(joke)
	count := 0

	count += 2 * len(hyphenatedRe.FindAllString(lowered, -1))

	for _, soundAlike := range e.cfg.SoundAlikes {
		if strings.Contains(lowered, strings.ToLower(soundAlike)) {
			count++
		}
	}

	vocabularyHits := 0
	for _, re := range e.vocabulary {
		if re.MatchString(lowered) {
			vocabularyHits++
		}
	}
	switch {
	case vocabularyHits > 2:
		count += 2
	case vocabularyHits > 0:
		count++
	}

	for _, phrase := range e.cfg.WordplayPhrases {
		if strings.Contains(lowered, strings.ToLower(phrase)) {
			count++
		}
	}

	if count > MaxCount {
		return MaxCount
	}
	return count
}

// AnalyzeStructure extracts the syntactic features of a joke.
func AnalyzeStructure(joke string) Structure {
	return Structure{
		HasQuestion:      strings.Contains(joke, "?"),
		QuestionCount:    strings.Count(joke, "?"),
		ExclamationCount: strings.Count(joke, "!"),
		IsQAFormat:       qaFormatRe.MatchString(joke),
		LengthBand:       lengthBand(utf8.RuneCountInString(joke)),
	}
}

func lengthBand(length int) string {
	switch {
	case length < 60:
		return BandShort
	case length < 120:
		return BandMedium
	default:
		return BandLong
	}
}
