// Package validate checks joke text against the corpus content standards:
// length bounds, forbidden terms, self-explanation markers, and the
// restricted character set.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gobwas/glob"

	"github.com/punnyland/cornsmith/internal/textnorm"
)

// Default length bounds for a single joke.
const (
	DefaultMaxLength = 180
	DefaultMinLength = 10
)

// Config holds the content standards a joke is validated against.
// Forbidden terms may contain glob wildcards ("politic*"); plain terms
// match as case-insensitive substrings, patterns match per normalized
// token. Explanation markers always match as case-insensitive substrings.
type Config struct {
	MaxLength          int      `yaml:"max_length"`
	MinLength          int      `yaml:"min_length"`
	ForbiddenTerms     []string `yaml:"forbidden_terms"`
	ExplanationMarkers []string `yaml:"explanation_markers"`
}

// Default returns the built-in content standards.
func Default() Config {
	return Config{
		MaxLength: DefaultMaxLength,
		MinLength: DefaultMinLength,
		ForbiddenTerms: []string{
			// Profanity and insult vocabulary.
			"damn", "hell", "crap", "stupid", "idiot", "dumb",
			// Partisan and political terms.
			"trump", "biden", "democrat*", "republican*", "politic*",
			// Sensitive topics.
			"religion", "god", "jesus", "muslim", "christian", "gay", "lesbian",
		},
		ExplanationMarkers: []string{
			"get it", "you see", "meaning", "translation",
			"in other words", "that is", "just kidding",
		},
	}
}

// Result is the structured outcome of validating one joke.
type Result struct {
	OK     bool     `json:"ok"`
	Issues []string `json:"issues,omitempty"`
}

// Validator applies a Config to joke strings. Build one with New so the
// forbidden-term globs are compiled once per run.
type Validator struct {
	cfg      Config
	patterns []compiledTerm
}

type compiledTerm struct {
	raw     string
	matcher glob.Glob // nil for plain substring terms
}

// New compiles a validator from cfg. Zero length bounds fall back to the
// defaults. Invalid glob patterns are rejected here rather than at match
// time.
func New(cfg Config) (*Validator, error) {
	if cfg.MaxLength == 0 {
		cfg.MaxLength = DefaultMaxLength
	}
	if cfg.MinLength == 0 {
		cfg.MinLength = DefaultMinLength
	}

	patterns := make([]compiledTerm, 0, len(cfg.ForbiddenTerms))
	for _, term := range cfg.ForbiddenTerms {
		lowered := strings.ToLower(strings.TrimSpace(term))
		if lowered == "" {
			continue
		}
		if !strings.ContainsAny(lowered, "*?[{") {
			patterns = append(patterns, compiledTerm{raw: lowered})
			continue
		}
		matcher, err := glob.Compile(lowered)
		if err != nil {
			return nil, fmt.Errorf("compile forbidden term %q: %w", term, err)
		}
		patterns = append(patterns, compiledTerm{raw: lowered, matcher: matcher})
	}

	return &Validator{cfg: cfg, patterns: patterns}, nil
}

// trailingBecauseRe matches a "because"-led clause that trails the text
// after a finished sentence without ending in ! or ?. A "Because ..."
// punchline that ends emphatically is legitimate joke grammar; a flat
// trailing "because" clause is the joke explaining itself.
var trailingBecauseRe = regexp.MustCompile(`(?i)[.!?]\s+because\b[^.!?]*\.?\s*$`)

// trailingTailRe matches trailing ellipses or stacked exclamation marks,
// both of which read as the teller underlining their own punchline.
var trailingTailRe = regexp.MustCompile(`(\.{3,}|!{2,})\s*$`)

// trailingChatterRe matches a trailing "lol"/"haha". These only count as
// explanation when they end the joke; "lol" inside a word is not a marker.
var trailingChatterRe = regexp.MustCompile(`(?i)\b(lol|ha(ha)+)[.!?]*\s*$`)

// Validate checks one joke against every content standard. Checks are
// not short-circuited, so a single joke can carry multiple issues. It
// never fails: the result is always structured.
func (v *Validator) Validate(joke string) Result {
	issues := make([]string, 0)

	if strings.TrimSpace(joke) == "" {
		issues = append(issues, "empty joke")
	} else {
		// Length bounds count characters, not bytes, so allowed
		// typographic unicode does not inflate the measurement.
		length := utf8.RuneCountInString(joke)
		if length > v.cfg.MaxLength {
			issues = append(issues, fmt.Sprintf("too long: %d chars (max %d)", length, v.cfg.MaxLength))
		}
		if length < v.cfg.MinLength {
			issues = append(issues, fmt.Sprintf("too short: %d chars (min %d)", length, v.cfg.MinLength))
		}
	}

	lowered := strings.ToLower(joke)
	tokens := textnorm.Tokens(joke)
	for _, term := range v.patterns {
		if term.match(lowered, tokens) {
			issues = append(issues, fmt.Sprintf("contains forbidden term: %s", term.raw))
		}
	}

	for _, marker := range v.cfg.ExplanationMarkers {
		if strings.Contains(lowered, strings.ToLower(marker)) {
			issues = append(issues, fmt.Sprintf("contains explanation: %s", marker))
		}
	}
	if trailingBecauseRe.MatchString(joke) {
		issues = append(issues, "contains explanation: trailing because clause")
	}
	if trailingTailRe.MatchString(joke) {
		issues = append(issues, "contains explanation: trailing emphasis")
	}
	if trailingChatterRe.MatchString(joke) {
		issues = append(issues, "contains explanation: trailing lol/haha")
	}

	if issue, ok := charsetIssue(joke); !ok {
		issues = append(issues, issue)
	}

	return Result{OK: len(issues) == 0, Issues: issues}
}

func (t compiledTerm) match(lowered string, tokens []string) bool {
	if t.matcher == nil {
		return strings.Contains(lowered, t.raw)
	}
	for _, token := range tokens {
		if t.matcher.Match(token) {
			return true
		}
	}
	return false
}

// allowedUnicode is the typographic punctuation permitted beyond ASCII:
// en/em dash, curly quotes, and the ellipsis.
var allowedUnicode = map[rune]bool{
	'–': true, // en dash
	'—': true, // em dash
	'‘': true, // left single quote
	'’': true, // right single quote
	'“': true, // left double quote
	'”': true, // right double quote
	'…': true, // ellipsis
}

func charsetIssue(joke string) (string, bool) {
	for _, r := range joke {
		if r <= 0x7F {
			continue
		}
		if !allowedUnicode[r] {
			return fmt.Sprintf("contains non-ASCII character: %q", r), false
		}
	}
	return "", true
}
