// Package textnorm normalizes joke text for comparison and matching.
package textnorm

import (
	"strings"

	"github.com/kljensen/snowball"
)

// Normalize lowercases text, replaces every character that is not a
// letter, digit, underscore, whitespace, or apostrophe with a space,
// collapses whitespace runs, and trims. It is total: any input,
// including the empty string, yields a well-formed result, and
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == '_' || r == '\'':
			return r
		default:
			return ' '
		}
	}, lowered)
	return strings.Join(strings.Fields(mapped), " ")
}

// Tokens splits normalized text into its words.
func Tokens(text string) []string {
	return strings.Fields(Normalize(text))
}

// StemmedTokenSet normalizes text and returns the set of its stemmed
// tokens. Stemming makes the set tolerant of minor rewording ("crack up"
// vs "cracked up"); a token that fails to stem is kept verbatim.
func StemmedTokenSet(text string) map[string]struct{} {
	tokens := Tokens(text)
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		stemmed, err := snowball.Stem(token, "english", true)
		if err != nil || stemmed == "" {
			stemmed = token
		}
		set[stemmed] = struct{}{}
	}
	return set
}
