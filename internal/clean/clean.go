// Package clean strips explanation cruft from joke text: trailing
// "because ..." clauses, "get it?", chat noise, hashtags, and excess
// punctuation. Rules are an ordered sequence of pure string transforms
// so each one can be tested and reasoned about in isolation.
package clean

import (
	"regexp"
	"strings"
)

// Rule is one named, independent cleaning step. Rules never add text;
// applying a rule to text it does not target returns the input.
type Rule struct {
	Name  string
	apply func(string) string
}

// Apply runs the rule on text.
func (r Rule) Apply(text string) string {
	return r.apply(text)
}

var (
	parentheticalRe = regexp.MustCompile(`(?i)\s*\([^)]*\b(get it|because|translation|meaning|you see)\b[^)]*\)`)
	hashtagRe       = regexp.MustCompile(`(?:\s*#\w+)+\s*$`)
	chatterRe       = regexp.MustCompile(`(?i)[\s.!?]*\b(lol|ha(ha)+|hehe)\b[.!?]*\s*$`)
	getItRe         = regexp.MustCompile(`(?i)[\s.!?]*\bget it\b[^.!?]*[.!?]*\s*$`)
	youSeeRe        = regexp.MustCompile(`(?i)\s+\byou see\b[,\s].*$`)
	becauseRe       = regexp.MustCompile(`(?i)([.!?])\s+because\b[^.!?]*\.?\s*$`)
	ellipsisRe      = regexp.MustCompile(`\.{3,}\s*$`)
	multiBangRe     = regexp.MustCompile(`!{2,}\s*$`)
	trailingCommaRe = regexp.MustCompile(`,\s*$`)

	whatCallRe = regexp.MustCompile(`(?i)^(what do you call[^?]*\?)\s*([^!.]*[!.])`)
	whyDidRe   = regexp.MustCompile(`(?i)^(why did[^?]*\?)\s*([^!.]*[!.])`)
)

// Rules returns the shipped cleaning sequence in application order.
// Explanation strips run before punctuation repair so a clause exposed
// by an earlier rule is still caught by a later one.
func Rules() []Rule {
	return []Rule{
		{"strip-emoji", stripEmoji},
		{"parenthetical-explanation", func(s string) string {
			return parentheticalRe.ReplaceAllString(s, "")
		}},
		{"trailing-hashtags", func(s string) string {
			return hashtagRe.ReplaceAllString(s, "")
		}},
		{"trailing-chatter", func(s string) string {
			return chatterRe.ReplaceAllStringFunc(s, keepLeadingPunct)
		}},
		{"trailing-get-it", func(s string) string {
			return getItRe.ReplaceAllStringFunc(s, keepLeadingPunct)
		}},
		{"trailing-you-see", func(s string) string {
			return youSeeRe.ReplaceAllString(s, "")
		}},
		// A "because ..." clause after a finished sentence is an
		// explanation; a clause ending in "!" is a punchline and stays.
		{"trailing-because", func(s string) string {
			return becauseRe.ReplaceAllString(s, "$1")
		}},
		{"qa-truncate", qaTruncate},
		{"trailing-ellipsis", func(s string) string {
			return ellipsisRe.ReplaceAllString(s, ".")
		}},
		{"trailing-multi-bang", func(s string) string {
			return multiBangRe.ReplaceAllString(s, "!")
		}},
		{"collapse-whitespace", func(s string) string {
			return strings.Join(strings.Fields(s), " ")
		}},
		{"trailing-comma", func(s string) string {
			return trailingCommaRe.ReplaceAllString(s, "")
		}},
	}
}

// Clean applies the shipped rule sequence once, in order, and reports
// whether the text changed.
func Clean(text string) (string, bool) {
	original := strings.TrimSpace(text)
	cleaned := original
	for _, rule := range Rules() {
		cleaned = strings.TrimSpace(rule.Apply(cleaned))
	}
	return cleaned, cleaned != original
}

// keepLeadingPunct preserves the sentence punctuation a trailing-noise
// match consumed, so "An impasta! Get it?" keeps its bang.
func keepLeadingPunct(match string) string {
	trimmed := strings.TrimLeft(match, " \t")
	cut := 0
	for cut < len(trimmed) && (trimmed[cut] == '.' || trimmed[cut] == '!' || trimmed[cut] == '?') {
		cut++
	}
	return trimmed[:cut]
}

// qaTruncate keeps only the question and the first answer sentence for
// the two setup shapes whose answers never legitimately run on.
func qaTruncate(text string) string {
	for _, re := range []*regexp.Regexp{whatCallRe, whyDidRe} {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1] + " " + strings.TrimSpace(m[2]))
		}
	}
	return text
}

// stripEmoji drops pictographic runes. Typographic punctuation such as
// curly quotes and em dashes passes through untouched.
func stripEmoji(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 0x1F000 && r <= 0x1FAFF: // emoji and pictographs
		case r >= 0x2600 && r <= 0x27BF: // misc symbols and dingbats
		case r == 0xFE0F || r == 0x200D: // variation selector, ZWJ
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
