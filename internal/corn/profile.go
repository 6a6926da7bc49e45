package corn

import (
	"fmt"
	"regexp"
)

// MinLevel and MaxLevel bound the corniness scale. 1 is subtle
// wordplay, 5 is maximal stacked puns.
const (
	MinLevel = 1
	MaxLevel = 5
)

// LengthRange is the character span a level's jokes tend to occupy.
type LengthRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Profile describes the lexical fingerprint of one corniness level.
// SetupPatterns are regexes over the raw text; the other lists are
// case-insensitive substrings. BaseScore is the level's floor before
// any signal; the defaults keep it flat across levels so a text with
// no signal at all resolves to level 1 via the pun-density bonus.
type Profile struct {
	SetupPatterns   []string    `yaml:"setup_patterns"`
	PunIndicators   []string    `yaml:"pun_indicators"`
	QuestionFormats []string    `yaml:"question_formats"`
	CornMarkers     []string    `yaml:"corn_markers"`
	Length          LengthRange `yaml:"length"`
	BaseScore       float64     `yaml:"base_score"`
	PreferredLength int         `yaml:"preferred_length"`
}

// DefaultProfiles returns the built-in level profiles, ordered level 1
// through 5.
func DefaultProfiles() map[int]Profile {
	return map[int]Profile{
		1: { // Subtle wordplay, clever twists.
			SetupPatterns: []string{
				`^I used to .+, but .+`,
				`^Time flies like .+`,
				`^I invented .+`,
				`^The early bird .+, but .+`,
				`^.+ used to .+, but .+`,
			},
			PunIndicators:   []string{"grew on", "lost interest", "time flies", "invented"},
			QuestionFormats: nil,
			CornMarkers:     nil,
			Length:          LengthRange{Min: 20, Max: 80},
			BaseScore:       5,
			PreferredLength: 80,
		},
		2: { // Classic dad joke setups.
			SetupPatterns: []string{
				`^Why don't .+\? .+`,
				`^What do you call .+\? .+`,
				`^How do you .+\? .+`,
				`^Where do .+ go\? .+`,
				`^Why did .+\? .+`,
			},
			PunIndicators:   []string{"make up everything", "impasta", "outstanding"},
			QuestionFormats: []string{"why don't", "what do you call", "how do", "where do", "why did"},
			CornMarkers:     []string{"pun", "play on words"},
			Length:          LengthRange{Min: 40, Max: 100},
			BaseScore:       5,
			PreferredLength: 100,
		},
		3: { // Eye roll guaranteed: obvious puns.
			SetupPatterns: []string{
				`^What do you call a .+ with no .+\?`,
				`^Why don't .+ tell .+\?`,
				`gummy bear`,
				`ground beef`,
				`can't opener`,
			},
			PunIndicators:   []string{"gummy bear", "ground beef", "can't opener", "crack up"},
			QuestionFormats: []string{"what do you call"},
			CornMarkers:     []string{"bear", "beef", "crack"},
			Length:          LengthRange{Min: 45, Max: 90},
			BaseScore:       5,
			PreferredLength: 90,
		},
		4: { // Groan zone: heavy pun density.
			SetupPatterns: []string{
				`auto-tuna`,
				`turned myself around`,
				`hokey pokey`,
				`[a-z]+-[a-z]+`,
			},
			PunIndicators:   []string{"auto-tuna", "turned myself around", "hokey pokey"},
			QuestionFormats: nil,
			CornMarkers:     []string{"-tuna", "addicted", "turned around"},
			Length:          LengthRange{Min: 60, Max: 140},
			BaseScore:       5,
			PreferredLength: 140,
		},
		5: { // Ultra corn: multiple stacked puns.
			SetupPatterns: []string{
				`[a-z]+-[a-z]+.*[a-z]+-[a-z]+`,
				`paws.*fur.*tail`,
				`moo.*udderly.*dairy`,
			},
			PunIndicators:   []string{"paws for concern", "a-mew-sing", "moo-d", "beef with"},
			QuestionFormats: nil,
			CornMarkers:     []string{"udderly", "wheely", "shore"},
			Length:          LengthRange{Min: 80, Max: 180},
			BaseScore:       5,
			PreferredLength: 180,
		},
	}
}

type compiledProfile struct {
	Profile
	setup []*regexp.Regexp
}

func compileProfiles(profiles map[int]Profile) (map[int]compiledProfile, error) {
	if len(profiles) == 0 {
		profiles = DefaultProfiles()
	}
	compiled := make(map[int]compiledProfile, MaxLevel)
	for level := MinLevel; level <= MaxLevel; level++ {
		profile, ok := profiles[level]
		if !ok {
			return nil, fmt.Errorf("level profile %d is missing", level)
		}
		cp := compiledProfile{Profile: profile}
		for _, pattern := range profile.SetupPatterns {
			re, err := regexp.Compile("(?i)" + pattern)
			if err != nil {
				return nil, fmt.Errorf("level %d setup pattern %q: %w", level, pattern, err)
			}
			cp.setup = append(cp.setup, re)
		}
		compiled[level] = cp
	}
	return compiled, nil
}
