package validate

import (
	"strings"
	"testing"
)

func mustValidator(t *testing.T, cfg Config) *Validator {
	t.Helper()
	v, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return v
}

func TestValidate_CleanJokePasses(t *testing.T) {
	t.Parallel()

	v := mustValidator(t, Default())
	got := v.Validate("Why don't scientists trust atoms? Because they make up everything!")
	if !got.OK {
		t.Fatalf("expected OK, got issues: %v", got.Issues)
	}
}

func TestValidate_Empty(t *testing.T) {
	t.Parallel()

	v := mustValidator(t, Default())
	got := v.Validate("")
	if got.OK {
		t.Fatal("expected empty joke to fail")
	}
	if len(got.Issues) != 1 || got.Issues[0] != "empty joke" {
		t.Fatalf("Issues = %v, want [empty joke]", got.Issues)
	}
}

func TestValidate_LengthBounds(t *testing.T) {
	t.Parallel()

	v := mustValidator(t, Default())

	long := strings.Repeat("a", 200)
	got := v.Validate(long)
	if got.OK {
		t.Fatal("expected 200-char joke to fail")
	}
	found := false
	for _, issue := range got.Issues {
		if strings.Contains(issue, "200") && strings.Contains(issue, "180") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected length issue citing 200 and 180, got %v", got.Issues)
	}

	short := v.Validate("Ha.")
	if short.OK {
		t.Fatal("expected 3-char joke to fail")
	}
}

func TestValidate_LengthCountsCharactersNotBytes(t *testing.T) {
	t.Parallel()

	v := mustValidator(t, Default())

	// 170 characters but 190 bytes: the em dashes are 3 bytes each.
	joke := strings.Repeat("a", 160) + strings.Repeat("—", 10)
	got := v.Validate(joke)
	for _, issue := range got.Issues {
		if strings.Contains(issue, "too long") {
			t.Fatalf("170-char joke rejected on length: %v", got.Issues)
		}
	}

	over := v.Validate(strings.Repeat("—", 181))
	found := false
	for _, issue := range over.Issues {
		if strings.Contains(issue, "too long: 181 chars") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected length issue citing 181 chars, got %v", over.Issues)
	}
}

func TestValidate_CollectsMultipleIssues(t *testing.T) {
	t.Parallel()

	v := mustValidator(t, Default())
	joke := "This damn joke is about politics and it is way too long, you see" + strings.Repeat("!", 130)
	got := v.Validate(joke)
	if got.OK {
		t.Fatal("expected failure")
	}
	if len(got.Issues) < 3 {
		t.Fatalf("expected at least 3 issues, got %v", got.Issues)
	}
}

func TestValidate_ForbiddenTermGlobs(t *testing.T) {
	t.Parallel()

	v := mustValidator(t, Default())

	cases := []struct {
		name string
		joke string
		term string
	}{
		{"plain substring", "What a damn fine pun that was today", "damn"},
		{"glob suffix", "Why did the politician cross the road anyway?", "politic*"},
		{"glob plural", "Republicans and atoms never bond over puns here", "republican*"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := v.Validate(tc.joke)
			want := "contains forbidden term: " + tc.term
			for _, issue := range got.Issues {
				if issue == want {
					return
				}
			}
			t.Fatalf("expected issue %q, got %v", want, got.Issues)
		})
	}
}

func TestValidate_BecausePolicy(t *testing.T) {
	t.Parallel()

	v := mustValidator(t, Default())

	// A "Because ..." punchline ending emphatically is legitimate.
	punchline := v.Validate("Why did the golfer bring two pairs of pants? Because he got a hole in one!")
	for _, issue := range punchline.Issues {
		if strings.Contains(issue, "because") {
			t.Fatalf("punchline because flagged: %v", punchline.Issues)
		}
	}

	// A flat trailing because-clause is the joke explaining itself.
	tail := v.Validate("What do you call a fake noodle? An impasta! because pasta is fake.")
	found := false
	for _, issue := range tail.Issues {
		if strings.Contains(issue, "trailing because") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected trailing because issue, got %v", tail.Issues)
	}
}

func TestValidate_ExplanationMarkers(t *testing.T) {
	t.Parallel()

	v := mustValidator(t, Default())

	cases := []struct {
		name string
		joke string
		want string
	}{
		{"get it", "An impasta! Get it? Fake pasta.", "contains explanation: get it"},
		{"trailing lol", "What a pun that was lol", "contains explanation: trailing lol/haha"},
		{"trailing haha", "He was outstanding in his field hahaha", "contains explanation: trailing lol/haha"},
		{"multi exclamation", "A gummy bear!!!", "contains explanation: trailing emphasis"},
		{"trailing ellipsis", "It just let out a little wine....", "contains explanation: trailing emphasis"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := v.Validate(tc.joke)
			for _, issue := range got.Issues {
				if issue == tc.want {
					return
				}
			}
			t.Fatalf("expected issue %q, got %v", tc.want, got.Issues)
		})
	}
}

func TestValidate_LolInsideWordNotFlagged(t *testing.T) {
	t.Parallel()

	v := mustValidator(t, Default())
	got := v.Validate("The lollipop guild went on strike over sticky wages.")
	for _, issue := range got.Issues {
		if strings.Contains(issue, "lol") {
			t.Fatalf("lollipop should not trip the lol marker: %v", got.Issues)
		}
	}
}

func TestValidate_Charset(t *testing.T) {
	t.Parallel()

	v := mustValidator(t, Default())

	allowed := v.Validate("I’m reading a book about anti-gravity — it’s impossible to put down.")
	for _, issue := range allowed.Issues {
		if strings.Contains(issue, "non-ASCII") {
			t.Fatalf("typographic punctuation should be allowed: %v", allowed.Issues)
		}
	}

	emoji := v.Validate("What do you call a fake noodle? An impasta! 😂")
	found := false
	for _, issue := range emoji.Issues {
		if strings.Contains(issue, "non-ASCII") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected non-ASCII issue, got %v", emoji.Issues)
	}
}

func TestNew_RejectsBadGlob(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.ForbiddenTerms = append(cfg.ForbiddenTerms, "[broken")
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for invalid glob pattern")
	}
}
