package clean

import "testing"

func ruleByName(t *testing.T, name string) Rule {
	t.Helper()
	for _, r := range Rules() {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("no rule named %q", name)
	return Rule{}
}

func TestClean(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "trailing parenthetical explanation",
			in:   "Why don't scientists trust atoms? Because they make up everything! (get it?)",
			want: "Why don't scientists trust atoms? Because they make up everything!",
		},
		{
			name: "mid parenthetical explanation",
			in:   "I used to be a banker, but I lost interest (because banking is about interest rates).",
			want: "I used to be a banker, but I lost interest.",
		},
		{
			name: "trailing get it",
			in:   "What do you call a fake noodle? An impasta! Get it?",
			want: "What do you call a fake noodle? An impasta!",
		},
		{
			name: "trailing lol",
			in:   "What do you call a fake noodle? An impasta! lol",
			want: "What do you call a fake noodle? An impasta!",
		},
		{
			name: "trailing hashtag",
			in:   "Why don't scientists trust atoms? Because they make up everything! #dadjokes",
			want: "Why don't scientists trust atoms? Because they make up everything!",
		},
		{
			name: "trailing you see",
			in:   "Why did the bicycle fall over? It was two-tired! You see, tired sounds like tired",
			want: "Why did the bicycle fall over? It was two-tired!",
		},
		{
			name: "stacked noise",
			in:   "I used to be a banker, but I lost interest... because banking involves interest rates lol",
			want: "I used to be a banker, but I lost interest.",
		},
		{
			name: "ellipsis normalized",
			in:   "I'm reading a book about anti-gravity. It's impossible to put down...",
			want: "I'm reading a book about anti-gravity. It's impossible to put down.",
		},
		{
			name: "qa truncation drops tacked-on commentary",
			in:   "What do you call a fake noodle? An impasta! But don't worry, it's still al-dente!",
			want: "What do you call a fake noodle? An impasta!",
		},
		{
			name: "meaning parenthetical",
			in:   "Time flies like an arrow (meaning time passes quickly).",
			want: "Time flies like an arrow.",
		},
		{
			name: "emoji stripped",
			in:   "What do you call a sleeping bull? A bulldozer! \U0001F602",
			want: "What do you call a sleeping bull? A bulldozer!",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, changed := Clean(tc.in)
			if got != tc.want {
				t.Fatalf("Clean(%q) = %q, want %q", tc.in, got, tc.want)
			}
			if !changed {
				t.Fatalf("Clean(%q) reported no change", tc.in)
			}
		})
	}
}

func TestClean_PreservesCleanJokes(t *testing.T) {
	t.Parallel()

	jokes := []string{
		"I told my wife she should embrace her mistakes. She gave me a hug.",
		"What do you call a sleeping bull? A bulldozer!",
		"Why don't eggs tell jokes? They'd crack each other up!",
		"Why did the bicycle fall over? It was two-tired!",
		"Why did the scarecrow win an award? Because he was outstanding in his field!",
		"I would tell you a chemistry joke, but I know I wouldn't get a reaction.",
		"I used to be addicted to soap, but I'm clean now (literally and figuratively).",
		"What's the difference between a cat and a comma? A cat has claws at the end of paws, and a comma is a pause at the end of a clause.",
		"I invented a new word: Plagiarism.",
	}
	for _, joke := range jokes {
		got, changed := Clean(joke)
		if changed || got != joke {
			t.Fatalf("Clean(%q) = %q, want unchanged", joke, got)
		}
	}
}

// A punchline clause starting with "because" ends in "!"; only flat
// explanation clauses after a finished sentence get stripped.
func TestClean_BecausePolicy(t *testing.T) {
	t.Parallel()

	kept := "Why don't scientists trust atoms? Because they make up everything!"
	if got, changed := Clean(kept); changed || got != kept {
		t.Fatalf("Clean(%q) = %q, want unchanged", kept, got)
	}

	stripped := "I stayed home. because going out would require effort"
	want := "I stayed home."
	if got, _ := Clean(stripped); got != want {
		t.Fatalf("Clean(%q) = %q, want %q", stripped, got, want)
	}
}

func TestClean_IdempotentOnOwnOutput(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Why don't eggs tell jokes? They'd crack each other up! Get it? Because eggshells crack! lol #funny",
		"What do you call a fake noodle? An impasta! Get it?",
		"I used to be a banker, but I lost interest... because banking involves interest rates lol",
		"I'm afraid of elevators (because I might get stuck, you see).",
		"",
		"   ",
	}
	for _, in := range inputs {
		once, _ := Clean(in)
		twice, changed := Clean(once)
		if changed || twice != once {
			t.Fatalf("Clean not idempotent on %q: %q then %q", in, once, twice)
		}
	}
}

func TestClean_EdgeCases(t *testing.T) {
	t.Parallel()

	if got, changed := Clean(""); got != "" || changed {
		t.Fatalf("Clean(\"\") = (%q, %v), want (\"\", false)", got, changed)
	}
	if got, _ := Clean("   "); got != "" {
		t.Fatalf("Clean(whitespace) = %q, want empty", got)
	}
}

func TestRules_EachIsNoOpOffTarget(t *testing.T) {
	t.Parallel()

	neutral := "What did the ocean say to the beach? Nothing, it just waved!"
	for _, rule := range Rules() {
		if got := rule.Apply(neutral); got != neutral {
			t.Fatalf("rule %s changed off-target text: %q", rule.Name, got)
		}
	}
}

func TestRule_Individual(t *testing.T) {
	t.Parallel()

	cases := []struct {
		rule string
		in   string
		want string
	}{
		{"trailing-multi-bang", "A bulldozer!!!", "A bulldozer!"},
		{"trailing-ellipsis", "It's impossible to put down....", "It's impossible to put down."},
		{"trailing-comma", "A gummy bear,", "A gummy bear"},
		{"collapse-whitespace", "A   gummy\tbear", "A gummy bear"},
		{"trailing-hashtags", "An impasta! #dadjokes #funny", "An impasta!"},
		{"trailing-chatter", "An impasta! hahaha", "An impasta!"},
	}
	for _, tc := range cases {
		tc := tc
		rule := ruleByName(t, tc.rule)
		if got := rule.Apply(tc.in); got != tc.want {
			t.Fatalf("%s(%q) = %q, want %q", tc.rule, tc.in, got, tc.want)
		}
	}
}
