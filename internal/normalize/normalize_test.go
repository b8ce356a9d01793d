package normalize

import "testing"

func TestNormalize_Basic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercase and punctuation",
			input: "SHOCKING news!!! Read this.",
			want:  "shocking news read this",
		},
		{
			name:  "strips http URL",
			input: "read this urgent report http://bad.url/urgent-report",
			want:  "read this urgent report",
		},
		{
			name:  "strips www URL",
			input: "see www.example.com/page for details",
			want:  "see for details",
		},
		{
			name:  "collapses whitespace",
			input: "  too   many\t\tspaces \n here ",
			want:  "too many spaces here",
		},
		{
			name:  "underscore becomes space",
			input: "breaking_news_alert",
			want:  "breaking news alert",
		},
		{
			name:  "preserves devanagari letters",
			input: "सरकार ने कहा!",
			want:  "सरकार ने कहा",
		},
		{
			name:  "preserves digits",
			input: "withdraw 5000 rupees by 01012025",
			want:  "withdraw 5000 rupees by 01012025",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "punctuation only",
			input: "!!! ??? ...",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"SHOCKING news!!! The WHO is hiding the true source http://bad.url/x",
		"plain already normalized text",
		"सरकार ने स्कूल बंद कर दिए",
		"",
		"a_b_c www.site.org numbers 12345",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "no markup here",
			want:  "no markup here",
		},
		{
			name:  "tags removed",
			input: "<p>Breaking <b>news</b> today</p>",
			want:  "Breaking news today",
		},
		{
			name:  "script skipped",
			input: "<p>visible</p><script>alert('x')</script>",
			want:  "visible",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripMarkup(tt.input)
			if got != tt.want {
				t.Errorf("StripMarkup(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
