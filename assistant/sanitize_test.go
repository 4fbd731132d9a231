package assistant

import "testing"

func TestSanitizeStripsRolePrefixes(t *testing.T) {
	cases := map[string]string{
		"assistant: hello there":      "hello there",
		"Assistant:  hello":           "hello",
		"USER: ok":                    "ok",
		"AI: sure thing":              "sure thing",
		"  assistant: user: nested":   "nested",
		"no prefix here":              "no prefix here",
		"  padded  ":                  "padded",
		"":                            "",
		"assistant:":                  "",
		"mid assistant: not a prefix": "mid assistant: not a prefix",
	}

	for in, want := range cases {
		if got := Sanitize(in); got != want {
			t.Errorf("Sanitize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"assistant: hello",
		"user: AI: double",
		"plain text",
		"",
		"  whitespace only  ",
		"Assistant: مرحبا بك",
	}

	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
