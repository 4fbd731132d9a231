package assistant

import (
	"regexp"
	"strings"
)

var rolePrefixRe = regexp.MustCompile(`(?i)^(assistant|user|ai)\s*:\s*`)

// Sanitize strips leading role-prefix artifacts ("assistant:", "User :",
// "AI:") and surrounding whitespace from model output. Total over all
// strings and idempotent: sanitizing clean text returns it unchanged.
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)
	for {
		stripped := rolePrefixRe.ReplaceAllString(s, "")
		stripped = strings.TrimSpace(stripped)
		if stripped == s {
			return s
		}
		s = stripped
	}
}
