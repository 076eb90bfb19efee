package suggest

import "strings"

const (
	// MaxSuggestions caps every suggestion list returned to callers.
	MaxSuggestions = 6

	// EmptyFallback replaces a generation that yields no usable lines.
	EmptyFallback = "Follow local authority instructions immediately."

	bulletCutset = "-•* "
)

// Normalize turns free-form model output into at most MaxSuggestions cleaned lines.
// Provider formatting is untrusted: only bullets and surrounding whitespace are removed.
func Normalize(raw string) []string {
	out := make([]string, 0, MaxSuggestions)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, bulletCutset)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == MaxSuggestions {
			break
		}
	}

	if len(out) == 0 {
		return []string{EmptyFallback}
	}
	return out
}
