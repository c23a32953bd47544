package workflow

import (
	"strings"
	"time"
)

// Sanitize reduces a workflow name to a filesystem-safe identifier: only
// ASCII letters, digits, spaces, hyphens and underscores are kept, trailing
// whitespace is stripped, and interior spaces become underscores. The result
// may be empty; callers decide how to handle that.
func Sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	safe := strings.TrimRight(b.String(), " \t\n\r")
	return strings.ReplaceAll(safe, " ", "_")
}

// SafeFilename sanitizes a workflow name and, when nothing safe remains,
// falls back to a timestamped name. Total for any input.
func SafeFilename(name string, now time.Time) string {
	safe := Sanitize(name)
	if safe == "" {
		safe = "Workflow_" + now.Format("20060102_150405")
	}
	return safe
}
