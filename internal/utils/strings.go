package utils

import "strings"

// SafeFilenamePart strips characters that break Content-Disposition
// filenames.
func SafeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "x"
	}
	repl := strings.NewReplacer(
		"/", "-", "\\", "-", " ", "_", "\"", "", "'", "",
		":", "-", "*", "", "?", "", "<", "", ">", "", "|", "-",
	)
	return repl.Replace(s)
}

// FirstNonEmpty returns the first non-blank string.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
