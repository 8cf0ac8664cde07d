package player

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldName canonicalizes a user-entered name for case-insensitive comparison:
// surrounding space is dropped, inner whitespace runs collapse to one space,
// and the result is Unicode case-folded.
func FoldName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}

	// cases.Caser is stateful; one per call.
	return cases.Fold().String(strings.Join(fields, " "))
}

// SameName reports whether two names refer to the same player name.
func SameName(a, b string) bool {
	return FoldName(a) == FoldName(b)
}

// CleanName trims and collapses whitespace without changing case.
func CleanName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
