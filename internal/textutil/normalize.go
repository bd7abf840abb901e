package textutil

import (
	"strings"

	"golang.org/x/text/width"
)

// Normalize lowercases and trims a string and folds full-width/half-width
// variants to their canonical form. Returns "" for whitespace-only input.
func Normalize(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	folded := width.Fold.String(value)
	return strings.ToLower(strings.TrimSpace(folded))
}

// NormalizeKey builds the identity key used for duplicate grouping:
// normalized name and normalized address joined with "|". An empty address
// still yields a key so rows without addresses group by name alone.
func NormalizeKey(name, address string) string {
	return Normalize(name) + "|" + Normalize(address)
}

// ContainsFold reports whether haystack contains needle after both sides are
// normalized. An empty needle never matches.
func ContainsFold(haystack, needle string) bool {
	n := Normalize(needle)
	if n == "" {
		return false
	}
	return strings.Contains(Normalize(haystack), n)
}

// EqualFold reports whether two strings are identical after normalization.
func EqualFold(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
