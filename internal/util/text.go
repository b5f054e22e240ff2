package util

import (
	"regexp"
	"strings"
)

var (
	reNonAllowed = regexp.MustCompile(`[^a-z0-9äöüßàáâãåæçèéêëìíîïñòóôõöøùúûüýÿ\s]`)
	reSpaces     = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes a product name for comparison: lowercase,
// alphanumeric plus common Latin diacritics, single-spaced, trimmed.
// Idempotent; any input degrades to "" at worst.
func Normalize(input string) string {
	s := strings.ToLower(input)
	s = reNonAllowed.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokenize splits an already-normalized name into its words.
func Tokenize(normalized string) []string {
	return strings.Fields(normalized)
}

func StringPtr(v string) *string { return &v }

func FloatPtr(v float64) *float64 { return &v }
