package utils

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug derives a URL-safe slug from a list name: lowercase, runs of
// non-alphanumerics collapsed to single hyphens, leading/trailing hyphens
// trimmed. "Birthday Party!" -> "birthday-party".
func GenerateSlug(input string) string {
	lower := strings.ToLower(input)
	hyphenated := nonSlugChars.ReplaceAllString(lower, "-")
	return strings.Trim(hyphenated, "-")
}

// RandomSlugSuffix returns 6 random hex characters used to disambiguate a
// slug collision. Slugs are not guaranteed stable across renames.
func RandomSlugSuffix() (string, error) {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
