package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Birthday Party", "birthday-party"},
		{"punctuation collapses", "Luca's 30th!!", "luca-s-30th"},
		{"leading and trailing junk", "  ***Wedding***  ", "wedding"},
		{"already clean", "christmas-2026", "christmas-2026"},
		{"accents are stripped", "Fête", "f-te"},
		{"all junk", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateSlug(tt.input))
		})
	}
}

func TestRandomSlugSuffix(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		suffix, err := RandomSlugSuffix()
		require.NoError(t, err)
		assert.Len(t, suffix, 6)
		assert.Regexp(t, "^[0-9a-f]{6}$", suffix)
		seen[suffix] = true
	}
	// 20 draws from a 16M space colliding down to one value would mean
	// the generator is broken.
	assert.Greater(t, len(seen), 1)
}
