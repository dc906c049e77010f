package bookings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmationCodeFormat(t *testing.T) {
	gen := NewConfirmationCodeGenerator()

	for i := 0; i < 100; i++ {
		code := gen.Generate()

		assert.Len(t, code, len(confirmationPrefix)+confirmationLength)
		assert.True(t, strings.HasPrefix(code, confirmationPrefix))

		for _, c := range code[len(confirmationPrefix):] {
			assert.Contains(t, confirmationAlphabet, string(c))
		}
	}
}

func TestConfirmationCodeVariability(t *testing.T) {
	gen := NewConfirmationCodeGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[gen.Generate()] = true
	}

	// With 36^6 possible codes, 1000 draws should almost never collide.
	assert.Greater(t, len(seen), 990)
}
