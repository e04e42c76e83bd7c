// Package ascii converts images into ASCII art text.
package ascii

import (
	"strings"
	"unicode"

	"github.com/riordanpawley/asciiart/internal/domain"
)

// NormalizeCharset strips whitespace and duplicate characters from a user
// supplied charset, keeping first-seen order. Left characters render dark,
// right characters render bright. An empty result yields domain.DefaultCharset.
func NormalizeCharset(charset string) string {
	seen := make(map[rune]bool)
	var b strings.Builder

	for _, r := range charset {
		if unicode.IsSpace(r) || seen[r] {
			continue
		}
		seen[r] = true
		b.WriteRune(r)
	}

	if b.Len() == 0 {
		return domain.DefaultCharset
	}
	return b.String()
}

// reverse returns the charset with its characters in reverse order
func reverse(chars []rune) []rune {
	out := make([]rune, len(chars))
	for i, r := range chars {
		out[len(chars)-1-i] = r
	}
	return out
}
