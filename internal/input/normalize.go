// Package input turns the raw text typed into the calculator's fields into
// validated integers. Every function here is pure; validation never stops
// the probability from being computed, it is only reported alongside.
package input

import "strings"

// Full-width digit range produced by Japanese IMEs.
const (
	fullWidthZero = '０'
	fullWidthNine = '９'
)

// Normalize maps full-width decimal digits (１２３) to their ASCII
// counterparts, leaving every other rune untouched. Idempotent.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= fullWidthZero && r <= fullWidthNine {
			r = r - fullWidthZero + '0'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ParseLeadingInt reads the longest leading base-10 integer token from s,
// with an optional sign. It reports false when no digits lead the string;
// anything after the token is ignored, matching the usual "parse leading
// int" contract.
func ParseLeadingInt(s string) (int, bool) {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	digits := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		// Saturate well past deck scale instead of overflowing; the
		// validators only ever compare against the deck size.
		if n < 1<<31 {
			n = n*10 + int(s[i]-'0')
		}
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
