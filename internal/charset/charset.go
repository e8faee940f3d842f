// Package charset assembles the pool of candidate characters from a set of
// enabled categories.
package charset

import (
	"passgen/pkg/domain"
	"strings"
)

// Category alphabets, concatenated in this order when enabled.
const (
	Lower   = "abcdefghijklmnopqrstuvwxyz"
	Upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Numbers = "0123456789"
	// Symbols is every printable ASCII punctuation character.
	Symbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	// Ambiguous characters are easy to misread when transcribing by hand.
	Ambiguous = "O0oIl1"
)

// Pool is an ordered, non-deduplicated sequence of candidate characters.
type Pool []rune

// Size is the number of candidates, duplicates included.
func (p Pool) Size() int { return len(p) }

// Empty reports whether p has no candidates.
func (p Pool) Empty() bool { return len(p) == 0 }

// Contains reports whether r is a candidate in p.
func (p Pool) Contains(r rune) bool {
	for _, c := range p {
		if c == r {
			return true
		}
	}

	return false
}

func (p Pool) String() string { return string(p) }

// Build concatenates the alphabets enabled in opts and, if requested, removes
// every ambiguous character no matter which category contributed it. An empty
// pool is returned when no category is enabled; callers must treat that as an
// error rather than fall back to a default.
func Build(opts domain.CharsetOptions) Pool {
	var sb strings.Builder
	if opts.IncludeLower {
		sb.WriteString(Lower)
	}
	if opts.IncludeUpper {
		sb.WriteString(Upper)
	}
	if opts.IncludeNumbers {
		sb.WriteString(Numbers)
	}
	if opts.IncludeSymbols {
		sb.WriteString(Symbols)
	}

	pool := make(Pool, 0, sb.Len())
	for _, r := range sb.String() {
		if opts.ExcludeAmbiguous && IsAmbiguous(r) {
			continue
		}
		pool = append(pool, r)
	}

	return pool
}

// IsSymbol reports whether r belongs to the symbol alphabet.
func IsSymbol(r rune) bool {
	return strings.ContainsRune(Symbols, r)
}

// IsAmbiguous reports whether r is one of O, 0, o, I, l, 1.
func IsAmbiguous(r rune) bool {
	return strings.ContainsRune(Ambiguous, r)
}
