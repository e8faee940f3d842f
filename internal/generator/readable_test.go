package generator_test

import (
	"passgen/internal/charset"
	"passgen/internal/generator"
	"passgen/pkg/domain"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestReadable(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"abcdef", "abcdef"},
		{"a!b@c#", "a!b@c#"},
		{"ab!!", "ab!!"},
		{"ab!@#cd", "ab!@cd"},
		{"!@#$%^", "!@"},
		{"x!@#y$%^&z", "x!@y$%z"},
		{`\"'`, `\"`},
		{"a~`{b", "a~`b"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.want, generator.Readable(tc.in))
		})
	}
}

// longestSymbolRun returns the longest run of consecutive symbol characters in s.
func longestSymbolRun(s string) int {
	longest, run := 0, 0
	for _, r := range s {
		if charset.IsSymbol(r) {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}

	return longest
}

func TestReadable_SymbolsOnlyScenario(t *testing.T) {
	g := generator.New(nil)
	pool := charset.Build(domain.CharsetOptions{IncludeSymbols: true, ReadabilityFilter: true})
	require.Equal(t, 32, pool.Size())

	for range 50 {
		raw, err := g.Generate(pool, 10)
		require.NoError(t, err)

		out := generator.Readable(raw)
		require.LessOrEqual(t, utf8.RuneCountInString(out), 10)
		require.LessOrEqual(t, longestSymbolRun(out), 2)
		// a pool made only of symbols always collapses to exactly two characters
		require.Equal(t, []rune(raw)[:2], []rune(out))
	}
}
