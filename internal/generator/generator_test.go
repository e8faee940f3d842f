package generator_test

import (
	"bytes"
	"errors"
	"passgen/internal/charset"
	"passgen/internal/generator"
	"passgen/pkg/domain"
	"passgen/pkg/serrors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy pool exhausted") }

func TestGenerate_LengthAndMembership(t *testing.T) {
	g := generator.New(nil)

	tests := []struct {
		name   string
		opts   domain.CharsetOptions
		length int
	}{
		{"lower length 5", domain.CharsetOptions{IncludeLower: true}, 5},
		{"all length 16", domain.DefaultOptions(), 16},
		{"numbers no ambiguous", domain.CharsetOptions{IncludeNumbers: true, ExcludeAmbiguous: true}, 64},
		{"symbols only", domain.CharsetOptions{IncludeSymbols: true}, 10},
		{"min length", domain.CharsetOptions{IncludeUpper: true}, domain.MinLength},
		{"max length", domain.DefaultOptions(), domain.MaxLength},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pool := charset.Build(tc.opts)
			pw, err := g.Generate(pool, tc.length)
			require.NoError(t, err)
			require.Equal(t, tc.length, utf8.RuneCountInString(pw))
			for _, r := range pw {
				require.True(t, pool.Contains(r), "%q not in pool", r)
			}
		})
	}
}

func TestGenerate_EmptyPool(t *testing.T) {
	g := generator.New(nil)

	pw, err := g.Generate(charset.Build(domain.CharsetOptions{}), 16)
	require.ErrorIs(t, err, serrors.ErrEmptyCharset)
	require.Equal(t, generator.EmptyCharsetMessage, serrors.UserMessage(err))
	require.Empty(t, pw)
}

func TestGenerate_LengthOutOfRange(t *testing.T) {
	g := generator.New(nil)
	pool := charset.Build(domain.DefaultOptions())

	for _, n := range []int{0, -1, domain.MaxLength + 1} {
		_, err := g.Generate(pool, n)
		require.ErrorIs(t, err, serrors.ErrBadRequest, "length %d", n)
	}
}

func TestGenerate_SourceFailure(t *testing.T) {
	g := generator.New(failingReader{})

	_, err := g.Generate(charset.Build(domain.DefaultOptions()), 8)
	require.ErrorIs(t, err, serrors.ErrInternal)
	require.ErrorContains(t, err, "entropy pool exhausted")
}

func TestGenerate_DeterministicSource(t *testing.T) {
	// 0, 1 and 2 map straight to indexes in a 3-character pool.
	src := bytes.NewReader([]byte{
		0, 0, 0, 0,
		0, 0, 0, 1,
		0, 0, 0, 2,
		0, 0, 0, 5, // 5 % 3 == 2
	})
	g := generator.New(src)

	pw, err := g.Generate(charset.Pool("abc"), 4)
	require.NoError(t, err)
	require.Equal(t, "abcc", pw)
}

func TestGenerate_RejectsBiasedDraws(t *testing.T) {
	// 2^32 % 3 == 1, so 0xFFFFFFFF is the single rejected value for a pool of 3.
	src := bytes.NewReader([]byte{
		0xFF, 0xFF, 0xFF, 0xFF,
		0x00, 0x00, 0x00, 0x01,
	})
	g := generator.New(src)

	pw, err := g.Generate(charset.Pool("abc"), 1)
	require.NoError(t, err)
	require.Equal(t, "b", pw)
}

func TestGenerate_Uniqueness(t *testing.T) {
	g := generator.New(nil)
	pool := charset.Build(domain.DefaultOptions())

	seen := make(map[string]bool)
	for range 100 {
		pw, err := g.Generate(pool, 32)
		require.NoError(t, err)
		require.False(t, seen[pw], "duplicate password generated: %s", pw)
		seen[pw] = true
	}
}

func TestGenerate_CoversPool(t *testing.T) {
	g := generator.New(nil)
	pool := charset.Build(domain.CharsetOptions{IncludeNumbers: true})

	seen := make(map[rune]bool)
	for range 20 {
		pw, err := g.Generate(pool, domain.MaxLength)
		require.NoError(t, err)
		for _, r := range pw {
			seen[r] = true
		}
	}
	require.Len(t, seen, pool.Size())
}
