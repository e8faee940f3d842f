package domain_test

import (
	"passgen/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClampLength(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, domain.DefaultLength},
		{-5, domain.MinLength},
		{1, 1},
		{16, 16},
		{256, 256},
		{257, domain.MaxLength},
		{10_000, domain.MaxLength},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, domain.ClampLength(tc.in), "ClampLength(%d)", tc.in)
	}
}

func TestCharsetOptions_Normalize(t *testing.T) {
	opts := domain.CharsetOptions{IncludeSymbols: true, Length: 999}

	got := opts.Normalize()
	require.Equal(t, domain.MaxLength, got.Length)
	require.True(t, got.IncludeSymbols)
	require.Equal(t, 999, opts.Length, "receiver must not change")
}

func TestCharsetOptions_AnyCategory(t *testing.T) {
	require.False(t, domain.CharsetOptions{ExcludeAmbiguous: true, ReadabilityFilter: true, Length: 8}.AnyCategory())
	require.True(t, domain.CharsetOptions{IncludeNumbers: true}.AnyCategory())
	require.True(t, domain.DefaultOptions().AnyCategory())
}

func TestScore_Percent(t *testing.T) {
	require.InDelta(t, 50.0, domain.Score{Meter: 64}.Percent(), 1e-9)
	require.InDelta(t, 100.0, domain.Score{Meter: domain.MeterMax}.Percent(), 1e-9)
}
