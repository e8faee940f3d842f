// Package entropy estimates password strength as length * log2(poolSize).
//
// The estimate describes the pool a password could have come from, not the
// password itself, so it is only as accurate as the pool passed in.
package entropy

import (
	"math"
	"passgen/internal/charset"
	"passgen/pkg/domain"
	"unicode/utf8"
)

// Band thresholds in bits.
const (
	MediumThreshold = 40.0
	StrongThreshold = 80.0
)

// Estimate returns the entropy of password in bits, rounded to one decimal.
//
// pool should be built from the options configured now, which may differ from
// the options the password was generated with. When pool is empty the number
// of distinct characters in password stands in for the pool size, and 1 when
// that is zero as well.
func Estimate(password string, pool charset.Pool) float64 {
	size := pool.Size()
	if size == 0 {
		size = distinct(password)
	}
	if size == 0 {
		size = 1
	}

	bits := float64(utf8.RuneCountInString(password)) * math.Log2(float64(size))

	return math.Round(bits*10) / 10
}

// Band maps an entropy value onto its strength band.
func Band(bits float64) domain.Strength {
	switch {
	case bits < MediumThreshold:
		return domain.StrengthWeak
	case bits < StrongThreshold:
		return domain.StrengthMedium
	default:
		return domain.StrengthStrong
	}
}

// Score estimates password against pool and derives the meter and band.
func Score(password string, pool charset.Pool) domain.Score {
	bits := Estimate(password, pool)

	return domain.Score{
		Bits:     bits,
		Meter:    math.Min(domain.MeterMax, bits),
		Strength: Band(bits),
	}
}

func distinct(s string) int {
	seen := make(map[rune]struct{}, len(s))
	for _, r := range s {
		seen[r] = struct{}{}
	}

	return len(seen)
}
