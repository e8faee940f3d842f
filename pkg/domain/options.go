package domain

const (
	// MinLength is the shortest password that can be requested.
	MinLength = 1
	// MaxLength is the longest password that can be requested.
	MaxLength = 256
	// DefaultLength is used when no length (zero) is supplied.
	DefaultLength = 16
)

// CharsetOptions describes which character categories feed the pool and how
// long the generated password should be. A fresh value is built from the
// front-end state on every generation request.
type CharsetOptions struct {
	// IncludeLower enables a-z.
	IncludeLower bool `json:"lower"`
	// IncludeUpper enables A-Z.
	IncludeUpper bool `json:"upper"`
	// IncludeNumbers enables 0-9.
	IncludeNumbers bool `json:"numbers"`
	// IncludeSymbols enables the 32 ASCII punctuation characters.
	IncludeSymbols bool `json:"symbols"`
	// ExcludeAmbiguous strips O, 0, o, I, l and 1 from the pool.
	ExcludeAmbiguous bool `json:"excludeAmbiguous"`
	// ReadabilityFilter collapses runs of 3+ symbols down to 2 after generation.
	ReadabilityFilter bool `json:"readable"`
	// Length is the requested password length before any readability filtering.
	Length int `json:"length"`
}

// DefaultOptions returns every category enabled at the default length.
func DefaultOptions() CharsetOptions {
	return CharsetOptions{
		IncludeLower:   true,
		IncludeUpper:   true,
		IncludeNumbers: true,
		IncludeSymbols: true,
		Length:         DefaultLength,
	}
}

// ClampLength maps any requested length into [MinLength, MaxLength].
// Zero means "unset" and yields DefaultLength.
func ClampLength(n int) int {
	switch {
	case n == 0:
		return DefaultLength
	case n < MinLength:
		return MinLength
	case n > MaxLength:
		return MaxLength
	default:
		return n
	}
}

// Normalize returns a copy of o with Length clamped.
func (o CharsetOptions) Normalize() CharsetOptions {
	o.Length = ClampLength(o.Length)

	return o
}

// AnyCategory reports whether at least one character category is enabled.
func (o CharsetOptions) AnyCategory() bool {
	return o.IncludeLower || o.IncludeUpper || o.IncludeNumbers || o.IncludeSymbols
}
