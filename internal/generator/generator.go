// Package generator draws passwords from a character pool using a
// cryptographically secure random source.
package generator

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"passgen/internal/charset"
	"passgen/pkg/domain"
	"passgen/pkg/serrors"

	"github.com/go-faster/errors"
)

// EmptyCharsetMessage is shown to the user when no character is selectable.
const EmptyCharsetMessage = "choose at least one character set"

// Generator picks characters uniformly at random from a pool.
type Generator struct {
	source io.Reader
	buf    [4]byte
}

// New returns a Generator reading randomness from source. A nil source means
// crypto/rand.Reader; anything else must be cryptographically secure too,
// except in tests.
func New(source io.Reader) *Generator {
	if source == nil {
		source = rand.Reader
	}

	return &Generator{source: source}
}

// Generate returns exactly length characters, each drawn independently and
// uniformly from pool. No readability filtering is applied here.
func (g *Generator) Generate(pool charset.Pool, length int) (string, error) {
	if pool.Empty() {
		return "", serrors.With(serrors.ErrEmptyCharset, EmptyCharsetMessage)
	}
	if length < domain.MinLength || length > domain.MaxLength {
		return "", serrors.With(serrors.ErrBadRequest,
			"length must be between %d and %d, got %d", domain.MinLength, domain.MaxLength, length)
	}

	out := make([]rune, length)
	for i := range out {
		idx, err := g.index(pool.Size())
		if err != nil {
			return "", serrors.Wrap(serrors.ErrInternal, err, "could not draw random character")
		}
		out[i] = pool[idx]
	}

	return string(out), nil
}

// index returns a uniform integer in [0, n) using rejection sampling over
// 32-bit draws. Draws at or above the largest multiple of n that fits in
// 2^32 are discarded, so the modulo reduction carries no bias.
func (g *Generator) index(n int) (int, error) {
	const space = uint64(1) << 32
	limit := space - space%uint64(n)

	for {
		if _, err := io.ReadFull(g.source, g.buf[:]); err != nil {
			return 0, errors.Wrap(err, "read random source")
		}
		v := uint64(binary.BigEndian.Uint32(g.buf[:]))
		if v < limit {
			return int(v % uint64(n)), nil
		}
	}
}
