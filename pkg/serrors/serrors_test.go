package serrors_test

import (
	"errors"
	"fmt"
	"passgen/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrEmptyCharset,
		serrors.ErrClipboardUnavailable,
		serrors.ErrBadRequest,
		serrors.ErrNotFound,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("no display")

	e1 := serrors.With(serrors.ErrBadRequest, "length %d out of range", 300)
	require.Equal(t, "length 300 out of range", e1.Error())

	e2 := serrors.Wrap(serrors.ErrClipboardUnavailable, base, "clipboard write failed")
	require.Equal(t, "clipboard write failed: no display", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrEmptyCharset)
	require.Equal(t, "EMPTY_CHARSET", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrInternal, base, "reading random source")

	require.ErrorIs(t, e, serrors.ErrInternal)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrEmptyCharset)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrClipboardUnavailable, base, "copy")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrClipboardUnavailable, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(nil))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))

	wrapped := fmt.Errorf("generate: %w", serrors.With(serrors.ErrEmptyCharset, "choose at least one character set"))
	require.Equal(t, serrors.ErrEmptyCharset, serrors.KindOf(wrapped))
}

func TestUserMessage(t *testing.T) {
	err := fmt.Errorf("session: %w",
		serrors.Wrap(serrors.ErrClipboardUnavailable, errors.New("exit status 1"), "clipboard write failed, please copy manually"))
	require.Equal(t, "clipboard write failed, please copy manually", serrors.UserMessage(err))

	require.Equal(t, "plain", serrors.UserMessage(errors.New("plain")))
}
