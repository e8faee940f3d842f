// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/go-faster/errors"
)

// ErrUnsupported is returned when no clipboard utility is available
// (e.g. no xclip, xsel or wl-copy on a headless Linux box).
var ErrUnsupported = errors.New("clipboard is not supported in this environment")

// System is the host clipboard.
type System struct{}

// New returns the host clipboard.
func New() System { return System{} }

// WriteAll replaces the clipboard contents with text.
func (System) WriteAll(_ context.Context, text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(err, "write clipboard")
	}

	return nil
}
