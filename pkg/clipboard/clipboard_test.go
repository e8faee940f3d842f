package clipboard_test

import (
	"context"
	"passgen/internal/session"
	"passgen/pkg/clipboard"
	"testing"

	atotto "github.com/atotto/clipboard"
	"github.com/stretchr/testify/require"
)

var _ session.Clipboard = clipboard.System{}

func TestSystem_WriteAll(t *testing.T) {
	err := clipboard.New().WriteAll(context.Background(), "s3cr3t!")
	if atotto.Unsupported {
		require.ErrorIs(t, err, clipboard.ErrUnsupported)

		return
	}
	if err != nil {
		// a utility is installed but no display is reachable
		t.Skipf("clipboard not usable here: %v", err)
	}

	got, err := atotto.ReadAll()
	require.NoError(t, err)
	require.Equal(t, "s3cr3t!", got)
}
