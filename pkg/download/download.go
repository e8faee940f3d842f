// Package download saves generated passwords as plain-text files.
package download

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
)

// filePerm keeps saved passwords readable by the owner only.
const filePerm = 0o600

// Dir saves files into a directory.
type Dir struct {
	path string
}

// New returns a Dir saving into path. An empty path means the working directory.
func New(path string) Dir {
	if path == "" {
		path = "."
	}

	return Dir{path: path}
}

// Path returns where a file with the given name would be written.
func (d Dir) Path(name string) string {
	return filepath.Join(d.path, filepath.Base(name))
}

// Save writes content to name inside the directory, replacing any existing file.
func (d Dir) Save(_ context.Context, name string, content []byte) error {
	if err := os.MkdirAll(d.path, 0o700); err != nil {
		return errors.Wrap(err, "create download dir")
	}
	if err := os.WriteFile(d.Path(name), content, filePerm); err != nil {
		return errors.Wrapf(err, "write %s", name)
	}

	return nil
}
