package fstream

import (
	"os"

	"github.com/pkg/errors"

	"github.com/Kirov7/fstream/driver"
)

// Remove deletes the named file.
func Remove(path string) error {
	return os.Remove(path)
}

// Rename renames (moves) a file, replacing newPath if it exists.
func Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

// TempFile opens a stream over a fresh temporary file. The file is removed
// when the stream is closed.
func TempFile() (*Stream, error) {
	h, err := driver.NewTempFile()
	if err != nil {
		return nil, errors.Wrap(err, "create temp file")
	}
	return &Stream{handle: h}, nil
}
