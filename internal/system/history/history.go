// Released under an MIT license. See LICENSE.

// Package history loads and saves the interactive history file.
package history

import (
	"io"
	"os"
	"path/filepath"
)

// Name is the history file used in the user's home directory.
const Name = ".osmium_history"

var path string //nolint:gochecknoglobals

// Load passes the history file to read.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Path returns the history file's path.
func Path() string {
	if path != "" {
		return path
	}

	return filepath.Join(os.Getenv("HOME"), Name)
}

// Save passes a newly created history file to write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Use sets the history file's path. An empty path restores the default.
func Use(p string) {
	path = p
}

func file(op func(string) (*os.File, error)) (*os.File, error) {
	return op(Path())
}
