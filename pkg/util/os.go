package util

import (
	"errors"
	"io/fs"
	"os"
)

// MkdirAllX calls os.MkdirAll with the passed permissions
// but with +x for a user and a group. This makes the created
// dir openable regardless of the passed permissions.
//
// A directory that already exists, including one created concurrently
// by another process, is not an error.
func MkdirAllX(path string, perm os.FileMode) error {
	err := os.MkdirAll(path, perm|0110)
	if err != nil && errors.Is(err, fs.ErrExist) {
		if fi, statErr := os.Stat(path); statErr == nil && fi.IsDir() {
			return nil
		}
	}
	return err
}
