package atnt

import (
	"os"
	"path/filepath"

	"github.com/183amir/bob.db.atnt/pkg/util"
)

// DefaultExtension is used by [File.Save] when no extension is given.
const DefaultExtension = ".hdf5"

// dirPerm is applied to the directories created by [File.Save].
const dirPerm os.FileMode = 0o750

// Saver encodes data and writes it to the file at path. The encoding is
// selected by the extension of path.
type Saver interface {
	Save(data any, path string) error
}

// SaverFunc is a function adapter for Saver.
type SaverFunc func(data any, path string) error

// Save implements Saver.
func (f SaverFunc) Save(data any, path string) error {
	return f(data, path)
}

// Save stores data at f.MakePath(directory, extension) using s. Empty
// extension means DefaultExtension. Missing parent directories are created,
// existing ones are fine. An existing file is overwritten.
//
// Errors of directory creation and of s are returned as is.
func (f File) Save(s Saver, data any, directory, extension string) error {
	if extension == "" {
		extension = DefaultExtension
	}

	p := f.MakePath(directory, extension)

	err := util.MkdirAllX(filepath.Dir(p), dirPerm)
	if err != nil {
		return err
	}

	return s.Save(data, p)
}
