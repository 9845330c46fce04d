package blobstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/183amir/bob.db.atnt/pkg/blobstore/codec"
)

// tmpSuffix ends the names of files being written. Such files are never
// visible as blobs and are removed by Init if a writer died before renaming.
const tmpSuffix = ".tmp"

type writer struct {
	perm   fs.FileMode
	noSync bool
}

func newWriter(perm fs.FileMode, noSync bool) *writer {
	return &writer{
		perm:   perm,
		noSync: noSync,
	}
}

// write encodes v with c into a uniquely named temporary file next to p and
// renames it to p, so an existing blob is replaced as a whole and concurrent
// writers of the same blob never share a temporary file.
func (w *writer) write(p string, c codec.Codec, v any) error {
	data, err := c.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode blob: %w", err)
	}

	f, err := os.CreateTemp(filepath.Dir(p), filepath.Base(p)+".*"+tmpSuffix)
	if err != nil {
		return w.ioErr(err)
	}
	tmp := f.Name()

	err = w.fill(f, data)
	if err == nil {
		err = os.Rename(tmp, p)
	}
	if err != nil {
		_ = os.Remove(tmp)
		return w.ioErr(err)
	}
	return nil
}

// fill writes data, applies the blob permissions and closes f.
func (w *writer) fill(f *os.File, data []byte) error {
	_, err := f.Write(data)
	if err == nil {
		err = f.Chmod(w.perm)
	}
	if err == nil && !w.noSync {
		err = f.Sync()
	}
	if cErr := f.Close(); err == nil {
		err = cErr
	}
	return err
}

func (w *writer) ioErr(err error) error {
	if errors.Is(err, syscall.ENOSPC) {
		return ErrNoSpace
	}
	return err
}

func isTemp(name string) bool {
	return strings.HasSuffix(name, tmpSuffix)
}

// removeTemps deletes temporary files left under root by interrupted writes.
// Returns the number of removed files.
func removeTemps(root string) (int, error) {
	var n int
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isTemp(d.Name()) {
			return nil
		}
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		n++
		return nil
	})
	return n, err
}
