package blobstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/183amir/bob.db.atnt/pkg/atnt"
	"github.com/183amir/bob.db.atnt/pkg/blobstore/codec"
	"github.com/183amir/bob.db.atnt/pkg/blobstore/internal/storagelog"
	"github.com/183amir/bob.db.atnt/pkg/util"
	"go.uber.org/zap"
)

// Store keeps data blobs of the database files in a file-system tree.
// Store must be initialized with Init before use.
type Store struct {
	root     string
	perm     fs.FileMode
	ext      string
	noSync   bool
	readOnly bool

	codecs    *codec.Registry
	ownCodecs bool
	w         *writer

	log     *zap.Logger
	metrics Metrics
}

const (
	// DefaultExtension is the extension used if none is configured.
	DefaultExtension = ".bin"
	// DefaultPerm is the permission bits of files used if none are configured.
	DefaultPerm fs.FileMode = 0o640
)

// New returns Store with the given options applied.
func New(opts ...Option) *Store {
	s := &Store{
		root:    ".",
		perm:    DefaultPerm,
		ext:     DefaultExtension,
		log:     zap.NewNop(),
		metrics: noopMetrics{},
	}

	for i := range opts {
		opts[i](s)
	}

	if s.ext == "" {
		s.ext = DefaultExtension
	}

	return s
}

// Init creates the root directory and prepares codecs.
func (s *Store) Init() error {
	if !s.readOnly {
		err := util.MkdirAllX(s.root, s.perm)
		if err != nil {
			return fmt.Errorf("mkdir all for %q: %w", s.root, err)
		}
	}

	if s.codecs == nil {
		r, err := codec.NewRegistry()
		if err != nil {
			return err
		}
		s.codecs, s.ownCodecs = r, true
	}

	if isTemp(s.ext) {
		_ = s.Close()
		return fmt.Errorf("blob extension %q is reserved for interrupted writes", s.ext)
	}
	if _, err := s.codecs.Lookup(s.ext); err != nil {
		_ = s.Close()
		return fmt.Errorf("blob extension: %w", err)
	}

	if !s.readOnly {
		n, err := removeTemps(s.root)
		if err != nil {
			_ = s.Close()
			return fmt.Errorf("remove interrupted writes under %q: %w", s.root, err)
		}
		if n > 0 {
			s.log.Info("removed interrupted writes", zap.String("root", s.root), zap.Int("count", n))
		}
	}

	s.w = newWriter(s.perm, s.noSync)
	return nil
}

// Close releases codecs created by the Store. The Store must be
// initialized again to be used after Close.
func (s *Store) Close() error {
	s.w = nil
	if !s.ownCodecs || s.codecs == nil {
		return nil
	}
	err := s.codecs.Close()
	s.codecs, s.ownCodecs = nil, false
	return err
}

// Root returns the root directory.
func (s *Store) Root() string {
	return s.root
}

// Path returns the path of the blob of f.
func (s *Store) Path(f atnt.File) string {
	return f.MakePath(s.root, s.ext)
}

// Save implements atnt.Saver: data is encoded with the codec of the path
// extension and written to path replacing an existing file if any.
// Returns ErrReadOnly for read-only stores.
func (s *Store) Save(data any, path string) error {
	if s.w == nil {
		return ErrNotInitialized
	}
	if s.readOnly {
		return ErrReadOnly
	}

	c, err := s.codecs.Lookup(path)
	if err != nil {
		return err
	}

	return s.w.write(path, c, data)
}

// Load reads the file at path and decodes it into v with the codec of the
// path extension.
func (s *Store) Load(path string, v any) error {
	if s.w == nil {
		return ErrNotInitialized
	}

	c, err := s.codecs.Lookup(path)
	if err != nil {
		return err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := c.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode blob %q: %w", path, err)
	}
	return nil
}

// Put saves data as the blob of f.
func (s *Store) Put(f atnt.File, data any) error {
	if s.w == nil {
		return ErrNotInitialized
	}
	if s.readOnly {
		// Save refuses too, but File.Save would create directories first.
		return ErrReadOnly
	}

	start := time.Now()
	err := f.Save(s, data, s.root, s.ext)
	s.metrics.AddPut(err == nil, time.Since(start))
	if err != nil {
		return fmt.Errorf("put blob of %s: %w", f, err)
	}

	storagelog.Write(s.log,
		storagelog.OpField("PUT"),
		storagelog.FileField(f),
		storagelog.PathField(s.Path(f)))

	return nil
}

// Get decodes the blob of f into v. Returns ErrNotFound if the blob is
// missing.
func (s *Store) Get(f atnt.File, v any) error {
	err := s.Load(s.Path(f), v)
	s.metrics.AddGet(err == nil)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	return err
}

// Exists checks whether the blob of f is stored.
func (s *Store) Exists(f atnt.File) (bool, error) {
	_, err := os.Stat(s.Path(f))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Delete removes the blob of f. Returns ErrNotFound if the blob is missing.
func (s *Store) Delete(f atnt.File) error {
	if s.w == nil {
		return ErrNotInitialized
	}
	if s.readOnly {
		return ErrReadOnly
	}

	p := s.Path(f)
	err := os.Remove(p)
	s.metrics.AddDelete(err == nil)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return err
	}

	storagelog.Write(s.log,
		storagelog.OpField("DELETE"),
		storagelog.FileField(f),
		storagelog.PathField(p))

	return nil
}
