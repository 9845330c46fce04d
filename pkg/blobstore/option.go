package blobstore

import (
	"io/fs"

	"github.com/183amir/bob.db.atnt/pkg/blobstore/codec"
	"go.uber.org/zap"
)

// Option configures Store.
type Option func(*Store)

// WithPath sets the root directory.
func WithPath(p string) Option {
	return func(s *Store) {
		s.root = p
	}
}

// WithPerm sets permission bits of the created files. Directories get
// them with +x for a user and a group.
func WithPerm(p fs.FileMode) Option {
	return func(s *Store) {
		s.perm = p
	}
}

// WithExtension sets the extension blobs are stored with. It selects the
// codec, so it must be registered in the codec registry.
func WithExtension(ext string) Option {
	return func(s *Store) {
		s.ext = ext
	}
}

// WithNoSync disables O_SYNC on writes.
func WithNoSync(noSync bool) Option {
	return func(s *Store) {
		s.noSync = noSync
	}
}

// WithReadOnly forbids modifying operations.
func WithReadOnly(ro bool) Option {
	return func(s *Store) {
		s.readOnly = ro
	}
}

// WithCodecs sets the codec registry. Store creates the default one
// otherwise, see codec.NewRegistry.
func WithCodecs(r *codec.Registry) Option {
	return func(s *Store) {
		s.codecs = r
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}
