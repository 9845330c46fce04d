package blobstore

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/183amir/bob.db.atnt/pkg/atnt"
	"go.uber.org/zap"
)

// IterationElement is a stored blob passed to IterationHandler.
type IterationElement struct {
	File atnt.File
	Path string
}

// IterationHandler is a generic processor of IterationElement.
type IterationHandler func(IterationElement) error

// IteratePrm groups the parameters of Iterate operation.
type IteratePrm struct {
	handler      IterationHandler
	ignoreErrors bool
}

// WithHandler sets a function to call on each blob.
func (p *IteratePrm) WithHandler(f IterationHandler) *IteratePrm {
	p.handler = f
	return p
}

// WithIgnoreErrors sets a flag indicating whether errors of walking the
// tree and entries not following the database layout should be skipped.
// Errors returned by the handler are never ignored.
func (p *IteratePrm) WithIgnoreErrors(ignore bool) *IteratePrm {
	p.ignoreErrors = ignore
	return p
}

// Iterate calls the handler for every blob stored with the Store extension.
// Files with other extensions are skipped silently.
func (s *Store) Iterate(prm *IteratePrm) error {
	return filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if prm.ignoreErrors {
				s.log.Warn("skip unreadable entry", zap.String("path", p), zap.Error(err))
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			return err
		}

		if d.IsDir() || isTemp(d.Name()) || !strings.EqualFold(filepath.Ext(p), s.ext) {
			return nil
		}

		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}

		f, err := atnt.FileFromPath(rel)
		if err != nil {
			if prm.ignoreErrors {
				s.log.Warn("skip blob outside of the database layout", zap.String("path", p), zap.Error(err))
				return nil
			}
			return err
		}

		if prm.handler == nil {
			return nil
		}
		return prm.handler(IterationElement{File: f, Path: p})
	})
}
