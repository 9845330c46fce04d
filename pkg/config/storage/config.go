package storageconfig

import (
	"io/fs"

	"github.com/183amir/bob.db.atnt/pkg/blobstore"
	"github.com/183amir/bob.db.atnt/pkg/config"
)

const (
	subsection = "storage"

	// PathDefault is a default root directory of the blob storage.
	PathDefault = "."
)

// Path returns the value of "path" config parameter
// from "storage" section.
//
// Returns PathDefault if the value is not a non-empty string.
func Path(c *config.Config) string {
	v := config.StringSafe(c.Sub(subsection), "path")
	if v != "" {
		return v
	}

	return PathDefault
}

// Extension returns the value of "extension" config parameter
// from "storage" section.
//
// Returns blobstore.DefaultExtension if the value is not a non-empty string.
func Extension(c *config.Config) string {
	v := config.StringSafe(c.Sub(subsection), "extension")
	if v != "" {
		return v
	}

	return blobstore.DefaultExtension
}

// Perm returns the value of "perm" config parameter
// from "storage" section.
//
// Returns blobstore.DefaultPerm if the value is not a positive number.
func Perm(c *config.Config) fs.FileMode {
	v := config.Uint32Safe(c.Sub(subsection), "perm")
	if v > 0 {
		return fs.FileMode(v)
	}

	return blobstore.DefaultPerm
}

// NoSync returns the value of "no_sync" config parameter
// from "storage" section.
//
// Returns false if the value is not a boolean.
func NoSync(c *config.Config) bool {
	return config.BoolSafe(c.Sub(subsection), "no_sync")
}

// ReadOnly returns the value of "read_only" config parameter
// from "storage" section.
//
// Returns false if the value is not a boolean.
func ReadOnly(c *config.Config) bool {
	return config.BoolSafe(c.Sub(subsection), "read_only")
}

// StoreOptions returns blobstore options from "storage" section.
func StoreOptions(c *config.Config) []blobstore.Option {
	return []blobstore.Option{
		blobstore.WithPath(Path(c)),
		blobstore.WithExtension(Extension(c)),
		blobstore.WithPerm(Perm(c)),
		blobstore.WithNoSync(NoSync(c)),
		blobstore.WithReadOnly(ReadOnly(c)),
	}
}
