package blobstore

import (
	"errors"

	"github.com/183amir/bob.db.atnt/pkg/util/logicerr"
)

var (
	// ErrNotFound is returned when the blob of the requested file is missing.
	ErrNotFound = logicerr.New("blob not found")

	// ErrReadOnly is returned for modifying operations when the store was
	// opened in read-only mode.
	ErrReadOnly = logicerr.New("opened as read-only")

	// ErrNotInitialized is returned by operations called before Init.
	ErrNotInitialized = errors.New("store is not initialized")

	// ErrNoSpace is returned when there is no space left on the device.
	ErrNoSpace = errors.New("no free space")
)
