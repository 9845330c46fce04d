package atnt

import "errors"

var (
	// ErrInvalidIdentifier is returned when a client id or a file id (global
	// or per-client) is out of its valid range.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrMalformedPath is returned when a path does not follow the
	// s<client_id>/<client_file_id> convention.
	ErrMalformedPath = errors.New("malformed path")
)
