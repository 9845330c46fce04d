package atnt

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/183amir/bob.db.atnt/pkg/util/logicerr"
)

const (
	// FilesPerClient is a number of files each client has.
	FilesPerClient = 10
	// FileCount is a total number of files in the database.
	FileCount = ClientCount * FilesPerClient
)

// clientDirPrefix starts the name of every client directory.
const clientDirPrefix = "s"

// File is a single sample of the database.
type File struct {
	// Global file id in [1, FileCount].
	ID int
	// Id of the owning client.
	ClientID int
	// Relative path without extension, always '/'-separated.
	Path string
}

// NewFile returns File by its client id and per-client file id.
// Returns ErrInvalidIdentifier if any of the ids is out of range.
func NewFile(clientID, clientFileID int) (File, error) {
	if !validClientID(clientID) {
		return File{}, logicerr.Wrapf(ErrInvalidIdentifier, "client id %d is out of [1, %d]", clientID, ClientCount)
	}
	if clientFileID < 1 || clientFileID > FilesPerClient {
		return File{}, logicerr.Wrapf(ErrInvalidIdentifier, "client file id %d is out of [1, %d]", clientFileID, FilesPerClient)
	}
	return newFile(clientID, clientFileID), nil
}

func newFile(clientID, clientFileID int) File {
	return File{
		ID:       (clientID-1)*FilesPerClient + clientFileID,
		ClientID: clientID,
		Path:     clientDirPrefix + strconv.Itoa(clientID) + "/" + strconv.Itoa(clientFileID),
	}
}

// FileFromID returns File by its global id. Returns ErrInvalidIdentifier
// if id is not in [1, FileCount].
func FileFromID(id int) (File, error) {
	if id < 1 {
		// Go division truncates towards zero, ids below 1 would
		// otherwise be folded into the first client.
		return File{}, logicerr.Wrapf(ErrInvalidIdentifier, "file id %d is out of [1, %d]", id, FileCount)
	}
	return NewFile((id-1)/FilesPerClient+1, (id-1)%FilesPerClient+1)
}

// FileFromPath returns File by the path of its blob. Only the last two
// segments of p matter: the client directory s<client_id> and the file
// name <client_file_id> with optional extension, so both relative and
// prefixed paths are accepted ("s3/5", "out/s3/5.hdf5").
//
// Returns ErrMalformedPath if p does not follow the convention. If the
// parsed ids are out of range, the error matches ErrInvalidIdentifier too.
func FileFromPath(p string) (File, error) {
	p = filepath.ToSlash(p)

	dir, name := splitLast(p)
	if ext := filepath.Ext(name); ext != "" {
		name = strings.TrimSuffix(name, ext)
	}
	_, clientDir := splitLast(dir)

	if !strings.HasPrefix(clientDir, clientDirPrefix) {
		return File{}, logicerr.Wrapf(ErrMalformedPath, "%q: client directory must start with %q", p, clientDirPrefix)
	}

	clientID, err := strconv.Atoi(clientDir[len(clientDirPrefix):])
	if err != nil {
		return File{}, logicerr.Wrapf(ErrMalformedPath, "%q: parse client id: %v", p, err)
	}

	clientFileID, err := strconv.Atoi(name)
	if err != nil {
		return File{}, logicerr.Wrapf(ErrMalformedPath, "%q: parse client file id: %v", p, err)
	}

	f, err := NewFile(clientID, clientFileID)
	if err != nil {
		return File{}, logicerr.Wrapf(ErrMalformedPath, "%q: %w", p, err)
	}
	return f, nil
}

// splitLast splits slash-separated p right before its last segment.
// Trailing slashes are not stripped.
func splitLast(p string) (string, string) {
	i := strings.LastIndexByte(p, '/')
	if i < 0 {
		return "", p
	}
	return p[:i], p[i+1:]
}

// ClientFileID returns the id of the file within its client.
func (f File) ClientFileID() int {
	return (f.ID-1)%FilesPerClient + 1
}

// Client returns the client owning the file.
func (f File) Client() Client {
	return Client{ID: f.ClientID}
}

// MakePath returns a full path of the file: the extension is appended to
// the relative path first, then the result is joined to the directory.
// Empty directory and extension are omitted. Neither is validated.
func (f File) MakePath(directory, extension string) string {
	return filepath.Join(directory, filepath.FromSlash(f.Path+extension))
}

func (f File) String() string {
	return f.Path
}
