package atnt

import (
	"strconv"

	"github.com/183amir/bob.db.atnt/pkg/util/logicerr"
)

// ClientCount is a number of clients (subjects) in the database.
const ClientCount = 40

// Client is a subject of the database. Clients carry nothing but their id.
type Client struct {
	ID int
}

// NewClient returns Client with the given id. Returns ErrInvalidIdentifier
// if id is not in [1, ClientCount].
func NewClient(id int) (Client, error) {
	if !validClientID(id) {
		return Client{}, logicerr.Wrapf(ErrInvalidIdentifier, "client id %d is out of [1, %d]", id, ClientCount)
	}
	return Client{ID: id}, nil
}

// Clients returns all clients of the database ordered by id.
func Clients() []Client {
	res := make([]Client, ClientCount)
	for i := range res {
		res[i] = Client{ID: i + 1}
	}
	return res
}

// Files returns all files of the client ordered by per-client file id.
func (c Client) Files() []File {
	res := make([]File, FilesPerClient)
	for i := range res {
		res[i] = newFile(c.ID, i+1)
	}
	return res
}

func (c Client) String() string {
	return "s" + strconv.Itoa(c.ID)
}

func validClientID(id int) bool {
	return id >= 1 && id <= ClientCount
}
