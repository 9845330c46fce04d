// Package codec provides serializers of data blobs selected by the file
// extension they are stored under.
package codec

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Codec encodes and decodes data blobs.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

var (
	// ErrUnsupportedExtension is returned for extensions with no codec registered.
	ErrUnsupportedExtension = errors.New("unsupported extension")

	// ErrUnsupportedType is returned when codec can not handle the value type.
	ErrUnsupportedType = errors.New("unsupported value type")
)

// Registry maps file extensions onto codecs. Extensions are matched
// case-insensitively and always include the leading dot.
//
// Registry is not safe for concurrent modification.
type Registry struct {
	codecs map[string]Codec
}

// NewRegistry returns Registry with the built-in codecs:
//   - ".bin": raw bytes, see Raw;
//   - ".zst": ZSTD-compressed raw bytes;
//   - ".yaml", ".yml": YAML;
//   - ".json": JSON.
func NewRegistry() (*Registry, error) {
	z, err := NewZstd()
	if err != nil {
		return nil, fmt.Errorf("init zstd codec: %w", err)
	}

	r := &Registry{codecs: make(map[string]Codec)}
	r.Register(".bin", Raw{})
	r.Register(".zst", z)
	r.Register(".yaml", YAML{})
	r.Register(".yml", YAML{})
	r.Register(".json", JSON{})

	return r, nil
}

// Register binds c to the extension replacing the previous codec if any.
func (r *Registry) Register(ext string, c Codec) {
	r.codecs[normalizeExt(ext)] = c
}

// Lookup returns codec for the extension of path.
func (r *Registry) Lookup(path string) (Codec, error) {
	ext := filepath.Ext(path)
	c, ok := r.codecs[normalizeExt(ext)]
	if !ok || ext == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}
	return c, nil
}

// Close releases resources of all registered codecs.
func (r *Registry) Close() error {
	var errs []error
	for _, c := range r.codecs {
		if cl, ok := c.(io.Closer); ok {
			if err := cl.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
