package codec

import (
	"encoding"
	"fmt"
)

// Raw stores blobs as is. Supported values are []byte, string and
// encoding.BinaryMarshaler; Unmarshal accepts pointers to []byte, string
// and encoding.BinaryUnmarshaler.
type Raw struct{}

// Marshal implements Codec.
func (Raw) Marshal(v any) ([]byte, error) {
	switch x := v.(type) {
	case []byte:
		return x, nil
	case string:
		return []byte(x), nil
	case encoding.BinaryMarshaler:
		return x.MarshalBinary()
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

// Unmarshal implements Codec.
func (Raw) Unmarshal(data []byte, v any) error {
	switch x := v.(type) {
	case *[]byte:
		*x = append((*x)[:0], data...)
	case *string:
		*x = string(data)
	case encoding.BinaryUnmarshaler:
		return x.UnmarshalBinary(data)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
	return nil
}
