package codec

import (
	"bytes"

	"github.com/klauspost/compress/zstd"
)

// zstdFrameMagic contains first 4 bytes of any compressed blob
// https://github.com/klauspost/compress/blob/master/zstd/framedec.go#L58 .
var zstdFrameMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Zstd compresses raw blobs (see Raw) with ZSTD.
type Zstd struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewZstd initializes compression routines.
func NewZstd() (*Zstd, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		_ = enc.Close()
		return nil, err
	}

	return &Zstd{encoder: enc, decoder: dec}, nil
}

// IsCompressed checks whether given data is compressed.
func IsCompressed(data []byte) bool {
	return len(data) >= len(zstdFrameMagic) && bytes.Equal(data[:len(zstdFrameMagic)], zstdFrameMagic)
}

// Marshal implements Codec.
func (z *Zstd) Marshal(v any) ([]byte, error) {
	data, err := Raw{}.Marshal(v)
	if err != nil {
		return nil, err
	}
	maxSize := z.encoder.MaxEncodedSize(len(data))
	return z.encoder.EncodeAll(data, make([]byte, 0, maxSize)), nil
}

// Unmarshal implements Codec. Data without ZSTD magic is taken as is.
func (z *Zstd) Unmarshal(data []byte, v any) error {
	if IsCompressed(data) {
		var err error
		data, err = z.decoder.DecodeAll(data, nil)
		if err != nil {
			return err
		}
	}
	return Raw{}.Unmarshal(data, v)
}

// Close closes encoder and decoder, returns any error occurred.
func (z *Zstd) Close() error {
	err := z.encoder.Close()
	z.decoder.Close()
	return err
}
