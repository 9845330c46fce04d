package codec

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// YAML encodes blobs as YAML documents.
type YAML struct{}

// Marshal implements Codec.
func (YAML) Marshal(v any) ([]byte, error) { return yaml.Marshal(v) }

// Unmarshal implements Codec.
func (YAML) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }

// JSON encodes blobs as JSON documents.
type JSON struct{}

// Marshal implements Codec.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal implements Codec.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
