package keepsake

import (
	"encoding/json"

	"github.com/lattice-games/keepsake/codec"
	"github.com/lattice-games/keepsake/types"
)

// Snapshot is the serialized form of the persisted subset of a world. It is a
// self-describing sequence of type blocks; the type tag identifies the data,
// block order only mirrors the type list the snapshot was saved with.
type Snapshot struct {
	// Entities is the number of marked entities the snapshot covers. Every
	// ordinal in the snapshot is smaller than this count, including entities
	// that own none of the persisted component types.
	Entities uint64      `json:"entities"`
	Blocks   []TypeBlock `json:"blocks"`
}

// TypeBlock holds all records of one component type.
type TypeBlock struct {
	Type    string          `json:"type"`
	Schema  json.RawMessage `json:"schema,omitempty"`
	Records []Record        `json:"records"`
}

// Record is one component payload attached to the entity with the given
// ordinal. Entity references inside the payload are stored as ordinals.
type Record struct {
	Ordinal types.Ordinal   `json:"ordinal"`
	Payload json.RawMessage `json:"payload"`
}

// Encode marshals the snapshot to bytes.
func (s *Snapshot) Encode() ([]byte, error) {
	return codec.Encode(s)
}

// DecodeSnapshot unmarshals a snapshot from bytes.
func DecodeSnapshot(bz []byte) (*Snapshot, error) {
	snap, err := codec.Decode[Snapshot](bz)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
