// Package persist stores the selected animation across power cycles.
//
// The stored unit is a Record: the animation index protected by a CRC-16.
// Records are appended to a slot log, and the newest record with a valid
// checksum wins when loading.
package persist

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// RecordSize is the encoded size of a Record: the index byte followed by its
// CRC-16 in little endian.
const RecordSize = 3

// Record is the persisted state.
type Record struct {
	// Index is the index of the last played animation.
	Index uint8
}

// ErrBadChecksum is returned when decoding a record whose CRC does not match.
var ErrBadChecksum = errors.New("record checksum mismatch")

// MarshalBinary encodes the record into RecordSize bytes.
func (r Record) MarshalBinary() ([]byte, error) {
	return r.AppendBinary(make([]byte, 0, RecordSize))
}

// AppendBinary appends the encoded record to b.
func (r Record) AppendBinary(b []byte) ([]byte, error) {
	b = append(b, r.Index)
	return binary.LittleEndian.AppendUint16(b, Checksum([]byte{r.Index})), nil
}

// UnmarshalBinary decodes a record. It returns ErrBadChecksum if the CRC does
// not match.
func (r *Record) UnmarshalBinary(b []byte) error {
	if len(b) != RecordSize {
		return errors.Errorf("record has %d bytes, want %d", len(b), RecordSize)
	}
	if binary.LittleEndian.Uint16(b[1:]) != Checksum(b[:1]) {
		return ErrBadChecksum
	}
	r.Index = b[0]
	return nil
}

// isErased returns true if the slot has never been written. Erased flash
// reads back as all ones.
func isErased(b []byte) bool {
	for _, c := range b {
		if c != 0xFF {
			return false
		}
	}
	return true
}

// Store loads and saves records.
type Store interface {
	// Load returns the newest valid record. ok is false if there is none.
	Load() (r Record, ok bool, err error)
	// Save stores a new record.
	Save(Record) error
	// Close releases the store.
	Close() error
}

// MemoryStore keeps the record in memory. It is used when persistence is
// disabled.
type MemoryStore struct {
	record Record
	ok     bool
}

var _ Store = (*MemoryStore)(nil)

// Load implements Store.
func (s *MemoryStore) Load() (Record, bool, error) { return s.record, s.ok, nil }

// Save implements Store.
func (s *MemoryStore) Save(r Record) error {
	s.record, s.ok = r, true
	return nil
}

// Close implements Store.
func (s *MemoryStore) Close() error { return nil }
