package hashmap

import "bytes"

// A Key is an immutable view over a caller-owned byte range. The table
// never copies the bytes; the caller must keep them alive for as long as
// the key is stored.
type Key struct {
	data []byte
}

// NewKey binds a byte range into a key descriptor.
func NewKey(data []byte) *Key {
	return &Key{data: data}
}

// Bytes returns the borrowed byte range the key refers to.
func (k *Key) Bytes() []byte {
	return k.data
}

// Len returns the key length in bytes.
func (k *Key) Len() int {
	return len(k.data)
}

// Equal reports whether two keys have equal lengths and equal bytes.
func (k *Key) Equal(other *Key) bool {
	return Compare(k, other) == 0
}

// Compare orders two keys: first by length, then lexicographically by
// content. Nil operands are ordered before non-nil ones. The magnitude is
// only a tie-break signal; the table itself needs just the zero test.
func Compare(a, b *Key) int {
	if a == nil || b == nil {
		x, y := 0, 0
		if a != nil {
			x = 1
		}
		if b != nil {
			y = 1
		}
		return x - y
	}
	if d := len(a.data) - len(b.data); d != 0 {
		return d
	}
	return bytes.Compare(a.data, b.data)
}

// An Entry is a key-value pair. The key is immutable once the entry is
// built; Value may be mutated by whoever holds a reference to the entry.
// Ownership of the entry record passes to the table on a successful
// Insert, but the key bytes and the value payload stay caller-owned.
type Entry struct {
	key *Key

	// Value is the opaque payload. A nil Value is a legitimate stored
	// value, not an empty-slot marker.
	Value any
}

// NewEntry binds a byte range and a value into an entry descriptor ready
// to be handed to Insert.
func NewEntry(data []byte, value any) *Entry {
	return &Entry{key: NewKey(data), Value: value}
}

// Key returns the entry's key.
func (e *Entry) Key() *Key {
	return e.key
}
