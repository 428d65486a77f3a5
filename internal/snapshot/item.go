// Package snapshot encodes a frozen vector of Items to a portable,
// compressed, integrity-checked, and optionally signed envelope, and
// decodes it back.
package snapshot

import (
	"bytes"
	"fmt"
)

// Item is the element type snapshots are built over: an opaque byte
// payload with the ordering, hashing and stringification the rtv.Element
// contract requires.
type Item []byte

// Equal reports whether the receiver and other hold identical bytes.
func (it Item) Equal(other Item) bool {
	return bytes.Equal(it, other)
}

// Compare orders Items lexicographically by byte value.
func (it Item) Compare(other Item) int {
	return bytes.Compare(it, other)
}

// Hash returns an FNV-1a hash of the item's bytes.
func (it Item) Hash() uint64 {
	h := uint64(14695981039346656037)
	for _, b := range it {
		h = (h ^ uint64(b)) * 1099511628211
	}
	return h
}

// String renders the item as a hex string.
func (it Item) String() string {
	return fmt.Sprintf("%x", []byte(it))
}
