package hashset

import (
	"bytes"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hasher supplies hash codes and equality for set elements. Implementations
// must be consistent — Equal(a, b) implies Hash(a) == Hash(b) — and must stay
// stable for the lifetime of every set built under them; the set does not
// (cannot) detect contract violations.
type Hasher[T any] interface {
	Hash(x T) uint64
	Equal(a, b T) bool
}

// Comparable builds a Hasher from a hash function for element types
// supporting ==.
func Comparable[T comparable](hash func(T) uint64) Hasher[T] {
	return comparableHasher[T]{hash: hash}
}

type comparableHasher[T comparable] struct {
	hash func(T) uint64
}

func (h comparableHasher[T]) Hash(x T) uint64   { return h.hash(x) }
func (h comparableHasher[T]) Equal(a, b T) bool { return a == b }

// Strings hashes strings with xxHash.
func Strings() Hasher[string] {
	return Comparable(xxhash.Sum64String)
}

// Ints hashes machine integers with xxHash over their little-endian bytes.
func Ints() Hasher[int] {
	return Comparable(func(x int) uint64 {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(x))
		return xxhash.Sum64(buf[:])
	})
}

// Bytes hashes byte slices with xxHash, comparing them bytewise.
func Bytes() Hasher[[]byte] {
	return bytesHasher{}
}

type bytesHasher struct{}

func (bytesHasher) Hash(x []byte) uint64   { return xxhash.Sum64(x) }
func (bytesHasher) Equal(a, b []byte) bool { return bytes.Equal(a, b) }
