// Package hashkey computes the structural hashes used for hash-consing.
//
// A Hash is a 64-bit value that is only meaningful within one process run:
// it seeds itself once at init from the runtime's random source, exactly
// like hash/maphash's own documented contract, and no stability guarantee
// is made (or needed) across process restarts or Go versions.
package hashkey

import (
	"encoding/binary"
	"hash/maphash"
)

// Hash is a 64-bit structural hash. Equal values observed within the same
// process run denote equal structural content; a collision between
// distinct content is a fatal internal-invariant condition (see
// internal/coreerr).
type Hash uint64

// seed is fixed once per process so that two Combine calls over the same
// logical content within this run always agree, even though the value
// itself is not meaningful across runs.
var seed = maphash.MakeSeed()

// singularKind enumerates the primitive types Singular accepts.
type singularKind interface {
	~int64 | ~uint64 | ~uint32 | ~int32 | ~bool | ~string
}

// Singular computes a canonical hash for a single primitive value: signed
// and unsigned integers (widened), strings (by content) and booleans.
// Wider composite hashing goes through Combine.
func Singular[T singularKind](v T) Hash {
	var h maphash.Hash
	h.SetSeed(seed)
	switch x := any(v).(type) {
	case string:
		_, _ = h.WriteString(x)
	case bool:
		if x {
			_, _ = h.Write([]byte{1})
		} else {
			_, _ = h.Write([]byte{0})
		}
	case int64:
		writeUint64(&h, uint64(x))
	case uint64:
		writeUint64(&h, x)
	case int32:
		writeUint64(&h, uint64(uint32(x)))
	case uint32:
		writeUint64(&h, uint64(x))
	}
	return Hash(h.Sum64())
}

func writeUint64(h *maphash.Hash, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = h.Write(buf[:])
}

// Bytes hashes a raw byte buffer (used for literal FP payloads).
func Bytes(b []byte) Hash {
	var h maphash.Hash
	h.SetSeed(seed)
	_, _ = h.Write(b)
	return Hash(h.Sum64())
}

// Combine mixes an op-kind discriminant with the hashes of each operand
// and immediate attribute into one structural hash. Argument order is
// significant: callers that need commutative canonicalization sort their
// operand hashes themselves before calling Combine (see internal/expr.NewBin).
func Combine(kindTag uint8, parts ...Hash) Hash {
	var h maphash.Hash
	h.SetSeed(seed)
	_, _ = h.Write([]byte{kindTag})
	for _, p := range parts {
		writeUint64(&h, uint64(p))
	}
	return Hash(h.Sum64())
}

// Annotations hashes an ordered sequence of already-computed element
// hashes, mirroring the source's Hash::singular<AnnotationVector>
// specialization (concatenation of element hashes, order-sensitive).
func Annotations(elems []Hash) Hash {
	var h maphash.Hash
	h.SetSeed(seed)
	for _, e := range elems {
		writeUint64(&h, uint64(e))
	}
	return Hash(h.Sum64())
}
