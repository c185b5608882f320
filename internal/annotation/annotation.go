// Package annotation defines the ordered, immutable metadata sequences
// that may be attached to an Expression.
package annotation

import (
	"fmt"
	"strings"

	"clarigo/internal/hashkey"
)

// Annotation is an opaque, hashable metadata record. Concrete annotation
// kinds live outside this package; the core only needs to hash and print
// them.
type Annotation interface {
	Hash() hashkey.Hash
	String() string
}

// Set is an ordered, immutable sequence of Annotations. The zero value is
// not valid; use Empty().
type Set struct {
	elems []Annotation
	hash  hashkey.Hash
}

// Empty returns the canonical empty annotation set.
func Empty() *Set {
	return &Set{hash: hashkey.Annotations(nil)}
}

// Extend returns a new Set consisting of s's elements followed by a. s is
// left unmodified; annotation sets are immutable and freely shared.
func (s *Set) Extend(a Annotation) *Set {
	if a == nil {
		return s
	}
	var base []Annotation
	if s != nil {
		base = s.elems
	}
	elems := make([]Annotation, len(base)+1)
	copy(elems, base)
	elems[len(base)] = a
	return &Set{elems: elems, hash: hashOf(elems)}
}

func hashOf(elems []Annotation) hashkey.Hash {
	hs := make([]hashkey.Hash, len(elems))
	for i, e := range elems {
		hs[i] = e.Hash()
	}
	return hashkey.Annotations(hs)
}

// Hash returns the set's structural hash: the concatenation, in order, of
// each element's hash. Two sets with identical elements in identical
// order hash identically; a nil Set hashes the same as Empty().
func (s *Set) Hash() hashkey.Hash {
	if s == nil {
		return hashkey.Annotations(nil)
	}
	return s.hash
}

// Len reports the number of annotations in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.elems)
}

// At returns the i'th annotation in order.
func (s *Set) At(i int) Annotation {
	return s.elems[i]
}

// Repr writes the set's JSON array representation, e.g. `["a","b"]`.
func (s *Set) Repr() string {
	if s.Len() == 0 {
		return "[]"
	}
	parts := make([]string, s.Len())
	for i := 0; i < s.Len(); i++ {
		parts[i] = fmt.Sprintf("%q", s.At(i).String())
	}
	return "[" + strings.Join(parts, ",") + "]"
}
