// Package expr defines the immutable, hash-consed expression and
// operator nodes of the symbolic core: the tagged Op variant (spec
// component C3) and the tagged Expression variant (component C4). The two
// are mutually recursive (an Op's operands are Expressions, an
// Expression's body is an Op) and so, unlike the spec's component split,
// live in one Go package — the same way this codebase keeps its other
// mutually-recursive tree node types (expressions, statements) inside a
// single ast package rather than splitting them across import-cycle-free
// packages.
package expr

import (
	"fmt"

	"clarigo/internal/annotation"
	"clarigo/internal/coreerr"
	"clarigo/internal/hashkey"
)

// Sort is the dynamic type of an Expression: Bool, BV, FP or String.
type Sort uint8

const (
	SortBool Sort = iota + 1
	SortBV
	SortFP
	SortString
)

func (s Sort) String() string {
	switch s {
	case SortBool:
		return "Bool"
	case SortBV:
		return "BV"
	case SortFP:
		return "FP"
	case SortString:
		return "String"
	default:
		return fmt.Sprintf("Sort(%d)", uint8(s))
	}
}

// Expression is an immutable, hash-consed node in the symbolic DAG.
// Fields are set once at construction (see Assemble) and never rewritten.
type Expression struct {
	ID           hashkey.Hash
	Sort         Sort
	BitLength    uint32 // > 0 for BV/FP/String, 0 and meaningless for Bool
	Symbolic     bool
	Op           *Op
	Annotations  *annotation.Set
	ExponentBits uint8 // FP only, width-defining ops
	SigBits      uint8 // FP only, width-defining ops
}

// TypeName reports one of "Bool", "BV", "FP", "String".
func (e *Expression) TypeName() string { return e.Sort.String() }

// IDOf returns the structural id used for identity comparisons.
func (e *Expression) IDOf() hashkey.Hash { return e.ID }

// IsSymbolic reports whether e transitively depends on at least one Symbol.
func (e *Expression) IsSymbolic() bool { return e.Symbolic }

// IsTrue reports whether e is syntactically the Boolean literal true: a
// check of the underlying Op, not a semantic evaluation (spec.md §9, open
// question: "the spec assumes syntactic").
func (e *Expression) IsTrue() bool {
	return e.Sort == SortBool && e.Op.Kind == KindLiteral && e.Op.Literal.BoolVal
}

// IsFalse reports whether e is syntactically the Boolean literal false.
func (e *Expression) IsFalse() bool {
	return e.Sort == SortBool && e.Op.Kind == KindLiteral && !e.Op.Literal.BoolVal
}

// candidateHash computes the structural hash from (sort, op hash,
// annotation hash, bit length, symbolic): spec §4.6 step 6.
func candidateHash(sort Sort, o *Op, ann *annotation.Set, bitLength uint32, symbolic bool) hashkey.Hash {
	return hashkey.Combine(
		uint8(sort)|0x80, // disjoint tag space from Kind's kindTag
		o.Hash,
		ann.Hash(),
		hashkey.Singular(uint64(bitLength)),
		hashkey.Singular(symbolic),
	)
}

// Assemble builds a candidate Expression, computing its structural id and
// checking the core's non-negotiable invariants. It does not consult or
// publish through the cache — that is internal/exprcache's job, driven by
// internal/create's factories. internal/simplify also calls Assemble when
// it rewrites a candidate into a different, equivalent Expression.
//
// Assemble is exported because internal/create and internal/simplify are
// separate packages, but it is not meant to be called from anywhere else:
// this module's internal/ boundary already prevents any importer outside
// this module from reaching it, which is what spec's "factory-only
// construction" invariant actually requires.
func Assemble(sort Sort, o *Op, ann *annotation.Set, symbolic bool, bitLength uint32) (*Expression, error) {
	if o == nil {
		return nil, coreerr.Unexpected("Assemble called with a nil Op")
	}
	if sort != SortBool && bitLength == 0 {
		return nil, coreerr.Unexpected("%s expression constructed with zero bit length", sort)
	}
	switch o.Kind {
	case KindSymbol:
		if !symbolic {
			return nil, coreerr.Unexpected("Symbol op may not produce a concrete expression")
		}
	case KindLiteral:
		if symbolic {
			return nil, coreerr.Unexpected("Literal op may not produce a symbolic expression")
		}
	}
	e := &Expression{
		Sort:      sort,
		BitLength: bitLength,
		Symbolic:  symbolic,
		Op:        o,
		Annotations: ann,
	}
	e.ID = candidateHash(sort, o, ann, bitLength, symbolic)
	return e, nil
}

// AssembleFP is Assemble specialized for FP expressions, which additionally
// carry exponent/significand width.
func AssembleFP(o *Op, ann *annotation.Set, symbolic bool, bitLength uint32, expBits, sigBits uint8) (*Expression, error) {
	e, err := Assemble(SortFP, o, ann, symbolic, bitLength)
	if err != nil {
		return nil, err
	}
	e.ExponentBits = expBits
	e.SigBits = sigBits
	return e, nil
}
