package expr

import (
	"math"

	"clarigo/internal/hashkey"
)

// Op is a tagged algebraic operator. Exactly one of the payload fields
// matching Kind is populated; the rest are zero. This flat-struct shape
// (Kind discriminant + one embedded payload per kind) follows this
// codebase's existing pattern for tagged instruction variants rather than
// the source's virtual-inheritance Op hierarchy.
//
// Op values are built only by the New* constructors below, called
// from internal/create (and internal/simplify, which replaces a candidate
// with an equivalent simpler one). No other package in this module
// constructs an Op directly, and internal/ packages are not importable
// from outside the module at all — together these satisfy spec's
// "factory-only construction" invariant.
type Op struct {
	Kind Kind
	Hash hashkey.Hash

	Symbol        SymbolOp
	Literal       LiteralOp
	Eq            BinOp
	If            IfOp
	Add           BinOp
	Sub           BinOp
	Concat        BinOp
	FPBin         FPBinOp
	FPToBV        FPToBVOp
	FPUnary       FPUnaryOp
	StringFromInt UnaryOp
}

// SymbolOp is a named unknown leaf.
type SymbolOp struct {
	Name string
}

// LiteralOp is a concrete leaf. Only the field matching the owning
// Expression's Sort is meaningful.
type LiteralOp struct {
	BoolVal  bool
	BVVal    uint64 // at most 64 value bits; BVBits may be larger (value zero-extended)
	BVBits   uint32
	FPVal    float64
	FPExpBits,
	FPSigBits uint8
	StrVal string
}

// BinOp is the shared shape for Add, Sub, Concat and Eq.
type BinOp struct {
	Left, Right *Expression
}

// IfOp is the ternary conditional.
type IfOp struct {
	Cond, Then, Else *Expression
}

// FPBinOp is the shared shape for FP.Add/Sub/Mul/Div.
type FPBinOp struct {
	Left, Right *Expression
	Mode        RoundingMode
}

// FPToBVOp converts an FP operand to a BV of a caller-specified width.
type FPToBVOp struct {
	X      *Expression
	Mode   RoundingMode
	Signed bool
}

// FPUnaryOp is the shared shape for FP.IsNaN/IsInf.
type FPUnaryOp struct {
	X *Expression
}

// UnaryOp is the shared shape for single-operand ops whose contract is
// fully determined by the operand (String.FromInt).
type UnaryOp struct {
	X *Expression
}

// kindTag returns the byte mixed into the structural hash to distinguish
// this op's kind from all others.
func (k Kind) kindTag() uint8 { return uint8(k) }

// NewSymbol builds a Symbol op. Callers must not later intern two
// distinct Symbols with the same name expecting distinct identity: by
// design, same name + same bit length hash-conses to the same Expression.
func NewSymbol(name string, bitLen uint32) *Op {
	h := hashkey.Combine(KindSymbol.kindTag(), hashkey.Singular(name), hashkey.Singular(uint64(bitLen)))
	return &Op{Kind: KindSymbol, Hash: h, Symbol: SymbolOp{Name: name}}
}

func NewLiteralBool(v bool) *Op {
	h := hashkey.Combine(KindLiteral.kindTag(), hashkey.Singular(v))
	return &Op{Kind: KindLiteral, Hash: h, Literal: LiteralOp{BoolVal: v}}
}

func NewLiteralBV(value uint64, bitLen uint32) *Op {
	h := hashkey.Combine(KindLiteral.kindTag(), hashkey.Singular(value), hashkey.Singular(uint64(bitLen)))
	return &Op{Kind: KindLiteral, Hash: h, Literal: LiteralOp{BVVal: value, BVBits: bitLen}}
}

func NewLiteralFP(value float64, expBits, sigBits uint8) *Op {
	h := hashkey.Combine(KindLiteral.kindTag(),
		hashkey.Bytes(float64Bytes(value)),
		hashkey.Singular(uint64(expBits)),
		hashkey.Singular(uint64(sigBits)))
	return &Op{Kind: KindLiteral, Hash: h, Literal: LiteralOp{FPVal: value, FPExpBits: expBits, FPSigBits: sigBits}}
}

func NewLiteralString(v string, bitLen uint32) *Op {
	h := hashkey.Combine(KindLiteral.kindTag(), hashkey.Singular(v), hashkey.Singular(uint64(bitLen)))
	return &Op{Kind: KindLiteral, Hash: h, Literal: LiteralOp{StrVal: v}}
}

// NewBin builds a binary op. Commutative kinds (Add, Eq) canonicalize
// their operand order before hashing, per spec §4.3: a lone literal
// operand is moved to the right, otherwise operands are ordered by
// ascending id. This is what makes add(a,b).ID == add(b,a).ID hold
// unconditionally, not just when the simplifier happens to run.
func NewBin(kind Kind, l, r *Expression) *Op {
	if kind.commutative() {
		lLit := l.Op.Kind == KindLiteral
		rLit := r.Op.Kind == KindLiteral
		switch {
		case lLit && !rLit:
			l, r = r, l
		case lLit == rLit && r.ID < l.ID:
			l, r = r, l
		}
	}
	h := hashkey.Combine(kind.kindTag(), l.ID, r.ID)
	bin := BinOp{Left: l, Right: r}
	o := &Op{Kind: kind, Hash: h}
	switch kind {
	case KindAdd:
		o.Add = bin
	case KindSub:
		o.Sub = bin
	case KindConcat:
		o.Concat = bin
	case KindEq:
		o.Eq = bin
	}
	return o
}

func NewIf(cond, then, els *Expression) *Op {
	h := hashkey.Combine(KindIf.kindTag(), cond.ID, then.ID, els.ID)
	return &Op{Kind: KindIf, Hash: h, If: IfOp{Cond: cond, Then: then, Else: els}}
}

func NewFPBin(kind Kind, l, r *Expression, mode RoundingMode) *Op {
	h := hashkey.Combine(kind.kindTag(), l.ID, r.ID, hashkey.Singular(uint64(mode)))
	return &Op{Kind: kind, Hash: h, FPBin: FPBinOp{Left: l, Right: r, Mode: mode}}
}

func NewFPToBV(x *Expression, mode RoundingMode, signed bool) *Op {
	h := hashkey.Combine(KindFPToBV.kindTag(), x.ID, hashkey.Singular(uint64(mode)), hashkey.Singular(signed))
	return &Op{Kind: KindFPToBV, Hash: h, FPToBV: FPToBVOp{X: x, Mode: mode, Signed: signed}}
}

func NewFPUnary(kind Kind, x *Expression) *Op {
	h := hashkey.Combine(kind.kindTag(), x.ID)
	return &Op{Kind: kind, Hash: h, FPUnary: FPUnaryOp{X: x}}
}

func NewStringFromInt(x *Expression) *Op {
	h := hashkey.Combine(KindStringFromInt.kindTag(), x.ID)
	return &Op{Kind: KindStringFromInt, Hash: h, StringFromInt: UnaryOp{X: x}}
}

// ReversedChildren pushes raw references to each child Expression onto
// stack in reverse order: the sole traversal primitive backends rely on.
// A child pushed this way outlives the traversal so long as the root
// Expression handle is held, because every Expression strongly owns its
// operand Expressions.
func (o *Op) ReversedChildren(stack *[]*Expression) {
	if o == nil {
		return
	}
	push := func(e *Expression) {
		if e != nil {
			*stack = append(*stack, e)
		}
	}
	switch o.Kind {
	case KindSymbol, KindLiteral:
		// leaves: no children
	case KindEq:
		push(o.Eq.Right)
		push(o.Eq.Left)
	case KindIf:
		push(o.If.Else)
		push(o.If.Then)
		push(o.If.Cond)
	case KindAdd:
		push(o.Add.Right)
		push(o.Add.Left)
	case KindSub:
		push(o.Sub.Right)
		push(o.Sub.Left)
	case KindConcat:
		push(o.Concat.Right)
		push(o.Concat.Left)
	case KindFPAdd, KindFPSub, KindFPMul, KindFPDiv:
		push(o.FPBin.Right)
		push(o.FPBin.Left)
	case KindFPToBV:
		push(o.FPToBV.X)
	case KindFPIsNaN, KindFPIsInf:
		push(o.FPUnary.X)
	case KindStringFromInt:
		push(o.StringFromInt.X)
	}
}

// Children returns the op's child Expressions in natural (not reversed)
// order; a thin convenience built atop ReversedChildren for callers that
// are not backends walking a worklist.
func (o *Op) Children() []*Expression {
	var rev []*Expression
	o.ReversedChildren(&rev)
	out := make([]*Expression, len(rev))
	for i, e := range rev {
		out[len(rev)-1-i] = e
	}
	return out
}

func float64Bytes(v float64) []byte {
	bits := math.Float64bits(v)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(bits >> (8 * i))
	}
	return b
}
