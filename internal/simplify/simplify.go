// Package simplify applies the core's local, depth-1 algebraic rewrites
// at construction time: identity elimination, If-folding, trivial
// literal/literal constant folding and structural FP predicate checks.
// Commutative-operand canonicalization is not performed here; it is
// structural and happens unconditionally when the Op itself is built
// (see internal/expr.NewBin), so that add(a,b).ID == add(b,a).ID holds
// even for candidates that never reach Simplify.
package simplify

import (
	"math"

	"clarigo/internal/expr"
)

// Simplify receives a freshly assembled candidate and returns either it
// unchanged or a different, equivalent Expression. It performs a single
// local rewrite, not a fixed-point search: simplify(simplify(x)) ==
// simplify(x) by id (spec §8, simplifier idempotence) because a second
// pass over an already-simplified Expression finds nothing left to do.
func Simplify(candidate *expr.Expression) (*expr.Expression, error) {
	if candidate == nil || candidate.Op == nil {
		return candidate, nil
	}

	switch candidate.Op.Kind {
	case expr.KindAdd:
		return simplifyAdd(candidate)
	case expr.KindSub:
		return simplifySub(candidate)
	case expr.KindConcat:
		return simplifyConcat(candidate)
	case expr.KindIf:
		return simplifyIf(candidate)
	case expr.KindEq:
		return simplifyEq(candidate)
	case expr.KindFPIsNaN:
		return simplifyFPIsNaN(candidate)
	case expr.KindFPIsInf:
		return simplifyFPIsInf(candidate)
	default:
		return candidate, nil
	}
}

func isZeroLiteral(e *expr.Expression) bool {
	return e.Op.Kind == expr.KindLiteral && e.Op.Literal.BVVal == 0
}

func isEmptyConcatOperand(e *expr.Expression) bool {
	return e.Sort == expr.SortBV && e.BitLength == 0
}

func bothLiteral(l, r *expr.Expression) bool {
	return l.Op.Kind == expr.KindLiteral && r.Op.Kind == expr.KindLiteral
}

func simplifyAdd(c *expr.Expression) (*expr.Expression, error) {
	add := c.Op.Add
	if isZeroLiteral(add.Right) {
		return add.Left, nil
	}
	if isZeroLiteral(add.Left) {
		return add.Right, nil
	}
	if bothLiteral(add.Left, add.Right) {
		return foldBVArith(c, add.Left, add.Right, func(a, b uint64) uint64 { return a + b })
	}
	return c, nil
}

func simplifySub(c *expr.Expression) (*expr.Expression, error) {
	sub := c.Op.Sub
	if isZeroLiteral(sub.Right) {
		return sub.Left, nil
	}
	if bothLiteral(sub.Left, sub.Right) {
		return foldBVArith(c, sub.Left, sub.Right, func(a, b uint64) uint64 { return a - b })
	}
	return c, nil
}

func simplifyConcat(c *expr.Expression) (*expr.Expression, error) {
	cat := c.Op.Concat
	if isEmptyConcatOperand(cat.Right) {
		return cat.Left, nil
	}
	if isEmptyConcatOperand(cat.Left) {
		return cat.Right, nil
	}
	return c, nil
}

func simplifyIf(c *expr.Expression) (*expr.Expression, error) {
	ifOp := c.Op.If
	if ifOp.Cond.IsTrue() {
		return ifOp.Then, nil
	}
	if ifOp.Cond.IsFalse() {
		return ifOp.Else, nil
	}
	if ifOp.Then.ID == ifOp.Else.ID {
		return ifOp.Then, nil
	}
	return c, nil
}

// simplifyEq folds Eq(x,x) to the literal true when both operands are the
// same published Expression (structurally identical, since hash-consing
// already merges identical subtrees) or are equal literals. It does not
// attempt deeper semantic equivalence.
func simplifyEq(c *expr.Expression) (*expr.Expression, error) {
	eq := c.Op.Eq
	if eq.Left.ID == eq.Right.ID {
		return literalBool(c, true)
	}
	if bothLiteral(eq.Left, eq.Right) {
		equal := literalsEqual(eq.Left.Op.Literal, eq.Right.Op.Literal, eq.Left.Sort)
		return literalBool(c, equal)
	}
	return c, nil
}

func literalsEqual(a, b expr.LiteralOp, sort expr.Sort) bool {
	switch sort {
	case expr.SortBool:
		return a.BoolVal == b.BoolVal
	case expr.SortBV:
		return a.BVVal == b.BVVal
	case expr.SortString:
		return a.StrVal == b.StrVal
	case expr.SortFP:
		return a.FPVal == b.FPVal
	default:
		return false
	}
}

// simplifyFPIsNaN folds FP.IsNaN of a literal operand to a structural
// check; FP arithmetic itself is never folded (spec §4.4).
func simplifyFPIsNaN(c *expr.Expression) (*expr.Expression, error) {
	x := c.Op.FPUnary.X
	if x.Op.Kind != expr.KindLiteral {
		return c, nil
	}
	return literalBool(c, math.IsNaN(x.Op.Literal.FPVal))
}

func simplifyFPIsInf(c *expr.Expression) (*expr.Expression, error) {
	x := c.Op.FPUnary.X
	if x.Op.Kind != expr.KindLiteral {
		return c, nil
	}
	return literalBool(c, math.IsInf(x.Op.Literal.FPVal, 0))
}

// foldBVArith computes a literal/literal BV fold, truncated to the
// operand bit length, and assembles a fresh literal Expression carrying
// the original candidate's annotations. Operands wider than 64 bits are not
// folded: the candidate is returned unchanged.
func foldBVArith(c *expr.Expression, l, r *expr.Expression, f func(a, b uint64) uint64) (*expr.Expression, error) {
	bitLen := l.BitLength
	if bitLen > 64 {
		return c, nil
	}
	mask := mask64(bitLen)
	result := f(l.Op.Literal.BVVal, r.Op.Literal.BVVal) & mask
	return expr.Assemble(expr.SortBV, expr.NewLiteralBV(result, bitLen), c.Annotations, false, bitLen)
}

func mask64(bitLen uint32) uint64 {
	if bitLen >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << bitLen) - 1
}

func literalBool(c *expr.Expression, v bool) (*expr.Expression, error) {
	return expr.Assemble(expr.SortBool, expr.NewLiteralBool(v), c.Annotations, false, 0)
}
