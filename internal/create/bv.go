package create

import (
	"clarigo/internal/annotation"
	"clarigo/internal/expr"
)

// Add builds a BV sum of l and r, which must be BV of equal bit length.
func Add(ann *annotation.Set, l, r *expr.Expression) (*expr.Expression, error) {
	return bvBin("Add", expr.KindAdd, ann, l, r)
}

// Sub builds a BV difference of l and r, which must be BV of equal bit length.
func Sub(ann *annotation.Set, l, r *expr.Expression) (*expr.Expression, error) {
	return bvBin("Sub", expr.KindSub, ann, l, r)
}

func bvBin(op string, kind expr.Kind, ann *annotation.Set, l, r *expr.Expression) (*expr.Expression, error) {
	if err := requireNonNil(op, "left", l); err != nil {
		return nil, err
	}
	if err := requireNonNil(op, "right", r); err != nil {
		return nil, err
	}
	if err := requireSort(op, "left", l, expr.SortBV); err != nil {
		return nil, err
	}
	if err := requireSort(op, "right", r, expr.SortBV); err != nil {
		return nil, err
	}
	if err := requireEqualBitLength(op, "left", "right", l, r); err != nil {
		return nil, err
	}
	candidate, err := expr.Assemble(expr.SortBV, expr.NewBin(kind, l, r), ann, anySymbolic(l, r), l.BitLength)
	if err != nil {
		return nil, err
	}
	return publish(candidate)
}

// Concat builds the bit-vector concatenation of l and r: result width is
// the sum of operand widths.
func Concat(ann *annotation.Set, l, r *expr.Expression) (*expr.Expression, error) {
	if err := requireNonNil("Concat", "left", l); err != nil {
		return nil, err
	}
	if err := requireNonNil("Concat", "right", r); err != nil {
		return nil, err
	}
	if err := requireSort("Concat", "left", l, expr.SortBV); err != nil {
		return nil, err
	}
	if err := requireSort("Concat", "right", r, expr.SortBV); err != nil {
		return nil, err
	}
	candidate, err := expr.Assemble(expr.SortBV, expr.NewBin(expr.KindConcat, l, r), ann, anySymbolic(l, r), l.BitLength+r.BitLength)
	if err != nil {
		return nil, err
	}
	return publish(candidate)
}

// Eq builds a Bool equality of l and r, which must share a sort and, for
// Bits sorts, a bit length.
func Eq(ann *annotation.Set, l, r *expr.Expression) (*expr.Expression, error) {
	if err := requireNonNil("Eq", "left", l); err != nil {
		return nil, err
	}
	if err := requireNonNil("Eq", "right", r); err != nil {
		return nil, err
	}
	if err := requireSort("Eq", "right", r, l.Sort); err != nil {
		return nil, err
	}
	if l.Sort != expr.SortBool {
		if err := requireEqualBitLength("Eq", "left", "right", l, r); err != nil {
			return nil, err
		}
	}
	candidate, err := expr.Assemble(expr.SortBool, expr.NewBin(expr.KindEq, l, r), ann, anySymbolic(l, r), 0)
	if err != nil {
		return nil, err
	}
	return publish(candidate)
}

// If builds a ternary conditional: cond must be Bool, then/else must
// share a sort and, for Bits sorts, a bit length. The result takes the
// sort and bit length of the branches.
func If(ann *annotation.Set, cond, then, els *expr.Expression) (*expr.Expression, error) {
	if err := requireNonNil("If", "cond", cond); err != nil {
		return nil, err
	}
	if err := requireNonNil("If", "then", then); err != nil {
		return nil, err
	}
	if err := requireNonNil("If", "else", els); err != nil {
		return nil, err
	}
	if err := requireSort("If", "cond", cond, expr.SortBool); err != nil {
		return nil, err
	}
	if err := requireSort("If", "else", els, then.Sort); err != nil {
		return nil, err
	}
	if then.Sort != expr.SortBool {
		if err := requireEqualBitLength("If", "then", "else", then, els); err != nil {
			return nil, err
		}
	}
	candidate, err := expr.Assemble(then.Sort, expr.NewIf(cond, then, els), ann, anySymbolic(cond, then, els), then.BitLength)
	if err != nil {
		return nil, err
	}
	if then.Sort == expr.SortFP {
		candidate.ExponentBits = then.ExponentBits
		candidate.SigBits = then.SigBits
	}
	return publish(candidate)
}
