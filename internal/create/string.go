package create

import (
	"clarigo/internal/annotation"
	"clarigo/internal/expr"
)

// StringFromInt converts a BV operand of bit length L to a String of bit
// length L + 2*CharBit, a fixed over-approximation carried unchanged from
// the system this core reimplements (spec.md §9, open question #1).
func StringFromInt(ann *annotation.Set, x *expr.Expression) (*expr.Expression, error) {
	if err := requireNonNil("String.FromInt", "operand", x); err != nil {
		return nil, err
	}
	if err := requireSort("String.FromInt", "operand", x, expr.SortBV); err != nil {
		return nil, err
	}
	bitLen := x.BitLength + 2*expr.CharBit
	candidate, err := expr.Assemble(expr.SortString, expr.NewStringFromInt(x), ann, x.Symbolic, bitLen)
	if err != nil {
		return nil, err
	}
	return publish(candidate)
}
