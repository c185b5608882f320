package create

import (
	"clarigo/internal/annotation"
	"clarigo/internal/coreerr"
	"clarigo/internal/expr"
)

// FPAdd builds a rounded floating-point sum; l and r must be FP of equal width.
func FPAdd(ann *annotation.Set, l, r *expr.Expression, mode expr.RoundingMode) (*expr.Expression, error) {
	return fpBin("FP.Add", expr.KindFPAdd, ann, l, r, mode)
}

// FPSub builds a rounded floating-point difference; l and r must be FP of equal width.
func FPSub(ann *annotation.Set, l, r *expr.Expression, mode expr.RoundingMode) (*expr.Expression, error) {
	return fpBin("FP.Sub", expr.KindFPSub, ann, l, r, mode)
}

// FPMul builds a rounded floating-point product; l and r must be FP of equal width.
func FPMul(ann *annotation.Set, l, r *expr.Expression, mode expr.RoundingMode) (*expr.Expression, error) {
	return fpBin("FP.Mul", expr.KindFPMul, ann, l, r, mode)
}

// FPDiv builds a rounded floating-point quotient; l and r must be FP of equal width.
func FPDiv(ann *annotation.Set, l, r *expr.Expression, mode expr.RoundingMode) (*expr.Expression, error) {
	return fpBin("FP.Div", expr.KindFPDiv, ann, l, r, mode)
}

func fpBin(op string, kind expr.Kind, ann *annotation.Set, l, r *expr.Expression, mode expr.RoundingMode) (*expr.Expression, error) {
	if err := requireNonNil(op, "left", l); err != nil {
		return nil, err
	}
	if err := requireNonNil(op, "right", r); err != nil {
		return nil, err
	}
	if err := requireSort(op, "left", l, expr.SortFP); err != nil {
		return nil, err
	}
	if err := requireSort(op, "right", r, expr.SortFP); err != nil {
		return nil, err
	}
	if err := requireEqualBitLength(op, "left", "right", l, r); err != nil {
		return nil, err
	}
	if err := affirm(l.ExponentBits == r.ExponentBits && l.SigBits == r.SigBits,
		coreerr.Size(op, "right", "exponent/significand split (%d,%d) does not match left (%d,%d)",
			r.ExponentBits, r.SigBits, l.ExponentBits, l.SigBits)); err != nil {
		return nil, err
	}
	candidate, err := expr.AssembleFP(expr.NewFPBin(kind, l, r, mode), ann, anySymbolic(l, r), l.BitLength, l.ExponentBits, l.SigBits)
	if err != nil {
		return nil, err
	}
	return publish(candidate)
}

// FPToBV converts an FP operand to a BV of caller-specified width,
// rounding per mode. signed selects a signed or unsigned conversion.
func FPToBV(ann *annotation.Set, x *expr.Expression, bitLen uint32, mode expr.RoundingMode, signed bool) (*expr.Expression, error) {
	if err := requireNonNil("FP.ToBV", "operand", x); err != nil {
		return nil, err
	}
	if err := requireSort("FP.ToBV", "operand", x, expr.SortFP); err != nil {
		return nil, err
	}
	if err := affirm(bitLen > 0, coreerr.Size("FP.ToBV", "bit_length", "must be positive, got %d", bitLen)); err != nil {
		return nil, err
	}
	candidate, err := expr.Assemble(expr.SortBV, expr.NewFPToBV(x, mode, signed), ann, x.Symbolic, bitLen)
	if err != nil {
		return nil, err
	}
	return publish(candidate)
}

// FPIsNaN builds a Bool testing whether x is NaN.
func FPIsNaN(ann *annotation.Set, x *expr.Expression) (*expr.Expression, error) {
	return fpPredicate("FP.IsNaN", expr.KindFPIsNaN, ann, x)
}

// FPIsInf builds a Bool testing whether x is infinite.
func FPIsInf(ann *annotation.Set, x *expr.Expression) (*expr.Expression, error) {
	return fpPredicate("FP.IsInf", expr.KindFPIsInf, ann, x)
}

func fpPredicate(op string, kind expr.Kind, ann *annotation.Set, x *expr.Expression) (*expr.Expression, error) {
	if err := requireNonNil(op, "operand", x); err != nil {
		return nil, err
	}
	if err := requireSort(op, "operand", x, expr.SortFP); err != nil {
		return nil, err
	}
	candidate, err := expr.Assemble(expr.SortBool, expr.NewFPUnary(kind, x), ann, x.Symbolic, 0)
	if err != nil {
		return nil, err
	}
	return publish(candidate)
}
