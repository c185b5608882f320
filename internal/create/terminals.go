package create

import (
	"clarigo/internal/annotation"
	"clarigo/internal/coreerr"
	"clarigo/internal/expr"
)

// BoolSymbol builds a Bool-sorted unknown named name.
func BoolSymbol(ann *annotation.Set, name string) (*expr.Expression, error) {
	if err := affirm(name != "", coreerr.Usage("Symbol", "name", "must not be empty")); err != nil {
		return nil, err
	}
	candidate, err := expr.Assemble(expr.SortBool, expr.NewSymbol(name, 0), ann, true, 0)
	if err != nil {
		return nil, err
	}
	return publish(candidate)
}

// BVSymbol builds a BV-sorted unknown of bitLen bits named name.
func BVSymbol(ann *annotation.Set, name string, bitLen uint32) (*expr.Expression, error) {
	if err := affirm(name != "", coreerr.Usage("Symbol", "name", "must not be empty")); err != nil {
		return nil, err
	}
	if err := affirm(bitLen > 0, coreerr.Size("Symbol", "bit_length", "must be positive, got %d", bitLen)); err != nil {
		return nil, err
	}
	candidate, err := expr.Assemble(expr.SortBV, expr.NewSymbol(name, bitLen), ann, true, bitLen)
	if err != nil {
		return nil, err
	}
	return publish(candidate)
}

// FPSymbol builds an FP-sorted unknown with the given exponent and
// significand widths named name.
func FPSymbol(ann *annotation.Set, name string, expBits, sigBits uint8) (*expr.Expression, error) {
	if err := affirm(name != "", coreerr.Usage("Symbol", "name", "must not be empty")); err != nil {
		return nil, err
	}
	bitLen := uint32(expBits) + uint32(sigBits)
	if err := affirm(bitLen > 0, coreerr.Size("Symbol", "width", "exponent+significand bits must be positive")); err != nil {
		return nil, err
	}
	candidate, err := expr.AssembleFP(expr.NewSymbol(name, bitLen), ann, true, bitLen, expBits, sigBits)
	if err != nil {
		return nil, err
	}
	return publish(candidate)
}

// StringSymbol builds a String-sorted unknown of bitLen bits named name.
func StringSymbol(ann *annotation.Set, name string, bitLen uint32) (*expr.Expression, error) {
	if err := affirm(name != "", coreerr.Usage("Symbol", "name", "must not be empty")); err != nil {
		return nil, err
	}
	if err := affirm(bitLen > 0, coreerr.Size("Symbol", "bit_length", "must be positive, got %d", bitLen)); err != nil {
		return nil, err
	}
	candidate, err := expr.Assemble(expr.SortString, expr.NewSymbol(name, bitLen), ann, true, bitLen)
	if err != nil {
		return nil, err
	}
	return publish(candidate)
}

// LiteralBool builds a concrete Bool expression.
func LiteralBool(ann *annotation.Set, v bool) (*expr.Expression, error) {
	candidate, err := expr.Assemble(expr.SortBool, expr.NewLiteralBool(v), ann, false, 0)
	if err != nil {
		return nil, err
	}
	return publish(candidate)
}

// LiteralBV builds a concrete BV expression of bitLen bits. value is
// truncated to bitLen by the caller's contract; factories do not mask it
// implicitly so that an out-of-range literal surfaces as a caller bug
// rather than silently wrapping.
func LiteralBV(ann *annotation.Set, value uint64, bitLen uint32) (*expr.Expression, error) {
	if err := affirm(bitLen > 0, coreerr.Size("Literal", "bit_length", "must be positive, got %d", bitLen)); err != nil {
		return nil, err
	}
	if bitLen < 64 {
		max := uint64(1)<<bitLen - 1
		if err := affirm(value <= max, coreerr.Size("Literal", "value", "%d does not fit in %d bits", value, bitLen)); err != nil {
			return nil, err
		}
	}
	candidate, err := expr.Assemble(expr.SortBV, expr.NewLiteralBV(value, bitLen), ann, false, bitLen)
	if err != nil {
		return nil, err
	}
	return publish(candidate)
}

// LiteralFP builds a concrete FP expression with the given exponent and
// significand widths.
func LiteralFP(ann *annotation.Set, value float64, expBits, sigBits uint8) (*expr.Expression, error) {
	bitLen := uint32(expBits) + uint32(sigBits)
	if err := affirm(bitLen > 0, coreerr.Size("Literal", "width", "exponent+significand bits must be positive")); err != nil {
		return nil, err
	}
	candidate, err := expr.AssembleFP(expr.NewLiteralFP(value, expBits, sigBits), ann, false, bitLen, expBits, sigBits)
	if err != nil {
		return nil, err
	}
	return publish(candidate)
}

// LiteralString builds a concrete String expression of bitLen bits.
func LiteralString(ann *annotation.Set, v string, bitLen uint32) (*expr.Expression, error) {
	if err := affirm(bitLen > 0, coreerr.Size("Literal", "bit_length", "must be positive, got %d", bitLen)); err != nil {
		return nil, err
	}
	candidate, err := expr.Assemble(expr.SortString, expr.NewLiteralString(v, bitLen), ann, false, bitLen)
	if err != nil {
		return nil, err
	}
	return publish(candidate)
}
