package expr

import "fmt"

// Kind enumerates the algebraic operators an Op can carry. The tagged
// variant shape (Kind discriminant plus one payload struct per kind)
// mirrors how this codebase's mid-level IR tags its instructions.
type Kind uint8

const (
	// KindSymbol is an unknown leaf: makes its owning Expression symbolic.
	KindSymbol Kind = iota + 1
	// KindLiteral is a concrete leaf: its owning Expression is never symbolic.
	KindLiteral
	KindEq
	KindIf
	KindAdd
	KindSub
	KindConcat
	KindFPAdd
	KindFPSub
	KindFPMul
	KindFPDiv
	KindFPToBV
	KindFPIsNaN
	KindFPIsInf
	KindStringFromInt
)

func (k Kind) String() string {
	switch k {
	case KindSymbol:
		return "Symbol"
	case KindLiteral:
		return "Literal"
	case KindEq:
		return "Eq"
	case KindIf:
		return "If"
	case KindAdd:
		return "Add"
	case KindSub:
		return "Sub"
	case KindConcat:
		return "Concat"
	case KindFPAdd:
		return "FP.Add"
	case KindFPSub:
		return "FP.Sub"
	case KindFPMul:
		return "FP.Mul"
	case KindFPDiv:
		return "FP.Div"
	case KindFPToBV:
		return "FP.ToBV"
	case KindFPIsNaN:
		return "FP.IsNaN"
	case KindFPIsInf:
		return "FP.IsInf"
	case KindStringFromInt:
		return "String.FromInt"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// commutative reports whether operand order does not affect the result,
// so NewBin canonicalizes operand order (spec §4.3, §4.4).
func (k Kind) commutative() bool {
	switch k {
	case KindAdd, KindEq:
		return true
	default:
		return false
	}
}
