package expr

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// exprJSON is the byte-exact wire shape for Expression.Repr: spec §6.
// Field order is fixed by struct declaration order (encoding/json always
// marshals struct fields in that order), which is what makes Repr's
// output deterministic without hand-rolled string building.
type exprJSON struct {
	Type        string  `json:"type"`
	Symbolic    bool    `json:"symbolic"`
	BitLength   *uint32 `json:"bit_length,omitempty"`
	Op          opJSON  `json:"op"`
	Annotations []string `json:"annotations,omitempty"`
}

// opJSON is the nested representation of an Op. Composite operands are
// referenced by id rather than inlined recursively, matching how backends
// traverse the DAG (by reference, bottom-up) rather than how a pretty
// printer would render a tree.
type opJSON struct {
	Kind     string   `json:"kind"`
	Name     string   `json:"name,omitempty"`
	Value    string   `json:"value,omitempty"`
	Mode     string   `json:"mode,omitempty"`
	Signed   *bool    `json:"signed,omitempty"`
	Operands []uint64 `json:"operands,omitempty"`
}

// Repr writes the JSON object contract from spec §6 to w. It is
// deterministic: two calls on the same Expression produce byte-identical
// output.
func (e *Expression) Repr(w io.Writer) error {
	doc := exprJSON{
		Type:     e.TypeName(),
		Symbolic: e.Symbolic,
		Op:       opRepr(e.Op, e.Sort),
	}
	if e.Sort != SortBool {
		bl := e.BitLength
		doc.BitLength = &bl
	}
	if e.Annotations.Len() > 0 {
		doc.Annotations = make([]string, e.Annotations.Len())
		for i := 0; i < e.Annotations.Len(); i++ {
			doc.Annotations[i] = e.Annotations.At(i).String()
		}
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("expr: marshal repr: %w", err)
	}
	_, err = w.Write(b)
	return err
}

// String renders Repr to a string, primarily for tests and debugging.
func (e *Expression) String() string {
	var b []byte
	buf := writerFunc(func(p []byte) (int, error) {
		b = append(b, p...)
		return len(p), nil
	})
	if err := e.Repr(buf); err != nil {
		return fmt.Sprintf("<expr repr error: %v>", err)
	}
	return string(b)
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

func opRepr(o *Op, sort Sort) opJSON {
	var ids []uint64
	for _, c := range o.Children() {
		ids = append(ids, uint64(c.ID))
	}
	j := opJSON{Kind: o.Kind.String(), Operands: ids}
	switch o.Kind {
	case KindSymbol:
		j.Name = o.Symbol.Name
	case KindLiteral:
		j.Value = literalValueString(o.Literal, sort)
	case KindFPAdd, KindFPSub, KindFPMul, KindFPDiv:
		j.Mode = o.FPBin.Mode.String()
	case KindFPToBV:
		j.Mode = o.FPToBV.Mode.String()
		signed := o.FPToBV.Signed
		j.Signed = &signed
	}
	return j
}

func literalValueString(l LiteralOp, sort Sort) string {
	switch sort {
	case SortString:
		return l.StrVal
	case SortBV:
		return strconv.FormatUint(l.BVVal, 10)
	case SortFP:
		return strconv.FormatFloat(l.FPVal, 'g', -1, 64)
	default:
		return strconv.FormatBool(l.BoolVal)
	}
}
