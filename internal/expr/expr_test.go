package expr

import (
	"strings"
	"testing"

	"clarigo/internal/annotation"
	"clarigo/internal/hashkey"
)

func mustSymbol(t *testing.T, name string, bitLen uint32) *Expression {
	t.Helper()
	e, err := Assemble(SortBV, NewSymbol(name, bitLen), annotation.Empty(), true, bitLen)
	if err != nil {
		t.Fatalf("Assemble symbol: %v", err)
	}
	return e
}

func mustLiteral(t *testing.T, value uint64, bitLen uint32) *Expression {
	t.Helper()
	e, err := Assemble(SortBV, NewLiteralBV(value, bitLen), annotation.Empty(), false, bitLen)
	if err != nil {
		t.Fatalf("Assemble literal: %v", err)
	}
	return e
}

func TestAssembleRejectsSymbolOpMarkedConcrete(t *testing.T) {
	if _, err := Assemble(SortBV, NewSymbol("x", 32), annotation.Empty(), false, 32); err == nil {
		t.Fatalf("expected Unexpected error for Symbol op marked concrete")
	}
}

func TestAssembleRejectsLiteralOpMarkedSymbolic(t *testing.T) {
	if _, err := Assemble(SortBV, NewLiteralBV(1, 32), annotation.Empty(), true, 32); err == nil {
		t.Fatalf("expected Unexpected error for Literal op marked symbolic")
	}
}

func TestAssembleRejectsZeroBitLengthForBits(t *testing.T) {
	if _, err := Assemble(SortBV, NewSymbol("x", 0), annotation.Empty(), true, 0); err == nil {
		t.Fatalf("expected Unexpected error for zero bit length")
	}
}

func TestDistinctOpsProduceDistinctIDs(t *testing.T) {
	a := mustSymbol(t, "x", 32)
	b := mustSymbol(t, "y", 32)
	if a.ID == b.ID {
		t.Fatalf("distinct symbols of the same bit length should have distinct ids")
	}
}

func TestAnnotationDiscrimination(t *testing.T) {
	plain, err := Assemble(SortBV, NewSymbol("x", 32), annotation.Empty(), true, 32)
	if err != nil {
		t.Fatal(err)
	}
	ann := annotation.Empty().Extend(testAnn("note"))
	annotated, err := Assemble(SortBV, NewSymbol("x", 32), ann, true, 32)
	if err != nil {
		t.Fatal(err)
	}
	if plain.ID == annotated.ID {
		t.Fatalf("same op with different annotation sets must yield different ids")
	}
}

func TestBoolBitLengthOmittedInRepr(t *testing.T) {
	b, err := Assemble(SortBool, NewLiteralBool(true), annotation.Empty(), false, 0)
	if err != nil {
		t.Fatal(err)
	}
	s := b.String()
	if strings.Contains(s, "bit_length") {
		t.Fatalf("Bool repr must omit bit_length, got %s", s)
	}
}

func TestReprDeterministic(t *testing.T) {
	e := mustLiteral(t, 7, 8)
	if e.String() != e.String() {
		t.Fatalf("Repr must be deterministic across calls")
	}
}

func TestIsTrueIsFalseSyntactic(t *testing.T) {
	tru, _ := Assemble(SortBool, NewLiteralBool(true), annotation.Empty(), false, 0)
	fls, _ := Assemble(SortBool, NewLiteralBool(false), annotation.Empty(), false, 0)
	if !tru.IsTrue() || tru.IsFalse() {
		t.Fatalf("literal true should be IsTrue and not IsFalse")
	}
	if !fls.IsFalse() || fls.IsTrue() {
		t.Fatalf("literal false should be IsFalse and not IsTrue")
	}
}

type testAnn string

func (t testAnn) Hash() hashkey.Hash { return hashkey.Singular(string(t)) }
func (t testAnn) String() string     { return string(t) }
