package simplify

import (
	"testing"

	"clarigo/internal/annotation"
	"clarigo/internal/expr"
)

func mustAssemble(t *testing.T, sort expr.Sort, o *expr.Op, symbolic bool, bitLen uint32) *expr.Expression {
	t.Helper()
	e, err := expr.Assemble(sort, o, annotation.Empty(), symbolic, bitLen)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	return e
}

func symbol(t *testing.T, name string, bitLen uint32) *expr.Expression {
	return mustAssemble(t, expr.SortBV, expr.NewSymbol(name, bitLen), true, bitLen)
}

func literalBV(t *testing.T, v uint64, bitLen uint32) *expr.Expression {
	return mustAssemble(t, expr.SortBV, expr.NewLiteralBV(v, bitLen), false, bitLen)
}

func literalBoolExpr(t *testing.T, v bool) *expr.Expression {
	return mustAssemble(t, expr.SortBool, expr.NewLiteralBool(v), false, 0)
}

func TestAddZeroIdentity(t *testing.T) {
	x := symbol(t, "x", 32)
	zero := literalBV(t, 0, 32)
	candidate := mustAssemble(t, expr.SortBV, expr.NewBin(expr.KindAdd, x, zero), true, 32)
	got, err := Simplify(candidate)
	if err != nil {
		t.Fatal(err)
	}
	if got != x {
		t.Fatalf("expected Add(x,0) to simplify to x")
	}
}

func TestSubZeroIdentity(t *testing.T) {
	x := symbol(t, "x", 32)
	zero := literalBV(t, 0, 32)
	candidate := mustAssemble(t, expr.SortBV, expr.NewBin(expr.KindSub, x, zero), true, 32)
	got, err := Simplify(candidate)
	if err != nil {
		t.Fatal(err)
	}
	if got != x {
		t.Fatalf("expected Sub(x,0) to simplify to x")
	}
}

func TestAddLiteralFolding(t *testing.T) {
	a := literalBV(t, 3, 8)
	b := literalBV(t, 4, 8)
	candidate := mustAssemble(t, expr.SortBV, expr.NewBin(expr.KindAdd, a, b), false, 8)
	got, err := Simplify(candidate)
	if err != nil {
		t.Fatal(err)
	}
	if got.Op.Kind != expr.KindLiteral || got.Op.Literal.BVVal != 7 {
		t.Fatalf("expected folded literal 7, got %+v", got.Op.Literal)
	}
}

func TestAddLiteralFoldingWraps(t *testing.T) {
	a := literalBV(t, 250, 8)
	b := literalBV(t, 10, 8)
	candidate := mustAssemble(t, expr.SortBV, expr.NewBin(expr.KindAdd, a, b), false, 8)
	got, err := Simplify(candidate)
	if err != nil {
		t.Fatal(err)
	}
	if got.Op.Literal.BVVal != 4 {
		t.Fatalf("expected wraparound fold to 4, got %d", got.Op.Literal.BVVal)
	}
}

func TestIfConstantCondition(t *testing.T) {
	then := symbol(t, "a", 8)
	els := symbol(t, "b", 8)
	tru := literalBoolExpr(t, true)
	candidate := mustAssemble(t, expr.SortBV, expr.NewIf(tru, then, els), true, 8)
	got, err := Simplify(candidate)
	if err != nil {
		t.Fatal(err)
	}
	if got != then {
		t.Fatalf("expected If(true,a,b) to fold to a")
	}
}

func TestIfSameBranches(t *testing.T) {
	cond := symbol(t, "c", 1)
	x := symbol(t, "x", 8)
	candidate := mustAssemble(t, expr.SortBV, expr.NewIf(cond, x, x), true, 8)
	got, err := Simplify(candidate)
	if err != nil {
		t.Fatal(err)
	}
	if got != x {
		t.Fatalf("expected If(c,x,x) to fold to x")
	}
}

func TestEqSameExpressionFoldsTrue(t *testing.T) {
	x := symbol(t, "x", 8)
	candidate := mustAssemble(t, expr.SortBool, expr.NewBin(expr.KindEq, x, x), true, 0)
	got, err := Simplify(candidate)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsTrue() {
		t.Fatalf("expected Eq(x,x) to fold to true")
	}
}

func TestEqLiteralsFold(t *testing.T) {
	a := literalBV(t, 5, 8)
	b := literalBV(t, 5, 8)
	candidate := mustAssemble(t, expr.SortBool, expr.NewBin(expr.KindEq, a, b), false, 0)
	got, err := Simplify(candidate)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsTrue() {
		t.Fatalf("expected Eq(5,5) to fold to true")
	}
}

func literalFP64(t *testing.T, v float64) *expr.Expression {
	t.Helper()
	e, err := expr.AssembleFP(expr.NewLiteralFP(v, 11, 52), annotation.Empty(), false, 64, 11, 52)
	if err != nil {
		t.Fatalf("AssembleFP: %v", err)
	}
	return e
}

func TestFPIsNaNStructural(t *testing.T) {
	nan := literalFP64(t, nanValue())
	candidate := mustAssemble(t, expr.SortBool, expr.NewFPUnary(expr.KindFPIsNaN, nan), false, 0)
	got, err := Simplify(candidate)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsTrue() {
		t.Fatalf("expected FP.IsNaN(NaN literal) to fold to true")
	}
}

func TestFPArithmeticNeverFolds(t *testing.T) {
	a := literalFP64(t, 1.0)
	b := literalFP64(t, 2.0)
	candidate, err := expr.AssembleFP(expr.NewFPBin(expr.KindFPAdd, a, b, expr.RoundNearestTiesEven), annotation.Empty(), false, 64, 11, 52)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Simplify(candidate)
	if err != nil {
		t.Fatal(err)
	}
	if got != candidate {
		t.Fatalf("FP arithmetic must never be folded by the simplifier")
	}
}

func TestSimplifierIdempotent(t *testing.T) {
	x := symbol(t, "x", 32)
	zero := literalBV(t, 0, 32)
	candidate := mustAssemble(t, expr.SortBV, expr.NewBin(expr.KindAdd, x, zero), true, 32)
	once, err := Simplify(candidate)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Simplify(once)
	if err != nil {
		t.Fatal(err)
	}
	if once.ID != twice.ID {
		t.Fatalf("simplify must be idempotent: %v != %v", once.ID, twice.ID)
	}
}

func nanValue() float64 {
	var zero float64
	return zero / zero
}
