package ee

import (
	"math/big"
	"testing"
)

func TestKindClassification(t *testing.T) {
	if !KindInteger.IsOperand() {
		t.Error("Integer should be an operand")
	}
	if !KindVariable.IsVariable() {
		t.Error("Variable should report IsVariable")
	}
	if !KindPower.isRightAssociative() {
		t.Error("Power should be right-associative")
	}
	if !KindAssignment.isRightAssociative() {
		t.Error("Assignment should be right-associative")
	}
	if KindAddition.isRightAssociative() {
		t.Error("Addition should be left-associative")
	}
	if !KindFactorial.IsPostfixOperator() {
		t.Error("Factorial should be a postfix operator")
	}
	if !KindNegation.IsUnaryOperator() {
		t.Error("Negation should be a unary operator")
	}
	if !KindAbs.IsOneArgFunction() {
		t.Error("Abs should be a one-argument function")
	}
	if !KindMax.IsTwoArgFunction() {
		t.Error("Max should be a two-argument function")
	}
	if !KindLeftParen.IsLeftParen() || !KindRightParen.IsRightParen() {
		t.Error("parenthesis kinds misclassified")
	}
	if !KindArgSep.IsArgumentSeparator() {
		t.Error("ArgSep should be an argument separator")
	}
}

func TestTokenPayloads(t *testing.T) {
	it := newInteger(big.NewInt(5))
	if v, ok := it.IntegerValue(); !ok || v.Int64() != 5 {
		t.Errorf("IntegerValue: want 5, got %v, %v", v, ok)
	}
	if _, ok := it.RealValue(); ok {
		t.Error("IntegerValue token should not report a Real payload")
	}

	bt := newBoolean(true)
	if v, ok := bt.BooleanValue(); !ok || !v {
		t.Errorf("BooleanValue: want true, got %v, %v", v, ok)
	}

	v := &Variable{name: "x"}
	if _, ok := v.Value(); ok {
		t.Error("fresh Variable should report uninitialized")
	}
	v.Set(newInteger(big.NewInt(7)))
	val, ok := v.Value()
	if !ok {
		t.Fatal("Variable should report initialized after Set")
	}
	if iv, ok := val.IntegerValue(); !ok || iv.Int64() != 7 {
		t.Errorf("Variable value: want 7, got %v, %v", iv, ok)
	}
}

func TestVariableSetRejectsVariable(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Set with a Variable operand should panic")
		}
	}()
	a := &Variable{name: "a"}
	b := &Variable{name: "b"}
	a.Set(newVariable(b))
}
