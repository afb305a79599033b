package ee

import (
	"math/big"
	"strconv"
)

// Kind identifies the variant of a Token. Every Token is one closed,
// tagged union member; there is no type hierarchy.
type Kind uint8

const (
	KindNone Kind = iota

	// Operands.
	KindInteger
	KindReal
	KindBoolean
	KindVariable

	// Binary operators, right-associative.
	KindPower
	KindAssignment

	// Binary operators, left-associative.
	KindAddition
	KindSubtraction
	KindMultiplication
	KindDivision
	KindModulus
	KindEquality
	KindInequality
	KindLess
	KindLessEqual
	KindGreater
	KindGreaterEqual
	KindAnd
	KindOr
	KindXor
	KindNand
	KindNor
	KindXnor

	// Unary prefix operators.
	KindIdentity
	KindNegation
	KindNot

	// Postfix operator.
	KindFactorial

	// One-argument functions.
	KindAbs
	KindSin
	KindCos
	KindTan
	KindArcsin
	KindArccos
	KindArctan
	KindSqrt
	KindLn
	KindLb
	KindLog
	KindExp
	KindFloor
	KindCeil
	KindResult

	// Two-argument functions.
	KindArctan2
	KindMax
	KindMin
	KindPow

	// Pseudo-tokens. Never appear in RPN output.
	KindLeftParen
	KindRightParen
	KindArgSep
)

// flags classifies a Kind along the axes the token model must answer
// without downcasting. One bitset lookup replaces the is<T> cascade a
// class hierarchy would otherwise need.
type flags uint16

const (
	fOperand flags = 1 << iota
	fOperator
	fBinary
	fUnary
	fPostfix
	fFunction
	fOneArg
	fTwoArg
	fLeftParen
	fRightParen
	fArgSep
	fVariable
	fRightAssoc
)

var kindInfo = map[Kind]flags{
	KindInteger:  fOperand,
	KindReal:     fOperand,
	KindBoolean:  fOperand,
	KindVariable: fOperand | fVariable,

	KindPower:      fOperator | fBinary | fRightAssoc,
	KindAssignment: fOperator | fBinary | fRightAssoc,

	KindAddition:       fOperator | fBinary,
	KindSubtraction:    fOperator | fBinary,
	KindMultiplication: fOperator | fBinary,
	KindDivision:       fOperator | fBinary,
	KindModulus:        fOperator | fBinary,
	KindEquality:       fOperator | fBinary,
	KindInequality:     fOperator | fBinary,
	KindLess:           fOperator | fBinary,
	KindLessEqual:      fOperator | fBinary,
	KindGreater:        fOperator | fBinary,
	KindGreaterEqual:   fOperator | fBinary,
	KindAnd:            fOperator | fBinary,
	KindOr:             fOperator | fBinary,
	KindXor:            fOperator | fBinary,
	KindNand:           fOperator | fBinary,
	KindNor:            fOperator | fBinary,
	KindXnor:           fOperator | fBinary,

	KindIdentity: fOperator | fUnary,
	KindNegation: fOperator | fUnary,
	KindNot:      fOperator | fUnary,

	KindFactorial: fOperator | fPostfix,

	KindAbs:    fFunction | fOneArg,
	KindSin:    fFunction | fOneArg,
	KindCos:    fFunction | fOneArg,
	KindTan:    fFunction | fOneArg,
	KindArcsin: fFunction | fOneArg,
	KindArccos: fFunction | fOneArg,
	KindArctan: fFunction | fOneArg,
	KindSqrt:   fFunction | fOneArg,
	KindLn:     fFunction | fOneArg,
	KindLb:     fFunction | fOneArg,
	KindLog:    fFunction | fOneArg,
	KindExp:    fFunction | fOneArg,
	KindFloor:  fFunction | fOneArg,
	KindCeil:   fFunction | fOneArg,
	KindResult: fFunction | fOneArg,

	KindArctan2: fFunction | fTwoArg,
	KindMax:     fFunction | fTwoArg,
	KindMin:     fFunction | fTwoArg,
	KindPow:     fFunction | fTwoArg,

	KindLeftParen:  fLeftParen,
	KindRightParen: fRightParen,
	KindArgSep:     fArgSep,
}

func (k Kind) has(f flags) bool { return kindInfo[k]&f != 0 }

func (k Kind) IsOperand() bool           { return k.has(fOperand) }
func (k Kind) IsOperator() bool          { return k.has(fOperator) }
func (k Kind) IsBinaryOperator() bool    { return k.has(fBinary) }
func (k Kind) IsUnaryOperator() bool     { return k.has(fUnary) }
func (k Kind) IsPostfixOperator() bool   { return k.has(fPostfix) }
func (k Kind) IsFunction() bool          { return k.has(fFunction) }
func (k Kind) IsOneArgFunction() bool    { return k.has(fOneArg) }
func (k Kind) IsTwoArgFunction() bool    { return k.has(fTwoArg) }
func (k Kind) IsLeftParen() bool         { return k.has(fLeftParen) }
func (k Kind) IsRightParen() bool        { return k.has(fRightParen) }
func (k Kind) IsArgumentSeparator() bool { return k.has(fArgSep) }
func (k Kind) IsVariable() bool          { return k.has(fVariable) }
func (k Kind) isRightAssociative() bool  { return k.has(fRightAssoc) }

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

var kindNames = map[Kind]string{
	KindInteger: "Integer", KindReal: "Real", KindBoolean: "Boolean", KindVariable: "Variable",
	KindPower: "Power", KindAssignment: "Assignment",
	KindAddition: "Addition", KindSubtraction: "Subtraction", KindMultiplication: "Multiplication",
	KindDivision: "Division", KindModulus: "Modulus", KindEquality: "Equality", KindInequality: "Inequality",
	KindLess: "Less", KindLessEqual: "LessEqual", KindGreater: "Greater", KindGreaterEqual: "GreaterEqual",
	KindAnd: "And", KindOr: "Or", KindXor: "Xor", KindNand: "Nand", KindNor: "Nor", KindXnor: "Xnor",
	KindIdentity: "Identity", KindNegation: "Negation", KindNot: "Not", KindFactorial: "Factorial",
	KindAbs: "Abs", KindSin: "Sin", KindCos: "Cos", KindTan: "Tan",
	KindArcsin: "Arcsin", KindArccos: "Arccos", KindArctan: "Arctan",
	KindSqrt: "Sqrt", KindLn: "Ln", KindLb: "Lb", KindLog: "Log", KindExp: "Exp",
	KindFloor: "Floor", KindCeil: "Ceil", KindResult: "Result",
	KindArctan2: "Arctan2", KindMax: "Max", KindMin: "Min", KindPow: "Pow",
	KindLeftParen: "LeftParenthesis", KindRightParen: "RightParenthesis", KindArgSep: "ArgumentSeparator",
}

// realPrec is the precision, in bits, at which Real operands are held. 64
// bits satisfies the "at least 64-bit" floating point spec.md requires.
const realPrec = 64

// Variable is a named, mutable slot. Its slot holds a non-Variable operand
// or is empty. Variable is shared by every Token handle that refers to the
// same name within one Tokenizer instance's lifetime.
type Variable struct {
	name string
	slot *Token
}

// Name returns the variable's identifier.
func (v *Variable) Name() string { return v.name }

// Set stores op in the variable's slot. op must not itself be a Variable
// operand.
func (v *Variable) Set(op Token) {
	if op.kind.IsVariable() {
		panic("ee: variable slot cannot hold another variable")
	}
	cp := op
	v.slot = &cp
}

// Value returns the operand currently stored in the variable's slot, and
// whether the slot is initialized.
func (v *Variable) Value() (Token, bool) {
	if v.slot == nil {
		return Token{}, false
	}
	return *v.slot, true
}

// Token is the single tagged-union value flowing through the tokenizer,
// parser, and evaluator. Its Kind selects which payload field is valid.
type Token struct {
	kind Kind
	ival *big.Int
	rval *big.Float
	bval bool
	vr   *Variable
}

// Kind returns the token's kind.
func (t Token) Kind() Kind { return t.kind }

func newInteger(i *big.Int) Token { return Token{kind: KindInteger, ival: i} }

func newReal(f *big.Float) Token { return Token{kind: KindReal, rval: f} }

func newBoolean(b bool) Token { return Token{kind: KindBoolean, bval: b} }

func newVariable(v *Variable) Token { return Token{kind: KindVariable, vr: v} }

func newOperator(k Kind) Token { return Token{kind: k} }

func newFunction(k Kind) Token { return Token{kind: k} }

func newPseudo(k Kind) Token { return Token{kind: k} }

// IntegerValue returns the token's Integer payload. ok is false if the
// token is not an Integer.
func (t Token) IntegerValue() (v *big.Int, ok bool) {
	if t.kind != KindInteger {
		return nil, false
	}
	return t.ival, true
}

// RealValue returns the token's Real payload. ok is false if the token is
// not a Real.
func (t Token) RealValue() (v *big.Float, ok bool) {
	if t.kind != KindReal {
		return nil, false
	}
	return t.rval, true
}

// BooleanValue returns the token's Boolean payload. ok is false if the
// token is not a Boolean.
func (t Token) BooleanValue() (v bool, ok bool) {
	if t.kind != KindBoolean {
		return false, false
	}
	return t.bval, true
}

// VariableValue returns the token's Variable handle. ok is false if the
// token is not a Variable.
func (t Token) VariableValue() (v *Variable, ok bool) {
	if t.kind != KindVariable {
		return nil, false
	}
	return t.vr, true
}

func (t Token) String() string {
	switch t.kind {
	case KindInteger:
		return t.ival.String()
	case KindReal:
		return t.rval.Text('g', 10)
	case KindBoolean:
		return strconv.FormatBool(t.bval)
	case KindVariable:
		return t.vr.name
	default:
		return t.kind.String()
	}
}
