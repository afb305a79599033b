package ee

import "math/big"

// EvalError indicates a problem detected while executing an RPN token
// sequence: too few or too many operands, a type mismatch, an
// uninitialized variable read, an assignment whose left-hand side is not a
// variable, or a division or modulus by zero.
type EvalError struct {
	Msg string
}

func (err *EvalError) Error() string { return err.Msg }

// Evaluate executes an RPN token sequence against a fresh operand stack
// and returns the single remaining operand. Assignment mutates the
// Variable handles referenced by the sequence; all other evaluation is
// side-effect free.
func Evaluate(rpn []Token) (Token, error) {
	var stack []Token

	push := func(t Token) { stack = append(stack, t) }
	pop := func() Token {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return t
	}

	for _, tok := range rpn {
		k := tok.kind
		switch {
		case k.IsOperand():
			push(tok)

		case k.IsPostfixOperator():
			if len(stack) < 1 {
				return Token{}, &EvalError{"insufficient operands"}
			}
			val, err := derefValue(pop())
			if err != nil {
				return Token{}, err
			}
			ival, ok := val.IntegerValue()
			if !ok || ival.Sign() < 0 {
				return Token{}, &EvalError{"unsupported operand"}
			}
			push(newInteger(factorial(ival)))

		case k.IsUnaryOperator():
			if len(stack) < 1 {
				return Token{}, &EvalError{"insufficient operands"}
			}
			operand := pop()
			val, err := derefValue(operand)
			if err != nil {
				return Token{}, err
			}
			switch k {
			case KindIdentity:
				push(operand)
			case KindNegation:
				if ival, ok := val.IntegerValue(); ok {
					push(newInteger(new(big.Int).Neg(ival)))
				} else if rval, ok := val.RealValue(); ok {
					push(newReal(new(big.Float).Neg(rval)))
				} else {
					return Token{}, &EvalError{"unsupported operand"}
				}
			case KindNot:
				bval, ok := val.BooleanValue()
				if !ok {
					return Token{}, &EvalError{"unsupported operand"}
				}
				push(newBoolean(!bval))
			}

		case k.IsBinaryOperator():
			if len(stack) < 2 {
				return Token{}, &EvalError{"insufficient operands"}
			}
			rhs := pop()
			lhs := pop()

			if k == KindAssignment {
				vr, ok := lhs.VariableValue()
				if !ok {
					return Token{}, &EvalError{"assignment to a non-variable"}
				}
				rval, err := derefValue(rhs)
				if err != nil {
					return Token{}, err
				}
				vr.Set(rval)
				push(newVariable(vr))
				continue
			}

			lv, err := derefValue(lhs)
			if err != nil {
				return Token{}, err
			}
			rv, err := derefValue(rhs)
			if err != nil {
				return Token{}, err
			}

			result, err := evalBinary(k, lv, rv)
			if err != nil {
				return Token{}, err
			}
			push(result)

		case k.IsOneArgFunction():
			if len(stack) < 1 {
				return Token{}, &EvalError{"insufficient operands"}
			}
			val, err := derefValue(pop())
			if err != nil {
				return Token{}, err
			}
			result, err := evalOneArgFunction(k, val)
			if err != nil {
				return Token{}, err
			}
			push(result)

		case k.IsTwoArgFunction():
			if len(stack) < 2 {
				return Token{}, &EvalError{"insufficient operands"}
			}
			rhs, err := derefValue(pop())
			if err != nil {
				return Token{}, err
			}
			lhs, err := derefValue(pop())
			if err != nil {
				return Token{}, err
			}
			lf, ok := numericToReal(lhs)
			if !ok {
				return Token{}, &EvalError{"unsupported operand"}
			}
			rf, ok := numericToReal(rhs)
			if !ok {
				return Token{}, &EvalError{"unsupported operand"}
			}
			fn, ok := twoArgReal[k]
			if !ok {
				return Token{}, &EvalError{"unsupported operand"}
			}
			push(newReal(fn(lf, rf)))
		}
	}

	switch len(stack) {
	case 0:
		return Token{}, &EvalError{"insufficient operands"}
	case 1:
		return stack[0], nil
	default:
		return Token{}, &EvalError{"too many operands"}
	}
}

// derefValue resolves a Variable token to the operand in its slot. Since
// a Variable's slot never holds another Variable, one resolution step
// suffices. Non-Variable operands are returned unchanged.
func derefValue(tok Token) (Token, error) {
	vr, ok := tok.VariableValue()
	if !ok {
		return tok, nil
	}
	val, ok := vr.Value()
	if !ok {
		return Token{}, &EvalError{"variable not initialized"}
	}
	return val, nil
}

func factorial(n *big.Int) *big.Int {
	result := big.NewInt(1)
	one := big.NewInt(1)
	for i := big.NewInt(1); i.Cmp(n) <= 0; i.Add(i, one) {
		result.Mul(result, i)
	}
	return result
}

// numericToReal converts an Integer or Real operand to *big.Float. It
// reports false for Boolean or Variable operands.
func numericToReal(tok Token) (*big.Float, bool) {
	if ival, ok := tok.IntegerValue(); ok {
		return new(big.Float).SetPrec(realPrec).SetInt(ival), true
	}
	if rval, ok := tok.RealValue(); ok {
		return rval, true
	}
	return nil, false
}

// promote lifts both operands to Real if either operand is already Real;
// otherwise both are returned unchanged. It reports false if either operand
// is not an Integer or Real, since booleans never promote implicitly to
// numeric.
func promote(l, r Token) (Token, Token, bool) {
	_, lReal := l.RealValue()
	_, rReal := r.RealValue()
	if !lReal && !rReal {
		if _, ok := l.IntegerValue(); !ok {
			return Token{}, Token{}, false
		}
		if _, ok := r.IntegerValue(); !ok {
			return Token{}, Token{}, false
		}
		return l, r, true
	}
	lf, ok := numericToReal(l)
	if !ok {
		return Token{}, Token{}, false
	}
	rf, ok := numericToReal(r)
	if !ok {
		return Token{}, Token{}, false
	}
	return newReal(lf), newReal(rf), true
}

func evalBinary(k Kind, lhs, rhs Token) (Token, error) {
	switch k {
	case KindAddition, KindSubtraction, KindMultiplication, KindDivision:
		return evalArithmetic(k, lhs, rhs)
	case KindModulus:
		return evalModulus(lhs, rhs)
	case KindPower:
		return evalPower(lhs, rhs)
	case KindEquality, KindInequality:
		return evalEquality(k, lhs, rhs)
	case KindLess, KindLessEqual, KindGreater, KindGreaterEqual:
		return evalRelational(k, lhs, rhs)
	case KindAnd, KindOr, KindXor, KindNand, KindNor, KindXnor:
		return evalBoolean(k, lhs, rhs)
	default:
		return Token{}, &EvalError{"unsupported operand"}
	}
}

func evalArithmetic(k Kind, lhs, rhs Token) (Token, error) {
	lp, rp, ok := promote(lhs, rhs)
	if !ok {
		return Token{}, &EvalError{"unsupported operand"}
	}
	if lf, ok := lp.RealValue(); ok {
		rf, _ := rp.RealValue()
		out := new(big.Float).SetPrec(realPrec)
		switch k {
		case KindAddition:
			out.Add(lf, rf)
		case KindSubtraction:
			out.Sub(lf, rf)
		case KindMultiplication:
			out.Mul(lf, rf)
		case KindDivision:
			if lf.Sign() == 0 && rf.Sign() == 0 {
				return Token{}, &EvalError{"division by zero"}
			}
			out.Quo(lf, rf) // zero divisor with a nonzero dividend yields signed infinity
		}
		return newReal(out), nil
	}
	li, _ := lp.IntegerValue()
	ri, _ := rp.IntegerValue()
	out := new(big.Int)
	switch k {
	case KindAddition:
		out.Add(li, ri)
	case KindSubtraction:
		out.Sub(li, ri)
	case KindMultiplication:
		out.Mul(li, ri)
	case KindDivision:
		if ri.Sign() == 0 {
			return Token{}, &EvalError{"division by zero"}
		}
		out.Quo(li, ri) // truncates toward zero
	}
	return newInteger(out), nil
}

func evalModulus(lhs, rhs Token) (Token, error) {
	li, ok := lhs.IntegerValue()
	if !ok {
		return Token{}, &EvalError{"unsupported operand"}
	}
	ri, ok := rhs.IntegerValue()
	if !ok {
		return Token{}, &EvalError{"unsupported operand"}
	}
	if ri.Sign() == 0 {
		return Token{}, &EvalError{"division by zero"}
	}
	return newInteger(new(big.Int).Rem(li, ri)), nil
}

func evalPower(lhs, rhs Token) (Token, error) {
	lp, rp, ok := promote(lhs, rhs)
	if !ok {
		return Token{}, &EvalError{"unsupported operand"}
	}
	if lf, ok := lp.RealValue(); ok {
		rf, _ := rp.RealValue()
		return newReal(twoArgReal[KindPow](lf, rf)), nil
	}
	base, _ := lp.IntegerValue()
	exp, _ := rp.IntegerValue()
	// A negative exponent loops zero times, silently yielding 1. See
	// DESIGN.md's open question resolution.
	result := big.NewInt(1)
	one := big.NewInt(1)
	for i := big.NewInt(0); i.Cmp(exp) < 0; i.Add(i, one) {
		result.Mul(result, base)
	}
	return newInteger(result), nil
}

func evalEquality(k Kind, lhs, rhs Token) (Token, error) {
	eq := valuesEqual(lhs, rhs)
	if k == KindInequality {
		eq = !eq
	}
	return newBoolean(eq), nil
}

func valuesEqual(lhs, rhs Token) bool {
	if lb, ok := lhs.BooleanValue(); ok {
		rb, ok := rhs.BooleanValue()
		return ok && lb == rb
	}
	if _, ok := rhs.BooleanValue(); ok {
		return false
	}
	lp, rp, ok := promote(lhs, rhs)
	if !ok {
		return false
	}
	if lf, ok := lp.RealValue(); ok {
		rf, _ := rp.RealValue()
		return lf.Cmp(rf) == 0
	}
	li, _ := lp.IntegerValue()
	ri, _ := rp.IntegerValue()
	return li.Cmp(ri) == 0
}

func evalRelational(k Kind, lhs, rhs Token) (Token, error) {
	lp, rp, ok := promote(lhs, rhs)
	if !ok {
		return Token{}, &EvalError{"unsupported operand"}
	}
	var cmp int
	if lf, ok := lp.RealValue(); ok {
		rf, _ := rp.RealValue()
		cmp = lf.Cmp(rf)
	} else {
		li, _ := lp.IntegerValue()
		ri, _ := rp.IntegerValue()
		cmp = li.Cmp(ri)
	}
	var b bool
	switch k {
	case KindLess:
		b = cmp < 0
	case KindLessEqual:
		b = cmp <= 0
	case KindGreater:
		b = cmp > 0
	case KindGreaterEqual:
		b = cmp >= 0
	}
	return newBoolean(b), nil
}

func evalBoolean(k Kind, lhs, rhs Token) (Token, error) {
	lb, ok := lhs.BooleanValue()
	if !ok {
		return Token{}, &EvalError{"unsupported operand"}
	}
	rb, ok := rhs.BooleanValue()
	if !ok {
		return Token{}, &EvalError{"unsupported operand"}
	}
	var b bool
	switch k {
	case KindAnd:
		b = lb && rb
	case KindOr:
		b = lb || rb
	case KindXor:
		b = lb != rb
	case KindNand:
		b = !(lb && rb)
	case KindNor:
		b = !(lb || rb)
	case KindXnor:
		b = lb == rb
	}
	return newBoolean(b), nil
}

func evalOneArgFunction(k Kind, val Token) (Token, error) {
	if k == KindResult {
		return Token{}, &EvalError{"unsupported operand"}
	}
	if k == KindAbs {
		if ival, ok := val.IntegerValue(); ok {
			return newInteger(new(big.Int).Abs(ival)), nil
		}
		if rval, ok := val.RealValue(); ok {
			return newReal(new(big.Float).Abs(rval)), nil
		}
		return Token{}, &EvalError{"unsupported operand"}
	}
	f, ok := numericToReal(val)
	if !ok {
		return Token{}, &EvalError{"unsupported operand"}
	}
	fn, ok := oneArgReal[k]
	if !ok {
		return Token{}, &EvalError{"unsupported operand"}
	}
	return newReal(fn(f)), nil
}
