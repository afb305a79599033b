package ee

// precedence assigns each operator kind a binding strength; higher binds
// tighter. Kinds with no entry (operands, functions, pseudo-tokens) are
// never looked up by the shunting-yard loop.
var precedence = map[Kind]int8{
	KindFactorial: 15,

	KindPower: 14,

	KindIdentity: 13,
	KindNegation: 13,
	KindNot:      13,

	KindMultiplication: 12,
	KindDivision:       12,
	KindModulus:        12,

	KindAddition:    11,
	KindSubtraction: 11,

	KindLess:         9,
	KindLessEqual:    9,
	KindGreater:      9,
	KindGreaterEqual: 9,

	KindEquality:   8,
	KindInequality: 8,

	KindAnd:  6,
	KindNand: 6,

	KindXor:  5,
	KindXnor: 5,

	KindOr:  4,
	KindNor: 4,

	KindAssignment: 1,
}

// ParseError indicates a structural problem in the token stream that the
// shunting-yard algorithm detects: an unmatched right parenthesis, or one
// or more left parentheses left open at the end of input.
type ParseError struct {
	Msg string
}

func (err *ParseError) Error() string { return err.Msg }

// Parse converts an infix token sequence into postfix (RPN) order using
// the shunting-yard algorithm. It is a pure function of its input: it
// never looks at operand payloads, only at token classification and
// precedence. The result contains only operands, operators, and
// functions — no pseudo-tokens.
func Parse(tokens []Token) ([]Token, error) {
	output := make([]Token, 0, len(tokens))
	var stack []Token

	for _, tok := range tokens {
		k := tok.kind
		switch {
		case k.IsOperand():
			output = append(output, tok)

		case k.IsFunction():
			stack = append(stack, tok)

		case k.IsArgumentSeparator():
			for len(stack) > 0 && !stack[len(stack)-1].kind.IsLeftParen() {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}

		case k.IsLeftParen():
			stack = append(stack, tok)

		case k.IsRightParen():
			for len(stack) > 0 && !stack[len(stack)-1].kind.IsLeftParen() {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, &ParseError{Msg: "Right parenthesis has no matching left parenthesis"}
			}
			stack = stack[:len(stack)-1]
			if len(stack) > 0 && stack[len(stack)-1].kind.IsFunction() {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}

		case k.IsOperator():
			for len(stack) > 0 && stack[len(stack)-1].kind.IsOperator() {
				top := stack[len(stack)-1]
				topPrec, curPrec := precedence[top.kind], precedence[k]
				if topPrec > curPrec || (topPrec == curPrec && !k.isRightAssociative()) {
					output = append(output, top)
					stack = stack[:len(stack)-1]
				} else {
					break
				}
			}
			stack = append(stack, tok)

		default:
			// Defensive: no other token kind reaches the parser.
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.kind.IsLeftParen() {
			return nil, &ParseError{Msg: "Missing right-parenthesis"}
		}
		output = append(output, top)
		stack = stack[:len(stack)-1]
	}

	return output, nil
}
