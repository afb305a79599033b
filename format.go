package ee

import "strings"

// operatorSymbols maps operator and pseudo-token kinds back to their
// source spelling, for Format.
var operatorSymbols = map[Kind]string{
	KindPower: "**", KindAssignment: "=",
	KindAddition: "+", KindSubtraction: "-", KindMultiplication: "*",
	KindDivision: "/", KindModulus: "%",
	KindEquality: "==", KindInequality: "!=",
	KindLess: "<", KindLessEqual: "<=", KindGreater: ">", KindGreaterEqual: ">=",
	KindAnd: "and", KindOr: "or", KindXor: "xor",
	KindNand: "nand", KindNor: "nor", KindXnor: "xnor",
	KindIdentity: "+", KindNegation: "-", KindNot: "not",
	KindFactorial: "!",
	KindLeftParen: "(", KindRightParen: ")", KindArgSep: ",",
}

// Format renders a token sequence back to source-like text, one space
// between tokens regardless of arity or associativity. It is meant for
// diagnostics: echoing what the tokenizer or parser saw, not for
// reproducing the exact original spelling (keyword case, whitespace
// width) of the input.
func Format(tokens []Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmtToken(&b, tok)
	}
	return b.String()
}

func fmtToken(b *strings.Builder, tok Token) {
	k := tok.Kind()
	if sym, ok := operatorSymbols[k]; ok {
		b.WriteString(sym)
		return
	}
	if k.IsFunction() {
		b.WriteString(k.String())
		return
	}
	b.WriteString(tok.String())
}
