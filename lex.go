package ee

import (
	"math/big"
	"strings"
)

// prevCategory classifies the previously emitted token for the purposes of
// disambiguating '!' and unary/binary '+'/'-'. It mirrors the categories the
// original tokenizer tracks (Start, Operand, RightParenthesis, PostfixOp,
// Function, Other); Function is tracked even though no current rule
// branches on it, so a future rule can without restructuring this type.
type prevCategory uint8

const (
	prevStart prevCategory = iota
	prevOperand
	prevRightParen
	prevPostfixOp
	prevFunction
	prevOther
)

func classifyPrev(tok Token) prevCategory {
	switch {
	case tok.kind.IsOperand():
		return prevOperand
	case tok.kind.IsRightParen():
		return prevRightParen
	case tok.kind.IsPostfixOperator():
		return prevPostfixOp
	case tok.kind.IsFunction():
		return prevFunction
	default:
		return prevOther
	}
}

// Tokenizer converts source text into a sequence of Tokens. Keywords are
// interned once at construction; variables are registered on first
// reference and shared for the Tokenizer's lifetime. A Tokenizer is not
// safe for concurrent use.
type Tokenizer struct {
	keywords  map[string]Token
	variables map[string]*Variable
}

// NewTokenizer creates a Tokenizer with the standard keyword table loaded.
func NewTokenizer() *Tokenizer {
	t := &Tokenizer{
		keywords:  make(map[string]Token, 3*32),
		variables: make(map[string]*Variable),
	}
	t.loadKeywords()
	return t
}

func spellings(s string) (lower, capitalized, upper string) {
	lower = strings.ToLower(s)
	upper = strings.ToUpper(s)
	capitalized = strings.ToUpper(lower[:1]) + lower[1:]
	return
}

func (t *Tokenizer) addKeyword(name string, tok Token) {
	lower, capitalized, upper := spellings(name)
	t.keywords[lower] = tok
	t.keywords[capitalized] = tok
	t.keywords[upper] = tok
}

func (t *Tokenizer) loadKeywords() {
	t.addKeyword("abs", newFunction(KindAbs))
	t.addKeyword("and", newOperator(KindAnd))
	t.addKeyword("arccos", newFunction(KindArccos))
	t.addKeyword("arcsin", newFunction(KindArcsin))
	t.addKeyword("arctan", newFunction(KindArctan))
	t.addKeyword("arctan2", newFunction(KindArctan2))
	t.addKeyword("ceil", newFunction(KindCeil))
	t.addKeyword("cos", newFunction(KindCos))
	t.addKeyword("e", newReal(mathConstant(mathE)))
	t.addKeyword("exp", newFunction(KindExp))
	t.addKeyword("false", newBoolean(false))
	t.addKeyword("floor", newFunction(KindFloor))
	t.addKeyword("lb", newFunction(KindLb))
	t.addKeyword("ln", newFunction(KindLn))
	t.addKeyword("log", newFunction(KindLog))
	t.addKeyword("max", newFunction(KindMax))
	t.addKeyword("min", newFunction(KindMin))
	t.addKeyword("mod", newOperator(KindModulus))
	t.addKeyword("nand", newOperator(KindNand))
	t.addKeyword("nor", newOperator(KindNor))
	t.addKeyword("not", newOperator(KindNot))
	t.addKeyword("or", newOperator(KindOr))
	t.addKeyword("pi", newReal(mathConstant(mathPi)))
	t.addKeyword("pow", newFunction(KindPow))
	t.addKeyword("result", newFunction(KindResult))
	t.addKeyword("sin", newFunction(KindSin))
	t.addKeyword("sqrt", newFunction(KindSqrt))
	t.addKeyword("tan", newFunction(KindTan))
	t.addKeyword("true", newBoolean(true))
	t.addKeyword("xnor", newOperator(KindXnor))
	t.addKeyword("xor", newOperator(KindXor))
}

// BadCharacterError indicates a character that cannot start any valid
// token.
type BadCharacterError struct {
	// Offset is the rune offset of the offending character.
	Offset int
}

func (err *BadCharacterError) Error() string {
	return errpos(err.Offset, "bad character")
}

func (err *BadCharacterError) Pos() int { return err.Offset }

// TokenizerError indicates a malformed token that BadCharacterError does
// not otherwise describe: a malformed real literal, a function identifier
// not followed by '(', or a misplaced factorial.
type TokenizerError struct {
	// Offset is the rune offset at which the error was detected.
	Offset int
	// Msg describes the problem.
	Msg string
}

func (err *TokenizerError) Error() string {
	return errpos(err.Offset, err.Msg)
}

func (err *TokenizerError) Pos() int { return err.Offset }

func isDigit(r rune) bool { return '0' <= r && r <= '9' }
func isAlpha(r rune) bool { return 'A' <= r && r <= 'Z' || 'a' <= r && r <= 'z' }
func isAlnum(r rune) bool { return isAlpha(r) || isDigit(r) }
func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f' }

// Tokenize scans text into an ordered token sequence. New variables
// encountered are registered into the Tokenizer's variable dictionary,
// which persists for the Tokenizer's lifetime; a failed tokenization may
// leave variables registered from the portion of text scanned before the
// error.
func (t *Tokenizer) Tokenize(text string) ([]Token, error) {
	src := []rune(text)
	var out []Token
	prev := prevStart
	i := 0
	n := len(src)

	for i < n {
		if isSpace(src[i]) {
			i++
			continue
		}

		// Rule 1: binary integer literal 0[bB][01]+.
		if src[i] == '0' && i+1 < n && (src[i+1] == 'b' || src[i+1] == 'B') {
			j := i + 2
			if j >= n || (src[j] != '0' && src[j] != '1') {
				return out, &BadCharacterError{Offset: j}
			}
			v := new(big.Int)
			for j < n && (src[j] == '0' || src[j] == '1') {
				v.Lsh(v, 1)
				if src[j] == '1' {
					v.Or(v, big.NewInt(1))
				}
				j++
			}
			out = append(out, newInteger(v))
			prev = prevOperand
			i = j
			continue
		}

		// Rule 2: numeric literal [0-9]+ ('.' [0-9]+)?.
		if isDigit(src[i]) {
			start := i
			j := i
			for j < n && isDigit(src[j]) {
				j++
			}
			if j < n && src[j] == '.' {
				dot := j
				j++
				if j >= n || !isDigit(src[j]) {
					return out, &BadCharacterError{Offset: dot + 1}
				}
				for j < n && isDigit(src[j]) {
					j++
				}
				f, _, err := big.ParseFloat(string(src[start:j]), 10, realPrec, big.ToNearestEven)
				if err != nil {
					return out, &TokenizerError{Offset: start, Msg: "malformed real literal"}
				}
				out = append(out, newReal(f))
			} else {
				v := new(big.Int)
				v.SetString(string(src[start:j]), 10)
				out = append(out, newInteger(v))
			}
			prev = prevOperand
			i = j
			continue
		}

		// Rule 3: two-character operators.
		if i+1 < n {
			two := string(src[i : i+2])
			var k Kind
			switch two {
			case "<=":
				k = KindLessEqual
			case ">=":
				k = KindGreaterEqual
			case "==":
				k = KindEquality
			case "!=":
				k = KindInequality
			case "**":
				k = KindPower
			}
			if k != KindNone {
				tok := newOperator(k)
				out = append(out, tok)
				prev = classifyPrev(tok)
				i += 2
				continue
			}
		}

		// Rule 4: one-character operators and pseudo-tokens.
		if k, ok := oneCharOp(src[i]); ok {
			var tok Token
			if k.IsLeftParen() || k.IsRightParen() || k.IsArgumentSeparator() {
				tok = newPseudo(k)
			} else {
				tok = newOperator(k)
			}
			out = append(out, tok)
			prev = classifyPrev(tok)
			i++
			continue
		}

		// Rule 5: factorial.
		if src[i] == '!' {
			if prev == prevOperand || prev == prevPostfixOp || prev == prevRightParen {
				tok := newOperator(KindFactorial)
				out = append(out, tok)
				prev = classifyPrev(tok)
				i++
				continue
			}
			return out, &TokenizerError{Offset: i, Msg: "Factorial must follow Expression"}
		}

		// Rule 6: assignment.
		if src[i] == '=' {
			tok := newOperator(KindAssignment)
			out = append(out, tok)
			prev = classifyPrev(tok)
			i++
			continue
		}

		// Rule 7: context-sensitive '+'/'-'.
		if src[i] == '+' || src[i] == '-' {
			var k Kind
			binary := prev == prevOperand || prev == prevPostfixOp || prev == prevRightParen
			if src[i] == '+' {
				if binary {
					k = KindAddition
				} else {
					k = KindIdentity
				}
			} else {
				if binary {
					k = KindSubtraction
				} else {
					k = KindNegation
				}
			}
			tok := newOperator(k)
			out = append(out, tok)
			prev = classifyPrev(tok)
			i++
			continue
		}

		// Rule 8: identifiers, keywords, variables.
		if isAlpha(src[i]) {
			start := i
			j := i + 1
			for j < n && isAlnum(src[j]) {
				j++
			}
			name := string(src[start:j])
			tok, ok := t.keywords[name]
			if !ok {
				tok, ok = t.lookupVariable(name)
				if !ok {
					v := &Variable{name: name}
					t.variables[name] = v
					tok = newVariable(v)
				}
			}
			if tok.kind.IsFunction() {
				k := j
				for k < n && isSpace(src[k]) {
					k++
				}
				if k >= n || src[k] != '(' {
					return out, &TokenizerError{Offset: k, Msg: "Function not followed by ("}
				}
			}
			out = append(out, tok)
			prev = classifyPrev(tok)
			i = j
			continue
		}

		return out, &BadCharacterError{Offset: i}
	}

	return out, nil
}

func (t *Tokenizer) lookupVariable(name string) (Token, bool) {
	v, ok := t.variables[name]
	if !ok {
		return Token{}, false
	}
	return newVariable(v), true
}

func oneCharOp(r rune) (Kind, bool) {
	switch r {
	case '*':
		return KindMultiplication, true
	case '/':
		return KindDivision, true
	case '%':
		return KindModulus, true
	case '(':
		return KindLeftParen, true
	case ')':
		return KindRightParen, true
	case ',':
		return KindArgSep, true
	case '<':
		return KindLess, true
	case '>':
		return KindGreater, true
	}
	return KindNone, false
}
