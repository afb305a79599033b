package ee_test

import (
	"testing"

	"github.com/exprlang/ee"
)

func kinds(tokens []ee.Token) []ee.Kind {
	out := make([]ee.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind()
	}
	return out
}

func equalKinds(a, b []ee.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestParseShuntingYard(t *testing.T) {
	cases := []struct {
		src  string
		want []ee.Kind
	}{
		{"2 + 3 * 4", []ee.Kind{ee.KindInteger, ee.KindInteger, ee.KindInteger, ee.KindMultiplication, ee.KindAddition}},
		{"2 ** 3 ** 2", []ee.Kind{ee.KindInteger, ee.KindInteger, ee.KindInteger, ee.KindPower, ee.KindPower}},
		{"(2 + 3) * 4", []ee.Kind{ee.KindInteger, ee.KindInteger, ee.KindAddition, ee.KindInteger, ee.KindMultiplication}},
		{"sin(1)", []ee.Kind{ee.KindInteger, ee.KindSin}},
		{"max(1, 2)", []ee.Kind{ee.KindInteger, ee.KindInteger, ee.KindMax}},
		{"x = 5", []ee.Kind{ee.KindVariable, ee.KindInteger, ee.KindAssignment}},
	}

	for _, c := range cases {
		tok := ee.NewTokenizer()
		tokens, err := tok.Tokenize(c.src)
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", c.src, err)
		}
		rpn, err := ee.Parse(tokens)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.src, err)
		}
		if got := kinds(rpn); !equalKinds(got, c.want) {
			t.Errorf("Parse(%q): want %v, got %v", c.src, c.want, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"(1))", "Right parenthesis has no matching left parenthesis"},
		{"((1+2)", "Missing right-parenthesis"},
	}
	for _, c := range cases {
		tok := ee.NewTokenizer()
		tokens, err := tok.Tokenize(c.src)
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", c.src, err)
		}
		_, err = ee.Parse(tokens)
		if err == nil {
			t.Fatalf("Parse(%q): expected error, got none", c.src)
		}
		if err.Error() != c.want {
			t.Errorf("Parse(%q): want %q, got %q", c.src, c.want, err.Error())
		}
	}
}
