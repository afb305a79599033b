package ee

import "testing"

func TestTokenizeSimple(t *testing.T) {
	cases := []struct {
		src   string
		kinds []Kind
	}{
		{"", nil},
		{" \t \r\n ", nil},
		{"0", []Kind{KindInteger}},
		{"9876543210", []Kind{KindInteger}},
		{"1.0", []Kind{KindReal}},
		{"0b1011", []Kind{KindInteger}},
		{"2 + 3", []Kind{KindInteger, KindAddition, KindInteger}},
		{"2+3", []Kind{KindInteger, KindAddition, KindInteger}},
		{"-1", []Kind{KindNegation, KindInteger}},
		{"+1", []Kind{KindIdentity, KindInteger}},
		{"1 - -1", []Kind{KindInteger, KindSubtraction, KindNegation, KindInteger}},
		{"<=", []Kind{KindLessEqual}},
		{">=", []Kind{KindGreaterEqual}},
		{"==", []Kind{KindEquality}},
		{"!=", []Kind{KindInequality}},
		{"2 ** 3", []Kind{KindInteger, KindPower, KindInteger}},
		{"(1)", []Kind{KindLeftParen, KindInteger, KindRightParen}},
		{"sin(1)", []Kind{KindSin, KindLeftParen, KindInteger, KindRightParen}},
		{"x = 5", []Kind{KindVariable, KindAssignment, KindInteger}},
		{"5!", []Kind{KindInteger, KindFactorial}},
		{"true and false", []Kind{KindBoolean, KindAnd, KindBoolean}},
		{"pi", []Kind{KindReal}},
		{"e", []Kind{KindReal}},
	}

	for _, c := range cases {
		tok := NewTokenizer()
		got, err := tok.Tokenize(c.src)
		if err != nil {
			t.Errorf("Tokenize(%q): unexpected error %v", c.src, err)
			continue
		}
		if len(got) != len(c.kinds) {
			t.Errorf("Tokenize(%q): want %d tokens, got %d (%v)", c.src, len(c.kinds), len(got), got)
			continue
		}
		for i, k := range c.kinds {
			if got[i].Kind() != k {
				t.Errorf("Tokenize(%q): token %d: want %v, got %v", c.src, i, k, got[i].Kind())
			}
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"$", "bad character"},
		{"1.", "bad character"},
		{"0b2", "bad character"},
		{"!5", "Factorial must follow Expression"},
		{"sin 1", "Function not followed by ("},
	}
	for _, c := range cases {
		tok := NewTokenizer()
		_, err := tok.Tokenize(c.src)
		if err == nil {
			t.Errorf("Tokenize(%q): expected error, got none", c.src)
			continue
		}
		if got := err.Error(); !contains(got, c.want) {
			t.Errorf("Tokenize(%q): error %q does not contain %q", c.src, got, c.want)
		}
	}
}

func TestTokenizeVariableSharing(t *testing.T) {
	tok := NewTokenizer()
	first, err := tok.Tokenize("x = 5")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	second, err := tok.Tokenize("x")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	v1, ok := first[0].VariableValue()
	if !ok {
		t.Fatalf("first token is not a Variable")
	}
	v2, ok := second[0].VariableValue()
	if !ok {
		t.Fatalf("second token is not a Variable")
	}
	if v1 != v2 {
		t.Errorf("Tokenize: distinct Variable handles for the same name")
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
