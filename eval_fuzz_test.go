package ee_test

import (
	"testing"

	"github.com/exprlang/ee"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("2 + 3 * 4")
	f.Add("x = 5")
	f.Add("sin(pi / 2)")
	f.Add("5!")
	f.Add("1 / 0")
	f.Fuzz(func(t *testing.T, s string) {
		tok := ee.NewTokenizer()
		tokens, err := tok.Tokenize(s)
		if err != nil {
			return
		}
		rpn, err := ee.Parse(tokens)
		if err != nil {
			return
		}
		ee.Evaluate(rpn)
	})
}
