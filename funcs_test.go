package ee

import (
	"math/big"
	"testing"
)

func TestOneArgRealCoverage(t *testing.T) {
	for _, k := range []Kind{
		KindSin, KindCos, KindTan, KindArcsin, KindArccos, KindArctan,
		KindFloor, KindCeil, KindSqrt, KindLn, KindLb, KindLog, KindExp,
	} {
		if _, ok := oneArgReal[k]; !ok {
			t.Errorf("oneArgReal missing entry for %v", k)
		}
	}
}

func TestTwoArgRealCoverage(t *testing.T) {
	for _, k := range []Kind{KindArctan2, KindMax, KindMin, KindPow} {
		if _, ok := twoArgReal[k]; !ok {
			t.Errorf("twoArgReal missing entry for %v", k)
		}
	}
}

func TestSqrtExact(t *testing.T) {
	four := new(big.Float).SetPrec(realPrec).SetInt64(4)
	got := oneArgReal[KindSqrt](four)
	want := new(big.Float).SetPrec(realPrec).SetInt64(2)
	if got.Cmp(want) != 0 {
		t.Errorf("sqrt(4): want %v, got %v", want, got)
	}
}

func TestMaxMin(t *testing.T) {
	one := new(big.Float).SetPrec(realPrec).SetInt64(1)
	two := new(big.Float).SetPrec(realPrec).SetInt64(2)
	if got := twoArgReal[KindMax](one, two); got.Cmp(two) != 0 {
		t.Errorf("max(1, 2): want 2, got %v", got)
	}
	if got := twoArgReal[KindMin](one, two); got.Cmp(one) != 0 {
		t.Errorf("min(1, 2): want 1, got %v", got)
	}
}

func TestMathConstants(t *testing.T) {
	pi := mathConstant(mathPi)
	// Pi is between 3.14 and 3.15.
	lo := new(big.Float).SetPrec(realPrec).SetFloat64(3.14)
	hi := new(big.Float).SetPrec(realPrec).SetFloat64(3.15)
	if pi.Cmp(lo) <= 0 || pi.Cmp(hi) >= 0 {
		t.Errorf("mathConstant(mathPi) = %v, not between 3.14 and 3.15", pi)
	}
}
