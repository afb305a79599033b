package ee

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

type mathConst uint8

const (
	mathPi mathConst = iota
	mathE
)

// mathConstant computes a named constant at realPrec precision. Used once
// per keyword, at Tokenizer construction, to intern Pi and E as Real
// operands.
func mathConstant(which mathConst) *big.Float {
	out := new(big.Float).SetPrec(realPrec)
	switch which {
	case mathPi:
		return bigfloat.Pi(out)
	case mathE:
		one := new(big.Float).SetPrec(realPrec).SetInt64(1)
		return bigfloat.Exp(out, one)
	default:
		panic("ee: unknown math constant")
	}
}

// toFloat64 narrows a Real operand to float64 for functions that the
// wired arbitrary-precision library does not implement (trigonometry,
// floor, ceil). See SPEC_FULL.md's DOMAIN STACK section for why this
// narrowing is necessary rather than avoidable.
func toFloat64(f *big.Float) float64 {
	v, _ := f.Float64()
	return v
}

func fromFloat64(v float64) *big.Float {
	return new(big.Float).SetPrec(realPrec).SetFloat64(v)
}

// oneArgReal is a one-argument function of a Real operand producing a
// Real result. Functions backed by bigfloat operate on *big.Float
// directly; functions with no arbitrary-precision implementation in the
// retrieval pack narrow to float64, call the standard math package, and
// widen the result back.
var oneArgReal = map[Kind]func(*big.Float) *big.Float{
	KindSin:    func(x *big.Float) *big.Float { return fromFloat64(math.Sin(toFloat64(x))) },
	KindCos:    func(x *big.Float) *big.Float { return fromFloat64(math.Cos(toFloat64(x))) },
	KindTan:    func(x *big.Float) *big.Float { return fromFloat64(math.Tan(toFloat64(x))) },
	KindArcsin: func(x *big.Float) *big.Float { return fromFloat64(math.Asin(toFloat64(x))) },
	KindArccos: func(x *big.Float) *big.Float { return fromFloat64(math.Acos(toFloat64(x))) },
	KindArctan: func(x *big.Float) *big.Float { return fromFloat64(math.Atan(toFloat64(x))) },
	KindFloor:  func(x *big.Float) *big.Float { return fromFloat64(math.Floor(toFloat64(x))) },
	KindCeil:   func(x *big.Float) *big.Float { return fromFloat64(math.Ceil(toFloat64(x))) },
	KindSqrt: func(x *big.Float) *big.Float {
		return new(big.Float).SetPrec(realPrec).Sqrt(x)
	},
	KindLn: func(x *big.Float) *big.Float {
		return bigfloat.Log(new(big.Float).SetPrec(realPrec), x)
	},
	KindLb: func(x *big.Float) *big.Float {
		num := bigfloat.Log(new(big.Float).SetPrec(realPrec), x)
		two := new(big.Float).SetPrec(realPrec).SetInt64(2)
		den := bigfloat.Log(new(big.Float).SetPrec(realPrec), two)
		return num.Quo(num, den)
	},
	KindLog: func(x *big.Float) *big.Float {
		num := bigfloat.Log(new(big.Float).SetPrec(realPrec), x)
		ten := new(big.Float).SetPrec(realPrec).SetInt64(10)
		den := bigfloat.Log(new(big.Float).SetPrec(realPrec), ten)
		return num.Quo(num, den)
	},
	KindExp: func(x *big.Float) *big.Float {
		return bigfloat.Exp(new(big.Float).SetPrec(realPrec), x)
	},
}

// twoArgReal is a two-argument function of Real operands producing a Real
// result.
var twoArgReal = map[Kind]func(l, r *big.Float) *big.Float{
	KindArctan2: func(l, r *big.Float) *big.Float {
		return fromFloat64(math.Atan2(toFloat64(l), toFloat64(r)))
	},
	KindMax: func(l, r *big.Float) *big.Float {
		if l.Cmp(r) >= 0 {
			return new(big.Float).SetPrec(realPrec).Set(l)
		}
		return new(big.Float).SetPrec(realPrec).Set(r)
	},
	KindMin: func(l, r *big.Float) *big.Float {
		if l.Cmp(r) <= 0 {
			return new(big.Float).SetPrec(realPrec).Set(l)
		}
		return new(big.Float).SetPrec(realPrec).Set(r)
	},
	KindPow: func(l, r *big.Float) *big.Float {
		return bigfloat.Pow(new(big.Float).SetPrec(realPrec), l, r)
	},
}
