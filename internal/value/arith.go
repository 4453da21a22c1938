package value

import (
	"math"

	"unidad/internal/units"
)

// OpKind identifies which arithmetic operation Binop performs, driving
// its unit-computation rule. This mirrors number_binop's switch on
// operator kind.
type OpKind int

const (
	OpAdd OpKind = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpMod
	// OpDAdd and OpDSub are the "dimensioned add/sub" variants used for
	// units whose addition isn't simple scalar addition under the hood
	// (logarithmic units such as dB): they route through unit evaluation
	// rather than combining raw payloads directly.
	OpDAdd
	OpDSub
)

// IntOp combines two int64 payloads.
type IntOp func(a, b int64) int64

// FloatOp combines two float64 payloads.
type FloatOp func(a, b float64) float64

func isOne(n *units.Node) bool {
	return n == nil || n.Kind == units.One
}

// Binop applies iop (if both operands are int64-backed) or fop
// (otherwise) to a and b's numeric payloads and computes the result's
// unit according to kind, matching number_binop's generic dispatch:
//
//   - Add, Sub, Mod keep the left operand's unit.
//   - Mul/Div combine units via Product/Power(-1), collapsing to One
//     when both sides are already dimensionless.
//   - Pow carries the right operand's unit as a symbolic exponent of the
//     left operand's unit (the source's own open question about what
//     this means when the exponent isn't dimensionless; implemented
//     exactly as specified rather than guessed at further).
//   - DAdd/DSub fold both operands through the left unit's evaluation
//     rather than combining raw payloads, so a logarithmic unit's
//     addition reflects its non-linear scale.
func Binop(a, b *Number, iop IntOp, fop FloatOp, kind OpKind, table units.Table) *Number {
	ua, ub := a.Unit, b.Unit

	switch kind {
	case OpDAdd, OpDSub:
		x := EvalNumber(a, ua, table)
		y := EvalNumber(b, ua, table)
		combined := fop(x, y)
		resultValue := units.Eval(ua, combined, units.Normal, table)
		if a.NumKind == NumInt64 && b.NumKind == NumInt64 {
			return NewIntUnit(int64(resultValue), ua)
		}
		return NewFloatUnit(resultValue, ua)
	}

	var unit *units.Node
	switch kind {
	case OpAdd, OpSub, OpMod:
		unit = ua
	case OpMul:
		if isOne(ua) && isOne(ub) {
			unit = units.One()
		} else {
			unit = units.NewProduct(ua, ub)
		}
	case OpDiv:
		if isOne(ua) && isOne(ub) {
			unit = units.One()
		} else {
			unit = units.NewProduct(ua, units.NewPower(ub, units.NewScalar(-1)))
		}
	case OpPow:
		unit = units.NewPower(ua, ub)
	default:
		unit = ua
	}

	if a.NumKind == NumInt64 && b.NumKind == NumInt64 {
		return NewIntUnit(iop(a.I, b.I), unit)
	}
	return NewFloatUnit(fop(a.AsFloat(), b.AsFloat()), unit)
}

// Integer operation bodies, matching i_add/i_sub/i_mul/i_div/i_pow/i_mod.
func IAdd(a, b int64) int64 { return a + b }
func ISub(a, b int64) int64 { return a - b }
func IMul(a, b int64) int64 { return a * b }
func IDiv(a, b int64) int64 { return a / b }
func IPow(a, b int64) int64 { return int64(math.Pow(float64(a), float64(b))) }
func IMod(a, b int64) int64 { return int64(math.Mod(float64(a), float64(b))) }

// Float operation bodies, matching f_add/f_sub/f_mul/f_div/f_pow/f_mod.
func FAdd(a, b float64) float64 { return a + b }
func FSub(a, b float64) float64 { return a - b }
func FMul(a, b float64) float64 { return a * b }
func FDiv(a, b float64) float64 { return a / b }
func FPow(a, b float64) float64 { return math.Pow(a, b) }
func FMod(a, b float64) float64 { return math.Mod(a, b) }
