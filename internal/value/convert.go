package value

import "unidad/internal/units"

// unitRatio computes target/base for unit evaluated at value: the
// shared ratio computation that both EvalNumber (every number's
// display) and Convert's to-dimensionless branch run, matching
// eval_number/number__convert__'s shared structure in the original
// runtime rather than two independently written copies of the same
// arithmetic.
func unitRatio(unit *units.Node, value float64, table units.Table) float64 {
	base := units.Eval(unit, value, units.Base, table)
	target := units.Eval(unit, value, units.Inverted, table)
	return target / base
}

// EvalNumber folds n's payload through unit (or n.Unit if unit is nil)
// and returns the resulting plain float64, matching eval_number. This
// is what every number's textual display goes through, not just
// explicit Convert calls.
func EvalNumber(n *Number, unit *units.Node, table units.Table) float64 {
	if unit == nil {
		unit = n.Unit
	}
	value := n.AsFloat()
	if unit.Kind != units.One {
		ratio := unitRatio(unit, value, table)
		if units.IsLogarithmic(unit, table) {
			value = ratio
		} else {
			value = value * ratio
		}
	}
	return value
}

// Convert re-expresses n under target. When target is the dimensionless
// unit, n's value is folded through its own unit's base/target ratio
// (same computation EvalNumber performs for display). Otherwise n's
// numeric value is left unchanged and simply re-tagged with target:
// this asymmetry is implemented exactly as the source describes it, not
// "fixed", since the source's own design notes leave converting between
// two non-dimensionless units as an open question rather than a defined
// operation. Either way the result keeps n's own storage kind
// (int stays int, double stays double), matching number__convert__'s
// "new number of the same kind as self" contract.
func Convert(n *Number, target *units.Node, table units.Table) *Number {
	if target == nil {
		target = units.One()
	}

	if target.Kind == units.One {
		value := EvalNumber(n, n.Unit, table)
		if n.NumKind == NumInt64 {
			return NewIntUnit(int64(value), target)
		}
		return NewFloatUnit(value, target)
	}

	if n.NumKind == NumInt64 {
		return NewIntUnit(n.I, target)
	}
	return NewFloatUnit(n.F, target)
}
