package units

import "math"

// EvalMode selects which compiler-supplied hook Eval calls for an
// Identifier node. The three modes mirror the three ways a base unit
// can be asked to participate in a numeric computation.
type EvalMode int

const (
	// Base evaluates an identifier against its base-unit ratio.
	Base EvalMode = iota
	// Inverted evaluates an identifier against its inverse (target) ratio.
	Inverted
	// Normal evaluates an identifier using its direct, non-ratio hook,
	// used when folding a pre-combined logarithmic delta back through
	// the unit (DADD/DSUB).
	Normal
)

// Table supplies the per-identifier hooks Eval and IsLogarithmic
// dispatch to. A compiler (or, here, a fixed demo unit catalogue)
// implements this once per process.
type Table interface {
	// BaseUnit returns the value of number expressed against id's base
	// ratio (EvalMode Base).
	BaseUnit(id uint16, number float64) float64
	// UnitEval returns the value of number expressed against id's
	// target (inverted) ratio (EvalMode Inverted).
	UnitEval(id uint16, number float64) float64
	// UnitEvalNormal returns the value of number folded directly
	// through id with no ratio division (EvalMode Normal).
	UnitEvalNormal(id uint16, number float64) float64
	// IsLogarithmic reports whether id names a logarithmic unit (e.g. dB).
	IsLogarithmic(id uint16) bool
}

// Eval walks node, folding it to a scalar float64 against number, the
// numeric value the unit is attached to. A nil node evaluates to 1,
// whereas a One node evaluates to number.
func Eval(node *Node, number float64, mode EvalMode, table Table) float64 {
	if node == nil {
		return 1
	}

	switch node.Kind {
	case One:
		return number
	case Scalar:
		return node.Value
	case Sum:
		acc := 0.0
		for _, c := range node.Children {
			acc += Eval(c, number, mode, table)
		}
		return acc
	case Product:
		acc := 1.0
		for _, c := range node.Children {
			acc *= Eval(c, number, mode, table)
		}
		return acc
	case Expression:
		return Eval(node.Child, number, mode, table)
	case Neg:
		return -Eval(node.Child, number, mode, table)
	case Power:
		return math.Pow(Eval(node.Base, number, mode, table), Eval(node.Exponent, number, mode, table))
	case Identifier:
		switch mode {
		case Base:
			return table.BaseUnit(node.ID, number)
		case Inverted:
			return table.UnitEval(node.ID, number)
		default:
			return table.UnitEvalNormal(node.ID, number)
		}
	default:
		return 1
	}
}

// IsLogarithmic reports whether node's unit involves a logarithmic base
// unit anywhere in its tree. A nil node is treated as logarithmic (it
// stands for the bare identity, which eval_number must still route
// through the ratio computation consistently with the original).
func IsLogarithmic(node *Node, table Table) bool {
	if node == nil {
		return true
	}

	switch node.Kind {
	case Scalar, One:
		return false
	case Sum, Product:
		for _, c := range node.Children {
			if IsLogarithmic(c, table) {
				return true
			}
		}
		return false
	case Neg, Expression:
		return IsLogarithmic(node.Child, table)
	case Power:
		return IsLogarithmic(node.Base, table) || IsLogarithmic(node.Exponent, table)
	case Identifier:
		return table.IsLogarithmic(node.ID)
	default:
		return false
	}
}
