package units

import "math"

// Simplify reduces node to a canonical form: flattens nested Product/Sum
// of the same kind, folds scalar coefficients together, combines like
// bases under Power, and drops identities. It mirrors
// runtime/numerobis/units/simplifier.c's do_simplify dispatch exactly,
// including its fixed-point recursion shape (each simplify* call
// recurses into already-simplified children before regrouping).
//
// A nil node simplifies to One, matching unit_simplify's "no unit"
// convention.
func Simplify(node *Node) *Node {
	if node == nil {
		return One()
	}
	return doSimplify(node)
}

func doSimplify(node *Node) *Node {
	switch node.Kind {
	case Expression:
		return doSimplify(node.Child)
	case Neg:
		return simplifyNeg(node)
	case Power:
		return simplifyPower(node)
	case Product:
		return simplifyProduct(node)
	case Sum:
		return simplifySum(node)
	default:
		return node
	}
}

func simplifyNeg(node *Node) *Node {
	child := doSimplify(node.Child)
	switch {
	case child.Kind == One:
		return NewScalar(-1)
	case child.Kind == Scalar:
		return NewScalar(-child.Value)
	default:
		return NewNeg(child)
	}
}

func simplifyPower(node *Node) *Node {
	base := doSimplify(node.Base)
	exponent := doSimplify(node.Exponent)

	if exponent.Kind == Scalar && exponent.Value == 0 {
		return NewScalar(1)
	}
	if (exponent.Kind == Scalar && exponent.Value == 1) || exponent.Kind == One {
		return base
	}
	if base.Kind == One {
		return NewScalar(1)
	}
	if base.Kind == Scalar && exponent.Kind == Scalar {
		return NewScalar(math.Pow(base.Value, exponent.Value))
	}
	if base.Kind == Power {
		combinedExp := simplifyProduct(NewProduct(base.Exponent, exponent))
		return simplifyPower(NewPower(base.Base, combinedExp))
	}
	if base.Kind == Product {
		factors := make([]*Node, len(base.Children))
		for i, f := range base.Children {
			factors[i] = NewPower(f, exponent)
		}
		return simplifyProduct(NewProduct(factors...))
	}

	return NewPower(base, exponent)
}

// flatten simplifies each child and inlines grandchildren of the same
// kind, dropping One nodes, matching simplifier.c's flatten().
func flatten(children []*Node, kind Kind) []*Node {
	out := make([]*Node, 0, len(children))
	for _, c := range children {
		sc := doSimplify(c)
		if sc.Kind == One {
			continue
		}
		if sc.Kind == kind {
			out = append(out, sc.Children...)
		} else {
			out = append(out, sc)
		}
	}
	return out
}

// finalize collapses values back into a single node: empty becomes the
// kind's identity scalar, a singleton unwraps, otherwise it rebuilds a
// group node of kind.
func finalize(values []*Node, kind Kind, identity float64) *Node {
	switch len(values) {
	case 0:
		return NewScalar(identity)
	case 1:
		return values[0]
	default:
		return &Node{Kind: kind, Children: values}
	}
}

// decomposed is a scalar coefficient peeled off the front of a Product,
// paired with what remains.
type decomposed struct {
	coeff float64
	base  *Node
}

// decompose strips a leading scalar factor from a (simplified) Product,
// matching simplifier.c's decompose().
func decompose(node *Node) decomposed {
	if node.Kind != Product || len(node.Children) == 0 {
		return decomposed{coeff: 1, base: node}
	}
	if node.Children[0].Kind != Scalar {
		return decomposed{coeff: 1, base: node}
	}
	rest := node.Children[1:]
	coeff := node.Children[0].Value
	if len(rest) == 0 {
		return decomposed{coeff: coeff, base: One()}
	}
	if len(rest) == 1 {
		return decomposed{coeff: coeff, base: rest[0]}
	}
	return decomposed{coeff: coeff, base: &Node{Kind: Product, Children: append([]*Node(nil), rest...)}}
}

func simplifyProduct(node *Node) *Node {
	flat := flatten(node.Children, Product)

	scalarAcc := 1.0
	var terms []*Node
	for _, v := range flat {
		if v.Kind == Scalar {
			scalarAcc *= v.Value
			continue
		}
		terms = append(terms, v)
	}

	type group struct {
		base  *Node
		exps  []*Node
	}
	var groups []group

	addTerm := func(base, exp *Node) {
		for i := range groups {
			if Equal(groups[i].base, base) {
				groups[i].exps = append(groups[i].exps, exp)
				return
			}
		}
		groups = append(groups, group{base: base, exps: []*Node{exp}})
	}

	for _, t := range terms {
		if t.Kind == Power {
			addTerm(t.Base, t.Exponent)
		} else {
			addTerm(t, NewScalar(1))
		}
	}

	var result []*Node
	if scalarAcc != 1 {
		result = append(result, NewScalar(scalarAcc))
	}

	for _, g := range groups {
		var totalExp *Node
		if len(g.exps) == 1 {
			totalExp = g.exps[0]
		} else {
			totalExp = simplifySum(NewSum(g.exps...))
		}

		if totalExp.Kind == Scalar && totalExp.Value == 0 {
			continue
		}
		if totalExp.Kind == Scalar && totalExp.Value == 1 {
			result = append(result, g.base)
			continue
		}
		result = append(result, NewPower(g.base, totalExp))
	}

	return finalize(result, Product, 1)
}

func simplifySum(node *Node) *Node {
	flat := flatten(node.Children, Sum)

	scalarAcc := 0.0
	type group struct {
		base  *Node
		coeff float64
	}
	var groups []group

	for _, v := range flat {
		if v.Kind == Scalar {
			scalarAcc += v.Value
			continue
		}

		d := decompose(v)
		if d.base.Kind == One {
			scalarAcc += d.coeff
			continue
		}

		found := false
		for i := range groups {
			if Equal(groups[i].base, d.base) {
				groups[i].coeff += d.coeff
				found = true
				break
			}
		}
		if !found {
			groups = append(groups, group{base: d.base, coeff: d.coeff})
		}
	}

	var result []*Node
	if scalarAcc != 0 {
		result = append(result, NewScalar(scalarAcc))
	}

	for _, g := range groups {
		if g.coeff == 0 {
			continue
		}
		if g.coeff == 1 {
			result = append(result, g.base)
			continue
		}
		if g.base.Kind == Product {
			factors := append([]*Node{NewScalar(g.coeff)}, g.base.Children...)
			result = append(result, &Node{Kind: Product, Children: factors})
		} else {
			result = append(result, NewProduct(NewScalar(g.coeff), g.base))
		}
	}

	return finalize(result, Sum, 0)
}
