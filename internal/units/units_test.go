package units

import "testing"

// demoTable is a tiny fixed catalogue used only by these tests: id 1 is
// meters (base), id 2 is kilometers (1000x), id 3 is decibels
// (logarithmic, base-10).
type demoTable struct{}

func (demoTable) BaseUnit(id uint16, number float64) float64 {
	switch id {
	case 1:
		return number
	case 2:
		return number * 1000
	case 3:
		return number
	default:
		return number
	}
}

func (demoTable) UnitEval(id uint16, number float64) float64 {
	switch id {
	case 1:
		return number
	case 2:
		return number / 1000
	case 3:
		return number
	default:
		return number
	}
}

func (demoTable) UnitEvalNormal(id uint16, number float64) float64 {
	return number
}

func (demoTable) IsLogarithmic(id uint16) bool {
	return id == 3
}

func TestEqualOrderInsensitive(t *testing.T) {
	m := NewIdentifier("m", 1)
	s := NewIdentifier("s", 2)

	a := NewProduct(m, s)
	b := NewProduct(s, m)
	if !Equal(a, b) {
		t.Fatalf("expected order-insensitive product equality")
	}

	c := NewSum(NewScalar(1), NewScalar(2))
	d := NewSum(NewScalar(2), NewScalar(1))
	if !Equal(c, d) {
		t.Fatalf("expected order-insensitive sum equality")
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	m := NewIdentifier("m", 1)
	s := NewIdentifier("s", 2)
	node := NewProduct(m, NewPower(s, NewScalar(-2)), NewScalar(1))

	once := Simplify(node)
	twice := Simplify(once)
	if !Equal(once, twice) {
		t.Fatalf("simplify not idempotent: %s vs %s", Debug(once), Debug(twice))
	}
}

func TestSimplifyCancelsInverse(t *testing.T) {
	m := NewIdentifier("m", 1)
	node := NewProduct(m, NewPower(m, NewScalar(-1)))
	got := Simplify(node)
	if got.Kind != Scalar || got.Value != 1 {
		t.Fatalf("expected m*m^-1 to cancel to scalar 1, got %s", Debug(got))
	}
}

func TestSimplifyCombinesPowers(t *testing.T) {
	m := NewIdentifier("m", 1)
	node := NewPower(NewPower(m, NewScalar(2)), NewScalar(3))
	got := Simplify(node)
	want := NewPower(m, NewScalar(6))
	if !Equal(got, want) {
		t.Fatalf("expected m^6, got %s", Debug(got))
	}
}

func TestSimplifyDistributesPowerOverProduct(t *testing.T) {
	m := NewIdentifier("m", 1)
	s := NewIdentifier("s", 2)
	node := NewPower(NewProduct(m, s), NewScalar(2))
	got := Simplify(node)
	want := NewProduct(NewPower(m, NewScalar(2)), NewPower(s, NewScalar(2)))
	if !Equal(got, want) {
		t.Fatalf("expected (m*s)^2 = m^2*s^2, got %s", Debug(got))
	}
}

func TestPrintBasic(t *testing.T) {
	m := NewIdentifier("m", 1)
	s := NewIdentifier("s", 2)

	cases := []struct {
		name string
		node *Node
		want string
	}{
		{"meters", m, "m"},
		{"m/s", NewProduct(m, NewPower(s, NewScalar(-1))), "m/s"},
		{"m/s^2", NewProduct(m, NewPower(s, NewScalar(-2))), "m/s^2"},
		{"dimensionless", One(), ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Print(c.node)
			if got != c.want {
				t.Fatalf("Print() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestEvalBaseAndInverted(t *testing.T) {
	table := demoTable{}
	km := NewIdentifier("km", 2)

	base := Eval(km, 5, Base, table)
	if base != 5000 {
		t.Fatalf("base eval of 5 km = %v, want 5000", base)
	}

	inv := Eval(km, 5000, Inverted, table)
	if inv != 5 {
		t.Fatalf("inverted eval of 5000 under km = %v, want 5", inv)
	}
}

func TestIsLogarithmic(t *testing.T) {
	table := demoTable{}
	db := NewIdentifier("dB", 3)
	m := NewIdentifier("m", 1)

	if !IsLogarithmic(db, table) {
		t.Fatalf("expected dB to be logarithmic")
	}
	if IsLogarithmic(m, table) {
		t.Fatalf("expected m to not be logarithmic")
	}
	if IsLogarithmic(NewProduct(m, m), table) {
		t.Fatalf("expected m*m to not be logarithmic")
	}
	if !IsLogarithmic(NewProduct(m, db), table) {
		t.Fatalf("expected m*dB to be logarithmic (any child)")
	}
}

func TestSimplifyPreservesLogarithmicChild(t *testing.T) {
	table := demoTable{}
	db := NewIdentifier("dB", 3)
	node := NewProduct(db, NewScalar(1))
	got := Simplify(node)
	if !IsLogarithmic(got, table) {
		t.Fatalf("simplification must not drop the logarithmic unit: %s", Debug(got))
	}
}
