package value

// Range is a boxed lazily-stepped integer range (start, stop, step),
// matching the reference runtime's Range{start, stop, step} triple.
type Range struct {
	Start int64
	Stop  int64
	Step  float64
}

func (*Range) Kind() Kind { return KindRange }
func (*Range) sealed()    {}

// NewRange boxes a start/stop/step triple.
func NewRange(start, stop int64, step float64) *Range {
	return &Range{Start: start, Stop: stop, Step: step}
}

func rangeEq(a, b *Range) bool {
	return a.Start == b.Start && a.Stop == b.Stop && a.Step == b.Step
}
