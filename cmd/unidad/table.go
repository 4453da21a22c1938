package main

import "unidad/internal/units"

// Fixed identifiers for the demo unit catalogue. A real front end would
// assign these as it parses unit identifiers out of source text; here
// they're just a closed, hand-picked set large enough to exercise the
// arithmetic engine end to end.
const (
	idMeter     uint16 = 1
	idSecond    uint16 = 2
	idKilometer uint16 = 3
	idDecibel   uint16 = 4
)

// demoFactor holds each linear unit's ratio to its own base unit: a
// meter and a second are each their own base (factor 1), a kilometer is
// 1000 meters.
var demoFactor = map[uint16]float64{
	idMeter:     1,
	idSecond:    1,
	idKilometer: 1000,
}

// demoTable is a small, fixed units.Table standing in for the unit
// catalogue a compiler front end would otherwise build from parsed unit
// declarations. It backs every scenario in the demo subcommand.
//
// BaseUnit expresses a quantity in its base-unit terms (scaled up by the
// unit's own factor); UnitEval is the identity hook. Display (via
// EvalNumber) divides by BaseUnit/UnitEval's ratio, so a number merely
// re-tagged with a different unit (Convert's non-ONE branch) still
// prints correctly scaled as long as the unit it started in was already
// a base unit (factor 1) -- exactly the asymmetry the source's own
// design notes describe.
type demoTable struct{}

func (demoTable) BaseUnit(id uint16, number float64) float64 {
	if id == idDecibel {
		return 1
	}
	return number * demoFactor[id]
}

func (demoTable) UnitEval(id uint16, number float64) float64 {
	return number
}

// UnitEvalNormal folds a pre-combined logarithmic delta straight
// through with no ratio division, used by OpDAdd/OpDSub.
func (demoTable) UnitEvalNormal(id uint16, number float64) float64 {
	return number
}

func (demoTable) IsLogarithmic(id uint16) bool {
	return id == idDecibel
}

func meterUnit() *units.Node     { return units.NewIdentifier("m", idMeter) }
func secondUnit() *units.Node    { return units.NewIdentifier("s", idSecond) }
func kilometerUnit() *units.Node { return units.NewIdentifier("km", idKilometer) }
func decibelUnit() *units.Node   { return units.NewIdentifier("dB", idDecibel) }
