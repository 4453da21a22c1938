package main

import (
	"fmt"
	"io"

	"unidad/internal/builtins"
	"unidad/internal/diagnostics"
	"unidad/internal/value"
)

// runDemo walks the fixed set of end-to-end scenarios this core is
// expected to satisfy, echoing each result the same way a compiled
// program's own echo() calls would. It stops short of the one scenario
// that deliberately terminates the process (a list index out of
// range): that one lives in runFailDemo instead, so `unidad demo` on
// its own always exits cleanly.
func runDemo(w io.Writer) {
	table := demoTable{}

	fmt.Fprintln(w, "2 m + 3 m")
	a := value.NewIntUnit(2, meterUnit())
	b := value.NewIntUnit(3, meterUnit())
	builtins.Echo(w, value.Binop(a, b, value.IAdd, value.FAdd, value.OpAdd, table), nil, table)

	fmt.Fprintln(w, "(2 m) * (3 s)")
	c := value.NewIntUnit(2, meterUnit())
	d := value.NewIntUnit(3, secondUnit())
	builtins.Echo(w, value.Binop(c, d, value.IMul, value.FMul, value.OpMul, table), nil, table)

	fmt.Fprintln(w, "(10 m) / (2 s)")
	e := value.NewIntUnit(10, meterUnit())
	f := value.NewIntUnit(2, secondUnit())
	builtins.Echo(w, value.Binop(e, f, value.IDiv, value.FDiv, value.OpDiv, table), nil, table)

	fmt.Fprintln(w, "convert(1000 m, km)")
	g := value.NewIntUnit(1000, meterUnit())
	builtins.Echo(w, value.Convert(g, kilometerUnit(), table), nil, table)

	fmt.Fprintln(w, "convert(0 dB + 3 dB, dB)")
	h := value.NewIntUnit(0, decibelUnit())
	i := value.NewIntUnit(3, decibelUnit())
	sum := value.Binop(h, i, value.IAdd, value.FAdd, value.OpDAdd, table)
	builtins.Echo(w, value.Convert(sum, decibelUnit(), table), nil, table)

	fmt.Fprintln(w, `[1, "x", [2, 3]]`)
	inner := value.NewList([]value.Value{value.NewInt(2), value.NewInt(3)})
	outer := value.NewList([]value.Value{value.NewInt(1), value.NewStr("x"), inner})
	builtins.Echo(w, outer, nil, table)

	fmt.Fprintln(w, `x = "héllo"; echo x[1]`)
	hello := value.NewStr("héllo")
	ch := value.StrGet(hello, 1, diagnostics.Location{}, nil)
	builtins.Echo(w, value.NewStr(string(ch)), nil, table)

	fmt.Fprintln(w, `"ab"[::-1]`)
	ab := value.NewStr("ab")
	builtins.Echo(w, value.StrSlice(ab, value.SliceNone, value.SliceNone, -1), nil, table)
}

// runFailDemo reproduces the out-of-range list index scenario on its
// own: accessing [1, 2, 3][5] raises a fatal IndexError (E901) with a
// highlighted source excerpt and terminates the process, so it is kept
// out of runDemo's otherwise-clean run.
func runFailDemo() {
	source := "echo [1, 2, 3][5]"
	loc := diagnostics.Location{File: "demo", Line: 1, Col: 6, EndLine: 1, EndCol: 18}
	l := value.NewList([]value.Value{value.NewInt(1), value.NewInt(2), value.NewInt(3)})
	value.ListGet(l, 5, loc, []string{source})
}
