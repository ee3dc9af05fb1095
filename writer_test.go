package gcodegen_test

import (
	"strings"
	"testing"

	"github.com/leftmike/gcodegen"
)

func TestWriter(t *testing.T) {
	var buf strings.Builder
	w := gcodegen.NewWriter(&buf)

	steps := []func() error{
		func() error { return w.Comment("G Code Generator") },
		func() error { return w.RapidTo(gcodegen.Position{X: 10, Y: 0, Z: 1}, 1000) },
		func() error { return w.LinearTo(gcodegen.Position{X: 10, Y: 0, Z: 0}, 50) },
		func() error { return w.LinearTo(gcodegen.Position{X: 10, Y: 10, Z: 0}, 100) },
		func() error { return w.LinearTo(gcodegen.Position{X: 10, Y: 10, Z: 0}, 100) },
		func() error { return w.LinearTo(gcodegen.Position{X: -0.001, Y: 10.004, Z: 0}, 100) },
		func() error { return w.RapidTo(gcodegen.Position{X: 1.005, Y: -2.5, Z: 1}, 1000) },
		func() error { return w.Comment("a\n\nb") },
		func() error { return w.Prompt("Command:") },
		func() error { return w.EndPrompt("q") },
		func() error { return w.Blank() },
	}
	for i, step := range steps {
		err := step()
		if err != nil {
			t.Fatalf("step %d failed: %s", i, err)
		}
	}

	want := `; G Code Generator
G1 X10.00 Y0.00 Z1.00 F1000.00
G1 Z0.00 F50.00
G1 Y10.00 F100.00
G1 X10.00 Y10.00 Z0.00 F100.00
G1 X0.00 F100.00
G1 X1.00 Y-2.50 Z1.00 F1000.00
; a
;
; b
; Command: q

`
	if buf.String() != want {
		t.Errorf("Writer: got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestNumber(t *testing.T) {
	cases := []struct {
		n gcodegen.Number
		s string
	}{
		{n: 0, s: "0.00"},
		{n: -0.001, s: "0.00"},
		{n: 1.5, s: "1.50"},
		{n: -2.346, s: "-2.35"},
		{n: 1000, s: "1000.00"},
		{n: 0.1 + 0.2, s: "0.30"},
	}

	for _, c := range cases {
		if c.n.String() != c.s {
			t.Errorf("Number(%v): got %s want %s", float64(c.n), c.n.String(), c.s)
		}
	}
}
