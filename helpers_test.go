package eidoplot

import (
	"errors"
	"math"
)

// asErr is a shorthand for errors.As in table driven error checks.
func asErr(err error, target interface{}) bool {
	return errors.As(err, target)
}

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func approxSlice(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !approx(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

// testStyle returns a font free style with fixed metrics, paired with
// RuleMeasurer for deterministic layout in tests.
func testStyle() *Style {
	st := &Style{}
	st.TitleHeight = 30
	st.Pad = 10
	st.Axis.TitlePad = 4
	st.Axis.LabelPad = 3
	st.Axis.MajorTick.Length = 5
	st.Axis.MinorTick.Length = 2
	st.Legend.Swatch = 10
	st.Legend.Pad = 4
	st.Legend.ColPad = 12
	return st
}
