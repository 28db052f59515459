package eidoplot

import (
	"math"
	"strconv"
	"time"
)

// stepDecimals returns the number of decimals needed to print values
// spaced by step without loss.
func stepDecimals(step float64) int {
	if step <= 0 {
		return 0
	}
	d := -int(math.Floor(math.Log10(step) + edgeTol))
	if d < 0 {
		return 0
	}
	return d + extraStepDecimals(step, d)
}

// extraStepDecimals accounts for steps like 2.5×10ᵏ whose mantissa
// needs one more digit than the magnitude suggests.
func extraStepDecimals(step float64, d int) int {
	scaled := step * math.Pow(10, float64(d))
	if math.Abs(scaled-math.Round(scaled)) > edgeTol {
		return 1
	}
	return 0
}

func formatFixed(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if s == "-0" {
		return "0"
	}
	return s
}

// ----------------------------------------------------------------------------
// Formatters

// AutoFormat labels ticks with the precision implied by the located
// step: plain decimals for ordinary magnitudes, scientific notation
// for very large or very small values, calendar patterns for time
// ticks, the category label itself for categorical ticks.
type AutoFormat struct{}

func (AutoFormat) Format(ts TickSet, b Bounds) ([]string, error) {
	if ts.Labels != nil {
		return append([]string(nil), ts.Labels...), nil
	}
	if b.Kind() == TimeBounds {
		return TimeFormat{}.Format(ts, b)
	}
	div := ts.Div
	if div == 0 {
		div = 1
	}
	absMax := 0.0
	for _, v := range ts.Major {
		if a := math.Abs(v / div); a > absMax {
			absMax = a
		}
	}
	if absMax >= 1e6 || (absMax > 0 && absMax < 1e-4) {
		return SciFormat{}.Format(ts, b)
	}
	prec := stepDecimals(ts.Step / div)
	labels := make([]string, len(ts.Major))
	for i, v := range ts.Major {
		labels[i] = formatFixed(v/div, prec)
	}
	return labels, nil
}

// FixedFormat labels ticks with a fixed number of decimals.
type FixedFormat struct {
	Prec int
}

func (f FixedFormat) Format(ts TickSet, b Bounds) ([]string, error) {
	div := ts.Div
	if div == 0 {
		div = 1
	}
	labels := make([]string, len(ts.Major))
	for i, v := range ts.Major {
		labels[i] = formatFixed(v/div, f.Prec)
	}
	return labels, nil
}

// SciFormat labels ticks in scientific notation.
type SciFormat struct {
	// Prec is the mantissa precision. Zero means 2.
	Prec int
}

func (f SciFormat) Format(ts TickSet, b Bounds) ([]string, error) {
	prec := f.Prec
	if prec == 0 {
		prec = 2
	}
	div := ts.Div
	if div == 0 {
		div = 1
	}
	labels := make([]string, len(ts.Major))
	for i, v := range ts.Major {
		labels[i] = strconv.FormatFloat(v/div, 'e', prec, 64)
	}
	return labels, nil
}

// PercentFormat labels ticks as percentages. The zero value derives
// the decimal count from the located step.
type PercentFormat struct {
	// Prec is the decimal count; 0 selects it from the step.
	Prec int
}

func (f PercentFormat) Format(ts TickSet, b Bounds) ([]string, error) {
	prec := f.Prec
	if prec <= 0 {
		prec = stepDecimals(ts.Step * 100)
	}
	labels := make([]string, len(ts.Major))
	for i, v := range ts.Major {
		labels[i] = formatFixed(v*100, prec) + "%"
	}
	return labels, nil
}

// PiFormat labels ticks in units of π, matching the PiTicks locator.
// The "× π" qualifier lives in the axis annotation, not in each
// label.
type PiFormat struct{}

func (PiFormat) Format(ts TickSet, b Bounds) ([]string, error) {
	div := ts.Div
	if div == 0 {
		div = math.Pi
	}
	prec := stepDecimals(ts.Step / div)
	labels := make([]string, len(ts.Major))
	for i, v := range ts.Major {
		labels[i] = formatFixed(v/div, prec)
	}
	return labels, nil
}

// TimeFormat labels time ticks with a reference layout chosen from
// the located calendar unit, or with a fixed layout.
type TimeFormat struct {
	// Layout is a time reference layout. Empty selects one from
	// the tick set's calendar unit.
	Layout string

	// Location is the timezone labels are rendered in. Nil means UTC.
	Location *time.Location
}

func (f TimeFormat) Format(ts TickSet, b Bounds) ([]string, error) {
	layout := f.Layout
	if layout == "" {
		layout = unitLayout(ts.Unit)
	}
	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}
	labels := make([]string, len(ts.Major))
	for i, v := range ts.Major {
		labels[i] = secToTime(v).In(loc).Format(layout)
	}
	return labels, nil
}

func unitLayout(u TimeUnit) string {
	switch u {
	case UnitSecond:
		return "15:04:05"
	case UnitMinute, UnitHour:
		return "15:04"
	case UnitDay, UnitWeek:
		return "Jan 2"
	case UnitMonth:
		return "Jan 2006"
	case UnitYear:
		return "2006"
	default:
		return "2006-01-02 15:04:05"
	}
}
