package eidoplot

import (
	"fmt"
	"math"

	"github.com/rtbo/eidoplot-sub000/data"
	"gonum.org/v1/plot/vg"
)

// A Figure is the abstract description of a whole figure: a Rows×Cols
// grid of plots, an optional title and an optional legend. It is
// produced upstream (by a parser or by hand) and consumed by
// LayoutFigure; the layout engine never modifies it.
type Figure struct {
	Title string

	Rows, Cols int

	// Plots holds the grid cells in row major order. A nil entry is
	// an empty cell. Len must be Rows*Cols.
	Plots []*Plot

	Legend *LegendSpec
}

// A Plot describes one cell of the subplot grid: its series and its
// axes. A plot can carry more than one X or Y axis; series address
// them by index.
type Plot struct {
	Title string

	XAxes []*AxisSpec
	YAxes []*AxisSpec

	Series []Series
}

// An AxisSpec describes one axis of a plot.
type AxisSpec struct {
	// ID optionally names the axis for AxisRef resolution.
	ID string

	Title string

	Scale Scale

	// Locator picks tick locations. Nil selects a locator from the
	// resolved bounds kind: MaxN for numeric, LogTicks for log
	// scales, TimeTicks for time, CatTicks for categories.
	Locator Locator

	// Formatter labels the ticks. Nil means AutoFormat, which is
	// suppressed on follower axes (their labels would repeat the
	// owner's) unless ForceLabels is set.
	Formatter Formatter

	// Insets reserve margin inside the plot rectangle at the low
	// and high end of the axis.
	Insets [2]vg.Length

	ForceLabels bool
}

// A Series is a named pair of data columns plotted against one X and
// one Y axis of its plot.
type Series struct {
	Name string

	XCol, YCol string

	// XAxis and YAxis index into the plot's axis lists.
	XAxis, YAxis int
}

// A LegendSpec asks for a legend of all named series of the figure.
type LegendSpec struct {
	// Columns fixes the column count. Zero packs as many columns
	// as fit the available width.
	Columns int
}

// axisAt returns axis index i of orientation o, or nil.
func (p *Plot) axisAt(o Orient, i int) *AxisSpec {
	var list []*AxisSpec
	if o == Horizontal {
		list = p.XAxes
	} else {
		list = p.YAxes
	}
	if i < 0 || i >= len(list) {
		return nil
	}
	return list[i]
}

// validate checks the figure shape before any resolution work.
func (f *Figure) validate() error {
	if f.Rows <= 0 || f.Cols <= 0 {
		return fmt.Errorf("eidoplot: figure grid %dx%d is empty", f.Rows, f.Cols)
	}
	if len(f.Plots) != f.Rows*f.Cols {
		return fmt.Errorf("eidoplot: figure has %d plots for a %dx%d grid",
			len(f.Plots), f.Rows, f.Cols)
	}
	for pi, p := range f.Plots {
		if p == nil {
			continue
		}
		if len(p.XAxes) == 0 || len(p.YAxes) == 0 {
			return fmt.Errorf("eidoplot: plot %d lacks an x or y axis", pi)
		}
		for si, s := range p.Series {
			if p.axisAt(Horizontal, s.XAxis) == nil {
				return &UnresolvedRefError{
					Ref:    RefAxis(pi, Horizontal, s.XAxis),
					Reason: fmt.Sprintf("series %d references a missing x-axis", si),
				}
			}
			if p.axisAt(Vertical, s.YAxis) == nil {
				return &UnresolvedRefError{
					Ref:    RefAxis(pi, Vertical, s.YAxis),
					Reason: fmt.Sprintf("series %d references a missing y-axis", si),
				}
			}
		}
	}
	return nil
}

// columnBounds computes the bounds covered by one data column,
// skipping non-finite values. ok is false when the column contributes
// no sample at all.
func columnBounds(col data.Column) (b Bounds, ok bool) {
	switch col.Kind() {
	case data.Float:
		i := unsetInterval()
		for k := 0; k < col.Len(); k++ {
			i.Update(col.Float(k))
		}
		if i.Unset() {
			return Bounds{kind: NumericBounds, i: unsetInterval()}, false
		}
		return Numeric(i.Min, i.Max), true
	case data.String:
		labels := make([]string, 0, col.Len())
		for k := 0; k < col.Len(); k++ {
			labels = append(labels, col.Str(k))
		}
		b := Categories(labels...)
		return b, !b.Unset()
	case data.Time:
		i := unsetInterval()
		for k := 0; k < col.Len(); k++ {
			v := timeToSec(col.Time(k))
			if !math.IsNaN(v) {
				i.Update(v)
			}
		}
		if i.Unset() {
			return Bounds{kind: TimeBounds, i: unsetInterval()}, false
		}
		b := Bounds{kind: TimeBounds, i: i}
		return b, true
	default:
		panic(col.Kind())
	}
}
