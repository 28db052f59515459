package eidoplot

import "fmt"

// ----------------------------------------------------------------------------
// ScaleKind

// ScaleKind selects the fundamental nature of an axis scale.
type ScaleKind int

const (
	// Auto resolves to Linear for numeric and time bounds and to
	// the categorical mapper for categorical bounds.
	Auto ScaleKind = iota
	Linear
	Log
	// Shared adopts the coordinate mapper of the axis named by the
	// scale's Ref. A Shared scale carries no bounds of its own.
	Shared
)

// String returns the kind of k.
func (k ScaleKind) String() string {
	return []string{"auto", "linear", "log", "shared"}[int(k)]
}

// ----------------------------------------------------------------------------
// RangePolicy

// RangePolicy controls which edges of the resolved bounds are taken
// from the data and which are fixed by the figure description.
type RangePolicy int

const (
	AutoRange RangePolicy = iota
	MinFixed
	MaxFixed
	MinMaxFixed
)

// String returns the policy name.
func (p RangePolicy) String() string {
	return []string{"auto", "min-fixed", "max-fixed", "min-max-fixed"}[int(p)]
}

// ----------------------------------------------------------------------------
// Scale

// Scale describes how an axis maps data onto its span.
type Scale struct {
	Kind ScaleKind

	// Base is the logarithm base for Log scales. Zero means 10.
	Base float64

	// Policy, FixedMin and FixedMax pin one or both edges of the
	// resolved bounds to fixed values instead of the data range.
	Policy   RangePolicy
	FixedMin float64
	FixedMax float64

	// Ref names the owning axis for Shared scales.
	Ref AxisRef
}

func (s Scale) base() float64 {
	if s.Base == 0 {
		return 10
	}
	return s.Base
}

// applyPolicy pins the edges of b according to the range policy.
// Categorical bounds have no numeric edges to pin and pass through.
func (s Scale) applyPolicy(b Bounds) Bounds {
	if b.kind == CategoricalBounds || s.Policy == AutoRange {
		return b
	}
	i := b.i
	if s.Policy == MinFixed || s.Policy == MinMaxFixed {
		i.Min = s.FixedMin
	}
	if s.Policy == MaxFixed || s.Policy == MinMaxFixed {
		i.Max = s.FixedMax
	}
	if i.Min > i.Max {
		i.Min, i.Max = i.Max, i.Min
	}
	b.i = i
	return b
}

// validFor reports a structural error when s cannot be applied to
// bounds of kind k.
func (s Scale) validFor(k BoundsKind) error {
	if s.Kind == Log && k != NumericBounds {
		return &UnsupportedScaleError{Scale: "log", Bounds: k}
	}
	return nil
}

// ----------------------------------------------------------------------------
// Orient, Side

// Orient distinguishes horizontal (X) from vertical (Y) axes.
type Orient int

const (
	Horizontal Orient = iota
	Vertical
)

// String returns "x" or "y".
func (o Orient) String() string {
	return []string{"x", "y"}[int(o)]
}

// Side is the plot edge an axis is attached to. The first X axis of a
// plot sits at the Bottom, further X axes at the Top; the first Y
// axis at the Left, further Y axes at the Right.
type Side int

const (
	Bottom Side = iota
	Left
	Top
	Right
)

// String returns the side name.
func (s Side) String() string {
	return []string{"bottom", "left", "top", "right"}[int(s)]
}

// Orient returns the orientation of an axis attached to side s.
func (s Side) Orient() Orient {
	if s == Bottom || s == Top {
		return Horizontal
	}
	return Vertical
}

// ----------------------------------------------------------------------------
// AxisRef

// AxisRef addresses an axis somewhere in a figure, either by position
// within a plot, by figure wide index (counting every axis of every
// plot in row major plot order, X axes before Y axes), or by the ID
// string of an AxisSpec. Exactly one addressing mode is set;
// resolution must be unambiguous.
type AxisRef struct {
	id     string
	figIdx int
	plot   int
	orient Orient
	index  int
	mode   refMode
}

type refMode int

const (
	refNone refMode = iota
	refID
	refFigure
	refPlot
)

// RefID returns a reference to the axis whose AxisSpec.ID is id.
func RefID(id string) AxisRef {
	return AxisRef{id: id, mode: refID}
}

// RefFigure returns a reference to the figure wide axis index i.
func RefFigure(i int) AxisRef {
	return AxisRef{figIdx: i, mode: refFigure}
}

// RefAxis returns a reference to axis index of orientation o in plot
// (row major plot index).
func RefAxis(plot int, o Orient, index int) AxisRef {
	return AxisRef{plot: plot, orient: o, index: index, mode: refPlot}
}

// Zero reports whether r is the zero reference, which addresses
// nothing.
func (r AxisRef) Zero() bool { return r.mode == refNone }

func (r AxisRef) String() string {
	switch r.mode {
	case refID:
		return fmt.Sprintf("axis %q", r.id)
	case refFigure:
		return fmt.Sprintf("axis #%d", r.figIdx)
	case refPlot:
		return fmt.Sprintf("plot %d %s-axis %d", r.plot, r.orient, r.index)
	default:
		return "unset axis reference"
	}
}
