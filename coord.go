package eidoplot

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/vg"
)

// A CoordMap converts data values to positions along an axis and
// back. It closes over the resolved bounds, the scale kind, the plot
// size along the axis and the inset margins; it is never mutated
// after construction. Every axis of a sharing group holds the same
// *CoordMap; a changed view replaces the pointer for the whole group
// instead of mutating the mapper.
type CoordMap struct {
	b       Bounds
	logBase float64 // 0 for linear and categorical mapping
	length  vg.Length
	insets  [2]vg.Length

	// lo and hi are the effective edges after inset absorption, in
	// transformed (log) space for log mapping.
	lo, hi float64
}

// newCoordMap builds the mapper for bounds b under scale sc over
// length along the axis. Insets extend the data bounds outward by an
// amount proportional to data-per-point, so tick locations computed
// against the true bounds stay valid while the plot gains visual
// padding. Categorical bounds instead shrink the usable span, since
// extending a discrete domain is not defined.
func newCoordMap(b Bounds, sc Scale, length vg.Length, insets [2]vg.Length) (*CoordMap, error) {
	if err := sc.validFor(b.Kind()); err != nil {
		return nil, err
	}
	if length <= 0 || length <= insets[0]+insets[1] {
		return nil, fmt.Errorf("eidoplot: axis length %v too small for insets %v", length, insets)
	}
	m := &CoordMap{b: b, length: length, insets: insets}

	switch b.Kind() {
	case CategoricalBounds:
		if len(b.Labels()) == 0 {
			return nil, &UnboundedAxisError{Axis: "categorical"}
		}
		return m, nil
	case NumericBounds, TimeBounds:
		lo, hi := b.Min(), b.Max()
		if sc.Kind == Log {
			if lo <= 0 {
				return nil, &UnsupportedScaleError{Scale: "log", Bounds: b.Kind()}
			}
			base := sc.base()
			m.logBase = base
			lo = math.Log(lo) / math.Log(base)
			hi = math.Log(hi) / math.Log(base)
		}
		inner := length - insets[0] - insets[1]
		perPt := (hi - lo) / float64(inner)
		m.lo = lo - float64(insets[0])*perPt
		m.hi = hi + float64(insets[1])*perPt
		return m, nil
	default:
		panic(b.Kind())
	}
}

// Bounds returns the resolved data bounds the mapper was built from,
// before inset extension.
func (m *CoordMap) Bounds() Bounds { return m.b }

// Length returns the plot size along the axis.
func (m *CoordMap) Length() vg.Length { return m.length }

// Map converts the data value v to a position in [0, Length] from the
// axis origin. Values outside the bounds map outside that range.
func (m *CoordMap) Map(v float64) vg.Length {
	if m.b.Kind() == CategoricalBounds {
		// Numeric positions on a categorical axis address bin
		// indices; this is what tick locations use.
		return m.catCenter(v)
	}
	x := v
	if m.logBase != 0 {
		x = math.Log(x) / math.Log(m.logBase)
	}
	return vg.Length((x - m.lo) / (m.hi - m.lo) * float64(m.length))
}

// Unmap is the inverse of Map.
func (m *CoordMap) Unmap(p vg.Length) float64 {
	if m.b.Kind() == CategoricalBounds {
		return float64((p-m.insets[0])/m.catWidthRaw()) - 0.5
	}
	x := m.lo + float64(p)/float64(m.length)*(m.hi-m.lo)
	if m.logBase != 0 {
		return math.Pow(m.logBase, x)
	}
	return x
}

// MapCategory converts a category label to its bin center position.
func (m *CoordMap) MapCategory(label string) (vg.Length, error) {
	if m.b.Kind() != CategoricalBounds {
		return 0, &UnsupportedScaleError{Scale: "categorical mapping", Bounds: m.b.Kind()}
	}
	i, ok := m.b.IndexOf(label)
	if !ok {
		return 0, fmt.Errorf("eidoplot: category %q not in axis bounds", label)
	}
	return m.catCenter(float64(i)), nil
}

// CatWidth returns the width of one category bin.
func (m *CoordMap) CatWidth() vg.Length {
	if m.b.Kind() != CategoricalBounds {
		return 0
	}
	return m.catWidthRaw()
}

func (m *CoordMap) catWidthRaw() vg.Length {
	n := len(m.b.Labels())
	return (m.length - m.insets[0] - m.insets[1]) / vg.Length(n)
}

func (m *CoordMap) catCenter(idx float64) vg.Length {
	w := m.catWidthRaw()
	return m.insets[0] + vg.Length(idx+0.5)*w
}
