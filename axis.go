package eidoplot

import (
	"fmt"

	"gonum.org/v1/plot/vg"
)

// An AxisLayout is the measured geometry of one axis: title box,
// major and minor ticks, optional annotation and the cross axis
// extent the axis occupies next to the plot rectangle.
type AxisLayout struct {
	Title    string
	TitleBox TextBox

	Major []Tick
	Minor []float64

	// Annotation qualifies every tick label, e.g. "× π". It is
	// drawn at the free end of the axis.
	Annotation    string
	AnnotationBox TextBox

	// Extent is the size of the axis perpendicular to its
	// direction: height for horizontal axes, width for vertical
	// ones.
	Extent vg.Length
}

// A ResolvedAxis bundles everything the renderer needs for one axis:
// the resolved bounds, the coordinate mapper and the measured layout.
type ResolvedAxis struct {
	Spec   *AxisSpec
	Side   Side
	Bounds Bounds
	Map    *CoordMap
	Layout AxisLayout

	// Follower is set when the axis adopted the mapper of a shared
	// peer instead of resolving its own.
	Follower bool
}

// ResolveAxis resolves one axis: it builds the coordinate mapper for
// bounds b over sizeAlong (or adopts shared, in which case b is
// ignored), locates and formats the ticks, measures every label
// through m and computes the cross axis extent. Follower axes leave
// their tick labels empty unless the spec forces them or names its
// own formatter.
func ResolveAxis(spec *AxisSpec, b Bounds, side Side, sizeAlong vg.Length, shared *CoordMap, m Measurer, st *Style) (*ResolvedAxis, error) {
	ra := &ResolvedAxis{Spec: spec, Side: side}

	if shared != nil {
		ra.Map = shared
		ra.Bounds = shared.Bounds()
		ra.Follower = true
	} else {
		if b.Unset() {
			return nil, &UnboundedAxisError{Axis: spec.Title}
		}
		cm, err := newCoordMap(b, spec.Scale, sizeAlong, spec.Insets)
		if err != nil {
			return nil, err
		}
		ra.Map = cm
		ra.Bounds = b
	}

	loc := spec.Locator
	if loc == nil {
		var err error
		loc, err = defaultLocator(spec.Scale, ra.Bounds)
		if err != nil {
			return nil, err
		}
	}
	ts, err := loc.Locate(ra.Bounds)
	if err != nil {
		return nil, err
	}

	labels, err := axisLabels(spec, ts, ra.Bounds, ra.Follower)
	if err != nil {
		return nil, err
	}

	lay := AxisLayout{
		Title:      spec.Title,
		Minor:      ts.Minor,
		Annotation: ts.Annotation,
	}
	lay.Major = make([]Tick, len(ts.Major))
	for i, v := range ts.Major {
		t := Tick{Value: v}
		if i < len(labels) && labels[i] != "" {
			t.Label = labels[i]
			box, err := m.MeasureText(t.Label, st.Axis.Label)
			if err != nil {
				return nil, fmt.Errorf("eidoplot: measuring tick label: %w", err)
			}
			t.Box = box
		}
		lay.Major[i] = t
	}
	if lay.Title != "" {
		box, err := m.MeasureText(lay.Title, st.Axis.Title)
		if err != nil {
			return nil, fmt.Errorf("eidoplot: measuring axis title: %w", err)
		}
		lay.TitleBox = box
	}
	if lay.Annotation != "" {
		box, err := m.MeasureText(lay.Annotation, st.Axis.Label)
		if err != nil {
			return nil, fmt.Errorf("eidoplot: measuring axis annotation: %w", err)
		}
		lay.AnnotationBox = box
	}
	lay.Extent = axisExtent(&lay, side, st)

	ra.Layout = lay
	return ra, nil
}

// axisLabels runs the formatter, honoring the suppression rule for
// follower axes: automatic formatting repeats the owner's labels and
// is therefore dropped unless explicitly overridden.
func axisLabels(spec *AxisSpec, ts TickSet, b Bounds, follower bool) ([]string, error) {
	if follower && spec.Formatter == nil && !spec.ForceLabels {
		return nil, nil
	}
	f := spec.Formatter
	if f == nil {
		f = AutoFormat{}
	}
	return f.Format(ts, b)
}

// axisExtent computes the cross axis size of lay on side. A vertical
// axis annotation is drawn at the axis top end and costs no width.
func axisExtent(lay *AxisLayout, side Side, st *Style) vg.Length {
	ext := st.Axis.MajorTick.Length

	var label vg.Length
	for _, t := range lay.Major {
		if t.Label == "" {
			continue
		}
		if side.Orient() == Horizontal {
			if t.Box.Height > label {
				label = t.Box.Height
			}
		} else {
			if t.Box.Width > label {
				label = t.Box.Width
			}
		}
	}
	if label > 0 {
		ext += st.Axis.LabelPad + label
	}
	if side.Orient() == Horizontal && lay.Annotation != "" {
		ext += st.Axis.LabelPad + lay.AnnotationBox.Height
	}
	if lay.Title != "" {
		ext += st.Axis.TitlePad + lay.TitleBox.Height
	}
	return ext
}

// estimateExtent sizes a horizontal axis before its ticks exist. The
// label band is estimated with a representative digit: a single line
// of tick labels is one font line high no matter what the tick values
// turn out to be, which is what makes the first sizing pass a good
// approximation.
func estimateExtent(spec *AxisSpec, m Measurer, st *Style) (vg.Length, error) {
	box, err := m.MeasureText("0", st.Axis.Label)
	if err != nil {
		return 0, fmt.Errorf("eidoplot: measuring label estimate: %w", err)
	}
	ext := st.Axis.MajorTick.Length + st.Axis.LabelPad + box.Height
	if spec.Title != "" {
		tbox, err := m.MeasureText(spec.Title, st.Axis.Title)
		if err != nil {
			return 0, fmt.Errorf("eidoplot: measuring axis title: %w", err)
		}
		ext += st.Axis.TitlePad + tbox.Height
	}
	return ext, nil
}

// defaultLocator selects the tick locator implied by the scale and
// the resolved bounds kind.
func defaultLocator(sc Scale, b Bounds) (Locator, error) {
	if err := sc.validFor(b.Kind()); err != nil {
		return nil, err
	}
	switch b.Kind() {
	case CategoricalBounds:
		return CatTicks{}, nil
	case TimeBounds:
		return TimeTicks{}, nil
	case NumericBounds:
		if sc.Kind == Log {
			return LogTicks{Base: sc.base(), Minor: true}, nil
		}
		return MaxN{}, nil
	default:
		panic(b.Kind())
	}
}
