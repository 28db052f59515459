package eidoplot

import (
	"math"
	"time"
)

// ----------------------------------------------------------------------------
// BoundsKind

// BoundsKind selects one of the three kinds of axis bounds.
type BoundsKind int

const (
	NumericBounds BoundsKind = iota
	CategoricalBounds
	TimeBounds
)

// String returns the kind of k.
func (k BoundsKind) String() string {
	return []string{"numeric", "categorical", "time"}[int(k)]
}

// ----------------------------------------------------------------------------
// Bounds

// Bounds is the resolved data space extent of an axis: a numeric
// interval, an ordered set of category labels, or a time interval.
// Time intervals are kept as Unix seconds so that coordinate mapping
// and tick stepping share the numeric code paths.
//
// Bounds values are immutable; Unite and DeDegenerate return new
// values.
type Bounds struct {
	kind BoundsKind
	i    Interval
	cats []string
}

// Numeric returns numeric bounds covering [min, max].
func Numeric(min, max float64) Bounds {
	b := Bounds{kind: NumericBounds, i: unsetInterval()}
	b.i.Update(min, max)
	return b
}

// Categories returns categorical bounds over labels in the given
// order. Duplicate labels are kept once, at their first position.
func Categories(labels ...string) Bounds {
	b := Bounds{kind: CategoricalBounds, i: unsetInterval()}
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if seen[l] {
			continue
		}
		seen[l] = true
		b.cats = append(b.cats, l)
	}
	return b
}

// TimeSpan returns time bounds covering [min, max].
func TimeSpan(min, max time.Time) Bounds {
	b := Bounds{kind: TimeBounds, i: unsetInterval()}
	b.i.Update(timeToSec(min), timeToSec(max))
	return b
}

// Kind returns the kind of b.
func (b Bounds) Kind() BoundsKind { return b.kind }

// Min returns the lower numeric edge of b. For time bounds this is
// the lower edge in Unix seconds; for categorical bounds it is NaN.
func (b Bounds) Min() float64 { return b.i.Min }

// Max returns the upper numeric edge of b, like Min.
func (b Bounds) Max() float64 { return b.i.Max }

// TimeMin returns the lower edge of time bounds.
func (b Bounds) TimeMin() time.Time { return secToTime(b.i.Min) }

// TimeMax returns the upper edge of time bounds.
func (b Bounds) TimeMax() time.Time { return secToTime(b.i.Max) }

// Labels returns the ordered category labels of b. The returned slice
// must not be modified.
func (b Bounds) Labels() []string { return b.cats }

// IndexOf returns the position of label in b's category order.
func (b Bounds) IndexOf(label string) (int, bool) {
	for i, l := range b.cats {
		if l == label {
			return i, true
		}
	}
	return 0, false
}

// Unset reports whether b covers no data at all.
func (b Bounds) Unset() bool {
	switch b.kind {
	case NumericBounds, TimeBounds:
		return b.i.Unset()
	case CategoricalBounds:
		return len(b.cats) == 0
	default:
		panic(b.kind)
	}
}

// Unite returns the envelope of a and b: the covering interval for
// numeric and time bounds, the ordered union for categorical bounds
// (labels of b unseen in a are appended). Uniting bounds of different
// kinds fails with a KindMismatchError.
func Unite(a, b Bounds) (Bounds, error) {
	if a.Unset() {
		return b, nil
	}
	if b.Unset() {
		return a, nil
	}
	if a.kind != b.kind {
		return Bounds{}, &KindMismatchError{A: a.kind, B: b.kind}
	}
	switch a.kind {
	case NumericBounds, TimeBounds:
		u := a
		u.i.Update(b.i.Min, b.i.Max)
		return u, nil
	case CategoricalBounds:
		u := Bounds{kind: CategoricalBounds, i: unsetInterval()}
		u.cats = append(u.cats, a.cats...)
		seen := make(map[string]bool, len(a.cats))
		for _, l := range a.cats {
			seen[l] = true
		}
		for _, l := range b.cats {
			if !seen[l] {
				seen[l] = true
				u.cats = append(u.cats, l)
			}
		}
		return u, nil
	default:
		panic(a.kind)
	}
}

// DeDegenerate widens degenerate bounds so that every downstream
// division by the span is safe: an empty numeric interval around zero
// becomes [-1, 1], a single value v becomes [v-|v|, v+|v|], equal
// time instants are widened by one hour on both sides. Non degenerate
// bounds are returned unchanged.
func (b Bounds) DeDegenerate() Bounds {
	switch b.kind {
	case NumericBounds:
		if b.i.Unset() || b.i.Min != b.i.Max {
			return b
		}
		v := b.i.Min
		if v == 0 {
			return Numeric(-1, 1)
		}
		return Numeric(v-math.Abs(v), v+math.Abs(v))
	case TimeBounds:
		if b.i.Unset() || b.i.Min != b.i.Max {
			return b
		}
		const hour = 3600
		w := b
		w.i = Interval{Min: b.i.Min - hour, Max: b.i.Max + hour}
		return w
	case CategoricalBounds:
		// A single category is one full width bin, not degenerate.
		return b
	default:
		panic(b.kind)
	}
}

func timeToSec(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

func secToTime(s float64) time.Time {
	sec, frac := math.Floor(s), s-math.Floor(s)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC()
}
