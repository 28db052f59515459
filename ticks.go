package eidoplot

import (
	"math"
)

// edgeTol is the absolute tolerance deciding whether a bounds edge
// that lands almost exactly on a step multiple counts as that
// multiple, and whether a minor log tick coincides with a major one.
// Off-by-one tick counts at bin edges hinge on this value.
const edgeTol = 1e-10

// tinySpan is the smallest span tick stepping accepts. Below it the
// edge tolerance is no longer negligible against the step and tick
// counts become unreliable, so locators fail instead of guessing.
const tinySpan = 1e-7

// A Tick is a major tick: a location in data space, its formatted
// label and the measured label box. Minor ticks are bare locations.
type Tick struct {
	Value float64
	Label string
	Box   TextBox
}

// A TickSet is the output of a Locator: ordered major locations,
// optional minor locations, and everything a Formatter needs to label
// them. Locations may lie slightly outside the bounds, per the
// locator's edge policy.
type TickSet struct {
	Major []float64
	Minor []float64

	// Step is the chosen major step. Formatters derive the label
	// precision from it. Zero when the locator has no uniform step.
	Step float64

	// Annotation is an axis level label qualifying every tick,
	// e.g. "× π".
	Annotation string

	// Div divides each major value before formatting. Zero means 1.
	Div float64

	// Labels are pre-made labels for locators that know them
	// directly (categorical). When set, formatting is skipped.
	Labels []string

	// Unit is the chosen calendar unit for time ticks.
	Unit TimeUnit
}

// A Locator turns axis bounds into tick locations.
type Locator interface {
	Locate(b Bounds) (TickSet, error)
}

// A Formatter turns located ticks into display labels, one per major
// location.
type Formatter interface {
	Format(ts TickSet, b Bounds) ([]string, error)
}

// ----------------------------------------------------------------------------
// MaxN

// defaultSteps are the nice step candidates, scaled by powers of ten.
var defaultSteps = []float64{1, 2, 2.5, 5}

// MaxN locates ticks on numeric bounds at multiples of a nice step.
// The step is the smallest candidate×10ᵏ that yields at most N bins
// over the span. The first and last tick are the enclosing step
// multiples of the bounds edges; an edge within edgeTol of a multiple
// counts as sitting on it.
type MaxN struct {
	// N is the target bin count. Zero means 10.
	N int

	// Steps are the step candidates. Nil means {1, 2, 2.5, 5}.
	Steps []float64
}

func (l MaxN) Locate(b Bounds) (TickSet, error) {
	if b.Kind() != NumericBounds {
		return TickSet{}, &UnsupportedScaleError{Scale: "max-n ticks", Bounds: b.Kind()}
	}
	major, step, err := stepTicks(b.Min(), b.Max(), l.n(), l.steps())
	if err != nil {
		return TickSet{}, err
	}
	return TickSet{Major: major, Step: step}, nil
}

func (l MaxN) n() int {
	if l.N == 0 {
		return 10
	}
	return l.N
}

func (l MaxN) steps() []float64 {
	if l.Steps == nil {
		return defaultSteps
	}
	return l.Steps
}

// stepTicks is the shared stepping algorithm of MaxN and PiTicks.
func stepTicks(min, max float64, bins int, candidates []float64) ([]float64, float64, error) {
	span := max - min
	if span <= tinySpan {
		return nil, 0, &TinySpanError{Span: span}
	}
	step := niceStep(span/float64(bins), candidates)

	// Round outward to the enclosing multiples. The tolerance keeps
	// an edge sitting on a multiple, up to floating point noise,
	// from spilling one extra step outside.
	i0 := math.Floor(min/step + edgeTol)
	i1 := math.Ceil(max/step - edgeTol)
	ticks := make([]float64, 0, int(i1-i0)+1)
	for i := i0; i <= i1; i++ {
		ticks = append(ticks, i*step)
	}
	return ticks, step, nil
}

// niceStep returns the smallest candidate×10ᵏ that is >= raw.
func niceStep(raw float64, candidates []float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	norm := raw / mag // in [1, 10)
	for _, c := range candidates {
		if c >= norm {
			return c * mag
		}
	}
	return 10 * mag
}

// ----------------------------------------------------------------------------
// PiTicks

// PiTicks locates ticks at nice fractions and multiples of π and
// annotates the axis with "× π". The stepping algorithm is MaxN run
// in units of π.
type PiTicks struct {
	// N is the target bin count. Zero means 10.
	N int
}

func (l PiTicks) Locate(b Bounds) (TickSet, error) {
	if b.Kind() != NumericBounds {
		return TickSet{}, &UnsupportedScaleError{Scale: "pi ticks", Bounds: b.Kind()}
	}
	n := l.N
	if n == 0 {
		n = 10
	}
	units, step, err := stepTicks(b.Min()/math.Pi, b.Max()/math.Pi, n, defaultSteps)
	if err != nil {
		return TickSet{}, err
	}
	major := make([]float64, len(units))
	for i, u := range units {
		major[i] = u * math.Pi
	}
	return TickSet{
		Major:      major,
		Step:       step * math.Pi,
		Annotation: "× π",
		Div:        math.Pi,
	}, nil
}

// ----------------------------------------------------------------------------
// LogTicks

// LogTicks locates one major tick per integer power of Base within
// the bounds. With Minor set it adds the Base-2 intermediate
// sub-ticks per decade (2·10ᵏ … 9·10ᵏ for base 10), skipping any that
// coincide with a major tick.
type LogTicks struct {
	// Base is the logarithm base. Zero means 10.
	Base float64

	Minor bool
}

func (l LogTicks) Locate(b Bounds) (TickSet, error) {
	if b.Kind() != NumericBounds {
		return TickSet{}, &UnsupportedScaleError{Scale: "log ticks", Bounds: b.Kind()}
	}
	if b.Min() <= 0 {
		return TickSet{}, &UnsupportedScaleError{Scale: "log", Bounds: b.Kind()}
	}
	base := l.Base
	if base == 0 {
		base = 10
	}
	logMin := math.Log(b.Min()) / math.Log(base)
	logMax := math.Log(b.Max()) / math.Log(base)
	p0 := int(math.Ceil(logMin - edgeTol))
	p1 := int(math.Floor(logMax + edgeTol))

	ts := TickSet{}
	for p := p0; p <= p1; p++ {
		ts.Major = append(ts.Major, math.Pow(base, float64(p)))
	}
	if l.Minor {
		for p := p0 - 1; p <= p1; p++ {
			pow := math.Pow(base, float64(p))
			for m := 2.0; m < base; m++ {
				v := m * pow
				if v < b.Min()-edgeTol || v > b.Max()+edgeTol {
					continue
				}
				if coincides(v, ts.Major) {
					continue
				}
				ts.Minor = append(ts.Minor, v)
			}
		}
	}
	return ts, nil
}

// coincides reports whether v matches one of ticks within tolerance.
// The tolerance is relative here: log ticks span many orders of
// magnitude.
func coincides(v float64, ticks []float64) bool {
	for _, t := range ticks {
		if math.Abs(v-t) <= edgeTol*math.Max(math.Abs(v), math.Abs(t)) {
			return true
		}
	}
	return false
}

// ----------------------------------------------------------------------------
// CatTicks

// CatTicks locates one tick per category label. Locations are the
// category indices; the categorical coordinate mapper places them at
// bin centers.
type CatTicks struct{}

func (CatTicks) Locate(b Bounds) (TickSet, error) {
	if b.Kind() != CategoricalBounds {
		return TickSet{}, &UnsupportedScaleError{Scale: "categorical ticks", Bounds: b.Kind()}
	}
	labels := b.Labels()
	ts := TickSet{
		Major:  make([]float64, len(labels)),
		Labels: append([]string(nil), labels...),
	}
	for i := range labels {
		ts.Major[i] = float64(i)
	}
	return ts, nil
}
