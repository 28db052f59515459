package eidoplot

import (
	"math"
	"testing"

	"gonum.org/v1/plot/vg"
)

func TestCoordMapLinear(t *testing.T) {
	m, err := newCoordMap(Numeric(0, 10), Scale{}, 100, [2]vg.Length{})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		v    float64
		want vg.Length
	}{
		{0, 0}, {5, 50}, {10, 100}, {-1, -10}, {11, 110},
	}
	for i, tc := range tests {
		if got := m.Map(tc.v); !approx(float64(got), float64(tc.want), 1e-9) {
			t.Errorf("%d: Map(%g) = %v, want %v", i, tc.v, got, tc.want)
		}
	}
	for _, v := range []float64{0, 2.5, 7, 10} {
		if got := m.Unmap(m.Map(v)); !approx(got, v, 1e-9) {
			t.Errorf("roundtrip %g = %g", v, got)
		}
	}
}

func TestCoordMapLog(t *testing.T) {
	m, err := newCoordMap(Numeric(1, 1000), Scale{Kind: Log}, 300, [2]vg.Length{})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		v    float64
		want vg.Length
	}{
		{1, 0}, {10, 100}, {100, 200}, {1000, 300},
	}
	for i, tc := range tests {
		if got := m.Map(tc.v); !approx(float64(got), float64(tc.want), 1e-9) {
			t.Errorf("%d: Map(%g) = %v, want %v", i, tc.v, got, tc.want)
		}
	}
	for _, v := range []float64{1, 3, 50, 1000} {
		if got := m.Unmap(m.Map(v)); !approx(got, v, 1e-9*v) {
			t.Errorf("roundtrip %g = %g", v, got)
		}
	}
}

func TestCoordMapLogRejects(t *testing.T) {
	_, err := newCoordMap(Numeric(-1, 10), Scale{Kind: Log}, 100, [2]vg.Length{})
	var serr *UnsupportedScaleError
	if !asErr(err, &serr) {
		t.Fatalf("got %v, want UnsupportedScaleError", err)
	}
	_, err = newCoordMap(Categories("a"), Scale{Kind: Log}, 100, [2]vg.Length{})
	if !asErr(err, &serr) {
		t.Fatalf("got %v, want UnsupportedScaleError", err)
	}
}

func TestCoordMapInsets(t *testing.T) {
	// 10 points of inset on both ends of a 120 point axis leaves 100
	// inner points for the data span; the bounds edges land exactly
	// at the inner edges.
	m, err := newCoordMap(Numeric(0, 10), Scale{}, 120, [2]vg.Length{10, 10})
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Map(0); !approx(float64(got), 10, 1e-9) {
		t.Errorf("Map(0) = %v, want 10", got)
	}
	if got := m.Map(10); !approx(float64(got), 110, 1e-9) {
		t.Errorf("Map(10) = %v, want 110", got)
	}
	// The mapper keeps the original bounds: tick locations derived
	// from them stay valid.
	if b := m.Bounds(); b.Min() != 0 || b.Max() != 10 {
		t.Errorf("bounds = %v..%v, want 0..10", b.Min(), b.Max())
	}
}

func TestCoordMapInsetTooLarge(t *testing.T) {
	_, err := newCoordMap(Numeric(0, 1), Scale{}, 20, [2]vg.Length{10, 10})
	if err == nil {
		t.Fatal("insets consuming the whole length were accepted")
	}
}

func TestCoordMapCategorical(t *testing.T) {
	m, err := newCoordMap(Categories("a", "b", "c", "d"), Scale{}, 100, [2]vg.Length{})
	if err != nil {
		t.Fatal(err)
	}
	if w := m.CatWidth(); !approx(float64(w), 25, 1e-9) {
		t.Errorf("CatWidth = %v, want 25", w)
	}
	for i, tc := range []struct {
		label string
		want  vg.Length
	}{
		{"a", 12.5}, {"b", 37.5}, {"c", 62.5}, {"d", 87.5},
	} {
		got, err := m.MapCategory(tc.label)
		if err != nil {
			t.Fatal(err)
		}
		if !approx(float64(got), float64(tc.want), 1e-9) {
			t.Errorf("%d: MapCategory(%s) = %v, want %v", i, tc.label, got, tc.want)
		}
	}
	// Numeric positions address bin indices, matching CatTicks.
	if got := m.Map(2); !approx(float64(got), 62.5, 1e-9) {
		t.Errorf("Map(2) = %v, want 62.5", got)
	}
	if got := m.Unmap(62.5); !approx(got, 2, 1e-9) {
		t.Errorf("Unmap(62.5) = %g, want 2", got)
	}
	if _, err := m.MapCategory("zz"); err == nil {
		t.Error("unknown category was mapped")
	}
}

func TestCoordMapCategoricalInsets(t *testing.T) {
	// Categorical axes shrink the usable span instead of extending
	// the domain.
	m, err := newCoordMap(Categories("a", "b"), Scale{}, 120, [2]vg.Length{10, 10})
	if err != nil {
		t.Fatal(err)
	}
	if w := m.CatWidth(); !approx(float64(w), 50, 1e-9) {
		t.Errorf("CatWidth = %v, want 50", w)
	}
	got, err := m.MapCategory("a")
	if err != nil {
		t.Fatal(err)
	}
	if !approx(float64(got), 35, 1e-9) {
		t.Errorf("MapCategory(a) = %v, want 35", got)
	}
}

func TestCoordMapTime(t *testing.T) {
	b := TimeSpan(secToTime(0), secToTime(1000))
	m, err := newCoordMap(b, Scale{}, 100, [2]vg.Length{})
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Map(500); !approx(float64(got), 50, 1e-9) {
		t.Errorf("Map(500) = %v, want 50", got)
	}
}

func TestCoordMapLogInsets(t *testing.T) {
	// Insets extend log bounds in log space: the extension is
	// multiplicative in data space.
	m, err := newCoordMap(Numeric(1, 100), Scale{Kind: Log}, 120, [2]vg.Length{10, 10})
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Map(1); !approx(float64(got), 10, 1e-9) {
		t.Errorf("Map(1) = %v, want 10", got)
	}
	if got := m.Map(100); !approx(float64(got), 110, 1e-9) {
		t.Errorf("Map(100) = %v, want 110", got)
	}
	lo := m.Unmap(0)
	if !approx(math.Log10(lo), -0.2, 1e-9) {
		t.Errorf("low edge = %g, want 10^-0.2", lo)
	}
}
