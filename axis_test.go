package eidoplot

import (
	"reflect"
	"testing"

	"gonum.org/v1/plot/vg"
)

func TestResolveAxisNumeric(t *testing.T) {
	spec := &AxisSpec{Title: "x"}
	ra, err := ResolveAxis(spec, Numeric(0, 10), Bottom, 200, nil, RuleMeasurer{}, testStyle())
	if err != nil {
		t.Fatal(err)
	}
	if ra.Follower {
		t.Error("owner axis marked as follower")
	}
	if len(ra.Layout.Major) != 11 {
		t.Fatalf("%d ticks, want 11", len(ra.Layout.Major))
	}
	if ra.Layout.Major[0].Label != "0" || ra.Layout.Major[10].Label != "10" {
		t.Errorf("edge labels %q, %q", ra.Layout.Major[0].Label, ra.Layout.Major[10].Label)
	}
	for _, tick := range ra.Layout.Major {
		if tick.Label != "" && tick.Box.Width == 0 {
			t.Errorf("tick %q not measured", tick.Label)
		}
	}
	// tick + labelPad + label line + titlePad + title line
	want := vg.Length(5 + 3 + 12 + 4 + 12)
	if ra.Layout.Extent != want {
		t.Errorf("extent = %v, want %v", ra.Layout.Extent, want)
	}
}

func TestResolveAxisVerticalExtent(t *testing.T) {
	// A vertical axis is as wide as its widest label.
	spec := &AxisSpec{}
	ra, err := ResolveAxis(spec, Numeric(0, 1000), Left, 200, nil, RuleMeasurer{}, testStyle())
	if err != nil {
		t.Fatal(err)
	}
	// Widest label "1000": 4 runes × 6 points.
	want := vg.Length(5 + 3 + 24)
	if ra.Layout.Extent != want {
		t.Errorf("extent = %v, want %v", ra.Layout.Extent, want)
	}
}

func TestResolveAxisFollowerSuppression(t *testing.T) {
	owner, err := ResolveAxis(&AxisSpec{}, Numeric(0, 10), Bottom, 200, nil, RuleMeasurer{}, testStyle())
	if err != nil {
		t.Fatal(err)
	}

	follower, err := ResolveAxis(&AxisSpec{}, Bounds{}, Bottom, 200, owner.Map, RuleMeasurer{}, testStyle())
	if err != nil {
		t.Fatal(err)
	}
	if !follower.Follower {
		t.Fatal("shared axis not marked as follower")
	}
	if len(follower.Layout.Major) != len(owner.Layout.Major) {
		t.Fatalf("follower has %d ticks, owner %d",
			len(follower.Layout.Major), len(owner.Layout.Major))
	}
	for i, tick := range follower.Layout.Major {
		if tick.Label != "" {
			t.Errorf("follower tick %d carries label %q", i, tick.Label)
		}
		if tick.Value != owner.Layout.Major[i].Value {
			t.Errorf("follower tick %d at %g, owner at %g",
				i, tick.Value, owner.Layout.Major[i].Value)
		}
	}

	forced, err := ResolveAxis(&AxisSpec{ForceLabels: true}, Bounds{}, Bottom, 200, owner.Map, RuleMeasurer{}, testStyle())
	if err != nil {
		t.Fatal(err)
	}
	if forced.Layout.Major[0].Label == "" {
		t.Error("forced follower has no labels")
	}

	styled, err := ResolveAxis(&AxisSpec{Formatter: FixedFormat{Prec: 2}}, Bounds{}, Bottom, 200, owner.Map, RuleMeasurer{}, testStyle())
	if err != nil {
		t.Fatal(err)
	}
	if styled.Layout.Major[0].Label != "0.00" {
		t.Errorf("follower with own formatter labels %q, want \"0.00\"",
			styled.Layout.Major[0].Label)
	}
}

func TestResolveAxisAnnotation(t *testing.T) {
	ra, err := ResolveAxis(&AxisSpec{Locator: PiTicks{N: 8}}, Numeric(0, 6.4), Bottom, 200, nil, RuleMeasurer{}, testStyle())
	if err != nil {
		t.Fatal(err)
	}
	if ra.Layout.Annotation != "× π" {
		t.Fatalf("annotation = %q", ra.Layout.Annotation)
	}
	if ra.Layout.AnnotationBox.Width == 0 {
		t.Error("annotation not measured")
	}
	// The annotation band adds to horizontal extents only.
	plain, err := ResolveAxis(&AxisSpec{}, Numeric(0, 6.4), Bottom, 200, nil, RuleMeasurer{}, testStyle())
	if err != nil {
		t.Fatal(err)
	}
	if ra.Layout.Extent <= plain.Layout.Extent {
		t.Errorf("annotated extent %v not larger than plain %v",
			ra.Layout.Extent, plain.Layout.Extent)
	}
}

func TestResolveAxisUnbounded(t *testing.T) {
	_, err := ResolveAxis(&AxisSpec{Title: "y"}, Bounds{kind: NumericBounds, i: unsetInterval()}, Left, 200, nil, RuleMeasurer{}, testStyle())
	var uerr *UnboundedAxisError
	if !asErr(err, &uerr) {
		t.Fatalf("got %v, want UnboundedAxisError", err)
	}
}

func TestDefaultLocator(t *testing.T) {
	tests := []struct {
		sc   Scale
		b    Bounds
		want Locator
	}{
		{Scale{}, Numeric(0, 1), MaxN{}},
		{Scale{Kind: Log}, Numeric(1, 10), LogTicks{Base: 10, Minor: true}},
		{Scale{}, Categories("a"), CatTicks{}},
		{Scale{}, TimeSpan(secToTime(0), secToTime(100)), TimeTicks{}},
	}
	for i, tc := range tests {
		got, err := defaultLocator(tc.sc, tc.b)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%d: locator = %#v, want %#v", i, got, tc.want)
		}
	}

	_, err := defaultLocator(Scale{Kind: Log}, Categories("a"))
	var serr *UnsupportedScaleError
	if !asErr(err, &serr) {
		t.Fatalf("got %v, want UnsupportedScaleError", err)
	}
}
