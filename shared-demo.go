// +build ignore

package main

import (
	"os"

	eidoplot "github.com/rtbo/eidoplot-sub000"
	"github.com/rtbo/eidoplot-sub000/data"
	"github.com/rtbo/eidoplot-sub000/render"
	"gonum.org/v1/plot/vg"
)

// Two stacked plots sharing one x axis plus an ApplyView zoom, written
// out as before/after SVG wireframes.
func main() {
	src := data.Table{
		"t":  data.Floats{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		"u":  data.Floats{0, 0.8, 1.4, 1.7, 1.8, 1.7, 1.4, 0.8, 0, -0.8},
		"du": data.Floats{0.9, 0.8, 0.5, 0.2, -0.1, -0.4, -0.7, -0.9, -0.9, -0.8},
	}

	fig := &eidoplot.Figure{
		Title: "Shared x axis",
		Rows:  2, Cols: 1,
		Plots: []*eidoplot.Plot{
			{
				Title: "signal",
				XAxes: []*eidoplot.AxisSpec{{ID: "time", Title: "t / s"}},
				YAxes: []*eidoplot.AxisSpec{{Title: "u"}},
				Series: []eidoplot.Series{
					{Name: "u", XCol: "t", YCol: "u"},
				},
			},
			{
				Title: "slope",
				XAxes: []*eidoplot.AxisSpec{{
					Scale: eidoplot.Scale{Kind: eidoplot.Shared, Ref: eidoplot.RefID("time")},
				}},
				YAxes: []*eidoplot.AxisSpec{{Title: "du/dt"}},
				Series: []eidoplot.Series{
					{Name: "du", XCol: "t", YCol: "du"},
				},
			},
		},
	}

	st := eidoplot.DefaultStyle(12)
	m := eidoplot.NewMeasurer()

	l, err := eidoplot.LayoutFigure(fig, src, m, vg.Point{X: 500, Y: 600}, &st)
	if err != nil {
		panic(err)
	}
	write(l, "testdata/shared.svg")

	// Zoom the shared axis; both plots follow.
	if err := l.ApplyView(eidoplot.RefID("time"), eidoplot.Numeric(2, 6)); err != nil {
		panic(err)
	}
	write(l, "testdata/shared-zoom.svg")
}

func write(l *eidoplot.Layout, name string) {
	w, err := os.Create(name)
	if err != nil {
		panic(err)
	}
	render.SVG(l, w)
	if err := w.Close(); err != nil {
		panic(err)
	}
}
