// +build ignore

package main

import (
	"os"
	"time"

	eidoplot "github.com/rtbo/eidoplot-sub000"
	"github.com/rtbo/eidoplot-sub000/data"
	"github.com/rtbo/eidoplot-sub000/render"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func main() {
	t0 := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	src := data.Table{
		"x":    data.Floats{0.5, 1.2, 2.7, 3.1, 4.8, 5.5},
		"y":    data.Floats{2.1, 3.4, 2.9, 5.6, 4.2, 6.0},
		"freq": data.Floats{10, 100, 2500, 80000, 1.2e6, 4e6},
		"gain": data.Floats{0, -3, -12, -24, -40, -60},
		"cat":  data.Strings{"ale", "stout", "lager", "ale", "porter", "stout"},
		"abv":  data.Floats{5.2, 7.1, 4.9, 5.6, 6.3, 8.0},
		"when": data.Times{
			t0, t0.AddDate(0, 0, 7), t0.AddDate(0, 0, 18),
			t0.AddDate(0, 1, 2), t0.AddDate(0, 1, 20), t0.AddDate(0, 2, 5),
		},
		"temp": data.Floats{4.2, 6.8, 9.1, 11.4, 14.0, 16.5},
	}

	fig := &eidoplot.Figure{
		Title: "Eidoplot grid demo",
		Rows:  2, Cols: 2,
		Legend: &eidoplot.LegendSpec{},
		Plots: []*eidoplot.Plot{
			{
				Title: "Linear",
				XAxes: []*eidoplot.AxisSpec{{Title: "x"}},
				YAxes: []*eidoplot.AxisSpec{{Title: "y"}},
				Series: []eidoplot.Series{
					{Name: "measured", XCol: "x", YCol: "y"},
				},
			},
			{
				Title: "Bode",
				XAxes: []*eidoplot.AxisSpec{{
					Title: "f / Hz",
					Scale: eidoplot.Scale{Kind: eidoplot.Log},
				}},
				YAxes: []*eidoplot.AxisSpec{{Title: "gain / dB"}},
				Series: []eidoplot.Series{
					{Name: "response", XCol: "freq", YCol: "gain"},
				},
			},
			{
				Title: "Styles",
				XAxes: []*eidoplot.AxisSpec{{Title: "style"}},
				YAxes: []*eidoplot.AxisSpec{{Title: "abv / %"}},
				Series: []eidoplot.Series{
					{Name: "tasting", XCol: "cat", YCol: "abv"},
				},
			},
			{
				Title: "Spring",
				XAxes: []*eidoplot.AxisSpec{{Title: "date"}},
				YAxes: []*eidoplot.AxisSpec{{Title: "temp / °C"}},
				Series: []eidoplot.Series{
					{Name: "outside", XCol: "when", YCol: "temp"},
				},
			},
		},
	}

	st := eidoplot.DefaultStyle(12)
	m := eidoplot.NewMeasurer()

	l, err := eidoplot.LayoutFigure(fig, src, m, vg.Point{X: 800, Y: 600}, &st)
	if err != nil {
		panic(err)
	}

	svg, err := os.Create("testdata/grid.svg")
	if err != nil {
		panic(err)
	}
	render.SVG(l, svg)
	if err := svg.Close(); err != nil {
		panic(err)
	}

	img := vgimg.New(800, 600)
	render.Canvas(l, draw.New(img), &st)
	w, err := os.Create("testdata/grid.png")
	if err != nil {
		panic(err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(w); err != nil {
		panic(err)
	}
	if err = w.Close(); err != nil {
		panic(err)
	}
}
