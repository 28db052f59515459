package render

import (
	"bytes"
	"strings"
	"testing"

	eidoplot "github.com/rtbo/eidoplot-sub000"
	"github.com/rtbo/eidoplot-sub000/data"
	"gonum.org/v1/plot/vg"
)

func testLayout(t *testing.T) *eidoplot.Layout {
	t.Helper()
	src := data.Table{
		"x": data.Floats{0, 5, 10},
		"y": data.Floats{1, 3, 2},
	}
	fig := &eidoplot.Figure{
		Title: "wireframe",
		Rows:  1, Cols: 1,
		Plots: []*eidoplot.Plot{{
			Title:  "p",
			XAxes:  []*eidoplot.AxisSpec{{Title: "x"}},
			YAxes:  []*eidoplot.AxisSpec{{Title: "y"}},
			Series: []eidoplot.Series{{Name: "s", XCol: "x", YCol: "y"}},
		}},
		Legend: &eidoplot.LegendSpec{},
	}
	st := eidoplot.Style{}
	st.Pad = 10
	st.TitleHeight = 30
	st.Axis.TitlePad = 4
	st.Axis.LabelPad = 3
	st.Axis.MajorTick.Length = 5
	st.Legend.Swatch = 10
	st.Legend.Pad = 4
	st.Legend.ColPad = 12
	l, err := eidoplot.LayoutFigure(fig, src, eidoplot.RuleMeasurer{}, vg.Point{X: 400, Y: 300}, &st)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestSVGWireframe(t *testing.T) {
	l := testLayout(t)
	var buf bytes.Buffer
	SVG(l, &buf)
	out := buf.String()

	for _, want := range []string{
		"<svg", "</svg>",
		"wireframe", // figure title
		">x<",       // axis title
		">0<",       // a tick label
		">s<",       // legend entry
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q", want)
		}
	}
}
