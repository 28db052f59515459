package render

import (
	"math"

	eidoplot "github.com/rtbo/eidoplot-sub000"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Canvas draws the chrome of l onto c: plot backgrounds, grid lines,
// axes, ticks, labels, titles and legend. Series marks are the
// caller's business; the plot rectangles and coordinate mappers of l
// tell it where they go.
func Canvas(l *eidoplot.Layout, c draw.Canvas, st *eidoplot.Style) {
	if st.Background != nil {
		c.SetColor(st.Background)
		c.Fill(c.Rectangle.Path())
	}

	if l.Fig.Title != "" {
		c.FillText(st.Title, vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: c.Max.Y}, l.Fig.Title)
	}

	for _, cell := range l.Cells {
		if cell == nil {
			continue
		}
		drawCell(c, cell, st)
	}

	if l.Legend != nil {
		drawLegend(c, l.Legend, st)
	}
}

func drawCell(c draw.Canvas, cell *eidoplot.PlotCell, st *eidoplot.Style) {
	r := cell.Rect

	if st.Plot.Background != nil {
		pc := c
		pc.Min, pc.Max = r.Min, r.Max
		pc.SetColor(st.Plot.Background)
		pc.Fill(pc.Rectangle.Path())
	}
	if cell.Plot.Title != "" {
		c.FillText(st.Plot.Title, vg.Point{X: (r.Min.X + r.Max.X) / 2, Y: r.Max.Y}, cell.Plot.Title)
	}

	// Grid lines under everything else.
	if st.Grid.Major.Color != nil {
		for _, ax := range cell.XAxes {
			for _, t := range ax.Layout.Major {
				x := r.Min.X + ax.Map.Map(t.Value)
				c.StrokeLine2(st.Grid.Major, x, r.Min.Y, x, r.Max.Y)
			}
			for _, v := range ax.Layout.Minor {
				x := r.Min.X + ax.Map.Map(v)
				c.StrokeLine2(st.Grid.Minor, x, r.Min.Y, x, r.Max.Y)
			}
		}
		for _, ax := range cell.YAxes {
			for _, t := range ax.Layout.Major {
				y := r.Min.Y + ax.Map.Map(t.Value)
				c.StrokeLine2(st.Grid.Major, r.Min.X, y, r.Max.X, y)
			}
			for _, v := range ax.Layout.Minor {
				y := r.Min.Y + ax.Map.Map(v)
				c.StrokeLine2(st.Grid.Minor, r.Min.X, y, r.Max.X, y)
			}
		}
	}

	for _, ax := range cell.XAxes {
		drawXAxis(c, ax, r, st)
	}
	for _, ax := range cell.YAxes {
		drawYAxis(c, ax, r, st)
	}
}

func drawXAxis(c draw.Canvas, ax *eidoplot.ResolvedAxis, r vg.Rectangle, st *eidoplot.Style) {
	edge, dir := r.Min.Y, vg.Length(1)
	if ax.Side == eidoplot.Top {
		edge, dir = r.Max.Y, -1
	}
	c.StrokeLine2(st.Axis.Line, r.Min.X, edge, r.Max.X, edge)

	for _, t := range ax.Layout.Major {
		x := r.Min.X + ax.Map.Map(t.Value)
		c.StrokeLine2(st.Axis.MajorTick.LineStyle, x, edge, x, edge-dir*st.Axis.MajorTick.Length)
		if t.Label != "" {
			y := edge - dir*(st.Axis.MajorTick.Length+st.Axis.LabelPad)
			c.FillText(st.Axis.Label, vg.Point{X: x, Y: y}, t.Label)
		}
	}
	for _, v := range ax.Layout.Minor {
		x := r.Min.X + ax.Map.Map(v)
		c.StrokeLine2(st.Axis.MinorTick.LineStyle, x, edge, x, edge-dir*st.Axis.MinorTick.Length)
	}
	if ax.Layout.Annotation != "" {
		c.FillText(st.Axis.Label, vg.Point{X: r.Max.X + st.Axis.LabelPad, Y: edge}, ax.Layout.Annotation)
	}
	if ax.Layout.Title != "" {
		y := edge - dir*ax.Layout.Extent
		c.FillText(st.Axis.Title, vg.Point{X: (r.Min.X + r.Max.X) / 2, Y: y + ax.Layout.TitleBox.Height}, ax.Layout.Title)
	}
}

func drawYAxis(c draw.Canvas, ax *eidoplot.ResolvedAxis, r vg.Rectangle, st *eidoplot.Style) {
	edge, dir := r.Min.X, vg.Length(1)
	if ax.Side == eidoplot.Right {
		edge, dir = r.Max.X, -1
	}
	c.StrokeLine2(st.Axis.Line, edge, r.Min.Y, edge, r.Max.Y)

	labelSty := st.Axis.Label
	labelSty.XAlign = draw.XRight
	labelSty.YAlign = draw.YCenter
	if ax.Side == eidoplot.Right {
		labelSty.XAlign = draw.XLeft
	}

	for _, t := range ax.Layout.Major {
		y := r.Min.Y + ax.Map.Map(t.Value)
		c.StrokeLine2(st.Axis.MajorTick.LineStyle, edge, y, edge-dir*st.Axis.MajorTick.Length, y)
		if t.Label != "" {
			x := edge - dir*(st.Axis.MajorTick.Length+st.Axis.LabelPad)
			c.FillText(labelSty, vg.Point{X: x, Y: y}, t.Label)
		}
	}
	for _, v := range ax.Layout.Minor {
		y := r.Min.Y + ax.Map.Map(v)
		c.StrokeLine2(st.Axis.MinorTick.LineStyle, edge, y, edge-dir*st.Axis.MinorTick.Length, y)
	}
	if ax.Layout.Annotation != "" {
		c.FillText(st.Axis.Label, vg.Point{X: edge, Y: r.Max.Y + st.Axis.LabelPad}, ax.Layout.Annotation)
	}
	if ax.Layout.Title != "" {
		sty := st.Axis.Title
		sty.Rotation = math.Pi / 2
		x := edge - dir*ax.Layout.Extent
		c.FillText(sty, vg.Point{X: x + ax.Layout.TitleBox.Height, Y: (r.Min.Y + r.Max.Y) / 2}, ax.Layout.Title)
	}
}

func drawLegend(c draw.Canvas, legend *eidoplot.LegendLayout, st *eidoplot.Style) {
	for i, e := range legend.Entries {
		off := legend.Offsets[i]
		x := legend.Rect.Min.X + off.X
		y := legend.Rect.Min.Y + off.Y
		var sw draw.LineStyle
		sw.Color = st.Axis.Line.Color
		sw.Width = e.Swatch
		c.StrokeLine2(sw, x, y+e.Swatch/2, x+e.Swatch, y+e.Swatch/2)
		c.FillText(st.Legend.Label, vg.Point{X: x + e.Swatch + st.Legend.Pad, Y: y + e.Swatch/2}, e.Label)
	}
}
