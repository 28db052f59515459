// Package render consumes prepared layouts. The layout core never
// draws; these renderers walk the returned geometry and emit it to an
// SVG stream or a vg canvas; they are reference consumers of the
// Layout tree, not part of the layout computation.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	eidoplot "github.com/rtbo/eidoplot-sub000"
	"gonum.org/v1/plot/vg"
)

// SVG writes a wireframe preview of l to w: plot rectangles, axis
// lines, ticks, tick labels, titles and legend boxes. It is meant for
// inspecting a layout without a font stack or raster backend.
func SVG(l *eidoplot.Layout, w io.Writer) {
	width, height := int(l.Size.X), int(l.Size.Y)
	// SVG has a top left origin, layouts a bottom left one.
	flip := func(y vg.Length) int { return height - int(y) }

	c := svg.New(w)
	c.Start(width, height)
	c.Rect(0, 0, width, height, "fill:white;stroke:none")

	if l.Fig.Title != "" {
		c.Text(width/2, flip(l.Size.Y-l.TitleBox.Height),
			l.Fig.Title, "text-anchor:middle;font-size:14px")
	}

	for _, cell := range l.Cells {
		if cell == nil {
			continue
		}
		r := cell.Rect
		c.Rect(int(r.Min.X), flip(r.Max.Y),
			int(r.Max.X-r.Min.X), int(r.Max.Y-r.Min.Y),
			"fill:#eeeeee;stroke:#444444;stroke-width:0.5")
		if cell.Plot.Title != "" {
			c.Text(int((r.Min.X+r.Max.X)/2), flip(r.Max.Y)-6,
				cell.Plot.Title, "text-anchor:middle;font-size:11px")
		}
		for _, ax := range cell.XAxes {
			svgXAxis(c, flip, ax, r)
		}
		for _, ax := range cell.YAxes {
			svgYAxis(c, flip, ax, r)
		}
	}

	if l.Legend != nil {
		lr := l.Legend.Rect
		c.Rect(int(lr.Min.X), flip(lr.Max.Y),
			int(lr.Max.X-lr.Min.X), int(lr.Max.Y-lr.Min.Y),
			"fill:none;stroke:#888888;stroke-width:0.5")
		for i, e := range l.Legend.Entries {
			off := l.Legend.Offsets[i]
			x := lr.Min.X + off.X
			y := lr.Min.Y + off.Y
			c.Rect(int(x), flip(y+e.Swatch), int(e.Swatch), int(e.Swatch),
				"fill:#888888")
			c.Text(int(x+e.Swatch)+4, flip(y), e.Label, "font-size:11px")
		}
	}

	c.End()
}

func svgXAxis(c *svg.SVG, flip func(vg.Length) int, ax *eidoplot.ResolvedAxis, r vg.Rectangle) {
	edge := r.Min.Y
	dir := 1
	if ax.Side == eidoplot.Top {
		edge = r.Max.Y
		dir = -1
	}
	c.Line(int(r.Min.X), flip(edge), int(r.Max.X), flip(edge),
		"stroke:black;stroke-width:0.5")
	for _, t := range ax.Layout.Major {
		x := r.Min.X + ax.Map.Map(t.Value)
		c.Line(int(x), flip(edge), int(x), flip(edge-vg.Length(dir)*5),
			"stroke:black;stroke-width:1")
		if t.Label != "" {
			c.Text(int(x), flip(edge-vg.Length(dir)*(5+t.Box.Height)),
				t.Label, "text-anchor:middle;font-size:10px")
		}
	}
	for _, v := range ax.Layout.Minor {
		x := r.Min.X + ax.Map.Map(v)
		c.Line(int(x), flip(edge), int(x), flip(edge-vg.Length(dir)*2.5),
			"stroke:#666666;stroke-width:0.5")
	}
	if ax.Layout.Annotation != "" {
		c.Text(int(r.Max.X)+4, flip(edge)+4, ax.Layout.Annotation, "font-size:10px")
	}
	if ax.Layout.Title != "" {
		c.Text(int((r.Min.X+r.Max.X)/2),
			flip(edge-vg.Length(dir)*ax.Layout.Extent)+dirOffset(dir),
			ax.Layout.Title, "text-anchor:middle;font-size:11px")
	}
}

func svgYAxis(c *svg.SVG, flip func(vg.Length) int, ax *eidoplot.ResolvedAxis, r vg.Rectangle) {
	edge := r.Min.X
	dir := 1
	if ax.Side == eidoplot.Right {
		edge = r.Max.X
		dir = -1
	}
	c.Line(int(edge), flip(r.Min.Y), int(edge), flip(r.Max.Y),
		"stroke:black;stroke-width:0.5")
	for _, t := range ax.Layout.Major {
		y := r.Min.Y + ax.Map.Map(t.Value)
		c.Line(int(edge), flip(y), int(edge-vg.Length(dir)*5), flip(y),
			"stroke:black;stroke-width:1")
		if t.Label != "" {
			anchor := "end"
			if dir < 0 {
				anchor = "start"
			}
			c.Text(int(edge-vg.Length(dir)*8), flip(y)+4, t.Label,
				fmt.Sprintf("text-anchor:%s;font-size:10px", anchor))
		}
	}
	for _, v := range ax.Layout.Minor {
		y := r.Min.Y + ax.Map.Map(v)
		c.Line(int(edge), flip(y), int(edge-vg.Length(dir)*2.5), flip(y),
			"stroke:#666666;stroke-width:0.5")
	}
	if ax.Layout.Annotation != "" {
		c.Text(int(edge), flip(r.Max.Y)-4, ax.Layout.Annotation,
			"text-anchor:middle;font-size:10px")
	}
	if ax.Layout.Title != "" {
		c.TranslateRotate(int(edge-vg.Length(dir)*ax.Layout.Extent)+dirOffset(dir),
			flip((r.Min.Y+r.Max.Y)/2), -90)
		c.Text(0, 0, ax.Layout.Title, "text-anchor:middle;font-size:11px")
		c.Gend()
	}
}

func dirOffset(dir int) int {
	if dir > 0 {
		return 10
	}
	return -4
}
