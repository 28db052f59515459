package eidoplot

import (
	"fmt"

	"gonum.org/v1/plot/vg"
)

// A LegendEntry is one legend row candidate: a series label and its
// swatch size.
type LegendEntry struct {
	Label  string
	Swatch vg.Length

	box TextBox
}

// A LegendLayout is a packed legend: the total bounding size and the
// offset of every entry relative to the legend origin (lower left).
type LegendLayout struct {
	Size    vg.Point
	Entries []LegendEntry
	Offsets []vg.Point

	// Rect is the legend position within the figure, set by the
	// grid engine.
	Rect vg.Rectangle
}

// packLegend packs entries into a grid of columns. With cols == 0 the
// column count is the largest that fits avail; otherwise it is taken
// as given. Column width is the widest entry, row height the tallest.
func packLegend(entries []LegendEntry, avail vg.Length, cols int, st *Style, m Measurer) (*LegendLayout, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	var entryW, entryH vg.Length
	for i := range entries {
		e := &entries[i]
		box, err := m.MeasureText(e.Label, st.Legend.Label)
		if err != nil {
			return nil, fmt.Errorf("eidoplot: measuring legend label: %w", err)
		}
		e.box = box
		w := e.Swatch + st.Legend.Pad + box.Width
		h := box.Height
		if e.Swatch > h {
			h = e.Swatch
		}
		if w > entryW {
			entryW = w
		}
		if h > entryH {
			entryH = h
		}
	}

	if cols == 0 {
		cols = int((avail + st.Legend.ColPad) / (entryW + st.Legend.ColPad))
		if cols < 1 {
			cols = 1
		}
		if cols > len(entries) {
			cols = len(entries)
		}
	}
	rows := (len(entries) + cols - 1) / cols

	ll := &LegendLayout{
		Entries: entries,
		Offsets: make([]vg.Point, len(entries)),
	}
	ll.Size = vg.Point{
		X: vg.Length(cols)*entryW + vg.Length(cols-1)*st.Legend.ColPad,
		Y: vg.Length(rows)*entryH + vg.Length(rows-1)*st.Legend.Pad,
	}
	for i := range entries {
		row, col := i/cols, i%cols
		ll.Offsets[i] = vg.Point{
			X: vg.Length(col) * (entryW + st.Legend.ColPad),
			// Row 0 sits at the top.
			Y: ll.Size.Y - vg.Length(row+1)*entryH - vg.Length(row)*st.Legend.Pad,
		}
	}
	return ll, nil
}
