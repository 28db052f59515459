package eidoplot

import (
	"fmt"

	"github.com/rtbo/eidoplot-sub000/data"
	"gonum.org/v1/plot/vg"
)

var debug = false

// sizingPasses is the number of vertical axis resolution passes. The
// engine runs an estimate → fix → refine sequence rather than
// iterating to a fixed point: horizontal axis heights are estimated,
// vertical axes resolved against the estimate, the widths fixed,
// horizontal axes resolved exactly, and the vertical axes corrected
// once. Exactly two passes is a contract; more would change numeric
// output silently.
const sizingPasses = 2

// A PlotCell is one materialized cell of the subplot grid: the plot
// it was built from, its final plot rectangle and its resolved axes.
type PlotCell struct {
	Plot  *Plot
	Index int

	// Rect is the plot data rectangle in figure coordinates.
	Rect vg.Rectangle

	XAxes []*ResolvedAxis
	YAxes []*ResolvedAxis
}

// A Layout is a fully measured figure: geometry for every plot, axis,
// tick and legend. After LayoutFigure returns, a Layout is frozen and
// safe for unsynchronized concurrent reads; the one mutation path is
// ApplyView, which replaces whole shared mapper groups atomically.
type Layout struct {
	Fig  *Figure
	Size vg.Point

	// Cells holds the grid cells in row major order, nil for empty
	// cells.
	Cells []*PlotCell

	Legend *LegendLayout

	TitleBox TextBox

	style *Style
	m     Measurer
	axes  []*axisState
	cells []*cellState
}

// Cell returns the materialized cell at (row, col), or nil.
func (l *Layout) Cell(row, col int) *PlotCell {
	return l.Cells[row*l.Fig.Cols+col]
}

// ----------------------------------------------------------------------------
// Internal layout state

type axisState struct {
	spec   *AxisSpec
	plot   int // row major cell index
	orient Orient
	index  int // index within the plot's axis list
	figIdx int
	side   Side

	owner     *axisState // nil when self owned
	followers []*axisState

	bounds  Bounds
	hasData bool

	estExtent vg.Length
	res       *ResolvedAxis
	cell      *cellState
}

func (a *axisState) ownerOf() *axisState {
	if a.owner != nil {
		return a.owner
	}
	return a
}

func (a *axisState) name() string {
	if a.spec.ID != "" {
		return fmt.Sprintf("%q", a.spec.ID)
	}
	return RefAxis(a.plot, a.orient, a.index).String()
}

type cellState struct {
	plot     *Plot
	index    int
	row, col int

	rect     vg.Rectangle // cell area
	titleBox TextBox      // plot title band
	plotRect vg.Rectangle

	x, y []*axisState
}

type layouter struct {
	fig   *Figure
	src   data.Source
	m     Measurer
	st    *Style
	size  vg.Point
	axes  []*axisState
	cells []*cellState // row major, nil for empty
}

// LayoutFigure is the top level entry point: it resolves every axis
// of fig against the columns of src and returns the measured geometry
// of every plot, axis, tick and legend. Structural and data errors
// (unresolved references, mismatched bounds kinds, unbounded axes,
// column length mismatches) abort the layout of the whole figure; no
// partial layout is ever returned.
func LayoutFigure(fig *Figure, src data.Source, m Measurer, size vg.Point, st *Style) (*Layout, error) {
	if err := fig.validate(); err != nil {
		return nil, err
	}
	ly := &layouter{fig: fig, src: src, m: m, st: st, size: size}

	ly.enumerate()
	if err := ly.resolveRefs(); err != nil {
		return nil, err
	}
	if err := ly.collectBounds(); err != nil {
		return nil, err
	}
	if err := ly.finalizeBounds(); err != nil {
		return nil, err
	}
	ly.debugDump("after bounds resolution")

	out := &Layout{
		Fig:   fig,
		Size:  size,
		style: st,
		m:     m,
		axes:  ly.axes,
		cells: ly.cells,
	}
	if err := ly.placeChrome(out); err != nil {
		return nil, err
	}
	if err := ly.size2Pass(); err != nil {
		return nil, err
	}
	if err := ly.materialize(out); err != nil {
		return nil, err
	}
	return out, nil
}

// enumerate builds the axis and cell state tables. Figure wide axis
// indices count every axis of every plot in row major plot order, X
// axes before Y axes.
func (ly *layouter) enumerate() {
	ly.cells = make([]*cellState, len(ly.fig.Plots))
	figIdx := 0
	for pi, p := range ly.fig.Plots {
		if p == nil {
			continue
		}
		c := &cellState{plot: p, index: pi, row: pi / ly.fig.Cols, col: pi % ly.fig.Cols}
		for i, spec := range p.XAxes {
			side := Bottom
			if i > 0 {
				side = Top
			}
			a := &axisState{
				spec: spec, plot: pi, orient: Horizontal, index: i,
				figIdx: figIdx, side: side, cell: c,
				bounds: Bounds{kind: NumericBounds, i: unsetInterval()},
			}
			figIdx++
			c.x = append(c.x, a)
			ly.axes = append(ly.axes, a)
		}
		for i, spec := range p.YAxes {
			side := Left
			if i > 0 {
				side = Right
			}
			a := &axisState{
				spec: spec, plot: pi, orient: Vertical, index: i,
				figIdx: figIdx, side: side, cell: c,
				bounds: Bounds{kind: NumericBounds, i: unsetInterval()},
			}
			figIdx++
			c.y = append(c.y, a)
			ly.axes = append(ly.axes, a)
		}
		ly.cells[pi] = c
	}
}

// resolveRefs links every Shared axis to its owning axis. An owning
// axis must itself carry an Auto, Linear or Log scale: chains of
// Shared scales, including two axes referencing each other, are
// structural errors, detected here rather than resolved recursively.
func (ly *layouter) resolveRefs() error {
	for _, a := range ly.axes {
		if a.spec.Scale.Kind != Shared {
			continue
		}
		target, err := ly.findRef(a.spec.Scale.Ref)
		if err != nil {
			return err
		}
		if target == a || target.spec.Scale.Kind == Shared {
			return &SharedCycleError{Ref: a.spec.Scale.Ref}
		}
		if target.orient != a.orient {
			return &UnresolvedRefError{
				Ref:    a.spec.Scale.Ref,
				Reason: fmt.Sprintf("%s-axis cannot share a %s-axis", a.orient, target.orient),
			}
		}
		a.owner = target
		target.followers = append(target.followers, a)
	}
	return nil
}

func (ly *layouter) findRef(ref AxisRef) (*axisState, error) {
	switch ref.mode {
	case refPlot:
		for _, a := range ly.axes {
			if a.plot == ref.plot && a.orient == ref.orient && a.index == ref.index {
				return a, nil
			}
		}
		return nil, &UnresolvedRefError{Ref: ref, Reason: "no such axis"}
	case refFigure:
		for _, a := range ly.axes {
			if a.figIdx == ref.figIdx {
				return a, nil
			}
		}
		return nil, &UnresolvedRefError{Ref: ref, Reason: "no such axis"}
	case refID:
		var found *axisState
		for _, a := range ly.axes {
			if a.spec.ID != ref.id && a.spec.Title != ref.id {
				continue
			}
			if found != nil {
				return nil, &UnresolvedRefError{Ref: ref, Reason: "ambiguous: matches several axes"}
			}
			found = a
		}
		if found == nil {
			return nil, &UnresolvedRefError{Ref: ref, Reason: "no such axis"}
		}
		return found, nil
	default:
		return nil, &UnresolvedRefError{Ref: ref, Reason: "unset reference"}
	}
}

// collectBounds walks every series of every plot and unites its
// column bounds into the owning axis of the axis the series is
// attached to, so that a sharing group aggregates the data of all its
// followers.
func (ly *layouter) collectBounds() error {
	for _, c := range ly.cells {
		if c == nil {
			continue
		}
		for _, s := range c.plot.Series {
			xc, err := ly.src.Column(s.XCol)
			if err != nil {
				return fmt.Errorf("eidoplot: series %q: %w", s.Name, err)
			}
			yc, err := ly.src.Column(s.YCol)
			if err != nil {
				return fmt.Errorf("eidoplot: series %q: %w", s.Name, err)
			}
			if xc.Len() != yc.Len() {
				return &LengthMismatchError{XCol: s.XCol, YCol: s.YCol, XLen: xc.Len(), YLen: yc.Len()}
			}
			if err := accumulate(c.x[s.XAxis].ownerOf(), xc); err != nil {
				return err
			}
			if err := accumulate(c.y[s.YAxis].ownerOf(), yc); err != nil {
				return err
			}
		}
	}
	return nil
}

func accumulate(a *axisState, col data.Column) error {
	b, ok := columnBounds(col)
	if !a.hasData {
		// Adopt the column kind even without samples so that a
		// later kind mismatch is still detected.
		if a.bounds.Unset() {
			a.bounds = Bounds{kind: b.kind, i: unsetInterval()}
		}
	}
	if !ok {
		if a.bounds.kind != b.kind {
			return &KindMismatchError{A: a.bounds.kind, B: b.kind}
		}
		return nil
	}
	u, err := Unite(a.bounds, b)
	if err != nil {
		return err
	}
	a.bounds = u
	a.hasData = true
	return nil
}

// finalizeBounds applies the range policies and the degenerate span
// heuristics. Owner bounds are immutable afterwards.
func (ly *layouter) finalizeBounds() error {
	for _, a := range ly.axes {
		if a.owner != nil {
			continue
		}
		if !a.hasData || a.bounds.Unset() {
			return &UnboundedAxisError{Axis: a.name()}
		}
		a.bounds = a.spec.Scale.applyPolicy(a.bounds).DeDegenerate()
	}
	return nil
}

// placeChrome reserves the figure title band and the legend band and
// splits the remaining area into the cell grid.
func (ly *layouter) placeChrome(out *Layout) error {
	st := ly.st
	area := vg.Rectangle{
		Min: vg.Point{X: st.Pad, Y: st.Pad},
		Max: vg.Point{X: ly.size.X - st.Pad, Y: ly.size.Y - st.Pad},
	}

	if ly.fig.Title != "" {
		box, err := ly.m.MeasureText(ly.fig.Title, st.Title)
		if err != nil {
			return fmt.Errorf("eidoplot: measuring figure title: %w", err)
		}
		out.TitleBox = box
		h := st.TitleHeight
		if box.Height > h {
			h = box.Height
		}
		area.Max.Y -= h
	}

	if ly.fig.Legend != nil {
		entries := ly.legendEntries()
		legend, err := packLegend(entries, area.Max.X-area.Min.X, ly.fig.Legend.Columns, st, ly.m)
		if err != nil {
			return err
		}
		if legend != nil {
			// Bottom band, horizontally centered.
			cx := (area.Min.X + area.Max.X) / 2
			legend.Rect = vg.Rectangle{
				Min: vg.Point{X: cx - legend.Size.X/2, Y: area.Min.Y},
				Max: vg.Point{X: cx + legend.Size.X/2, Y: area.Min.Y + legend.Size.Y},
			}
			area.Min.Y += legend.Size.Y + st.Pad
			out.Legend = legend
		}
	}

	rows, cols := vg.Length(ly.fig.Rows), vg.Length(ly.fig.Cols)
	cellW := (area.Max.X - area.Min.X - st.Pad*(cols-1)) / cols
	cellH := (area.Max.Y - area.Min.Y - st.Pad*(rows-1)) / rows
	if cellW <= 0 || cellH <= 0 {
		return fmt.Errorf("eidoplot: figure size %v too small for a %dx%d grid",
			ly.size, ly.fig.Rows, ly.fig.Cols)
	}

	for _, c := range ly.cells {
		if c == nil {
			continue
		}
		// Row 0 sits at the top.
		x0 := area.Min.X + vg.Length(c.col)*(cellW+st.Pad)
		y1 := area.Max.Y - vg.Length(c.row)*(cellH+st.Pad)
		c.rect = vg.Rectangle{
			Min: vg.Point{X: x0, Y: y1 - cellH},
			Max: vg.Point{X: x0 + cellW, Y: y1},
		}
		if c.plot.Title != "" {
			box, err := ly.m.MeasureText(c.plot.Title, st.Plot.Title)
			if err != nil {
				return fmt.Errorf("eidoplot: measuring plot title: %w", err)
			}
			c.titleBox = box
		}
	}
	return nil
}

func (ly *layouter) legendEntries() []LegendEntry {
	var entries []LegendEntry
	for _, c := range ly.cells {
		if c == nil {
			continue
		}
		for _, s := range c.plot.Series {
			if s.Name == "" {
				continue
			}
			entries = append(entries, LegendEntry{Label: s.Name, Swatch: ly.st.Legend.Swatch})
		}
	}
	return entries
}

// size2Pass runs the named estimate → fix → refine sizing sequence:
//
//	estimate horizontal axis heights
//	resolve vertical axes at the estimated height      (pass 1)
//	fix plot widths from the measured vertical extents
//	resolve horizontal axes at the true width
//	re-measure the exact horizontal heights
//	re-resolve vertical axes at the corrected height   (pass 2)
//
// Horizontal axes are resolved once, at their final width; vertical
// axes exactly sizingPasses times.
func (ly *layouter) size2Pass() error {
	// Estimate horizontal extents from the label font height.
	for _, a := range ly.axes {
		if a.orient != Horizontal {
			continue
		}
		ext, err := estimateExtent(a.spec, ly.m, ly.st)
		if err != nil {
			return err
		}
		a.estExtent = ext
	}

	for pass := 1; pass <= sizingPasses; pass++ {
		if err := ly.resolveOrient(Vertical); err != nil {
			return err
		}
		if pass < sizingPasses {
			if err := ly.resolveOrient(Horizontal); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveOrient resolves every axis of one orientation figure wide,
// in two phases: all owning axes first, then all followers, so that
// one coordinate mapper exists per sharing group before any follower
// adopts it.
func (ly *layouter) resolveOrient(o Orient) error {
	for _, a := range ly.axes {
		if a.orient != o || a.owner != nil {
			continue
		}
		res, err := ResolveAxis(a.spec, a.bounds, a.side, a.cell.plotSpan(o), nil, ly.m, ly.st)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", a.name(), err)
		}
		a.res = res
	}
	for _, a := range ly.axes {
		if a.orient != o || a.owner == nil {
			continue
		}
		res, err := ResolveAxis(a.spec, Bounds{}, a.side, 0, a.owner.res.Map, ly.m, ly.st)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", a.name(), err)
		}
		a.res = res
	}
	return nil
}

// plotSpan returns the current best guess of the plot size of c along
// o: the cell size minus the axis extents resolved (or estimated) so
// far.
func (c *cellState) plotSpan(o Orient) vg.Length {
	if o == Horizontal {
		w := c.rect.Max.X - c.rect.Min.X
		for _, a := range c.y {
			w -= a.extent()
		}
		return w
	}
	h := c.rect.Max.Y - c.rect.Min.Y - c.titleBand()
	for _, a := range c.x {
		h -= a.extent()
	}
	return h
}

func (c *cellState) titleBand() vg.Length {
	if c.titleBox.Height == 0 {
		return 0
	}
	return c.titleBox.Height + c.titleBox.Height/2
}

// extent returns the most precise known cross extent of a.
func (a *axisState) extent() vg.Length {
	if a.res != nil {
		return a.res.Layout.Extent
	}
	return a.estExtent
}

// materialize computes the final plot rectangles, aligns the plot
// edges of every column and row, and rebuilds each sharing group's
// coordinate mapper at its owner's final length.
func (ly *layouter) materialize(out *Layout) error {
	for _, c := range ly.cells {
		if c == nil {
			continue
		}
		r := c.rect
		r.Max.Y -= c.titleBand()
		for _, a := range c.x {
			switch a.side {
			case Bottom:
				r.Min.Y += a.extent()
			case Top:
				r.Max.Y -= a.extent()
			}
		}
		for _, a := range c.y {
			switch a.side {
			case Left:
				r.Min.X += a.extent()
			case Right:
				r.Max.X -= a.extent()
			}
		}
		c.plotRect = r
	}

	// Cells sharing a column get identical plot left/right edges;
	// cells sharing a row identical bottom/top edges. The
	// intersection keeps every axis band inside its cell.
	for col := 0; col < ly.fig.Cols; col++ {
		var left, right vg.Length
		first := true
		for row := 0; row < ly.fig.Rows; row++ {
			c := ly.cells[row*ly.fig.Cols+col]
			if c == nil {
				continue
			}
			if first || c.plotRect.Min.X > left {
				left = c.plotRect.Min.X
			}
			if first || c.plotRect.Max.X < right {
				right = c.plotRect.Max.X
			}
			first = false
		}
		for row := 0; row < ly.fig.Rows; row++ {
			c := ly.cells[row*ly.fig.Cols+col]
			if c == nil {
				continue
			}
			c.plotRect.Min.X, c.plotRect.Max.X = left, right
		}
	}
	for row := 0; row < ly.fig.Rows; row++ {
		var bottom, top vg.Length
		first := true
		for col := 0; col < ly.fig.Cols; col++ {
			c := ly.cells[row*ly.fig.Cols+col]
			if c == nil {
				continue
			}
			if first || c.plotRect.Min.Y > bottom {
				bottom = c.plotRect.Min.Y
			}
			if first || c.plotRect.Max.Y < top {
				top = c.plotRect.Max.Y
			}
			first = false
		}
		for col := 0; col < ly.fig.Cols; col++ {
			c := ly.cells[row*ly.fig.Cols+col]
			if c == nil {
				continue
			}
			c.plotRect.Min.Y, c.plotRect.Max.Y = bottom, top
		}
	}

	for _, c := range ly.cells {
		if c == nil {
			continue
		}
		if c.plotRect.Min.X >= c.plotRect.Max.X || c.plotRect.Min.Y >= c.plotRect.Max.Y {
			return fmt.Errorf("eidoplot: plot area of cell %d collapsed; figure too small", c.index)
		}
	}

	// Alignment may have nudged the plot spans; rebuild one mapper
	// per sharing group at the owner's exact final length. Tick
	// values depend only on bounds, so labels and extents stay
	// valid.
	for _, a := range ly.axes {
		if a.owner != nil {
			continue
		}
		length := a.cell.plotRect.Max.X - a.cell.plotRect.Min.X
		if a.orient == Vertical {
			length = a.cell.plotRect.Max.Y - a.cell.plotRect.Min.Y
		}
		cm, err := newCoordMap(a.bounds, a.spec.Scale, length, a.spec.Insets)
		if err != nil {
			return err
		}
		a.res.Map = cm
		for _, f := range a.followers {
			f.res.Map = cm
			f.res.Bounds = cm.Bounds()
		}
	}

	out.Cells = make([]*PlotCell, len(ly.cells))
	for i, c := range ly.cells {
		if c == nil {
			continue
		}
		pc := &PlotCell{Plot: c.plot, Index: c.index, Rect: c.plotRect}
		for _, a := range c.x {
			pc.XAxes = append(pc.XAxes, a.res)
		}
		for _, a := range c.y {
			pc.YAxes = append(pc.YAxes, a.res)
		}
		out.Cells[i] = pc
	}
	return nil
}

func (ly *layouter) debugDump(info string) {
	if !debug {
		return
	}
	fmt.Println(info)
	for _, a := range ly.axes {
		owner := ""
		if a.owner != nil {
			owner = " -> " + a.owner.name()
		}
		fmt.Printf("    %s %s [%g:%g]%s\n",
			a.name(), a.bounds.Kind(), a.bounds.Min(), a.bounds.Max(), owner)
	}
}
