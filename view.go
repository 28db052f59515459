package eidoplot

// ApplyView replaces the coordinate mapper of the sharing group that
// ref belongs to with one covering b, along with the dependent tick
// and label data (zoom and pan). The plot rectangles are untouched.
//
// The whole group is rebuilt and validated before anything is
// swapped: either every axis of the group moves to the new view in
// one step or, on error, nothing changes. The previous mapper is
// never mutated; readers holding it keep a consistent old view.
func (l *Layout) ApplyView(ref AxisRef, b Bounds) error {
	ly := &layouter{fig: l.Fig, axes: l.axes}
	a, err := ly.findRef(ref)
	if err != nil {
		return err
	}
	owner := a.ownerOf()
	if b.Kind() != owner.bounds.Kind() {
		return &KindMismatchError{A: owner.bounds.Kind(), B: b.Kind()}
	}
	if b.Unset() {
		return &UnboundedAxisError{Axis: owner.name()}
	}
	b = b.DeDegenerate()

	res, err := ResolveAxis(owner.spec, b, owner.side, owner.res.Map.Length(), nil, l.m, l.style)
	if err != nil {
		return err
	}
	group := map[*axisState]*ResolvedAxis{owner: res}
	for _, f := range owner.followers {
		fr, err := ResolveAxis(f.spec, Bounds{}, f.side, 0, res.Map, l.m, l.style)
		if err != nil {
			return err
		}
		group[f] = fr
	}

	// Commit. Nothing above mutated the layout.
	for ax, r := range group {
		ax.res = r
		ax.bounds = r.Bounds
		pc := l.Cells[ax.plot]
		if ax.orient == Horizontal {
			pc.XAxes[ax.index] = r
		} else {
			pc.YAxes[ax.index] = r
		}
	}
	return nil
}
