package eidoplot

import "gonum.org/v1/plot"

// GonumTicks adapts a resolved axis to gonum/plot's Ticker interface,
// so a prepared tick set can drive a stock gonum plot axis. Minor
// ticks carry no label, following the plot.Tick convention.
type GonumTicks struct {
	Axis *ResolvedAxis
}

var _ plot.Ticker = GonumTicks{}

// Ticks returns the resolved ticks clipped to [min, max].
func (g GonumTicks) Ticks(min, max float64) []plot.Tick {
	var out []plot.Tick
	for _, t := range g.Axis.Layout.Major {
		if t.Value < min-edgeTol || t.Value > max+edgeTol {
			continue
		}
		out = append(out, plot.Tick{Value: t.Value, Label: t.Label})
	}
	for _, v := range g.Axis.Layout.Minor {
		if v < min-edgeTol || v > max+edgeTol {
			continue
		}
		out = append(out, plot.Tick{Value: v})
	}
	return out
}
