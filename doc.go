// Package eidoplot computes complete, resolution independent figure
// layouts from a declarative description of plots, axes, series and
// legends.
//
// Given a Figure tree and a column oriented data Source, LayoutFigure
// resolves the data bounds of every axis (uniting bounds across
// shared-axis groups), locates and formats ticks, builds coordinate
// mappers and sizes every plot rectangle of the subplot grid. The
// result is pure geometry: rectangles, tick values, measured label
// boxes. Nothing is drawn; a renderer consumes the returned Layout.
//
// Bounds
//
// An axis covers numeric, categorical or time data. The three kinds
// never mix on one axis: feeding a numeric and a categorical column
// to the same axis is a configuration error. Degenerate bounds are
// widened so that downstream division is always safe.
//
// Shared axes
//
// An axis whose Scale is Shared owns no bounds of its own. It reuses
// the coordinate mapper of the axis it references, which is resolved
// once for the whole figure. Follower axes suppress their tick labels
// by default since they would repeat the owner's.
//
// Sizing
//
// The height of a horizontal axis depends on its tick labels, which
// depend on tick values, which depend on bounds possibly shared with
// other plots. The engine resolves this circularity with a fixed
// two-pass scheme: estimate horizontal extents, resolve vertical axes,
// fix the width, resolve horizontal axes exactly, then correct the
// vertical axes once. The pass count is a contract, not a fixed point
// iteration.
package eidoplot
