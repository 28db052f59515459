package eidoplot

import "fmt"

// A KindMismatchError reports that two bounds of different kinds were
// fed to the same axis, e.g. a numeric and a categorical column.
type KindMismatchError struct {
	A, B BoundsKind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("eidoplot: mismatched bounds kind: %s vs %s", e.A, e.B)
}

// An UnresolvedRefError reports an axis reference that matches no
// axis, more than one axis, or an out of range series axis index.
type UnresolvedRefError struct {
	Ref    AxisRef
	Reason string
}

func (e *UnresolvedRefError) Error() string {
	return fmt.Sprintf("eidoplot: unresolved axis reference %s: %s", e.Ref, e.Reason)
}

// A SharedCycleError reports a chain of Shared scales that never
// reaches an owning axis, including two axes referencing each other.
type SharedCycleError struct {
	Ref AxisRef
}

func (e *SharedCycleError) Error() string {
	return fmt.Sprintf("eidoplot: shared axis cycle through %s", e.Ref)
}

// An UnboundedAxisError reports an axis that received no finite data
// sample at all and therefore cannot be scaled.
type UnboundedAxisError struct {
	Axis string
}

func (e *UnboundedAxisError) Error() string {
	return fmt.Sprintf("eidoplot: unbounded axis %s: no finite samples", e.Axis)
}

// A LengthMismatchError reports paired series columns of different
// lengths.
type LengthMismatchError struct {
	XCol, YCol string
	XLen, YLen int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("eidoplot: column length mismatch: %s has %d values, %s has %d",
		e.XCol, e.XLen, e.YCol, e.YLen)
}

// A TinySpanError reports bounds whose span is too close to the tick
// edge tolerance for tick stepping to be well defined.
type TinySpanError struct {
	Span float64
}

func (e *TinySpanError) Error() string {
	return fmt.Sprintf("eidoplot: bounds span %g is below the tick precision limit", e.Span)
}

// An UnsupportedScaleError reports a scale or locator applied to
// bounds it cannot handle, e.g. a log scale over categories.
type UnsupportedScaleError struct {
	Scale  string
	Bounds BoundsKind
}

func (e *UnsupportedScaleError) Error() string {
	return fmt.Sprintf("eidoplot: %s scale cannot be applied to %s bounds", e.Scale, e.Bounds)
}
