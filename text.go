package eidoplot

import (
	"fmt"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A TextBox is the measured extent of a single line of text.
type TextBox struct {
	Width   vg.Length
	Height  vg.Length
	Descent vg.Length
}

// A Measurer measures text. The layout engine obtains every label and
// title extent through this capability; it never touches glyphs
// itself. Implementations may be backed by real font metrics or by a
// fixed rule.
type Measurer interface {
	MeasureText(s string, sty draw.TextStyle) (TextBox, error)
}

// styleMeasurer measures through the metrics of the style's font.
type styleMeasurer struct{}

func (styleMeasurer) MeasureText(s string, sty draw.TextStyle) (TextBox, error) {
	if sty.Font.Size == 0 {
		return TextBox{}, fmt.Errorf("eidoplot: measuring %q with an unsized font", s)
	}
	ext := sty.Font.Extents()
	return TextBox{
		Width:   sty.Width(s),
		Height:  ext.Height,
		Descent: ext.Descent,
	}, nil
}

// NewMeasurer returns the font backed Measurer with caching. Repeated
// measurements of the same text in the same font are free.
func NewMeasurer() Measurer {
	return Cached(styleMeasurer{})
}

type measureKey struct {
	font string
	size vg.Length
	text string
}

type cachedMeasurer struct {
	m     Measurer
	cache map[measureKey]TextBox
}

// Cached wraps m with a measurement cache.
func Cached(m Measurer) Measurer {
	return &cachedMeasurer{m: m, cache: make(map[measureKey]TextBox)}
}

func (c *cachedMeasurer) MeasureText(s string, sty draw.TextStyle) (TextBox, error) {
	key := measureKey{font: sty.Font.Name(), size: sty.Font.Size, text: s}
	if box, ok := c.cache[key]; ok {
		return box, nil
	}
	box, err := c.m.MeasureText(s, sty)
	if err != nil {
		return TextBox{}, err
	}
	c.cache[key] = box
	return box, nil
}

// RuleMeasurer measures text with a fixed advance per rune. It is
// deterministic and needs no font data, which makes it suitable for
// headless layout and for tests.
type RuleMeasurer struct {
	// Advance is the width of one rune. Zero means 6 points.
	Advance vg.Length
	// Height is the line height. Zero means 12 points.
	Height vg.Length
}

func (m RuleMeasurer) MeasureText(s string, sty draw.TextStyle) (TextBox, error) {
	adv, h := m.Advance, m.Height
	if adv == 0 {
		adv = 6
	}
	if h == 0 {
		h = 12
	}
	n := 0
	for range s {
		n++
	}
	return TextBox{Width: vg.Length(n) * adv, Height: h, Descent: h / 4}, nil
}
