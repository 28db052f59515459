package eidoplot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls the metrics and text styles of a layout.
type Style struct {
	Background color.Color

	Title       draw.TextStyle
	TitleHeight vg.Length

	// Pad separates grid cells from each other and from the figure
	// border.
	Pad vg.Length

	Plot struct {
		Background color.Color
		Title      draw.TextStyle
	}

	Axis struct {
		Title    draw.TextStyle
		TitlePad vg.Length

		Label    draw.TextStyle
		LabelPad vg.Length

		Line draw.LineStyle

		MajorTick struct {
			draw.LineStyle
			Length vg.Length
		}
		MinorTick struct {
			draw.LineStyle
			Length vg.Length
		}
	}

	Grid struct {
		Major draw.LineStyle
		Minor draw.LineStyle
	}

	Legend struct {
		Label  draw.TextStyle
		Swatch vg.Length
		Pad    vg.Length
		ColPad vg.Length
	}
}

// DefaultStyle returns a Style based on baseFontSize for axis and
// legend text. The figure title is a bit bigger, tick labels a bit
// smaller.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	titleFont, err := vg.MakeFont("Helvetica-Bold", scale(baseFontSize, 1.2))
	if err != nil {
		panic(err)
	}
	baseFont, err := vg.MakeFont("Helvetica", baseFontSize)
	if err != nil {
		panic(err)
	}
	tickFont, err := vg.MakeFont("Helvetica", scale(baseFontSize, 1/1.2))
	if err != nil {
		panic(err)
	}

	s := Style{}
	s.Background = color.White
	s.TitleHeight = scale(baseFontSize, 3)
	s.Title.Color = color.Black
	s.Title.Font = titleFont
	s.Title.XAlign = draw.XCenter
	s.Title.YAlign = draw.YTop

	s.Pad = scale(baseFontSize, 0.5)

	s.Plot.Background = color.Gray16{0xeeee}
	s.Plot.Title.Color = color.Black
	s.Plot.Title.Font = baseFont
	s.Plot.Title.XAlign = draw.XCenter
	s.Plot.Title.YAlign = draw.YTop

	s.Axis.Title.Color = color.Black
	s.Axis.Title.Font = baseFont
	s.Axis.Title.XAlign = draw.XCenter
	s.Axis.Title.YAlign = draw.YTop
	s.Axis.TitlePad = scale(baseFontSize, 0.3)

	s.Axis.Label.Color = color.Black
	s.Axis.Label.Font = tickFont
	s.Axis.Label.XAlign = draw.XCenter
	s.Axis.Label.YAlign = draw.YTop
	s.Axis.LabelPad = scale(baseFontSize, 0.25)

	s.Axis.Line.Color = color.Black
	s.Axis.Line.Width = 0.5

	s.Axis.MajorTick.Color = color.Black
	s.Axis.MajorTick.Width = 1
	s.Axis.MajorTick.Length = 5
	s.Axis.MinorTick.Color = color.Gray16{0x8888}
	s.Axis.MinorTick.Width = 0.5
	s.Axis.MinorTick.Length = 2.5

	s.Grid.Major.Color = color.White
	s.Grid.Major.Width = 1
	s.Grid.Minor.Color = color.White
	s.Grid.Minor.Width = 0.5

	s.Legend.Label.Color = color.Black
	s.Legend.Label.Font = baseFont
	s.Legend.Label.XAlign = draw.XLeft
	s.Legend.Label.YAlign = draw.YCenter
	s.Legend.Swatch = baseFontSize
	s.Legend.Pad = scale(baseFontSize, 0.4)
	s.Legend.ColPad = scale(baseFontSize, 1)

	return s
}
