package render

import (
	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

// Settings controls canvas geometry and the look of routes and labels.
// Canvas size and padding are taken as given; a padding wider than half the
// canvas only flips the projection.
type Settings struct {
	Width             float64
	Height            float64
	Padding           float64
	LineWidth         float64 `validate:"gte=0"`
	StopRadius        float64 `validate:"gte=0"`
	BusLabelFontSize  uint32
	BusLabelOffset    svg.Point
	StopLabelFontSize uint32
	StopLabelOffset   svg.Point
	UnderlayerColor   svg.Color
	UnderlayerWidth   float64 `validate:"gte=0"`
	ColorPalette      []svg.Color
}

// Validate rejects negative stroke widths and radii, which have no SVG
// rendering.
func (s Settings) Validate() error {
	return validate.Struct(s)
}

// Style holds the fixed presentation choices that are not part of the
// per-request settings.
type Style struct {
	FontFamily     string
	BusLabelWeight string
	StopFill       svg.Color
	StopLabelFill  svg.Color
	LineCap        svg.StrokeLineCap
	LineJoin       svg.StrokeLineJoin
}

// DefaultStyle returns Verdana labels, bold route names, white stops and
// black stop names with round caps and joins.
func DefaultStyle() Style {
	return Style{
		FontFamily:     "Verdana",
		BusLabelWeight: "bold",
		StopFill:       svg.Named("white"),
		StopLabelFill:  svg.Named("black"),
		LineCap:        svg.LineCapRound,
		LineJoin:       svg.LineJoinRound,
	}
}

var validate = validator.New()
