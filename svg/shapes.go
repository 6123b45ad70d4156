package svg

import (
	"strconv"
	"strings"
)

// StrokeLineCap is the stroke-linecap attribute. The zero value omits it.
type StrokeLineCap uint8

const (
	LineCapButt StrokeLineCap = iota
	LineCapRound
	LineCapSquare
)

func (c StrokeLineCap) String() string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	}
	return "butt"
}

// StrokeLineJoin is the stroke-linejoin attribute. The zero value omits it.
type StrokeLineJoin uint8

const (
	LineJoinMiter StrokeLineJoin = iota
	LineJoinArcs
	LineJoinBevel
	LineJoinMiterClip
	LineJoinRound
)

func (j StrokeLineJoin) String() string {
	switch j {
	case LineJoinArcs:
		return "arcs"
	case LineJoinBevel:
		return "bevel"
	case LineJoinMiterClip:
		return "miter-clip"
	case LineJoinRound:
		return "round"
	}
	return "miter"
}

// Point is a canvas position.
type Point struct {
	X float64
	Y float64
}

// PathProps holds the presentation attributes shared by every shape.
type PathProps struct {
	Fill        Color
	Stroke      Color
	StrokeWidth float64
	LineCap     StrokeLineCap
	LineJoin    StrokeLineJoin
}

// DefaultPathProps returns the SVG defaults: no fill, no stroke, width 1.
func DefaultPathProps() PathProps {
	return PathProps{StrokeWidth: 1.0}
}

func (p PathProps) write(b *strings.Builder) {
	if !p.Fill.IsNone() {
		writeAttr(b, "fill", p.Fill.String())
	}
	if !p.Stroke.IsNone() {
		writeAttr(b, "stroke", p.Stroke.String())
	}
	if p.StrokeWidth != 1.0 {
		writeAttr(b, "stroke-width", formatNumber(p.StrokeWidth))
	}
	if p.LineCap != LineCapButt {
		writeAttr(b, "stroke-linecap", p.LineCap.String())
	}
	if p.LineJoin != LineJoinMiter {
		writeAttr(b, "stroke-linejoin", p.LineJoin.String())
	}
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(value)
	b.WriteByte('"')
}

// Circle is a <circle> element.
type Circle struct {
	PathProps
	Center Point
	Radius float64
}

// NewCircle returns a circle at center.
func NewCircle(center Point, radius float64) *Circle {
	return &Circle{PathProps: DefaultPathProps(), Center: center, Radius: radius}
}

func (c *Circle) writeTo(b *strings.Builder) {
	b.WriteString(`<circle cx="`)
	b.WriteString(formatNumber(c.Center.X))
	b.WriteString(`" cy="`)
	b.WriteString(formatNumber(c.Center.Y))
	b.WriteString(`" r="`)
	b.WriteString(formatNumber(c.Radius))
	b.WriteByte('"')
	c.PathProps.write(b)
	b.WriteString("/>")
}

// Polyline is a <polyline> element.
type Polyline struct {
	PathProps
	Points []Point
}

// NewPolyline returns a polyline without points.
func NewPolyline() *Polyline {
	return &Polyline{PathProps: DefaultPathProps()}
}

// AddPoint appends p and returns l for chaining.
func (l *Polyline) AddPoint(p Point) *Polyline {
	l.Points = append(l.Points, p)
	return l
}

func (l *Polyline) writeTo(b *strings.Builder) {
	b.WriteString(`<polyline points="`)
	for i, p := range l.Points {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatNumber(p.X))
		b.WriteByte(',')
		b.WriteString(formatNumber(p.Y))
	}
	b.WriteByte('"')
	l.PathProps.write(b)
	b.WriteString("/>")
}

// Text is a <text> element. Offset is written as dx/dy.
type Text struct {
	PathProps
	Position   Point
	Offset     Point
	FontSize   uint32
	FontFamily string
	FontWeight string
	Data       string
}

// NewText returns an empty text at the origin.
func NewText() *Text {
	return &Text{PathProps: DefaultPathProps(), FontSize: 1}
}

func (t *Text) writeTo(b *strings.Builder) {
	b.WriteString("<text")
	t.PathProps.write(b)
	writeAttr(b, "x", formatNumber(t.Position.X))
	writeAttr(b, "y", formatNumber(t.Position.Y))
	writeAttr(b, "dx", formatNumber(t.Offset.X))
	writeAttr(b, "dy", formatNumber(t.Offset.Y))
	writeAttr(b, "font-size", strconv.FormatUint(uint64(t.FontSize), 10))
	if t.FontFamily != "" {
		writeAttr(b, "font-family", t.FontFamily)
	}
	if t.FontWeight != "" {
		writeAttr(b, "font-weight", t.FontWeight)
	}
	b.WriteByte('>')
	b.WriteString(xmlEscape(t.Data))
	b.WriteString("</text>")
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}
