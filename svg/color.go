package svg

import (
	"strconv"
	"strings"
)

type colorKind uint8

const (
	colorNone colorKind = iota
	colorNamed
	colorRGB
	colorRGBA
)

// Color is one of: none, a named color, rgb or rgba. The zero Color is none.
type Color struct {
	kind    colorKind
	name    string
	r, g, b uint8
	opacity float64
}

// NoneColor is the absence of a color.
var NoneColor = Color{}

// Named is a color given by its SVG name, such as "red" or "none".
func Named(name string) Color { return Color{kind: colorNamed, name: name} }

// RGB is an opaque color from its channels.
func RGB(r, g, b uint8) Color { return Color{kind: colorRGB, r: r, g: g, b: b} }

// RGBA is a color with an opacity between 0 and 1.
func RGBA(r, g, b uint8, opacity float64) Color {
	return Color{kind: colorRGBA, r: r, g: g, b: b, opacity: opacity}
}

// IsNone reports whether c is the zero color.
func (c Color) IsNone() bool { return c.kind == colorNone }

func (c Color) String() string {
	switch c.kind {
	case colorNamed:
		return c.name
	case colorRGB:
		var b strings.Builder
		b.WriteString("rgb(")
		writeChannels(&b, c)
		b.WriteByte(')')
		return b.String()
	case colorRGBA:
		var b strings.Builder
		b.WriteString("rgba(")
		writeChannels(&b, c)
		b.WriteByte(',')
		b.WriteString(formatNumber(c.opacity))
		b.WriteByte(')')
		return b.String()
	}
	return "none"
}

func writeChannels(b *strings.Builder, c Color) {
	b.WriteString(strconv.Itoa(int(c.r)))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(int(c.g)))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(int(c.b)))
}

// formatNumber prints v with six significant digits, the way SVG coordinates
// are written throughout the document.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
