package pipeline

import (
	"fmt"
	"math"

	"github.com/theoremus-urban-solutions/transport-catalogue/jsondoc"
	"github.com/theoremus-urban-solutions/transport-catalogue/render"
	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

// ParseRenderSettings reads a render_settings object. Every field is
// required. Value ranges are left to the Map query, so odd settings never
// cost the answers to other queries.
func ParseRenderSettings(n jsondoc.Node) (render.Settings, error) {
	var s render.Settings
	f, err := objectAt(n, "render_settings")
	if err != nil {
		return s, err
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"width", &s.Width},
		{"height", &s.Height},
		{"padding", &s.Padding},
		{"line_width", &s.LineWidth},
		{"stop_radius", &s.StopRadius},
		{"underlayer_width", &s.UnderlayerWidth},
	}
	for _, fl := range floats {
		if *fl.dst, err = f.float(fl.key); err != nil {
			return s, err
		}
	}

	if s.BusLabelFontSize, err = fontSize(f, "bus_label_font_size"); err != nil {
		return s, err
	}
	if s.StopLabelFontSize, err = fontSize(f, "stop_label_font_size"); err != nil {
		return s, err
	}
	if s.BusLabelOffset, err = offset(f, "bus_label_offset"); err != nil {
		return s, err
	}
	if s.StopLabelOffset, err = offset(f, "stop_label_offset"); err != nil {
		return s, err
	}

	under, err := f.node("underlayer_color")
	if err != nil {
		return s, err
	}
	if s.UnderlayerColor, err = ParseColor(under); err != nil {
		return s, fieldError(f.key("underlayer_color"), err)
	}

	palette, err := f.array("color_palette")
	if err != nil {
		return s, err
	}
	s.ColorPalette = make([]svg.Color, 0, len(palette))
	for i, c := range palette {
		color, err := ParseColor(c)
		if err != nil {
			return s, fieldError(fmt.Sprintf("%s[%d]", f.key("color_palette"), i), err)
		}
		s.ColorPalette = append(s.ColorPalette, color)
	}

	return s, nil
}

func fontSize(f fields, key string) (uint32, error) {
	v, err := f.integer(key)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, invalid(f.key(key), "negative font size")
	}
	if int64(v) > math.MaxUint32 {
		return 0, invalid(f.key(key), fmt.Sprintf("font size %d out of range", v))
	}
	return uint32(v), nil
}

func offset(f fields, key string) (svg.Point, error) {
	arr, err := f.array(key)
	if err != nil {
		return svg.Point{}, err
	}
	if len(arr) != 2 {
		return svg.Point{}, invalid(f.key(key), fmt.Sprintf("expected [dx, dy], got %d values", len(arr)))
	}
	dx, err := arr[0].AsFloat()
	if err != nil {
		return svg.Point{}, fieldError(f.key(key), err)
	}
	dy, err := arr[1].AsFloat()
	if err != nil {
		return svg.Point{}, fieldError(f.key(key), err)
	}
	return svg.Point{X: dx, Y: dy}, nil
}

// ParseColor decodes a color: a string is a named color, [r, g, b] is rgb
// and [r, g, b, opacity] is rgba. Anything else is no color.
func ParseColor(n jsondoc.Node) (svg.Color, error) {
	if s, err := n.AsString(); err == nil {
		return svg.Named(s), nil
	}
	arr, err := n.AsArray()
	if err != nil || (len(arr) != 3 && len(arr) != 4) {
		return svg.NoneColor, nil
	}

	var rgb [3]uint8
	for i := range rgb {
		v, err := arr[i].AsInt()
		if err != nil {
			return svg.NoneColor, err
		}
		rgb[i] = uint8(v)
	}
	if len(arr) == 3 {
		return svg.RGB(rgb[0], rgb[1], rgb[2]), nil
	}
	opacity, err := arr[3].AsFloat()
	if err != nil {
		return svg.NoneColor, err
	}
	return svg.RGBA(rgb[0], rgb[1], rgb[2], opacity), nil
}
