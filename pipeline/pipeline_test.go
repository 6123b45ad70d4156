package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
	"github.com/theoremus-urban-solutions/transport-catalogue/jsondoc"
	"github.com/theoremus-urban-solutions/transport-catalogue/pipeline"
	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

const renderSettingsJSON = `{
    "width": 600, "height": 400, "padding": 50,
    "line_width": 14, "stop_radius": 5,
    "bus_label_font_size": 20, "bus_label_offset": [7, 15],
    "stop_label_font_size": 20, "stop_label_offset": [7, -3],
    "underlayer_color": [255, 255, 255, 0.85], "underlayer_width": 3,
    "color_palette": ["green", [255, 160, 0], "red"]
}`

func run(t *testing.T, input string, opts pipeline.Options) string {
	t.Helper()
	var out bytes.Buffer
	if err := pipeline.Run(context.Background(), strings.NewReader(input), &out, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out.String()
}

func TestRun_BusInfo(t *testing.T) {
	input := `{
		"base_requests": [
			{"type": "Bus", "name": "1", "stops": ["A", "B"], "is_roundtrip": true},
			{"type": "Stop", "name": "A", "latitude": 55.0, "longitude": 37.0, "road_distances": {"B": 1000}},
			{"type": "Stop", "name": "B", "latitude": 55.1, "longitude": 37.1}
		],
		"stat_requests": [
			{"id": 1, "type": "Bus", "name": "1"},
			{"type": "Bus", "name": "X42", "id": 2}
		]
	}`

	root, err := jsondoc.LoadString(run(t, input, pipeline.DefaultOptions()))
	if err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	answers, _ := root.AsArray()
	if len(answers) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(answers))
	}

	bus, _ := answers[0].AsObject()
	checkInt := func(key string, want int) {
		t.Helper()
		n, ok := bus.Lookup(key)
		if !ok {
			t.Fatalf("missing %s", key)
		}
		got, err := n.AsInt()
		if err != nil || got != want {
			t.Errorf("%s: expected %d, got %d (%v)", key, want, got, err)
		}
	}
	checkInt("request_id", 1)
	checkInt("route_length", 1000)
	checkInt("stop_count", 2)
	checkInt("unique_stop_count", 2)

	curvatureNode, _ := bus.Lookup("curvature")
	curvature, err := curvatureNode.AsFloat()
	if err != nil {
		t.Fatalf("curvature: %v", err)
	}
	want := 1000 / geo.Distance(geo.Coordinates{Lat: 55.0, Lng: 37.0}, geo.Coordinates{Lat: 55.1, Lng: 37.1})
	if math.Abs(curvature-want) > 1e-9 {
		t.Errorf("expected curvature %v, got %v", want, curvature)
	}

	expected := jsondoc.NewObject(jsondoc.Object{
		"request_id":    jsondoc.Int(2),
		"error_message": jsondoc.String("not found"),
	})
	if !answers[1].Equal(expected) {
		t.Errorf("unexpected not found answer: %s", jsondoc.Sprint(answers[1]))
	}
}

func TestRun_StopQueriesExactOutput(t *testing.T) {
	input := `{
		"base_requests": [
			{"type": "Stop", "name": "A", "latitude": 55.0, "longitude": 37.0, "road_distances": {}},
			{"type": "Stop", "name": "B", "latitude": 55.1, "longitude": 37.1, "road_distances": {}},
			{"type": "Stop", "name": "C", "latitude": 55.2, "longitude": 37.2, "road_distances": {}},
			{"type": "Bus", "name": "14", "stops": ["A", "B"], "is_roundtrip": false}
		],
		"stat_requests": [
			{"id": 1, "type": "Stop", "name": "A"},
			{"id": 2, "type": "Stop", "name": "Z"},
			{"id": 3, "type": "Bus", "name": "X42"},
			{"id": 4, "type": "Stop", "name": "C"}
		]
	}`

	want := `[
    {
        "buses": [
            "14"
        ],
        "request_id": 1
    },
    {
        "error_message": "not found",
        "request_id": 2
    },
    {
        "error_message": "not found",
        "request_id": 3
    },
    {
        "buses": [],
        "request_id": 4
    }
]`
	if got := run(t, input, pipeline.DefaultOptions()); got != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestRun_MapQuery(t *testing.T) {
	input := `{
		"base_requests": [
			{"type": "Stop", "name": "A", "latitude": 55.0, "longitude": 37.0},
			{"type": "Stop", "name": "B", "latitude": 55.1, "longitude": 37.1},
			{"type": "Bus", "name": "1", "stops": ["A", "B", "A"], "is_roundtrip": true}
		],
		"stat_requests": [
			{"id": 7, "type": "Map"},
			{"id": 8, "type": "Map"}
		],
		"render_settings": ` + renderSettingsJSON + `
	}`

	root, err := jsondoc.LoadString(run(t, input, pipeline.DefaultOptions()))
	if err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	answers, _ := root.AsArray()
	if len(answers) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(answers))
	}
	obj, _ := answers[0].AsObject()
	mapNode, ok := obj.Lookup("map")
	if !ok {
		t.Fatalf("map answer without map: %s", jsondoc.Sprint(answers[0]))
	}
	doc, _ := mapNode.AsString()
	if !strings.HasPrefix(doc, `<?xml version="1.0" encoding="UTF-8" ?>`) || !strings.HasSuffix(doc, "</svg>") {
		t.Errorf("map is not a complete SVG document:\n%s", doc)
	}
	if !strings.Contains(doc, `stroke="green"`) {
		t.Error("first route should use the first palette color")
	}
	if !answers[0].Equal(jsondoc.NewObject(jsondoc.Object{"request_id": jsondoc.Int(7), "map": jsondoc.String(doc)})) {
		t.Errorf("unexpected map answer keys: %s", jsondoc.Sprint(answers[0]))
	}

	second, _ := answers[1].AsObject()
	secondMap, _ := second.Lookup("map")
	if !secondMap.Equal(mapNode) {
		t.Error("repeated map queries should render the same document")
	}
}

func TestRun_OptionalSections(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no stat requests",
			input: `{"base_requests": []}`,
			want:  `[]`,
		},
		{
			name:  "map without settings",
			input: `{"base_requests": [], "stat_requests": [{"id": 1, "type": "Map"}]}`,
			want:  "[\n    {\n        \"error_message\": \"render settings missing\",\n        \"request_id\": 1\n    }\n]",
		},
		{
			name:  "unknown query type",
			input: `{"base_requests": [], "stat_requests": [{"id": 5, "type": "Route", "name": "x"}]}`,
			want:  "[\n    {\n        \"error_message\": \"unknown request type\",\n        \"request_id\": 5\n    }\n]",
		},
		{
			name:  "unknown creation command ignored",
			input: `{"base_requests": [{"type": "Tram", "name": "T1"}], "stat_requests": [{"id": 1, "type": "Bus", "name": "T1"}]}`,
			want:  "[\n    {\n        \"error_message\": \"not found\",\n        \"request_id\": 1\n    }\n]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(t, tt.input, pipeline.DefaultOptions()); got != tt.want {
				t.Errorf("expected:\n%s\ngot:\n%s", tt.want, got)
			}
		})
	}
}

func TestRun_CustomUnknownTypeMessage(t *testing.T) {
	opts := pipeline.DefaultOptions()
	opts.UnknownTypeMessage = "unsupported"
	got := run(t, `{"base_requests": [], "stat_requests": [{"id": 1, "type": "Tram"}]}`, opts)
	if !strings.Contains(got, `"error_message": "unsupported"`) {
		t.Errorf("unexpected output %s", got)
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(error) bool
	}{
		{
			name:  "malformed json",
			input: `{"base_requests": [}`,
			check: func(err error) bool {
				var perr *jsondoc.ParseError
				return errors.As(err, &perr)
			},
		},
		{
			name:  "root is not an object",
			input: `[]`,
			check: func(err error) bool {
				var mismatch *jsondoc.TypeMismatchError
				return errors.As(err, &mismatch)
			},
		},
		{
			name:  "missing base requests",
			input: `{"stat_requests": []}`,
			check: func(err error) bool { return errors.Is(err, pipeline.ErrMissingField) },
		},
		{
			name:  "stop without latitude",
			input: `{"base_requests": [{"type": "Stop", "name": "A", "longitude": 1}]}`,
			check: func(err error) bool { return errors.Is(err, pipeline.ErrMissingField) },
		},
		{
			name:  "bus name is a number",
			input: `{"base_requests": [{"type": "Bus", "name": 14, "stops": [], "is_roundtrip": true}]}`,
			check: func(err error) bool {
				var mismatch *jsondoc.TypeMismatchError
				return errors.As(err, &mismatch)
			},
		},
		{
			name:  "query id is a string",
			input: `{"base_requests": [], "stat_requests": [{"id": "1", "type": "Bus", "name": "1"}]}`,
			check: func(err error) bool {
				var mismatch *jsondoc.TypeMismatchError
				return errors.As(err, &mismatch)
			},
		},
		{
			name:  "font size beyond uint32",
			input: `{"base_requests": [], "render_settings": ` + strings.Replace(renderSettingsJSON, `"bus_label_font_size": 20`, `"bus_label_font_size": 4294967296`, 1) + `}`,
			check: func(err error) bool { return errors.Is(err, pipeline.ErrInvalidField) },
		},
		{
			name:  "bad label offset",
			input: `{"base_requests": [], "render_settings": ` + strings.Replace(renderSettingsJSON, "[7, 15]", "[7]", 1) + `}`,
			check: func(err error) bool { return errors.Is(err, pipeline.ErrInvalidField) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := pipeline.Run(context.Background(), strings.NewReader(tt.input), &out, pipeline.DefaultOptions())
			if err == nil {
				t.Fatal("expected error")
			}
			if !tt.check(err) {
				t.Errorf("unexpected error type: %v", err)
			}
			if out.Len() != 0 {
				t.Errorf("no output expected on failure, got %q", out.String())
			}
		})
	}
}

func TestRun_UnusualRenderSettingsKeepOtherAnswers(t *testing.T) {
	network := `"base_requests": [
			{"type": "Stop", "name": "A", "latitude": 55.0, "longitude": 37.0, "road_distances": {"B": 1000}},
			{"type": "Stop", "name": "B", "latitude": 55.1, "longitude": 37.1, "road_distances": {}},
			{"type": "Bus", "name": "1", "stops": ["A", "B"], "is_roundtrip": false}
		],
		"stat_requests": [
			{"id": 1, "type": "Bus", "name": "1"},
			{"id": 2, "type": "Map"}
		]`

	tests := []struct {
		name     string
		settings string
		mapError string
	}{
		{
			name:     "padding wider than half the canvas",
			settings: strings.NewReplacer(`"width": 600`, `"width": 100`, `"height": 400`, `"height": 100`, `"padding": 50`, `"padding": 60`).Replace(renderSettingsJSON),
		},
		{
			name:     "zero width",
			settings: strings.Replace(renderSettingsJSON, `"width": 600`, `"width": 0`, 1),
		},
		{
			name:     "negative line width",
			settings: strings.Replace(renderSettingsJSON, `"line_width": 14`, `"line_width": -14`, 1),
			mapError: "invalid render settings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := run(t, `{`+network+`, "render_settings": `+tt.settings+`}`, pipeline.DefaultOptions())
			root, err := jsondoc.LoadString(out)
			if err != nil {
				t.Fatalf("output is not valid JSON: %v", err)
			}
			answers, _ := root.AsArray()
			if len(answers) != 2 {
				t.Fatalf("expected 2 answers, got %d", len(answers))
			}

			bus, _ := answers[0].AsObject()
			length, ok := bus.Lookup("route_length")
			if !ok {
				t.Fatalf("bus query not answered: %s", jsondoc.Sprint(answers[0]))
			}
			if got, _ := length.AsInt(); got != 2000 {
				t.Errorf("expected route length 2000, got %d", got)
			}

			m, _ := answers[1].AsObject()
			if tt.mapError == "" {
				if _, ok := m.Lookup("map"); !ok {
					t.Errorf("expected a map, got %s", jsondoc.Sprint(answers[1]))
				}
				return
			}
			msg, ok := m.Lookup("error_message")
			if !ok {
				t.Fatalf("expected error message, got %s", jsondoc.Sprint(answers[1]))
			}
			if got, _ := msg.AsString(); got != tt.mapError {
				t.Errorf("expected %q, got %q", tt.mapError, got)
			}
		})
	}
}

func TestApply_SkipsUnknownStops(t *testing.T) {
	root, err := jsondoc.LoadString(`{
		"base_requests": [
			{"type": "Stop", "name": "A", "latitude": 0, "longitude": 0, "road_distances": {"B": 300, "Ghost": 10}},
			{"type": "Stop", "name": "B", "latitude": 0, "longitude": 0.01, "road_distances": {"A": 400}},
			{"type": "Bus", "name": "1", "stops": ["A", "Ghost", "B"], "is_roundtrip": false}
		]
	}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req, err := pipeline.ParseRequest(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cat := catalogue.New()
	pipeline.Apply(cat, req, zerolog.Nop())

	bus, ok := cat.FindBus("1")
	if !ok {
		t.Fatal("bus should be added")
	}
	var names []string
	for _, s := range bus.Stops {
		names = append(names, s.Name)
	}
	if strings.Join(names, ",") != "A,B,A" {
		t.Errorf("expected route A,B,A, got %v", names)
	}
	if got := cat.Distance("A", "B"); got != 300 {
		t.Errorf("expected 300, got %d", got)
	}
	if got := cat.Distance("B", "A"); got != 400 {
		t.Errorf("expected 400, got %d", got)
	}
	if got := cat.Stats().Distances; got != 2 {
		t.Errorf("expected 2 stored distances, got %d", got)
	}
	if info := cat.BusInfo(bus); info.RouteLength != 700 {
		t.Errorf("expected route length 700, got %d", info.RouteLength)
	}
}

func TestAnswer_ConcurrentMatchesSequential(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`{"base_requests": [`)
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&sb, `{"type": "Stop", "name": "S%02d", "latitude": %d.5, "longitude": 37.%d, "road_distances": {"S%02d": %d}},`, i, 50+i%3, i, (i+1)%20, 100*(i+1))
	}
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&sb, `{"type": "Bus", "name": "%d", "stops": ["S%02d", "S%02d", "S%02d"], "is_roundtrip": %t},`, i, i, i+5, i+10, i%2 == 0)
	}
	sb.WriteString(`{"type": "Stop", "name": "Last", "latitude": 51, "longitude": 38}], "stat_requests": [`)
	for i := 0; i < 60; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		switch i % 3 {
		case 0:
			fmt.Fprintf(&sb, `{"id": %d, "type": "Bus", "name": "%d"}`, i, i%12)
		case 1:
			fmt.Fprintf(&sb, `{"id": %d, "type": "Stop", "name": "S%02d"}`, i, i%22)
		default:
			fmt.Fprintf(&sb, `{"id": %d, "type": "Map"}`, i)
		}
	}
	sb.WriteString(`], "render_settings": ` + renderSettingsJSON + `}`)
	input := sb.String()

	sequential := run(t, input, pipeline.DefaultOptions())

	opts := pipeline.DefaultOptions()
	opts.Workers = 8
	concurrent := run(t, input, opts)

	if sequential != concurrent {
		t.Error("concurrent answering changed the output")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  svg.Color
	}{
		{name: "named", input: `"red"`, want: svg.Named("red")},
		{name: "rgb", input: `[255, 16, 12]`, want: svg.RGB(255, 16, 12)},
		{name: "rgba", input: `[255, 200, 23, 0.85]`, want: svg.RGBA(255, 200, 23, 0.85)},
		{name: "rgba integer opacity", input: `[1, 2, 3, 1]`, want: svg.RGBA(1, 2, 3, 1)},
		{name: "wrong length", input: `[1, 2]`, want: svg.NoneColor},
		{name: "number", input: `12`, want: svg.NoneColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := jsondoc.LoadString(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, err := pipeline.ParseColor(n)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}

	n, _ := jsondoc.LoadString(`["1", 2, 3]`)
	if _, err := pipeline.ParseColor(n); err == nil {
		t.Error("string channel should be rejected")
	}
}

func TestParseRenderSettings(t *testing.T) {
	n, err := jsondoc.LoadString(renderSettingsJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := pipeline.ParseRenderSettings(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Width != 600 || s.Height != 400 || s.Padding != 50 {
		t.Errorf("unexpected canvas: %+v", s)
	}
	if s.BusLabelOffset != (svg.Point{X: 7, Y: 15}) || s.StopLabelOffset != (svg.Point{X: 7, Y: -3}) {
		t.Errorf("unexpected offsets: %+v %+v", s.BusLabelOffset, s.StopLabelOffset)
	}
	if s.BusLabelFontSize != 20 || s.StopLabelFontSize != 20 {
		t.Errorf("unexpected font sizes: %d %d", s.BusLabelFontSize, s.StopLabelFontSize)
	}
	if s.UnderlayerColor != svg.RGBA(255, 255, 255, 0.85) {
		t.Errorf("unexpected underlayer color %s", s.UnderlayerColor)
	}
	wantPalette := []svg.Color{svg.Named("green"), svg.RGB(255, 160, 0), svg.Named("red")}
	if len(s.ColorPalette) != len(wantPalette) {
		t.Fatalf("expected %d palette colors, got %d", len(wantPalette), len(s.ColorPalette))
	}
	for i := range wantPalette {
		if s.ColorPalette[i] != wantPalette[i] {
			t.Errorf("palette %d: expected %s, got %s", i, wantPalette[i], s.ColorPalette[i])
		}
	}
}
