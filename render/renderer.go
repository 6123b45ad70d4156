package render

import (
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

// MapRenderer turns a catalogue into an SVG document.
type MapRenderer struct {
	settings Settings
	style    Style
}

// NewMapRenderer returns a renderer for the given settings and style.
func NewMapRenderer(settings Settings, style Style) *MapRenderer {
	return &MapRenderer{settings: settings, style: style}
}

// Render draws every non-empty route of cat and the stops they use. The
// output depends only on the catalogue contents, never on insertion order.
func (r *MapRenderer) Render(cat *catalogue.TransportCatalogue) *svg.Document {
	buses := routesByName(cat.Buses())
	stops := usedStopsByName(buses)

	coords := make([]geo.Coordinates, 0, len(stops))
	for _, s := range stops {
		coords = append(coords, s.Coordinates)
	}
	proj := geo.NewSphereProjector(coords, r.settings.Width, r.settings.Height, r.settings.Padding)

	doc := svg.NewDocument()
	layers := []svg.Drawable{
		routeLines{r: r, proj: proj, buses: buses},
		routeLabels{r: r, proj: proj, buses: buses},
		stopCircles{r: r, proj: proj, stops: stops},
		stopLabels{r: r, proj: proj, stops: stops},
	}
	for _, l := range layers {
		l.Draw(doc)
	}

	log.Debug().
		Int("routes", len(buses)).
		Int("stops", len(stops)).
		Float64("zoom", proj.Zoom()).
		Int("objects", doc.Len()).
		Msg("map rendered")
	return doc
}

// routesByName keeps routes with at least one stop, sorted by name.
func routesByName(all []*catalogue.Bus) []*catalogue.Bus {
	buses := make([]*catalogue.Bus, 0, len(all))
	for _, b := range all {
		if len(b.Stops) > 0 {
			buses = append(buses, b)
		}
	}
	slices.SortFunc(buses, func(a, b *catalogue.Bus) int {
		return strings.Compare(a.Name, b.Name)
	})
	return buses
}

func usedStopsByName(buses []*catalogue.Bus) []*catalogue.Stop {
	seen := map[*catalogue.Stop]struct{}{}
	var stops []*catalogue.Stop
	for _, b := range buses {
		for _, s := range b.Stops {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			stops = append(stops, s)
		}
	}
	slices.SortFunc(stops, func(a, b *catalogue.Stop) int {
		return strings.Compare(a.Name, b.Name)
	})
	return stops
}

func toCanvas(p geo.Point) svg.Point {
	return svg.Point{X: p.X, Y: p.Y}
}

func (r *MapRenderer) paletteColor(i int) svg.Color {
	if len(r.settings.ColorPalette) == 0 {
		return svg.NoneColor
	}
	return r.settings.ColorPalette[i%len(r.settings.ColorPalette)]
}

// labelPair returns the underlayer and foreground copies of one label.
func (r *MapRenderer) labelPair(base svg.Text, fill svg.Color) (*svg.Text, *svg.Text) {
	under := base
	under.Fill = r.settings.UnderlayerColor
	under.Stroke = r.settings.UnderlayerColor
	under.StrokeWidth = r.settings.UnderlayerWidth
	under.LineCap = r.style.LineCap
	under.LineJoin = r.style.LineJoin

	fore := base
	fore.Fill = fill
	return &under, &fore
}

type routeLines struct {
	r     *MapRenderer
	proj  geo.SphereProjector
	buses []*catalogue.Bus
}

func (l routeLines) Draw(c svg.Container) {
	for i, b := range l.buses {
		line := svg.NewPolyline()
		line.Fill = svg.Named("none")
		line.Stroke = l.r.paletteColor(i)
		line.StrokeWidth = l.r.settings.LineWidth
		line.LineCap = l.r.style.LineCap
		line.LineJoin = l.r.style.LineJoin
		for _, s := range b.Stops {
			line.AddPoint(toCanvas(l.proj.Project(s.Coordinates)))
		}
		c.Add(line)
	}
}

type routeLabels struct {
	r     *MapRenderer
	proj  geo.SphereProjector
	buses []*catalogue.Bus
}

func (l routeLabels) Draw(c svg.Container) {
	for i, b := range l.buses {
		color := l.r.paletteColor(i)
		for _, s := range labelStops(b) {
			base := *svg.NewText()
			base.Position = toCanvas(l.proj.Project(s.Coordinates))
			base.Offset = l.r.settings.BusLabelOffset
			base.FontSize = l.r.settings.BusLabelFontSize
			base.FontFamily = l.r.style.FontFamily
			base.FontWeight = l.r.style.BusLabelWeight
			base.Data = b.Name

			under, fore := l.r.labelPair(base, color)
			c.Add(under)
			c.Add(fore)
		}
	}
}

// labelStops returns where a route name is written: the first stop and, for
// a two-way route, the far end when it is a different stop.
func labelStops(b *catalogue.Bus) []*catalogue.Stop {
	first := b.Stops[0]
	if b.IsRoundtrip {
		return []*catalogue.Stop{first}
	}
	mid := b.Stops[len(b.Stops)/2]
	if mid == first {
		return []*catalogue.Stop{first}
	}
	return []*catalogue.Stop{first, mid}
}

type stopCircles struct {
	r     *MapRenderer
	proj  geo.SphereProjector
	stops []*catalogue.Stop
}

func (l stopCircles) Draw(c svg.Container) {
	for _, s := range l.stops {
		circle := svg.NewCircle(toCanvas(l.proj.Project(s.Coordinates)), l.r.settings.StopRadius)
		circle.Fill = l.r.style.StopFill
		c.Add(circle)
	}
}

type stopLabels struct {
	r     *MapRenderer
	proj  geo.SphereProjector
	stops []*catalogue.Stop
}

func (l stopLabels) Draw(c svg.Container) {
	for _, s := range l.stops {
		base := *svg.NewText()
		base.Position = toCanvas(l.proj.Project(s.Coordinates))
		base.Offset = l.r.settings.StopLabelOffset
		base.FontSize = l.r.settings.StopLabelFontSize
		base.FontFamily = l.r.style.FontFamily
		base.Data = s.Name

		under, fore := l.r.labelPair(base, l.r.style.StopLabelFill)
		c.Add(under)
		c.Add(fore)
	}
}
