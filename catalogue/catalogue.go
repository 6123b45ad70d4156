package catalogue

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

// ErrUnknownStop is returned when a distance names a stop that was never added.
var ErrUnknownStop = errors.New("unknown stop")

// TransportCatalogue stores stops and buses and indexes them by name.
type TransportCatalogue struct {
	stops     []*Stop                       // insertion order
	stopIndex map[string]*Stop              // name -> stop
	buses     []*Bus                        // insertion order
	busIndex  map[string]*Bus               // name -> bus
	stopBuses map[*Stop]map[string]struct{} // stop -> names of buses through it
	distances map[stopPair]int              // directional road distance in metres
}

// New creates an empty catalogue.
func New() *TransportCatalogue {
	return &TransportCatalogue{
		stopIndex: map[string]*Stop{},
		busIndex:  map[string]*Bus{},
		stopBuses: map[*Stop]map[string]struct{}{},
		distances: map[stopPair]int{},
	}
}

// AddStop registers a stop. A name that already exists is left untouched.
func (c *TransportCatalogue) AddStop(name string, coords geo.Coordinates) *Stop {
	if s, ok := c.stopIndex[name]; ok {
		return s
	}
	s := &Stop{Name: name, Coordinates: coords}
	c.stops = append(c.stops, s)
	c.stopIndex[name] = s
	c.stopBuses[s] = map[string]struct{}{}
	return s
}

// AddBus registers a route over stops. When isRoundtrip is false the sequence
// is mirrored, so [A B C] becomes [A B C B A]. A name that already exists is
// left untouched.
func (c *TransportCatalogue) AddBus(name string, stops []*Stop, isRoundtrip bool) *Bus {
	if b, ok := c.busIndex[name]; ok {
		return b
	}
	route := make([]*Stop, 0, 2*len(stops))
	route = append(route, stops...)
	if !isRoundtrip {
		for i := len(stops) - 2; i >= 0; i-- {
			route = append(route, stops[i])
		}
	}

	b := &Bus{Name: name, Stops: route, IsRoundtrip: isRoundtrip}
	c.buses = append(c.buses, b)
	c.busIndex[name] = b
	for _, s := range route {
		set, ok := c.stopBuses[s]
		if !ok {
			set = map[string]struct{}{}
			c.stopBuses[s] = set
		}
		set[name] = struct{}{}
	}
	return b
}

// FindStop returns the stop with the given name.
func (c *TransportCatalogue) FindStop(name string) (*Stop, bool) {
	s, ok := c.stopIndex[name]
	return s, ok
}

// FindBus returns the bus with the given name.
func (c *TransportCatalogue) FindBus(name string) (*Bus, bool) {
	b, ok := c.busIndex[name]
	return b, ok
}

// Stops returns every stop in insertion order.
func (c *TransportCatalogue) Stops() []*Stop {
	return slices.Clone(c.stops)
}

// Buses returns every bus in insertion order.
func (c *TransportCatalogue) Buses() []*Bus {
	return slices.Clone(c.buses)
}

// SetDistance records the road distance from one stop to another. The first
// value recorded for a direction wins.
func (c *TransportCatalogue) SetDistance(from, to string, meters int) error {
	a, ok := c.stopIndex[from]
	if !ok {
		return fmt.Errorf("set distance %q -> %q: %w %q", from, to, ErrUnknownStop, from)
	}
	b, ok := c.stopIndex[to]
	if !ok {
		return fmt.Errorf("set distance %q -> %q: %w %q", from, to, ErrUnknownStop, to)
	}
	key := stopPair{from: a, to: b}
	if _, exists := c.distances[key]; !exists {
		c.distances[key] = meters
	}
	return nil
}

// Distance returns the road distance between two named stops, falling back
// to the reverse direction and then to zero.
func (c *TransportCatalogue) Distance(from, to string) int {
	a, ok := c.stopIndex[from]
	if !ok {
		return 0
	}
	b, ok := c.stopIndex[to]
	if !ok {
		return 0
	}
	return c.distanceBetween(a, b)
}

func (c *TransportCatalogue) distanceBetween(a, b *Stop) int {
	if d, ok := c.distances[stopPair{from: a, to: b}]; ok {
		return d
	}
	if d, ok := c.distances[stopPair{from: b, to: a}]; ok {
		return d
	}
	return 0
}

// BusInfo computes route statistics for bus.
func (c *TransportCatalogue) BusInfo(bus *Bus) BusInfo {
	info := BusInfo{StopCount: len(bus.Stops)}
	if len(bus.Stops) == 0 {
		return info
	}

	unique := make(map[*Stop]struct{}, len(bus.Stops))
	unique[bus.Stops[0]] = struct{}{}

	var geoLength float64
	for i := 1; i < len(bus.Stops); i++ {
		prev, cur := bus.Stops[i-1], bus.Stops[i]
		unique[cur] = struct{}{}
		geoLength += geo.Distance(prev.Coordinates, cur.Coordinates)
		info.RouteLength += c.distanceBetween(prev, cur)
	}
	info.UniqueStopCount = len(unique)
	if geoLength > 0 {
		info.Curvature = float64(info.RouteLength) / geoLength
	}
	return info
}

// BusesForStop returns the sorted names of buses passing through the named
// stop, or nil when the stop is unknown.
func (c *TransportCatalogue) BusesForStop(name string) []string {
	s, ok := c.stopIndex[name]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(c.stopBuses[s]))
	for n := range c.stopBuses[s] {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Stats reports how many stops, buses and distances are stored.
func (c *TransportCatalogue) Stats() Stats {
	return Stats{Stops: len(c.stops), Buses: len(c.buses), Distances: len(c.distances)}
}
