package pipeline

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
	"github.com/theoremus-urban-solutions/transport-catalogue/jsondoc"
	"github.com/theoremus-urban-solutions/transport-catalogue/render"
)

// Stat query types.
const (
	QueryBus  = "Bus"
	QueryStop = "Stop"
	QueryMap  = "Map"
)

// Distance is a declared road distance to a neighbouring stop.
type Distance struct {
	To     string
	Meters int
}

// StopCommand adds a stop and its declared road distances.
type StopCommand struct {
	Name        string
	Coordinates geo.Coordinates
	Distances   []Distance // sorted by neighbour name
}

// BusCommand adds a route over stops named in travel order.
type BusCommand struct {
	Name        string
	Stops       []string
	IsRoundtrip bool
}

// StatQuery is one entry of stat_requests. Name is empty for map queries.
type StatQuery struct {
	ID   int
	Type string
	Name string
}

// Request is a parsed request document.
type Request struct {
	Stops    []StopCommand
	Buses    []BusCommand
	Queries  []StatQuery
	Settings *render.Settings // nil when render_settings is absent
}

// fields reads typed values out of one object, prefixing errors with the
// object's position in the document.
type fields struct {
	obj  jsondoc.Object
	path string
}

func objectAt(n jsondoc.Node, path string) (fields, error) {
	obj, err := n.AsObject()
	if err != nil {
		return fields{}, fieldError(path, err)
	}
	return fields{obj: obj, path: path}, nil
}

func (f fields) key(k string) string { return f.path + "." + k }

func (f fields) node(k string) (jsondoc.Node, error) {
	n, ok := f.obj.Lookup(k)
	if !ok {
		return jsondoc.Node{}, missing(f.key(k))
	}
	return n, nil
}

func (f fields) str(k string) (string, error) {
	n, err := f.node(k)
	if err != nil {
		return "", err
	}
	s, err := n.AsString()
	if err != nil {
		return "", fieldError(f.key(k), err)
	}
	return s, nil
}

func (f fields) integer(k string) (int, error) {
	n, err := f.node(k)
	if err != nil {
		return 0, err
	}
	v, err := n.AsInt()
	if err != nil {
		return 0, fieldError(f.key(k), err)
	}
	return v, nil
}

func (f fields) float(k string) (float64, error) {
	n, err := f.node(k)
	if err != nil {
		return 0, err
	}
	v, err := n.AsFloat()
	if err != nil {
		return 0, fieldError(f.key(k), err)
	}
	return v, nil
}

func (f fields) boolean(k string) (bool, error) {
	n, err := f.node(k)
	if err != nil {
		return false, err
	}
	v, err := n.AsBool()
	if err != nil {
		return false, fieldError(f.key(k), err)
	}
	return v, nil
}

func (f fields) array(k string) (jsondoc.Array, error) {
	n, err := f.node(k)
	if err != nil {
		return nil, err
	}
	v, err := n.AsArray()
	if err != nil {
		return nil, fieldError(f.key(k), err)
	}
	return v, nil
}

// ParseRequest splits a request document into creation commands, stat
// queries and render settings. base_requests is required; stat_requests and
// render_settings may be omitted. Creation commands of an unknown type are
// ignored.
func ParseRequest(root jsondoc.Node) (*Request, error) {
	top, err := objectAt(root, "$")
	if err != nil {
		return nil, err
	}

	base, err := top.array("base_requests")
	if err != nil {
		return nil, err
	}
	req := &Request{}
	for i, n := range base {
		path := fmt.Sprintf("base_requests[%d]", i)
		cmd, err := objectAt(n, path)
		if err != nil {
			return nil, err
		}
		typ, err := cmd.str("type")
		if err != nil {
			return nil, err
		}
		switch typ {
		case "Stop":
			stop, err := parseStop(cmd)
			if err != nil {
				return nil, err
			}
			req.Stops = append(req.Stops, stop)
		case "Bus":
			bus, err := parseBus(cmd)
			if err != nil {
				return nil, err
			}
			req.Buses = append(req.Buses, bus)
		}
	}

	if _, ok := top.obj.Lookup("stat_requests"); ok {
		stats, err := top.array("stat_requests")
		if err != nil {
			return nil, err
		}
		for i, n := range stats {
			q, err := parseQuery(n, fmt.Sprintf("stat_requests[%d]", i))
			if err != nil {
				return nil, err
			}
			req.Queries = append(req.Queries, q)
		}
	}

	if n, ok := top.obj.Lookup("render_settings"); ok {
		settings, err := ParseRenderSettings(n)
		if err != nil {
			return nil, err
		}
		req.Settings = &settings
	}
	return req, nil
}

func parseStop(f fields) (StopCommand, error) {
	var stop StopCommand
	var err error
	if stop.Name, err = f.str("name"); err != nil {
		return stop, err
	}
	if stop.Coordinates.Lat, err = f.float("latitude"); err != nil {
		return stop, err
	}
	if stop.Coordinates.Lng, err = f.float("longitude"); err != nil {
		return stop, err
	}

	n, ok := f.obj.Lookup("road_distances")
	if !ok {
		return stop, nil
	}
	dist, err := objectAt(n, f.key("road_distances"))
	if err != nil {
		return stop, err
	}
	names := make([]string, 0, len(dist.obj))
	for name := range dist.obj {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		meters, err := dist.integer(name)
		if err != nil {
			return stop, err
		}
		stop.Distances = append(stop.Distances, Distance{To: name, Meters: meters})
	}
	return stop, nil
}

func parseBus(f fields) (BusCommand, error) {
	var bus BusCommand
	var err error
	if bus.Name, err = f.str("name"); err != nil {
		return bus, err
	}
	if bus.IsRoundtrip, err = f.boolean("is_roundtrip"); err != nil {
		return bus, err
	}
	stops, err := f.array("stops")
	if err != nil {
		return bus, err
	}
	bus.Stops = make([]string, 0, len(stops))
	for i, n := range stops {
		name, err := n.AsString()
		if err != nil {
			return bus, fieldError(fmt.Sprintf("%s[%d]", f.key("stops"), i), err)
		}
		bus.Stops = append(bus.Stops, name)
	}
	return bus, nil
}

func parseQuery(n jsondoc.Node, path string) (StatQuery, error) {
	var q StatQuery
	f, err := objectAt(n, path)
	if err != nil {
		return q, err
	}
	if q.ID, err = f.integer("id"); err != nil {
		return q, err
	}
	if q.Type, err = f.str("type"); err != nil {
		return q, err
	}
	if q.Type == QueryBus || q.Type == QueryStop {
		if q.Name, err = f.str("name"); err != nil {
			return q, err
		}
	}
	return q, nil
}
