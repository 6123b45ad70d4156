package gtfs

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
	"github.com/theoremus-urban-solutions/transport-catalogue/jsondoc"
)

// Options control the feed conversion.
type Options struct {
	// DistanceScale turns shape_dist_traveled units into metres.
	DistanceScale float64
	// DetectRoundtrips marks trips ending at their first stop as roundtrips.
	DetectRoundtrips bool
}

// DefaultOptions reads shape distances as metres and detects roundtrips.
func DefaultOptions() Options {
	return Options{DistanceScale: 1, DetectRoundtrips: true}
}

type busRequest struct {
	name      string
	stops     []string
	roundtrip bool
}

// BaseRequests converts feed into a request document holding only
// base_requests: one Stop command per stop and one Bus command per route
// with at least one resolvable trip.
func BaseRequests(feed *Feed, opts Options) (jsondoc.Node, error) {
	if opts.DistanceScale <= 0 {
		return jsondoc.Node{}, fmt.Errorf("distance scale must be positive, got %v", opts.DistanceScale)
	}
	idx := newIndex(feed)

	names := stopNames(feed)
	distances := map[string]map[string]int{}
	setDistance := func(from, to string, meters int) {
		if distances[from] == nil {
			distances[from] = map[string]int{}
		}
		if _, ok := distances[from][to]; !ok {
			distances[from][to] = meters
		}
	}

	var buses []busRequest
	usedBusNames := map[string]bool{}
	for _, route := range feed.Routes {
		times := idx.longestTrip(route.ID)
		if len(times) == 0 {
			log.Debug().Str("route_id", route.ID).Msg("route without usable trips skipped")
			continue
		}

		bus := busRequest{name: uniqueName(usedBusNames, busName(route), route.ID)}

		for i, st := range times {
			bus.stops = append(bus.stops, names[st.StopID])
			if i == 0 || times[i-1].StopID == st.StopID {
				continue
			}
			prev := times[i-1]
			setDistance(names[prev.StopID], names[st.StopID], roadDistance(idx, prev, st, opts.DistanceScale))
		}
		first, last := times[0].StopID, times[len(times)-1].StopID
		bus.roundtrip = opts.DetectRoundtrips && len(times) > 1 && first == last
		buses = append(buses, bus)
	}

	b := jsondoc.NewBuilder().StartObject().Key("base_requests").StartArray()
	for _, s := range feed.Stops {
		if !isStopLocation(s) {
			continue
		}
		name := names[s.ID]
		b.StartObject().
			Key("type").Value(jsondoc.String("Stop")).
			Key("name").Value(jsondoc.String(name)).
			Key("latitude").Value(jsondoc.Float(s.Latitude)).
			Key("longitude").Value(jsondoc.Float(s.Longitude)).
			Key("road_distances").StartObject()
		neighbours := make([]string, 0, len(distances[name]))
		for to := range distances[name] {
			neighbours = append(neighbours, to)
		}
		slices.Sort(neighbours)
		for _, to := range neighbours {
			b.Key(to).Value(jsondoc.Int(distances[name][to]))
		}
		b.EndObject().EndObject()
	}
	for _, bus := range buses {
		b.StartObject().
			Key("type").Value(jsondoc.String("Bus")).
			Key("name").Value(jsondoc.String(bus.name)).
			Key("stops").Value(jsondoc.Strings(bus.stops)).
			Key("is_roundtrip").Value(jsondoc.Bool(bus.roundtrip)).
			EndObject()
	}
	doc, err := b.EndArray().EndObject().Build()
	if err != nil {
		return jsondoc.Node{}, err
	}

	log.Debug().
		Int("stops", len(names)).
		Int("buses", len(buses)).
		Msg("gtfs feed converted")
	return doc, nil
}

func isStopLocation(s Stop) bool {
	t := strings.TrimSpace(s.LocationType)
	return t == "" || t == "0"
}

// stopNames assigns every stop a unique display name.
func stopNames(feed *Feed) map[string]string {
	names := make(map[string]string, len(feed.Stops))
	used := map[string]bool{}
	for _, s := range feed.Stops {
		if !isStopLocation(s) {
			continue
		}
		names[s.ID] = uniqueName(used, s.Name, s.ID)
	}
	return names
}

// uniqueName returns name, or name tagged with id when name is empty or
// taken, and records the result in used. A tagged name that is itself
// taken gets a counter.
func uniqueName(used map[string]bool, name, id string) string {
	if name == "" || used[name] {
		name = strings.TrimSpace(fmt.Sprintf("%s [%s]", name, id))
	}
	for base, n := name, 2; used[name]; n++ {
		name = fmt.Sprintf("%s (%d)", base, n)
	}
	used[name] = true
	return name
}

func busName(r Route) string {
	switch {
	case r.ShortName != "":
		return r.ShortName
	case r.LongName != "":
		return r.LongName
	}
	return r.ID
}

// roadDistance measures the leg between two consecutive stop times in
// metres, preferring shape_dist_traveled over great-circle distance.
func roadDistance(idx *index, from, to StopTime, scale float64) int {
	a, errA := strconv.ParseFloat(strings.TrimSpace(from.ShapeDistTraveled), 64)
	b, errB := strconv.ParseFloat(strings.TrimSpace(to.ShapeDistTraveled), 64)
	if errA == nil && errB == nil && b > a {
		return int(math.Round((b - a) * scale))
	}
	sa, sb := idx.stops[from.StopID], idx.stops[to.StopID]
	return int(math.Round(geo.Distance(
		geo.Coordinates{Lat: sa.Latitude, Lng: sa.Longitude},
		geo.Coordinates{Lat: sb.Latitude, Lng: sb.Longitude},
	)))
}
