package gtfs

import (
	"golang.org/x/exp/slices"
)

// index stores lookups over a Feed needed to pick one trip per route.
type index struct {
	stops        map[string]*Stop      // stop_id -> stop
	tripsByRoute map[string][]string   // route_id -> trip_ids in file order
	tripStops    map[string][]StopTime // trip_id -> stop times by stop_sequence
}

func newIndex(feed *Feed) *index {
	idx := &index{
		stops:        make(map[string]*Stop, len(feed.Stops)),
		tripsByRoute: map[string][]string{},
		tripStops:    map[string][]StopTime{},
	}
	for i := range feed.Stops {
		if isStopLocation(feed.Stops[i]) {
			idx.stops[feed.Stops[i].ID] = &feed.Stops[i]
		}
	}
	for _, t := range feed.Trips {
		idx.tripsByRoute[t.RouteID] = append(idx.tripsByRoute[t.RouteID], t.ID)
	}
	for _, st := range feed.StopTimes {
		idx.tripStops[st.TripID] = append(idx.tripStops[st.TripID], st)
	}
	for trip, times := range idx.tripStops {
		slices.SortStableFunc(times, func(a, b StopTime) int {
			return a.StopSequence - b.StopSequence
		})
		idx.tripStops[trip] = times
	}
	return idx
}

// longestTrip returns the stop times of the route's trip with the most
// known stops. Ties go to the trip listed first.
func (idx *index) longestTrip(routeID string) []StopTime {
	var best []StopTime
	for _, trip := range idx.tripsByRoute[routeID] {
		times := idx.knownStops(idx.tripStops[trip])
		if len(times) > len(best) {
			best = times
		}
	}
	return best
}

// knownStops drops stop times referring to stops missing from stops.txt.
func (idx *index) knownStops(times []StopTime) []StopTime {
	out := make([]StopTime, 0, len(times))
	for _, st := range times {
		if _, ok := idx.stops[st.StopID]; ok {
			out = append(out, st)
		}
	}
	return out
}
