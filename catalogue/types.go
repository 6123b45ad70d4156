package catalogue

import "github.com/theoremus-urban-solutions/transport-catalogue/geo"

// Stop is a named, geolocated transit stop.
type Stop struct {
	Name        string
	Coordinates geo.Coordinates
}

// Bus is a named route. Stops holds the effective sequence: for a route that
// is not a roundtrip it already includes the way back.
type Bus struct {
	Name        string
	Stops       []*Stop
	IsRoundtrip bool
}

// BusInfo aggregates route statistics.
type BusInfo struct {
	StopCount       int
	UniqueStopCount int
	RouteLength     int     // metres along the road network
	Curvature       float64 // road length / great-circle length, 0 if the latter is 0
}

// Stats summarises catalogue contents.
type Stats struct {
	Stops     int
	Buses     int
	Distances int
}

type stopPair struct {
	from *Stop
	to   *Stop
}
