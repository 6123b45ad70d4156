package gtfs

// Stop is a row of stops.txt.
type Stop struct {
	ID           string  `csv:"stop_id"`
	Name         string  `csv:"stop_name"`
	Latitude     float64 `csv:"stop_lat"`
	Longitude    float64 `csv:"stop_lon"`
	LocationType string  `csv:"location_type"`
}

// Route is a row of routes.txt.
type Route struct {
	ID        string `csv:"route_id"`
	ShortName string `csv:"route_short_name"`
	LongName  string `csv:"route_long_name"`
	Type      int    `csv:"route_type"`
}

// Trip is a row of trips.txt.
type Trip struct {
	RouteID string `csv:"route_id"`
	ID      string `csv:"trip_id"`
	ShapeID string `csv:"shape_id"`
}

// StopTime is a row of stop_times.txt.
type StopTime struct {
	TripID       string `csv:"trip_id"`
	StopID       string `csv:"stop_id"`
	StopSequence int    `csv:"stop_sequence"`
	// kept as text: the column is optional and often empty
	ShapeDistTraveled string `csv:"shape_dist_traveled"`
}

// Feed holds the parsed rows of one GTFS static feed, in file order.
type Feed struct {
	Stops     []Stop
	Routes    []Route
	Trips     []Trip
	StopTimes []StopTime
}
