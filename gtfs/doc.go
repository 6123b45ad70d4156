/*
Package gtfs turns a GTFS static feed into catalogue creation commands.

The package accepts raw zip bytes or an io.ReaderAt and reads stops.txt,
routes.txt, trips.txt and stop_times.txt. It does NOT handle HTTP downloads.

# Basic Usage

	feed, err := gtfs.NewFeedFromBytes(zipBytes)
	if err != nil {
	    log.Fatal(err)
	}
	doc, err := gtfs.BaseRequests(feed, gtfs.DefaultOptions())
	jsondoc.Print(os.Stdout, doc)

# Conversion rules

Every route becomes one bus named after route_short_name (falling back to
route_long_name, then route_id). The bus follows the route's longest trip.
A trip that ends at its first stop is a roundtrip; any other trip is taken
as the outbound half of a there-and-back route.

Road distances come from shape_dist_traveled deltas multiplied by
Options.DistanceScale. When a stop time has no shape_dist_traveled the
great-circle distance is used instead.

Stops sharing a name are kept apart by appending " [stop_id]" to every
occurrence after the first.
*/
package gtfs
