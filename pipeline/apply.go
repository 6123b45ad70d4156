package pipeline

import (
	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
)

// Apply fills cat from the creation commands of req. All stops are added
// first, then the declared distances, then the buses. Distances and route
// stops naming unknown stops are skipped.
func Apply(cat *catalogue.TransportCatalogue, req *Request, logger zerolog.Logger) {
	for _, s := range req.Stops {
		cat.AddStop(s.Name, s.Coordinates)
	}

	var skippedDistances int
	for _, s := range req.Stops {
		for _, d := range s.Distances {
			if err := cat.SetDistance(s.Name, d.To, d.Meters); err != nil {
				skippedDistances++
				logger.Debug().Err(err).Msg("distance skipped")
			}
		}
	}

	var skippedStops int
	for _, b := range req.Buses {
		stops := make([]*catalogue.Stop, 0, len(b.Stops))
		for _, name := range b.Stops {
			stop, ok := cat.FindStop(name)
			if !ok {
				skippedStops++
				logger.Debug().Str("bus", b.Name).Str("stop", name).Msg("unknown stop on route skipped")
				continue
			}
			stops = append(stops, stop)
		}
		cat.AddBus(b.Name, stops, b.IsRoundtrip)
	}

	stats := cat.Stats()
	logger.Debug().
		Int("stops", stats.Stops).
		Int("buses", stats.Buses).
		Int("distances", stats.Distances).
		Int("skipped_distances", skippedDistances).
		Int("skipped_route_stops", skippedStops).
		Msg("creation commands applied")
}
