/*
Package catalogue provides the in-memory transport catalogue: stops, buses
(routes), road distances between stops and route statistics.

# Basic Usage

	cat := catalogue.New()
	cat.AddStop("Tolstopaltsevo", geo.Coordinates{Lat: 55.611087, Lng: 37.20829})
	cat.AddStop("Marushkino", geo.Coordinates{Lat: 55.595884, Lng: 37.209755})
	_ = cat.SetDistance("Tolstopaltsevo", "Marushkino", 3900)

	a, _ := cat.FindStop("Tolstopaltsevo")
	b, _ := cat.FindStop("Marushkino")
	cat.AddBus("750", []*catalogue.Stop{a, b}, false)

	bus, _ := cat.FindBus("750")
	info := cat.BusInfo(bus) // 3 stops, 2 unique, 7800 m

# Identity

Stops and buses are unique by name. Adding a name that already exists is a
no-op. The *Stop and *Bus values handed out stay valid for the lifetime of
the catalogue regardless of later insertions.

# Distances

Distances are stored per direction. A lookup falls back to the reverse
direction and then to zero, so a missing distance is never an error.

# Concurrency

The catalogue is built by a single writer. Once populated it may be read from
any number of goroutines as long as nothing is added.
*/
package catalogue
