// Package render draws a catalogue as an SVG map.
//
// The map has four layers drawn in order: route polylines, route name
// labels, stop circles and stop name labels. Routes are taken in name order
// and cycle through the configured color palette; stops are taken in name
// order and only stops used by at least one route are drawn.
//
// Basic usage:
//
//	r := render.NewMapRenderer(settings, render.DefaultStyle())
//	doc := r.Render(cat)
//	fmt.Println(doc.String())
package render
