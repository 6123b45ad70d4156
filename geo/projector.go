package geo

import "math"

// Epsilon is the extent below which a projector axis counts as degenerate.
const Epsilon = 1e-6

func isZero(v float64) bool {
	return math.Abs(v) < Epsilon
}

// Point is a position on the canvas.
type Point struct {
	X float64
	Y float64
}

// SphereProjector maps coordinates onto a width x height canvas with the
// given padding, scaling both axes by the same zoom factor.
type SphereProjector struct {
	padding float64
	minLng  float64
	maxLat  float64
	zoom    float64
}

// NewSphereProjector fits the bounding box of points into the canvas. When
// both axes are degenerate the zoom is zero and every point maps to
// (padding, padding).
func NewSphereProjector(points []Coordinates, width, height, padding float64) SphereProjector {
	p := SphereProjector{padding: padding}
	if len(points) == 0 {
		return p
	}

	minLng, maxLng := points[0].Lng, points[0].Lng
	minLat, maxLat := points[0].Lat, points[0].Lat
	for _, c := range points[1:] {
		minLng = math.Min(minLng, c.Lng)
		maxLng = math.Max(maxLng, c.Lng)
		minLat = math.Min(minLat, c.Lat)
		maxLat = math.Max(maxLat, c.Lat)
	}
	p.minLng = minLng
	p.maxLat = maxLat

	var widthZoom, heightZoom float64
	hasWidth := !isZero(maxLng - minLng)
	hasHeight := !isZero(maxLat - minLat)
	if hasWidth {
		widthZoom = (width - 2*padding) / (maxLng - minLng)
	}
	if hasHeight {
		heightZoom = (height - 2*padding) / (maxLat - minLat)
	}

	switch {
	case hasWidth && hasHeight:
		p.zoom = math.Min(widthZoom, heightZoom)
	case hasWidth:
		p.zoom = widthZoom
	case hasHeight:
		p.zoom = heightZoom
	}
	return p
}

// Zoom returns the scale factor in canvas units per degree.
func (p SphereProjector) Zoom() float64 { return p.zoom }

// Project maps c onto the canvas.
func (p SphereProjector) Project(c Coordinates) Point {
	return Point{
		X: (c.Lng-p.minLng)*p.zoom + p.padding,
		Y: (p.maxLat-c.Lat)*p.zoom + p.padding,
	}
}
