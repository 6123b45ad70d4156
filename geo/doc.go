// Package geo provides the geometry used by the catalogue and the map renderer.
//
// It contains:
//   - Coordinates and great-circle distance in metres
//   - SphereProjector, mapping coordinates onto a padded canvas with uniform scale
package geo
