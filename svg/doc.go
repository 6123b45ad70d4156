// Package svg provides a small vector-graphics object model and its XML
// serialization.
//
// This package is organized into:
// - color.go: colors (none, named, rgb, rgba)
// - shapes.go: Circle, Polyline and Text with shared path properties
// - document.go: Document, the Container/Drawable interfaces and rendering
//
// Serialization is done manually over strings.Builder for precise control of
// the output: attributes equal to the SVG default are omitted.
package svg
