package svg

import (
	"io"
	"strings"
)

// Object is a single renderable element.
type Object interface {
	writeTo(b *strings.Builder)
}

// Container accepts objects.
type Container interface {
	Add(obj Object)
}

// Drawable is anything that knows how to add its objects to a Container.
type Drawable interface {
	Draw(c Container)
}

// Document is an ordered list of objects rendered as a standalone SVG file.
type Document struct {
	objects []Object
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Add appends obj; objects render in insertion order.
func (d *Document) Add(obj Object) {
	d.objects = append(d.objects, obj)
}

// Len returns the number of objects added so far.
func (d *Document) Len() int { return len(d.objects) }

// String renders the document: XML declaration, <svg> root, one element per
// line indented by two spaces.
func (d *Document) String() string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n")
	b.WriteString("<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\">\n")
	for _, obj := range d.objects {
		b.WriteString("  ")
		obj.writeTo(&b)
		b.WriteByte('\n')
	}
	b.WriteString("</svg>")
	return b.String()
}

// Render writes the document to w.
func (d *Document) Render(w io.Writer) error {
	_, err := io.WriteString(w, d.String())
	return err
}
