package render

import (
	"strings"

	"github.com/danielgomezobraztsov/web-presentation/internal/ports"
)

const (
	documentOpen  = "<html><body>"
	documentClose = "</body></html>"
)

// HTMLDocument keeps fragments in append order, without separators or dedup.
type HTMLDocument struct {
	fragments []string
}

func NewHTMLDocument() *HTMLDocument { return &HTMLDocument{} }

var _ ports.Document = (*HTMLDocument)(nil)

func (d *HTMLDocument) AddContent(fragment string) {
	d.fragments = append(d.fragments, fragment)
}

// Render wraps the concatenated fragments in the html/body envelope.
// It does not modify the document, so repeated calls return the same output.
func (d *HTMLDocument) Render() string {
	n := len(documentOpen) + len(documentClose)
	for _, f := range d.fragments {
		n += len(f)
	}

	var b strings.Builder
	b.Grow(n)
	b.WriteString(documentOpen)
	for _, f := range d.fragments {
		b.WriteString(f)
	}
	b.WriteString(documentClose)
	return b.String()
}
