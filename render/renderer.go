package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"

	"github.com/denimatfire/warm-corporate-canvas/extensions"
)

// HTMLRenderer converts the restricted markdown dialect used by blog
// posts (headings, bold spans, lists, paragraphs, photo markers) into
// an HTML fragment.
//
// The conversion is not idempotent: it must only ever run on raw
// markdown source, never on already-converted HTML.
type HTMLRenderer struct {
	md goldmark.Markdown
}

// NewHTMLRenderer creates a new HTMLRenderer with the photo marker
// extension installed. The output is unsanitized; callers are expected
// to pass it through a bluemonday policy before storing or serving it.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extensions.NewPhotoMarker(),
			),
		),
	}
}

// Render converts markdown to an HTML fragment.
func (r *HTMLRenderer) Render(md string) (string, error) {
	buf := &bytes.Buffer{}

	if err := r.md.Convert([]byte(md), buf); err != nil {
		return "", fmt.Errorf("failed to Convert: %w", err)
	}

	return buf.String(), nil
}
