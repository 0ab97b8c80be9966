package extensions

import (
	"regexp"

	localast "github.com/denimatfire/warm-corporate-canvas/extensions/ast"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var photoRegexp = regexp.MustCompile(`\[PHOTO:\s*(?P<src>[^\]\s]+)\s*\]`)

type photoParser struct{}

// NewPhotoParser returns an inline parser for [PHOTO:<url>] markers.
func NewPhotoParser() parser.InlineParser {
	return &photoParser{}
}

func (p *photoParser) Trigger() []byte {
	return []byte{'['}
}

func (p *photoParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, segment := block.PeekLine()

	// Must be at least 9 chars long: [PHOTO:x]
	if len(line) < 9 || line[0] != '[' {
		return nil
	}

	m := photoRegexp.FindSubmatchIndex(line)
	if m == nil || m[0] != 0 {
		return nil
	}

	source := line[m[2]:m[3]]

	s := segment.WithStop(segment.Start)
	ast.MergeOrAppendTextSegment(parent, s)

	block.Advance(m[1] - m[0])
	return localast.NewPhoto(source)
}

// PhotoHTMLRenderer renders Photo nodes as img elements.
type PhotoHTMLRenderer struct{}

// NewPhotoHTMLRenderer returns a new PhotoHTMLRenderer.
func NewPhotoHTMLRenderer() renderer.NodeRenderer {
	return &PhotoHTMLRenderer{}
}

// RegisterFuncs implements renderer.NodeRenderer.RegisterFuncs.
func (r *PhotoHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(localast.KindPhoto, r.renderPhoto)
}

func (r *PhotoHTMLRenderer) renderPhoto(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*localast.Photo)
	_, _ = w.WriteString(`<img src="`)
	_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.Source, true)))
	_, _ = w.WriteString(`" alt="Article image">`)
	return ast.WalkContinue, nil
}

type photoMarker struct{}

// PhotoMarker is an extension that parses [PHOTO:<url>] markers into
// img elements.
var PhotoMarker = &photoMarker{}

// NewPhotoMarker returns a goldmark extension wiring the photo marker
// parser and renderer together.
func NewPhotoMarker() goldmark.Extender {
	return &photoMarker{}
}

func (e *photoMarker) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithInlineParsers(
			util.Prioritized(NewPhotoParser(), 100),
		),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(NewPhotoHTMLRenderer(), 500),
		),
	)
}
