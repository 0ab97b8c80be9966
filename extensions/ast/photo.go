package ast

import (
	gast "github.com/yuin/goldmark/ast"
)

// Photo is an inline node produced by a [PHOTO:<url>] marker.
type Photo struct {
	gast.BaseInline
	Source []byte
}

// Dump implements Node.Dump.
func (p *Photo) Dump(source []byte, level int) {
	m := map[string]string{
		"Source": string(p.Source),
	}
	gast.DumpHelper(p, source, level, m, nil)
}

// KindPhoto is a NodeKind of the Photo node.
var KindPhoto = gast.NewNodeKind("Photo")

// Kind implements Node.Kind.
func (p *Photo) Kind() gast.NodeKind {
	return KindPhoto
}

// NewPhoto returns a new Photo node.
func NewPhoto(source []byte) *Photo {
	return &Photo{
		BaseInline: gast.BaseInline{},
		Source:     source,
	}
}
