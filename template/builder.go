// Package template builds placeholder templates from extracted content
// items and reconstructs documents from templates plus resolved values.
// Every byte outside an item span passes through verbatim.
package template

import (
	"strings"

	"github.com/svituawww/uniparser"
)

// Compile-time interface verification.
var _ uniparser.TemplateBuilder = (*Builder)(nil)

// Builder implements uniparser.TemplateBuilder with a single
// left-to-right replacement pass.
type Builder struct{}

// NewBuilder returns a new Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build replaces each item span with its placeholder. Items must be
// sorted by start offset and non-overlapping; a violation aborts with
// ECONFLICT naming the conflicting identifiers rather than silently
// corrupting output. Surrounding quote characters are part of the
// markup, not the span, and are preserved verbatim.
func (b *Builder) Build(body string, items []*uniparser.ContentItem) (string, error) {
	var out strings.Builder
	out.Grow(len(body))

	pos := 0
	prev := ""
	for _, item := range items {
		if item.Span.Start < pos {
			return "", uniparser.Errorf(uniparser.ECONFLICT,
				"span conflict between %q and %q at offset %d", prev, item.Identifier, item.Span.Start)
		}
		if item.Span.End > len(body) {
			return "", uniparser.Errorf(uniparser.ECONFLICT,
				"item %q span [%d,%d) exceeds document length %d",
				item.Identifier, item.Span.Start, item.Span.End, len(body))
		}
		out.WriteString(body[pos:item.Span.Start])
		out.WriteString(uniparser.Placeholder(item.Identifier))
		pos = item.Span.End
		prev = item.Identifier
	}
	out.WriteString(body[pos:])

	return out.String(), nil
}
