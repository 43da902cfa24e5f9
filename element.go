package uniparser

import "context"

// Span is a half-open offset range [Start, End) into the original
// document buffer. Offsets are byte positions, not rune indexes.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether other lies fully within s.
func (s Span) Contains(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// Overlaps reports whether the two spans share at least one byte.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// ElementKind identifies the kind of a parsed token. The set is closed;
// consumers switch exhaustively over these values.
type ElementKind string

// ElementKind values.
const (
	KindTagOpen  ElementKind = "tag_open"
	KindTagClose ElementKind = "tag_close"
	KindText     ElementKind = "text"
	KindComment  ElementKind = "comment"
	KindDoctype  ElementKind = "doctype"
)

// NoParent is the ParentID of elements at the document root.
const NoParent = -1

// Element is one parsed token of an HTML document. Elements are created
// once per parse pass and are immutable thereafter; their spans tile the
// input with no gaps and no overlaps.
type Element struct {
	// ID is the element's index in the parse arena. A child can only
	// reference an ID created before it, so the graph is acyclic by
	// construction.
	ID int `json:"id"`

	Kind ElementKind `json:"kind"`
	Span Span        `json:"span"`

	// TagName is the lowercased tag name for tag-open/tag-close tokens.
	// The original casing is preserved in the raw bytes addressed by Span.
	TagName string `json:"tagName,omitempty"`

	// RawAttrs is the unparsed attribute substring of a tag-open token,
	// byte-exact, including all original whitespace and quoting.
	RawAttrs string `json:"rawAttrs,omitempty"`

	// ParentID is the arena index of the enclosing element, or NoParent.
	ParentID int `json:"parentId"`

	// Level is the nesting depth at which the token appears.
	Level int `json:"level"`

	// Seq is the monotonic document-order index assigned at parse time.
	Seq int `json:"seq"`

	// SelfClosing is set for tag-open tokens ending in "/>" and for
	// void elements that never take a closing tag.
	SelfClosing bool `json:"selfClosing,omitempty"`
}

// ParseResult is the output of one parse pass: the original body, the
// element arena in document order, and any malformed-markup anomalies
// recovered during tokenization and tree building.
type ParseResult struct {
	Body      string     `json:"-"`
	Elements  []*Element `json:"elements"`
	Anomalies []Anomaly  `json:"anomalies,omitempty"`
}

// Raw returns the exact original bytes of el.
func (r *ParseResult) Raw(el *Element) string {
	return r.Body[el.Span.Start:el.Span.End]
}

// Element returns the element with the given arena ID, or nil.
func (r *ParseResult) Element(id int) *Element {
	if id < 0 || id >= len(r.Elements) {
		return nil
	}
	return r.Elements[id]
}

// Parser turns a document body into a positional element tree. Parsing
// never fails: malformed markup degrades to best-effort spans recorded
// as anomalies on the result.
type Parser interface {
	Parse(body string) *ParseResult
}

// ElementService persists parsed elements keyed by (document, sequence).
type ElementService interface {
	// ReplaceElements replaces all stored elements for a document with
	// the given parse pass output.
	ReplaceElements(ctx context.Context, documentID string, elements []*Element) error

	// FindElementsByDocument retrieves all elements for a document in
	// sequence order.
	FindElementsByDocument(ctx context.Context, documentID string) ([]*Element, error)
}
