package parse

import (
	"fmt"

	"github.com/svituawww/uniparser"
)

// voidElements never take a closing tag and are not pushed onto the
// open-element stack.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoid reports whether tag never takes a closing tag.
func IsVoid(tag string) bool {
	return voidElements[tag]
}

// buildTree links the token stream into a parent/child arena using
// stack-based matching of tag-open/tag-close pairs by case-insensitive
// tag name. Unmatched opens and closes become anomalies, never errors;
// orphan elements attach at the nearest enclosing scope.
func buildTree(body string, toks []token, anomalies []uniparser.Anomaly) *uniparser.ParseResult {
	elements := make([]*uniparser.Element, 0, len(toks))
	var stack []int // arena IDs of open tags

	top := func() int {
		if len(stack) == 0 {
			return uniparser.NoParent
		}
		return stack[len(stack)-1]
	}

	for _, t := range toks {
		id := len(elements)
		el := &uniparser.Element{
			ID:          id,
			Kind:        t.kind,
			Span:        t.span,
			TagName:     t.tagName,
			RawAttrs:    t.rawAttrs,
			ParentID:    top(),
			Level:       len(stack),
			Seq:         id,
			SelfClosing: t.selfClosing || (t.kind == uniparser.KindTagOpen && voidElements[t.tagName]),
		}

		switch t.kind {
		case uniparser.KindTagOpen:
			elements = append(elements, el)
			if !el.SelfClosing {
				stack = append(stack, id)
			}

		case uniparser.KindTagClose:
			match := -1
			for j := len(stack) - 1; j >= 0; j-- {
				if elements[stack[j]].TagName == t.tagName {
					match = j
					break
				}
			}
			if match == -1 {
				anomalies = append(anomalies, uniparser.Anomaly{
					Kind:      uniparser.AnomalyUnmatchedClose,
					ElementID: id,
					RelatedID: uniparser.NoParent,
					Offset:    t.span.Start,
					Message:   fmt.Sprintf("closing tag %q has no matching opener", t.tagName),
				})
				elements = append(elements, el)
				break
			}
			// Opens above the match are implicitly closed.
			for j := len(stack) - 1; j > match; j-- {
				open := elements[stack[j]]
				anomalies = append(anomalies, uniparser.Anomaly{
					Kind:      uniparser.AnomalyUnmatchedOpen,
					ElementID: open.ID,
					RelatedID: id,
					Offset:    open.Span.Start,
					Message:   fmt.Sprintf("opening tag %q closed implicitly by %q", open.TagName, t.tagName),
				})
			}
			openEl := elements[stack[match]]
			el.ParentID = openEl.ParentID
			el.Level = openEl.Level
			stack = stack[:match]
			elements = append(elements, el)

		default:
			elements = append(elements, el)
		}
	}

	for _, id := range stack {
		open := elements[id]
		anomalies = append(anomalies, uniparser.Anomaly{
			Kind:      uniparser.AnomalyUnmatchedOpen,
			ElementID: open.ID,
			RelatedID: uniparser.NoParent,
			Offset:    open.Span.Start,
			Message:   fmt.Sprintf("opening tag %q not closed before end of input", open.TagName),
		})
	}

	return &uniparser.ParseResult{
		Body:      body,
		Elements:  elements,
		Anomalies: anomalies,
	}
}

// Compile-time interface verification.
var _ uniparser.Parser = (*Parser)(nil)

// Parser implements uniparser.Parser with the positional tokenizer and
// stack-based tree builder. The zero value is ready to use; a Parser is
// stateless and safe for concurrent use.
type Parser struct{}

// NewParser returns a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse tokenizes body and links the tokens into an element arena.
// Parse never fails; malformed markup is reported through the result's
// anomaly list.
func (p *Parser) Parse(body string) *uniparser.ParseResult {
	toks, anomalies := tokenize(body)
	return buildTree(body, toks, anomalies)
}
