package parse

import (
	"strings"

	"github.com/svituawww/uniparser"
)

// Attr is one attribute scanned from a tag-open token's raw attribute
// text. Value and ValueSpan exclude the surrounding quote characters;
// everything else about the original bytes is addressable through the
// span.
type Attr struct {
	// Name is the lowercased attribute name used for rule matching.
	Name string

	// RawName is the attribute name exactly as written.
	RawName string

	// HasValue distinguishes name="..." from bare boolean attributes.
	HasValue bool

	// Value is the exact attribute value, internal whitespace and the
	// complementary quote character included.
	Value string

	// ValueSpan addresses Value in the original document buffer.
	ValueSpan uniparser.Span

	// Quote is the value's quote character, or 0 for unquoted values.
	Quote byte
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// Attributes scans raw attribute text with a quote-aware state machine.
// base is the absolute document offset of raw's first byte, so that
// returned value spans address the original buffer. A value opened with
// one quote kind never terminates on the other kind; an unterminated
// quote degrades to a best-effort value running to the end of the tag.
func Attributes(raw string, base int) []Attr {
	var attrs []Attr
	n := len(raw)
	i := 0

	for i < n {
		// skip whitespace and stray slashes (self-closing marker)
		for i < n && (isSpace(raw[i]) || raw[i] == '/') {
			i++
		}
		if i >= n {
			break
		}

		// attribute name
		nameStart := i
		for i < n && !isSpace(raw[i]) && raw[i] != '=' && raw[i] != '/' && raw[i] != '"' && raw[i] != '\'' {
			i++
		}
		if i == nameStart {
			i++ // unscannable byte, skip it
			continue
		}
		attr := Attr{
			Name:    strings.ToLower(raw[nameStart:i]),
			RawName: raw[nameStart:i],
		}

		// whitespace around "=" is permitted and preserved in the raw
		// text; it only affects where the value starts
		j := i
		for j < n && isSpace(raw[j]) {
			j++
		}
		if j >= n || raw[j] != '=' {
			attrs = append(attrs, attr)
			continue
		}
		i = j + 1
		for i < n && isSpace(raw[i]) {
			i++
		}

		attr.HasValue = true
		if i < n && (raw[i] == '"' || raw[i] == '\'') {
			quote := raw[i]
			attr.Quote = quote
			i++
			valStart := i
			for i < n && raw[i] != quote {
				i++
			}
			attr.Value = raw[valStart:i]
			attr.ValueSpan = uniparser.Span{Start: base + valStart, End: base + i}
			if i < n {
				i++ // closing quote
			}
		} else {
			valStart := i
			for i < n && !isSpace(raw[i]) {
				i++
			}
			attr.Value = raw[valStart:i]
			attr.ValueSpan = uniparser.Span{Start: base + valStart, End: base + i}
		}

		attrs = append(attrs, attr)
	}

	return attrs
}

// AttrOffset returns the absolute document offset of a tag-open
// element's raw attribute text.
func AttrOffset(el *uniparser.Element) int {
	return el.Span.Start + 1 + len(el.TagName)
}
