// Package parse implements the positional tokenizer and element tree
// builder. The tokenizer is a scanning state machine over the raw
// document bytes; every emitted token carries exact start/end offsets
// and the token spans tile the input with no gaps. Malformed markup
// degrades to best-effort spans recorded as anomalies, never a parse
// failure.
package parse

import (
	"strings"

	"github.com/svituawww/uniparser"
)

// token is one scanned region of the input before tree linkage.
type token struct {
	kind        uniparser.ElementKind
	span        uniparser.Span
	tagName     string // lowercased
	rawAttrs    string
	selfClosing bool
}

// rawtextElements hold raw character data until their matching close
// tag; "<" inside them never opens markup.
var rawtextElements = map[string]bool{
	"script": true,
	"style":  true,
}

// tokenize scans the whole input and returns its tokens in document
// order together with any malformed-markup anomalies.
func tokenize(s string) ([]token, []uniparser.Anomaly) {
	var toks []token
	var anomalies []uniparser.Anomaly

	// Lowercased shadow of the input for case-insensitive recognition.
	// Raw bytes are always taken from s, never from lower.
	lower := strings.ToLower(s)

	n := len(s)
	i := 0
	rawtext := "" // tag name whose raw content we are inside, if any

	for i < n {
		if rawtext != "" {
			end := rawtextEnd(s, lower, i, rawtext)
			if end > i {
				toks = append(toks, token{
					kind: uniparser.KindText,
					span: uniparser.Span{Start: i, End: end},
				})
			}
			rawtext = ""
			i = end
			continue
		}

		if s[i] != '<' || !startsMarkup(s, i) {
			end := nextMarkup(s, i)
			toks = append(toks, token{
				kind: uniparser.KindText,
				span: uniparser.Span{Start: i, End: end},
			})
			i = end
			continue
		}

		switch {
		case strings.HasPrefix(s[i:], "<!--"):
			var tok token
			tok, i = scanComment(s, i, len(toks), &anomalies)
			toks = append(toks, tok)

		case s[i+1] == '!' || s[i+1] == '?':
			kind := uniparser.KindComment
			if strings.HasPrefix(lower[i:], "<!doctype") {
				kind = uniparser.KindDoctype
			}
			end, terminated := scanToTagEnd(s, i+2)
			if !terminated {
				anomalies = append(anomalies, unterminatedAnomaly(len(toks), i, "declaration"))
			}
			toks = append(toks, token{
				kind: kind,
				span: uniparser.Span{Start: i, End: end},
			})
			i = end

		case s[i+1] == '/':
			var tok token
			tok, i = scanCloseTag(s, lower, i, len(toks), &anomalies)
			toks = append(toks, tok)

		default:
			var tok token
			tok, i = scanOpenTag(s, lower, i, len(toks), &anomalies)
			toks = append(toks, tok)
			if rawtextElements[tok.tagName] && !tok.selfClosing && tok.span.End < n {
				rawtext = tok.tagName
			}
		}
	}

	return toks, anomalies
}

// rawtextEnd returns the offset where the raw content of a script or
// style element ends: the first "</name" followed by a name-boundary
// byte, or the end of input. "</scripty>" does not end a script region.
func rawtextEnd(s, lower string, i int, name string) int {
	closer := "</" + name
	for j := i; ; {
		idx := strings.Index(lower[j:], closer)
		if idx < 0 {
			return len(s)
		}
		cand := j + idx
		after := cand + len(closer)
		if after >= len(s) {
			return cand
		}
		if c := s[after]; isSpace(c) || c == '>' || c == '/' {
			return cand
		}
		j = cand + 1
	}
}

// startsMarkup reports whether the "<" at offset i opens a markup
// construct. A stray "<" followed by anything else is text.
func startsMarkup(s string, i int) bool {
	if i+1 >= len(s) {
		return false
	}
	c := s[i+1]
	return isNameStart(c) || c == '!' || c == '/' || c == '?'
}

// nextMarkup returns the offset of the next markup-opening "<" after i,
// or the end of input.
func nextMarkup(s string, i int) int {
	for j := i + 1; j < len(s); j++ {
		if s[j] == '<' && startsMarkup(s, j) {
			return j
		}
	}
	return len(s)
}

func isNameStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9') || c == '-' || c == ':' || c == '_' || c == '.'
}

// scanComment consumes a "<!--" comment. An unterminated comment runs
// to the end of input and is recorded as an anomaly.
func scanComment(s string, i, seq int, anomalies *[]uniparser.Anomaly) (token, int) {
	end := strings.Index(s[i+4:], "-->")
	if end < 0 {
		*anomalies = append(*anomalies, unterminatedAnomaly(seq, i, "comment"))
		return token{
			kind: uniparser.KindComment,
			span: uniparser.Span{Start: i, End: len(s)},
		}, len(s)
	}
	stop := i + 4 + end + 3
	return token{
		kind: uniparser.KindComment,
		span: uniparser.Span{Start: i, End: stop},
	}, stop
}

// scanToTagEnd advances to the ">" closing a tag or declaration,
// honoring single- and double-quoted regions: a ">" inside a quoted
// value never terminates the tag, and a quote of one kind never
// terminates a value opened with the other kind. A quoted value only
// starts directly after "=" (plus optional whitespace); a quote
// character anywhere else, such as inside an unquoted value, is an
// ordinary byte and never swallows the rest of the input.
func scanToTagEnd(s string, i int) (end int, terminated bool) {
	var quote byte
	atValue := false // just consumed "=" plus optional whitespace
	for j := i; j < len(s); j++ {
		c := s[j]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch {
		case c == '>':
			return j + 1, true
		case c == '"' || c == '\'':
			if atValue {
				quote = c
			}
			atValue = false
		case c == '=':
			atValue = true
		case isSpace(c):
			// whitespace between "=" and the value keeps the value pending
		default:
			atValue = false
		}
	}
	return len(s), false
}

// scanOpenTag consumes "<name ...>" starting at i. The raw attribute
// substring between the tag name and the closing ">" is preserved
// byte-exact, whitespace and quoting included.
func scanOpenTag(s, lower string, i, seq int, anomalies *[]uniparser.Anomaly) (token, int) {
	j := i + 1
	for j < len(s) && isNameChar(s[j]) {
		j++
	}
	name := lower[i+1 : j]

	end, terminated := scanToTagEnd(s, j)
	if !terminated {
		*anomalies = append(*anomalies, unterminatedAnomaly(seq, i, "tag <"+name+">"))
	}

	rawEnd := end
	if terminated {
		rawEnd = end - 1 // exclude ">"
	}
	raw := s[j:rawEnd]

	trimmed := strings.TrimRight(raw, " \t\r\n\f")
	selfClosing := strings.HasSuffix(trimmed, "/")

	return token{
		kind:        uniparser.KindTagOpen,
		span:        uniparser.Span{Start: i, End: end},
		tagName:     name,
		rawAttrs:    raw,
		selfClosing: selfClosing,
	}, end
}

// scanCloseTag consumes "</name ...>" starting at i.
func scanCloseTag(s, lower string, i, seq int, anomalies *[]uniparser.Anomaly) (token, int) {
	j := i + 2
	for j < len(s) && isNameChar(s[j]) {
		j++
	}
	name := lower[i+2 : j]

	end, terminated := scanToTagEnd(s, j)
	if !terminated {
		*anomalies = append(*anomalies, unterminatedAnomaly(seq, i, "tag </"+name+">"))
	}

	return token{
		kind:    uniparser.KindTagClose,
		span:    uniparser.Span{Start: i, End: end},
		tagName: name,
	}, end
}

func unterminatedAnomaly(elementID, offset int, what string) uniparser.Anomaly {
	return uniparser.Anomaly{
		Kind:      uniparser.AnomalyUnterminated,
		ElementID: elementID,
		RelatedID: uniparser.NoParent,
		Offset:    offset,
		Message:   "unterminated " + what + " runs to end of input",
	}
}
