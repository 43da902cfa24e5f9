package extract

import (
	"sort"
	"strings"
	"time"

	"github.com/svituawww/uniparser"
	"github.com/svituawww/uniparser/parse"
)

// Compile-time interface verification.
var _ uniparser.Extractor = (*Extractor)(nil)

// Extractor implements uniparser.Extractor. All mutable state lives in
// the per-run identifier table, so one Extractor may serve many
// documents concurrently.
type Extractor struct {
	rules *uniparser.RuleSet
	hash  Hasher
	now   func() time.Time
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithHasher overrides the identifier hash function. Intended for
// tests that need to force collisions.
func WithHasher(h Hasher) Option {
	return func(e *Extractor) { e.hash = h }
}

// WithClock overrides the provenance timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) { e.now = now }
}

// NewExtractor creates an Extractor for the given rule set.
func NewExtractor(rules *uniparser.RuleSet, opts ...Option) *Extractor {
	e := &Extractor{
		rules: rules,
		hash:  XXHash,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract produces one content item per qualifying fragment, in
// document order. Re-running Extract on an unchanged document yields
// the identical (identifier, body) pairs in the same order.
func (e *Extractor) Extract(parsed *uniparser.ParseResult) ([]*uniparser.ContentItem, error) {
	table := newIdentifierTable(e.hash)
	now := e.now().UTC()

	var items []*uniparser.ContentItem
	for _, el := range parsed.Elements {
		switch el.Kind {
		case uniparser.KindTagOpen:
			items = append(items, e.extractAttrs(parsed, el, table, now)...)
		case uniparser.KindText:
			if item := e.extractText(parsed, el, table, now); item != nil {
				items = append(items, item)
			}
		case uniparser.KindTagClose, uniparser.KindComment, uniparser.KindDoctype:
			// nothing extractable
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Span.Start < items[j].Span.Start
	})
	for i, item := range items {
		item.ID = int64(i + 1)
	}

	return items, nil
}

// extractAttrs extracts the rule-qualifying attribute values of one
// tag-open element and applies the sibling-share policy afterwards, so
// sharing sees every sibling item regardless of attribute order.
func (e *Extractor) extractAttrs(parsed *uniparser.ParseResult, el *uniparser.Element, table *identifierTable, now time.Time) []*uniparser.ContentItem {
	wanted := e.rules.AttributesFor(el.TagName)
	if len(wanted) == 0 || el.RawAttrs == "" {
		return nil
	}

	attrs := parse.Attributes(el.RawAttrs, parse.AttrOffset(el))

	var items []*uniparser.ContentItem
	for _, a := range attrs {
		if !a.HasValue || !contains(wanted, a.Name) {
			continue
		}
		items = append(items, &uniparser.ContentItem{
			ElementID:  el.ID,
			Identifier: table.identify(a.Value),
			Class:      el.TagName,
			Kind:       a.Name,
			Body:       a.Value,
			Span:       a.ValueSpan,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	e.applyShare(items)
	return items
}

// extractText extracts a text run whose parent tag has a text rule.
// The span is trimmed to the non-whitespace content; whitespace-only
// runs produce no item.
func (e *Extractor) extractText(parsed *uniparser.ParseResult, el *uniparser.Element, table *identifierTable, now time.Time) *uniparser.ContentItem {
	parent := parsed.Element(el.ParentID)
	if parent == nil || parent.Kind != uniparser.KindTagOpen || !e.rules.TextFor(parent.TagName) {
		return nil
	}

	span := trimSpan(parsed.Body, el.Span)
	if span.Len() == 0 {
		return nil
	}
	body := parsed.Body[span.Start:span.End]

	return &uniparser.ContentItem{
		ElementID:  el.ID,
		Identifier: table.identify(body),
		Class:      parent.TagName,
		Kind:       uniparser.TextKind,
		Body:       body,
		Span:       span,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// applyShare points a multi-value item at its configured sibling's
// identifier when the item's first sub-value equals the sibling's body.
// This is the explicit cross-reference policy, not a hashing
// coincidence; it is off unless the rule configures share_with.
func (e *Extractor) applyShare(items []*uniparser.ContentItem) {
	for _, item := range items {
		sibling, ok := e.rules.ShareSibling(item.Class, item.Kind)
		if !ok {
			continue
		}
		first := firstSubValue(item.Body)
		if first == "" {
			continue
		}
		for _, other := range items {
			if other != item && other.Kind == sibling && other.Body == first {
				item.Identifier = other.Identifier
				break
			}
		}
	}
}

// firstSubValue returns the URL portion of the first comma-separated
// candidate of a multi-value attribute ("a.png 1x, b.png 2x" -> "a.png").
func firstSubValue(body string) string {
	first := body
	if i := strings.IndexByte(body, ','); i >= 0 {
		first = body[:i]
	}
	fields := strings.Fields(first)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func trimSpan(body string, span uniparser.Span) uniparser.Span {
	start, end := span.Start, span.End
	for start < end && isSpace(body[start]) {
		start++
	}
	for end > start && isSpace(body[end-1]) {
		end--
	}
	return uniparser.Span{Start: start, End: end}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
