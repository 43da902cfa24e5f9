package uniparser

import "strings"

// Rule enumerates the extractable fragments of one element tag: a set of
// attribute names, optionally the element's text runs, and an optional
// sibling-share policy for multi-value attributes.
type Rule struct {
	// Tag is the element tag name the rule applies to. Matching is
	// case-insensitive.
	Tag string

	// Attributes lists attribute names whose values are extracted.
	// Matching is case-insensitive; a multi-value attribute (such as
	// srcset) is extracted as one whole-value fragment.
	Attributes []string

	// Text extracts the element's direct text runs when set.
	Text bool

	// ShareWith maps a multi-value attribute to a sibling attribute on
	// the same element. When the multi-value attribute's first sub-value
	// equals the sibling's extracted body, the item is pointed at the
	// sibling's identifier instead of minting a fresh one. This is an
	// explicit cross-reference policy, off unless configured.
	ShareWith map[string]string
}

// RuleSet is the extraction configuration: which (tag, attribute) pairs
// and text nodes qualify as content items. A RuleSet is read-only once
// built and safe for concurrent use.
type RuleSet struct {
	rules map[string]Rule
}

// NewRuleSet builds a RuleSet from rules. Tag and attribute names are
// normalized to lower case; a later rule for the same tag replaces an
// earlier one.
func NewRuleSet(rules []Rule) *RuleSet {
	rs := &RuleSet{rules: make(map[string]Rule, len(rules))}
	for _, r := range rules {
		norm := Rule{
			Tag:  strings.ToLower(r.Tag),
			Text: r.Text,
		}
		for _, a := range r.Attributes {
			norm.Attributes = append(norm.Attributes, strings.ToLower(a))
		}
		if len(r.ShareWith) > 0 {
			norm.ShareWith = make(map[string]string, len(r.ShareWith))
			for attr, sibling := range r.ShareWith {
				norm.ShareWith[strings.ToLower(attr)] = strings.ToLower(sibling)
			}
		}
		rs.rules[norm.Tag] = norm
	}
	return rs
}

// AttributesFor returns the extractable attribute names for a tag, or
// nil when the tag has no attribute rules.
func (rs *RuleSet) AttributesFor(tag string) []string {
	r, ok := rs.rules[strings.ToLower(tag)]
	if !ok {
		return nil
	}
	return r.Attributes
}

// TextFor reports whether text runs directly inside a tag are extracted.
func (rs *RuleSet) TextFor(tag string) bool {
	return rs.rules[strings.ToLower(tag)].Text
}

// ShareSibling returns the sibling attribute an item of (tag, attr)
// may share an identifier with, if the policy is configured.
func (rs *RuleSet) ShareSibling(tag, attr string) (string, bool) {
	r, ok := rs.rules[strings.ToLower(tag)]
	if !ok || r.ShareWith == nil {
		return "", false
	}
	sibling, ok := r.ShareWith[strings.ToLower(attr)]
	return sibling, ok
}

// Tags returns the tags the rule set covers, in no particular order.
func (rs *RuleSet) Tags() []string {
	tags := make([]string, 0, len(rs.rules))
	for tag := range rs.rules {
		tags = append(tags, tag)
	}
	return tags
}

// Rule returns the normalized rule for a tag.
func (rs *RuleSet) Rule(tag string) (Rule, bool) {
	r, ok := rs.rules[strings.ToLower(tag)]
	return r, ok
}

// DefaultRules returns the rule set used when no configuration file is
// provided: image sources and alternates, meta descriptions, and the
// document title.
func DefaultRules() *RuleSet {
	return NewRuleSet([]Rule{
		{Tag: "img", Attributes: []string{"src", "alt", "srcset", "sizes"}},
		{Tag: "meta", Attributes: []string{"content"}},
		{Tag: "a", Attributes: []string{"href", "title"}},
		{Tag: "title", Text: true},
	})
}
