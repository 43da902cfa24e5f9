// Package goquery provides a DOM-based document probe. The probe is a
// preflight step: it summarizes what the configured rules would find so
// a rule set can be tuned before running positional extraction. It runs
// on a normalized DOM and therefore never reports byte offsets; the
// positional parser remains the single source of extraction truth.
package goquery

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/svituawww/uniparser"
	"golang.org/x/net/html"
)

var _ uniparser.Inspector = (*Inspector)(nil)

// Inspector summarizes documents against an extraction rule set.
type Inspector struct {
	rules *uniparser.RuleSet
}

// NewInspector creates an Inspector for the given rule set.
func NewInspector(rules *uniparser.RuleSet) *Inspector {
	return &Inspector{rules: rules}
}

// Inspect parses the document and reports the page title, a tag census,
// and per-rule candidate counts.
func (i *Inspector) Inspect(html string) (*uniparser.ProbeResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, uniparser.Errorf(uniparser.EINVALID, "parse document: %v", err)
	}

	res := &uniparser.ProbeResult{
		Title:     strings.TrimSpace(doc.Find("title").First().Text()),
		TagCounts: make(map[string]int),
	}

	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		res.TagCounts[goquery.NodeName(sel)]++
	})

	tags := i.rules.Tags()
	sort.Strings(tags)
	for _, tag := range tags {
		rule, _ := i.rules.Rule(tag)
		for _, attr := range rule.Attributes {
			res.RuleMatches = append(res.RuleMatches, uniparser.RuleMatch{
				Tag:       tag,
				Attribute: attr,
				Count:     doc.Find(tag + "[" + attr + "]").Length(),
			})
		}
		if rule.Text {
			count := 0
			doc.Find(tag).Each(func(_ int, sel *goquery.Selection) {
				if hasDirectText(sel) {
					count++
				}
			})
			res.RuleMatches = append(res.RuleMatches, uniparser.RuleMatch{
				Tag:       tag,
				Attribute: uniparser.TextKind,
				Count:     count,
			})
		}
	}

	return res, nil
}

// hasDirectText reports whether the selection has a non-blank text node
// as a direct child, matching the extractor's direct-text scope.
func hasDirectText(sel *goquery.Selection) bool {
	for _, node := range sel.Nodes {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" {
				return true
			}
		}
	}
	return false
}
