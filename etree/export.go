// Package etree exports parse and extraction results as XML for
// interchange with external tooling. The export is descriptive, not
// authoritative: the document body and stored items remain the source
// of truth for reconstruction.
package etree

import (
	"strconv"

	"github.com/beevik/etree"
	"github.com/svituawww/uniparser"
)

// Marshal renders a document's parse and extraction output as an
// indented XML document.
func Marshal(doc *uniparser.Document, parsed *uniparser.ParseResult, items []*uniparser.ContentItem) ([]byte, error) {
	x := etree.NewDocument()
	x.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := x.CreateElement("document")
	if doc != nil {
		root.CreateAttr("id", doc.ID)
		root.CreateAttr("name", doc.Name)
		root.CreateAttr("bodyHash", doc.BodyHash)
	}

	if parsed != nil {
		els := root.CreateElement("elements")
		els.CreateAttr("count", strconv.Itoa(len(parsed.Elements)))
		for _, el := range parsed.Elements {
			e := els.CreateElement("element")
			e.CreateAttr("id", strconv.Itoa(el.ID))
			e.CreateAttr("kind", string(el.Kind))
			e.CreateAttr("start", strconv.Itoa(el.Span.Start))
			e.CreateAttr("end", strconv.Itoa(el.Span.End))
			e.CreateAttr("parent", strconv.Itoa(el.ParentID))
			e.CreateAttr("level", strconv.Itoa(el.Level))
			if el.TagName != "" {
				e.CreateAttr("tag", el.TagName)
			}
			if el.SelfClosing {
				e.CreateAttr("selfClosing", "true")
			}
		}

		if len(parsed.Anomalies) > 0 {
			as := root.CreateElement("anomalies")
			for _, a := range parsed.Anomalies {
				e := as.CreateElement("anomaly")
				e.CreateAttr("kind", string(a.Kind))
				e.CreateAttr("element", strconv.Itoa(a.ElementID))
				e.CreateAttr("offset", strconv.Itoa(a.Offset))
				e.SetText(a.Message)
			}
		}
	}

	its := root.CreateElement("items")
	its.CreateAttr("count", strconv.Itoa(len(items)))
	for _, item := range items {
		e := its.CreateElement("item")
		e.CreateAttr("identifier", item.Identifier)
		e.CreateAttr("class", item.Class)
		e.CreateAttr("kind", item.Kind)
		e.CreateAttr("element", strconv.Itoa(item.ElementID))
		e.CreateAttr("start", strconv.Itoa(item.Span.Start))
		e.CreateAttr("end", strconv.Itoa(item.Span.End))
		e.SetText(item.Body)
	}

	x.Indent(2)
	return x.WriteToBytes()
}
