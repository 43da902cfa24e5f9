package main

import (
	"fmt"

	"github.com/svituawww/uniparser"
	"github.com/svituawww/uniparser/etree"
	"github.com/svituawww/uniparser/parse"
)

// Run executes the export command. The XML document is written to
// stdout.
func (c *ExportCmd) Run(deps *Dependencies) error {
	doc, err := findDocumentByName(deps, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uniparser.ErrorMessage(err))
		return err
	}

	items, err := deps.Items.FindItemsByDocument(deps.Ctx, doc.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uniparser.ErrorMessage(err))
		return err
	}

	parsed := parse.NewParser().Parse(doc.Body)

	out, err := etree.Marshal(doc, parsed, items)
	if err != nil {
		return err
	}

	_, err = deps.Stdout.Write(out)
	return err
}
