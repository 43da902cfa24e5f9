package main

import (
	"fmt"

	"github.com/svituawww/uniparser"
)

// Run executes the items command.
func (c *ItemsCmd) Run(deps *Dependencies) error {
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

	if len(items) == 0 {
		fmt.Fprintf(deps.Stdout, "No content items for %q.\n", doc.Name)
		return nil
	}

	for _, item := range items {
		body := item.Body
		if len(body) > 60 {
			body = body[:57] + "..."
		}
		fmt.Fprintf(deps.Stdout, "%4d  %s  %s/%s  [%d:%d]  %q\n",
			item.ID, item.Identifier, item.Class, item.Kind, item.Span.Start, item.Span.End, body)
	}

	return nil
}
