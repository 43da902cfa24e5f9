package main

import (
	"fmt"

	"github.com/svituawww/uniparser"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	docs, err := deps.Documents.FindDocuments(deps.Ctx, uniparser.DocumentFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uniparser.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found. Use 'uniparser parse' to add some.")
		return nil
	}

	for _, d := range docs {
		// rows written before hashing still list cleanly
		hash := d.BodyHash
		if len(hash) > 12 {
			hash = hash[:12]
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %d bytes  %s\n", d.ID, d.Name, len(d.Body), hash)
	}

	return nil
}
