package main

import (
	"fmt"
	"os"

	"github.com/svituawww/uniparser"
	"github.com/svituawww/uniparser/extract"
	"github.com/svituawww/uniparser/parse"
)

// Run executes the rebuild command. The reconstructed document is
// written to stdout.
func (c *RebuildCmd) Run(deps *Dependencies) error {
	doc, err := findDocumentByName(deps, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uniparser.ErrorMessage(err))
		return err
	}

	if c.Template != "" {
		data, err := os.ReadFile(c.Template)
		if err != nil {
			return fmt.Errorf("read template: %w", err)
		}

		// Stored items are keyed by identifier, which is exactly what
		// placeholder resolution needs: identical bodies share one row.
		items, err := deps.Items.FindItemsByDocument(deps.Ctx, doc.ID)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", uniparser.ErrorMessage(err))
			return err
		}

		out, err := deps.Reconstructor.Reconstruct(string(data), uniparser.ResolveItems(items))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", uniparser.ErrorMessage(err))
			return err
		}
		fmt.Fprint(deps.Stdout, out)
		return nil
	}

	// No template file given: derive one from the stored body, so the
	// command doubles as a stored-state round-trip check. Re-extract
	// instead of reading persisted items; identifier-keyed rows keep
	// only one span per duplicate fragment, which would leave the other
	// occurrences unsubstituted in the derived template.
	parsed := parse.NewParser().Parse(doc.Body)
	items, err := extract.NewExtractor(deps.Rules).Extract(parsed)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uniparser.ErrorMessage(err))
		return err
	}

	tpl, err := deps.Templates.Build(doc.Body, items)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uniparser.ErrorMessage(err))
		return err
	}

	out, err := deps.Reconstructor.Reconstruct(tpl, uniparser.ResolveItems(items))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uniparser.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, out)
	return nil
}
