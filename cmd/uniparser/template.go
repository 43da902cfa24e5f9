package main

import (
	"fmt"
	"path/filepath"

	"github.com/svituawww/uniparser"
	"github.com/svituawww/uniparser/extract"
	"github.com/svituawww/uniparser/fs"
	"github.com/svituawww/uniparser/parse"
)

// Run executes the template command.
func (c *TemplateCmd) Run(deps *Dependencies) error {
	doc, err := findDocumentByName(deps, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uniparser.ErrorMessage(err))
		return err
	}

	// Re-extract from the stored body rather than reading persisted
	// items: the store keys items by identifier, so duplicate fragment
	// occurrences collapse to a single span and a template built from
	// them would leave the other occurrences unsubstituted.
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

	store := deps.NewTemplateStore(c.Out, doc.Name)
	if err := store.Save(deps.Ctx, doc.Name, tpl); err != nil {
		return err
	}
	if err := store.Commit(); err != nil {
		_ = store.Abort()
		return err
	}

	out := filepath.Join(c.Out, doc.Name, fs.TemplatePath(doc.Name))
	fmt.Fprintf(deps.Stdout, "Wrote template for %q (%d item(s)) to %s\n", doc.Name, len(items), out)
	return nil
}
