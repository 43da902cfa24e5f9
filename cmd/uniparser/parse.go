package main

import (
	"fmt"
	"path/filepath"

	"github.com/svituawww/uniparser"
	"github.com/svituawww/uniparser/pipeline"
	unislog "github.com/svituawww/uniparser/slog"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	p := pipeline.New(deps.Rules)
	p.Parser = unislog.NewLoggingParser(p.Parser, deps.Logger)
	p.Extractor = unislog.NewLoggingExtractor(p.Extractor, deps.Logger)

	runner := &pipeline.Runner{
		Pipeline:    p,
		Concurrency: c.Concurrency,
	}

	progress := func(ev uniparser.RunProgress) {
		if ev.Err != nil {
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %s\n", ev.Completed, ev.Total, ev.Path, ev.Err)
			return
		}
		fmt.Fprintf(deps.Stdout, "[%d/%d] %s\n", ev.Completed, ev.Total, ev.Path)
	}

	results, summary, err := runner.RunFiles(deps.Ctx, c.Paths, progress)
	if err != nil {
		return err
	}

	var stored, failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			continue
		}
		if err := c.store(deps, res); err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "store %s: %s\n", res.Path, uniparser.ErrorMessage(err))
			continue
		}
		stored++
	}

	fmt.Fprintf(deps.Stdout, "Stored %d document(s), %d failed, ~%d distinct identifiers, %d bytes\n",
		stored, failed, summary.DistinctIdentifiers, summary.Bytes)

	if failed > 0 {
		return uniparser.Errorf(uniparser.EINTERNAL, "%d of %d document(s) failed", failed, len(results))
	}
	return nil
}

// store persists one file's pipeline output. A re-parsed document keeps
// its identity: the body is updated in place and unchanged items keep
// their created_at.
func (c *ParseCmd) store(deps *Dependencies, res pipeline.FileResult) error {
	name := documentName(res.Path)

	doc, err := findDocumentByName(deps, name)
	switch uniparser.ErrorCode(err) {
	case "":
		body := res.Result.Parsed.Body
		if doc, err = deps.Documents.UpdateDocument(deps.Ctx, doc.ID, uniparser.DocumentUpdate{
			Path: &res.Path,
			Body: &body,
		}); err != nil {
			return err
		}
	case uniparser.ENOTFOUND:
		doc = &uniparser.Document{
			Name: name,
			Path: res.Path,
			Body: res.Result.Parsed.Body,
		}
		if err := deps.Documents.CreateDocument(deps.Ctx, doc); err != nil {
			return err
		}
	default:
		return err
	}

	if err := deps.Elements.ReplaceElements(deps.Ctx, doc.ID, res.Result.Parsed.Elements); err != nil {
		return err
	}

	for _, item := range res.Result.Items {
		item.DocumentID = doc.ID
		if err := deps.Items.UpsertItem(deps.Ctx, item); err != nil {
			return err
		}
	}

	return nil
}

// documentName derives the stored document name from a file path.
func documentName(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
