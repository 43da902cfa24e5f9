package main

import (
	"github.com/svituawww/uniparser"
)

// findDocumentByName resolves a stored document by its name.
func findDocumentByName(deps *Dependencies, name string) (*uniparser.Document, error) {
	docs, err := deps.Documents.FindDocuments(deps.Ctx, uniparser.DocumentFilter{Name: &name})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, uniparser.Errorf(uniparser.ENOTFOUND, "document %q not found. Use 'uniparser list' to see stored documents", name)
	}
	return docs[0], nil
}
