package uniparser

import (
	"context"
	"time"
)

// Document represents one source HTML document registered with the
// store. Body holds the full original text; BodyHash is the
// content-addressed hash of Body used as document identity across runs.
type Document struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Body      string    `json:"body"`
	BodyHash  string    `json:"bodyHash"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Name == "" {
		return Errorf(EINVALID, "document name required")
	}
	if d.Body == "" {
		return Errorf(EINVALID, "document body required")
	}
	return nil
}

// DocumentUpdate represents fields that can be updated on a document.
// Updating Body recomputes BodyHash.
type DocumentUpdate struct {
	Path *string `json:"path"`
	Body *string `json:"body"`
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// DocumentService represents a service for managing documents.
type DocumentService interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if the document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// UpdateDocument updates an existing document.
	// Returns ENOTFOUND if the document does not exist.
	UpdateDocument(ctx context.Context, id string, upd DocumentUpdate) (*Document, error)

	// DeleteDocument permanently removes a document and all associated
	// elements and content items.
	// Returns ENOTFOUND if the document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}
