package uniparser

import (
	"context"
	"time"
)

// TextKind is the ContentItem.Kind sentinel for text-node fragments.
const TextKind = "text"

// ContentItem is one extracted editable fragment: an attribute value or
// a text run. Its identifier is a pure function of Body (content
// addressing), so re-extracting identical content yields the identical
// identifier. A changed body produces a new identifier, never a mutation
// of an existing one.
type ContentItem struct {
	// ID is the 1-based document-order index of the item.
	ID int64 `json:"id"`

	// DocumentID references the owning document when persisted.
	DocumentID string `json:"documentId,omitempty"`

	// ElementID is the arena index of the owning element. A lookup
	// reference only; items never own elements.
	ElementID int `json:"elementId"`

	// Identifier is the content-addressed identifier of Body.
	Identifier string `json:"identifier"`

	// Class is the lowercased tag name of the owning element.
	Class string `json:"class"`

	// Kind is the lowercased attribute name, or TextKind.
	Kind string `json:"kind"`

	// Body is the exact original fragment value, byte for byte.
	Body string `json:"body"`

	// Span addresses Body within the original document buffer.
	Span Span `json:"span"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the item contains invalid fields.
func (i *ContentItem) Validate() error {
	if i.Identifier == "" {
		return Errorf(EINVALID, "content item identifier required")
	}
	if i.Class == "" {
		return Errorf(EINVALID, "content item class required")
	}
	if i.Kind == "" {
		return Errorf(EINVALID, "content item kind required")
	}
	if i.Span.End < i.Span.Start {
		return Errorf(EINVALID, "content item span is inverted")
	}
	return nil
}

// Extractor walks a parse result and produces content items for every
// fragment that qualifies under the configured rule set, in document
// order.
type Extractor interface {
	Extract(parsed *ParseResult) ([]*ContentItem, error)
}

// ItemService persists content items keyed by identifier.
type ItemService interface {
	// UpsertItem inserts the item, or refreshes updated_at when the
	// identifier already exists for the document with the same body.
	UpsertItem(ctx context.Context, item *ContentItem) error

	// FindItemByIdentifier retrieves one item for a document.
	// Returns ENOTFOUND if the identifier is not stored.
	FindItemByIdentifier(ctx context.Context, documentID, identifier string) (*ContentItem, error)

	// FindItemsByDocument retrieves all items for a document in
	// document order.
	FindItemsByDocument(ctx context.Context, documentID string) ([]*ContentItem, error)
}
