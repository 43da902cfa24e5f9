package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/svituawww/uniparser"
)

// Compile-time interface verification.
var _ uniparser.ItemService = (*ItemService)(nil)

// ItemService implements uniparser.ItemService using SQLite. Items are
// keyed by (document, identifier): content addressing means a body maps
// to one identifier, so re-extracting unchanged content refreshes
// updated_at instead of inserting a duplicate.
type ItemService struct {
	db *DB
}

// NewItemService creates a new ItemService.
func NewItemService(db *DB) *ItemService {
	return &ItemService{db: db}
}

// UpsertItem inserts the item, or refreshes updated_at when the
// identifier already exists for the document. A changed body arrives
// under a new identifier by construction, so the stored body for an
// identifier never silently changes. Duplicate fragment occurrences
// collapse onto one row keeping the last occurrence's span; anything
// that needs every span re-extracts from the document body.
func (s *ItemService) UpsertItem(ctx context.Context, item *uniparser.ContentItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if item.DocumentID == "" {
		return uniparser.Errorf(uniparser.EINVALID, "content item document ID required")
	}

	now := time.Now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO content_items (document_id, identifier, position, element_id, class, kind, body, start_offset, end_offset, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (document_id, identifier) DO UPDATE SET
			position = excluded.position,
			element_id = excluded.element_id,
			start_offset = excluded.start_offset,
			end_offset = excluded.end_offset,
			updated_at = excluded.updated_at
	`, item.DocumentID, item.Identifier, item.ID, item.ElementID, item.Class, item.Kind, item.Body,
		item.Span.Start, item.Span.End,
		item.CreatedAt.Format(time.RFC3339), item.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindItemByIdentifier retrieves one item for a document.
func (s *ItemService) FindItemByIdentifier(ctx context.Context, documentID, identifier string) (*uniparser.ContentItem, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT document_id, identifier, position, element_id, class, kind, body, start_offset, end_offset, created_at, updated_at
		FROM content_items
		WHERE document_id = ? AND identifier = ?
	`, documentID, identifier)

	item, err := scanItem(row.Scan)
	if err == sql.ErrNoRows {
		return nil, uniparser.Errorf(uniparser.ENOTFOUND, "content item %q not found", identifier)
	}
	return item, err
}

// FindItemsByDocument retrieves all items for a document in document
// order.
func (s *ItemService) FindItemsByDocument(ctx context.Context, documentID string) ([]*uniparser.ContentItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT document_id, identifier, position, element_id, class, kind, body, start_offset, end_offset, created_at, updated_at
		FROM content_items
		WHERE document_id = ?
		ORDER BY position ASC
	`, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*uniparser.ContentItem
	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// scanItem scans one content_items row regardless of its source.
func scanItem(scan func(dest ...any) error) (*uniparser.ContentItem, error) {
	var item uniparser.ContentItem
	var createdAt, updatedAt string

	err := scan(&item.DocumentID, &item.Identifier, &item.ID, &item.ElementID, &item.Class, &item.Kind,
		&item.Body, &item.Span.Start, &item.Span.End, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if item.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if item.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &item, nil
}
