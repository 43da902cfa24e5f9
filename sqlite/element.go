package sqlite

import (
	"context"

	"github.com/svituawww/uniparser"
)

// Compile-time interface verification.
var _ uniparser.ElementService = (*ElementService)(nil)

// ElementService implements uniparser.ElementService using SQLite.
// Elements are stored keyed by (document, sequence); a new parse pass
// replaces the previous one wholesale.
type ElementService struct {
	db *DB
}

// NewElementService creates a new ElementService.
func NewElementService(db *DB) *ElementService {
	return &ElementService{db: db}
}

// ReplaceElements replaces all stored elements for a document with the
// given parse pass output. The delete and inserts run in one
// transaction so a reader never observes a half-replaced pass.
func (s *ElementService) ReplaceElements(ctx context.Context, documentID string, elements []*uniparser.Element) error {
	if documentID == "" {
		return uniparser.Errorf(uniparser.EINVALID, "document ID required")
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM elements WHERE document_id = ?`, documentID); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO elements (document_id, seq, kind, tag_name, raw_attrs, start_offset, end_offset, parent_id, level, self_closing)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, el := range elements {
		_, err := stmt.ExecContext(ctx, documentID, el.Seq, string(el.Kind), el.TagName, el.RawAttrs,
			el.Span.Start, el.Span.End, el.ParentID, el.Level, boolToInt(el.SelfClosing))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindElementsByDocument retrieves all elements for a document in
// sequence order.
func (s *ElementService) FindElementsByDocument(ctx context.Context, documentID string) ([]*uniparser.Element, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, kind, tag_name, raw_attrs, start_offset, end_offset, parent_id, level, self_closing
		FROM elements
		WHERE document_id = ?
		ORDER BY seq ASC
	`, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var elements []*uniparser.Element
	for rows.Next() {
		var el uniparser.Element
		var kind string
		var selfClosing int

		if err := rows.Scan(&el.Seq, &kind, &el.TagName, &el.RawAttrs,
			&el.Span.Start, &el.Span.End, &el.ParentID, &el.Level, &selfClosing); err != nil {
			return nil, err
		}
		el.ID = el.Seq
		el.Kind = uniparser.ElementKind(kind)
		el.SelfClosing = selfClosing != 0

		elements = append(elements, &el)
	}

	return elements, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
