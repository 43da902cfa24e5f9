package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/svituawww/uniparser"
	"github.com/zeebo/blake3"
)

// Compile-time interface verification.
var _ uniparser.DocumentService = (*DocumentService)(nil)

// DocumentService implements uniparser.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashBody computes the BLAKE3 hash of a document body and returns a
// hex string. The hash is the document's content identity across runs.
func hashBody(body string) string {
	sum := blake3.Sum256([]byte(body))
	return hex.EncodeToString(sum[:])
}

// CreateDocument creates a new document.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *uniparser.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.CreatedAt = time.Now().UTC()
	doc.UpdatedAt = doc.CreatedAt
	doc.BodyHash = hashBody(doc.Body)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, name, path, body, body_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Name, doc.Path, doc.Body, doc.BodyHash,
		doc.CreatedAt.Format(time.RFC3339), doc.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*uniparser.Document, error) {
	var doc uniparser.Document
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, path, body, body_hash, created_at, updated_at
		FROM documents
		WHERE id = ?
	`, id).Scan(&doc.ID, &doc.Name, &doc.Path, &doc.Body, &doc.BodyHash, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, uniparser.Errorf(uniparser.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	if doc.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if doc.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &doc, nil
}

// FindDocuments retrieves documents matching the filter.
func (s *DocumentService) FindDocuments(ctx context.Context, filter uniparser.DocumentFilter) ([]*uniparser.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, path, body, body_hash, created_at, updated_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*uniparser.Document
	for rows.Next() {
		var doc uniparser.Document
		var createdAt, updatedAt string

		if err := rows.Scan(&doc.ID, &doc.Name, &doc.Path, &doc.Body, &doc.BodyHash, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if doc.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if doc.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// UpdateDocument updates an existing document.
func (s *DocumentService) UpdateDocument(ctx context.Context, id string, upd uniparser.DocumentUpdate) (*uniparser.Document, error) {
	doc, err := s.FindDocumentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Path != nil {
		doc.Path = *upd.Path
	}
	if upd.Body != nil {
		doc.Body = *upd.Body
		doc.BodyHash = hashBody(doc.Body)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	doc.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE documents
		SET path = ?, body = ?, body_hash = ?, updated_at = ?
		WHERE id = ?
	`, doc.Path, doc.Body, doc.BodyHash, doc.UpdatedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}

	return doc, nil
}

// DeleteDocument permanently removes a document. Associated elements
// and content items are removed by the schema's cascade rules.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return uniparser.Errorf(uniparser.ENOTFOUND, "document not found")
	}

	return nil
}
