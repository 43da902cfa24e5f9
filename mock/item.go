package mock

import (
	"context"

	"github.com/svituawww/uniparser"
)

var _ uniparser.ItemService = (*ItemService)(nil)

// ItemService is a mock implementation of uniparser.ItemService.
type ItemService struct {
	UpsertItemFn           func(ctx context.Context, item *uniparser.ContentItem) error
	FindItemByIdentifierFn func(ctx context.Context, documentID, identifier string) (*uniparser.ContentItem, error)
	FindItemsByDocumentFn  func(ctx context.Context, documentID string) ([]*uniparser.ContentItem, error)
}

func (s *ItemService) UpsertItem(ctx context.Context, item *uniparser.ContentItem) error {
	return s.UpsertItemFn(ctx, item)
}

func (s *ItemService) FindItemByIdentifier(ctx context.Context, documentID, identifier string) (*uniparser.ContentItem, error) {
	return s.FindItemByIdentifierFn(ctx, documentID, identifier)
}

func (s *ItemService) FindItemsByDocument(ctx context.Context, documentID string) ([]*uniparser.ContentItem, error) {
	return s.FindItemsByDocumentFn(ctx, documentID)
}
