package mock

import (
	"context"

	"github.com/svituawww/uniparser"
)

var _ uniparser.ElementService = (*ElementService)(nil)

// ElementService is a mock implementation of uniparser.ElementService.
type ElementService struct {
	ReplaceElementsFn        func(ctx context.Context, documentID string, elements []*uniparser.Element) error
	FindElementsByDocumentFn func(ctx context.Context, documentID string) ([]*uniparser.Element, error)
}

func (s *ElementService) ReplaceElements(ctx context.Context, documentID string, elements []*uniparser.Element) error {
	return s.ReplaceElementsFn(ctx, documentID, elements)
}

func (s *ElementService) FindElementsByDocument(ctx context.Context, documentID string) ([]*uniparser.Element, error) {
	return s.FindElementsByDocumentFn(ctx, documentID)
}
