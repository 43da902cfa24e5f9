package mock

import (
	"context"

	"github.com/svituawww/uniparser"
)

var _ uniparser.TemplateStore = (*TemplateStore)(nil)

// TemplateStore is a mock implementation of uniparser.TemplateStore.
type TemplateStore struct {
	SaveFn   func(ctx context.Context, name string, template string) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *TemplateStore) Save(ctx context.Context, name string, template string) error {
	return s.SaveFn(ctx, name, template)
}

func (s *TemplateStore) Commit() error {
	return s.CommitFn()
}

func (s *TemplateStore) Abort() error {
	return s.AbortFn()
}
