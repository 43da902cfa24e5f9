package uniparser

import "context"

// TemplateStore persists template artifacts with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes. A failed run never leaves partial
// template files behind.
type TemplateStore interface {
	Save(ctx context.Context, name string, template string) error
	Commit() error
	Abort() error
}

// RunProgress reports progress while a batch of documents is processed.
type RunProgress struct {
	Path      string
	Completed int
	Total     int
	Err       error
}

// RunProgressFunc is called as documents complete.
type RunProgressFunc func(RunProgress)
