package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/svituawww/uniparser"
)

// Ensure TemplateStore implements uniparser.TemplateStore at compile time.
var _ uniparser.TemplateStore = (*TemplateStore)(nil)

// TemplateStore implements uniparser.TemplateStore with atomic update
// semantics. Templates are saved to a temporary directory, then moved
// atomically on Commit.
type TemplateStore struct {
	baseDir string
	name    string
}

// NewTemplateStore creates a new TemplateStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewTemplateStore(baseDir, name string) *TemplateStore {
	return &TemplateStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *TemplateStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *TemplateStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// TemplatePath returns the relative file name a template is stored
// under for a document name.
func TemplatePath(name string) string {
	return name + ".tpl.html"
}

// Save writes one template into the pending temporary directory.
func (s *TemplateStore) Save(ctx context.Context, name string, template string) error {
	fullPath := filepath.Join(s.tempDir(), TemplatePath(name))
	return WriteFileAtomic(fullPath, []byte(template))
}

// Commit atomically replaces the final directory with the pending one.
func (s *TemplateStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return err
	}
	return nil
}

// Abort discards all pending templates.
func (s *TemplateStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
