package mock

import "github.com/svituawww/uniparser"

var _ uniparser.TemplateBuilder = (*TemplateBuilder)(nil)

// TemplateBuilder is a mock implementation of uniparser.TemplateBuilder.
type TemplateBuilder struct {
	BuildFn func(body string, items []*uniparser.ContentItem) (string, error)
}

func (b *TemplateBuilder) Build(body string, items []*uniparser.ContentItem) (string, error) {
	return b.BuildFn(body, items)
}

var _ uniparser.Reconstructor = (*Reconstructor)(nil)

// Reconstructor is a mock implementation of uniparser.Reconstructor.
type Reconstructor struct {
	ReconstructFn func(template string, resolve uniparser.ResolveFunc) (string, error)
}

func (r *Reconstructor) Reconstruct(template string, resolve uniparser.ResolveFunc) (string, error) {
	return r.ReconstructFn(template, resolve)
}
