package mock

import "github.com/svituawww/uniparser"

var _ uniparser.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of uniparser.Extractor.
type Extractor struct {
	ExtractFn func(parsed *uniparser.ParseResult) ([]*uniparser.ContentItem, error)
}

func (e *Extractor) Extract(parsed *uniparser.ParseResult) ([]*uniparser.ContentItem, error) {
	return e.ExtractFn(parsed)
}
