package mock

import "github.com/svituawww/uniparser"

var _ uniparser.Validator = (*Validator)(nil)

// Validator is a mock implementation of uniparser.Validator.
type Validator struct {
	ValidateFn func(parsed *uniparser.ParseResult, items []*uniparser.ContentItem) *uniparser.ValidationReport
}

func (v *Validator) Validate(parsed *uniparser.ParseResult, items []*uniparser.ContentItem) *uniparser.ValidationReport {
	return v.ValidateFn(parsed, items)
}
