package mock

import "github.com/svituawww/uniparser"

var _ uniparser.Parser = (*Parser)(nil)

// Parser is a mock implementation of uniparser.Parser.
type Parser struct {
	ParseFn func(body string) *uniparser.ParseResult
}

func (p *Parser) Parse(body string) *uniparser.ParseResult {
	return p.ParseFn(body)
}
