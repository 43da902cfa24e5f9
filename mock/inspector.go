package mock

import "github.com/svituawww/uniparser"

var _ uniparser.Inspector = (*Inspector)(nil)

// Inspector is a mock implementation of uniparser.Inspector.
type Inspector struct {
	InspectFn func(html string) (*uniparser.ProbeResult, error)
}

func (i *Inspector) Inspect(html string) (*uniparser.ProbeResult, error) {
	return i.InspectFn(html)
}
