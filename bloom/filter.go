// Package bloom provides content-item identifier deduplication for
// batch runs using Bloom filters. The filter backs a distinct-count
// estimate, where a false positive costs accuracy of the estimate,
// never correctness of stored data.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter for identifier deduplication.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected identifiers
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds an identifier to the filter.
func (f *Filter) Add(identifier string) {
	f.f.AddString(identifier)
}

// Test returns true if the identifier might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(identifier string) bool {
	return f.f.TestString(identifier)
}

// EstimatedCount returns the approximate number of identifiers in the
// filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
