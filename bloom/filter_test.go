package bloom_test

import (
	"fmt"
	"testing"

	"github.com/svituawww/uniparser/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("added identifiers always test positive", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		f.Add("00112233445566aa")

		assert.True(t, f.Test("00112233445566aa"))
	})

	t.Run("unseen identifier is usually negative", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		f.Add("00112233445566aa")

		assert.False(t, f.Test("ffeeddccbbaa9988"))
	})

	t.Run("estimated count tracks distinct additions", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(10000, 0.01)
		for i := 0; i < 100; i++ {
			f.Add(fmt.Sprintf("%016x", i))
		}
		// duplicates do not inflate the estimate
		f.Add("0000000000000001")

		count := f.EstimatedCount()
		assert.InDelta(t, 100, float64(count), 10)
	})
}
