package uniparser_test

import (
	"testing"

	"github.com/svituawww/uniparser"
	"github.com/stretchr/testify/assert"
)

func TestPlaceholder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "uuid_0011223344556677", uniparser.Placeholder("0011223344556677"))
}

func TestResolveItems(t *testing.T) {
	t.Parallel()

	t.Run("resolves identifiers to bodies", func(t *testing.T) {
		t.Parallel()

		resolve := uniparser.ResolveItems([]*uniparser.ContentItem{
			{Identifier: "aa", Body: "first"},
			{Identifier: "bb", Body: "second"},
		})

		body, ok := resolve("aa")
		assert.True(t, ok)
		assert.Equal(t, "first", body)

		_, ok = resolve("cc")
		assert.False(t, ok)
	})

	t.Run("first body wins for a shared identifier", func(t *testing.T) {
		t.Parallel()

		resolve := uniparser.ResolveItems([]*uniparser.ContentItem{
			{Identifier: "aa", Body: "first"},
			{Identifier: "aa", Body: "second"},
		})

		body, ok := resolve("aa")
		assert.True(t, ok)
		assert.Equal(t, "first", body)
	})
}

func TestSpan(t *testing.T) {
	t.Parallel()

	outer := uniparser.Span{Start: 10, End: 30}

	assert.Equal(t, 20, outer.Len())
	assert.True(t, outer.Contains(uniparser.Span{Start: 10, End: 30}))
	assert.True(t, outer.Contains(uniparser.Span{Start: 15, End: 20}))
	assert.False(t, outer.Contains(uniparser.Span{Start: 5, End: 20}))
	assert.True(t, outer.Overlaps(uniparser.Span{Start: 29, End: 40}))
	assert.False(t, outer.Overlaps(uniparser.Span{Start: 30, End: 40}))
}
