package extract_test

import (
	"strings"
	"testing"

	"github.com/svituawww/uniparser"
	"github.com/svituawww/uniparser/extract"
	"github.com/svituawww/uniparser/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractAll(t *testing.T, body string, rules *uniparser.RuleSet, opts ...extract.Option) []*uniparser.ContentItem {
	t.Helper()
	parsed := parse.NewParser().Parse(body)
	items, err := extract.NewExtractor(rules, opts...).Extract(parsed)
	require.NoError(t, err)
	return items
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("meta content with mixed quoting", func(t *testing.T) {
		t.Parallel()

		body := `<meta name="description" content="A B C">`
		items := extractAll(t, body, uniparser.DefaultRules())

		require.Len(t, items, 1)
		assert.Equal(t, "meta", items[0].Class)
		assert.Equal(t, "content", items[0].Kind)
		assert.Equal(t, "A B C", items[0].Body)
		assert.Equal(t, "A B C", body[items[0].Span.Start:items[0].Span.End])
	})

	t.Run("embedded apostrophe is not truncated", func(t *testing.T) {
		t.Parallel()

		body := `<meta name='description' content="text with an apostrophe's mark">`
		items := extractAll(t, body, uniparser.DefaultRules())

		require.Len(t, items, 1)
		assert.Equal(t, "text with an apostrophe's mark", items[0].Body)
	})

	t.Run("multi-value attribute is one whole-value item", func(t *testing.T) {
		t.Parallel()

		body := `<img src="a.png" alt="logo" srcset="a.png 1x, b.png 2x" sizes="(max-width: 600px) 100vw, 50vw">`
		items := extractAll(t, body, uniparser.DefaultRules())

		require.Len(t, items, 4)
		kinds := make([]string, len(items))
		for i, item := range items {
			kinds[i] = item.Kind
		}
		assert.Equal(t, []string{"src", "alt", "srcset", "sizes"}, kinds)
		assert.Equal(t, "a.png 1x, b.png 2x", items[2].Body)
	})

	t.Run("case-insensitive tag and attribute matching", func(t *testing.T) {
		t.Parallel()

		upper := extractAll(t, `<META NAME="Description" CONTENT="X">`, uniparser.DefaultRules())
		lower := extractAll(t, `<meta name="description" content="X">`, uniparser.DefaultRules())

		require.Len(t, upper, 1)
		require.Len(t, lower, 1)
		assert.Equal(t, lower[0].Kind, upper[0].Kind)
		assert.Equal(t, lower[0].Identifier, upper[0].Identifier)
		assert.Equal(t, "X", upper[0].Body)
	})

	t.Run("identical bodies share an identifier", func(t *testing.T) {
		t.Parallel()

		body := `<img src="logo.png" alt="x"><a href="logo.png">l</a>`
		items := extractAll(t, body, uniparser.DefaultRules())

		require.Len(t, items, 3)
		var ids []string
		for _, item := range items {
			if item.Body == "logo.png" {
				ids = append(ids, item.Identifier)
			}
		}
		require.Len(t, ids, 2)
		assert.Equal(t, ids[0], ids[1])
	})

	t.Run("re-extraction is idempotent", func(t *testing.T) {
		t.Parallel()

		body := `<title>Site</title><img src="a.png" alt="one"><img src="b.png" alt="two">`
		first := extractAll(t, body, uniparser.DefaultRules())
		second := extractAll(t, body, uniparser.DefaultRules())

		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, first[i].Identifier, second[i].Identifier)
			assert.Equal(t, first[i].Body, second[i].Body)
		}
	})

	t.Run("items arrive in document order with sequential ids", func(t *testing.T) {
		t.Parallel()

		body := `<img alt="z" src="a.png"><title>t</title>`
		items := extractAll(t, body, uniparser.DefaultRules())

		require.Len(t, items, 3)
		for i := 1; i < len(items); i++ {
			assert.Greater(t, items[i].Span.Start, items[i-1].Span.Start)
			assert.Equal(t, int64(i+1), items[i].ID)
		}
	})

	t.Run("text rule extracts trimmed text runs", func(t *testing.T) {
		t.Parallel()

		body := "<title>\n  My Site  \n</title>"
		items := extractAll(t, body, uniparser.DefaultRules())

		require.Len(t, items, 1)
		assert.Equal(t, uniparser.TextKind, items[0].Kind)
		assert.Equal(t, "title", items[0].Class)
		assert.Equal(t, "My Site", items[0].Body)
		assert.Equal(t, "My Site", body[items[0].Span.Start:items[0].Span.End])
	})

	t.Run("whitespace-only text runs produce no item", func(t *testing.T) {
		t.Parallel()

		items := extractAll(t, "<title>   </title>", uniparser.DefaultRules())
		assert.Empty(t, items)
	})

	t.Run("no item span escapes its owning element", func(t *testing.T) {
		t.Parallel()

		body := `<img src="a.png" alt="logo"><title>t</title>`
		parsed := parse.NewParser().Parse(body)
		items, err := extract.NewExtractor(uniparser.DefaultRules()).Extract(parsed)
		require.NoError(t, err)

		for _, item := range items {
			owner := parsed.Element(item.ElementID)
			require.NotNil(t, owner)
			assert.True(t, owner.Span.Contains(item.Span))
		}
	})
}

func TestExtractor_SiblingShare(t *testing.T) {
	t.Parallel()

	rules := uniparser.NewRuleSet([]uniparser.Rule{
		{
			Tag:        "img",
			Attributes: []string{"src", "srcset"},
			ShareWith:  map[string]string{"srcset": "src"},
		},
	})
	body := `<img src="a.png" srcset="a.png 1x, b.png 2x">`

	t.Run("first sub-value match shares the sibling identifier", func(t *testing.T) {
		t.Parallel()

		items := extractAll(t, body, rules)

		require.Len(t, items, 2)
		assert.Equal(t, items[0].Identifier, items[1].Identifier)
		assert.Equal(t, "a.png 1x, b.png 2x", items[1].Body)
	})

	t.Run("non-matching first sub-value keeps its own identifier", func(t *testing.T) {
		t.Parallel()

		items := extractAll(t, `<img src="z.png" srcset="a.png 1x">`, rules)

		require.Len(t, items, 2)
		assert.NotEqual(t, items[0].Identifier, items[1].Identifier)
	})

	t.Run("policy is off without configuration", func(t *testing.T) {
		t.Parallel()

		items := extractAll(t, body, uniparser.DefaultRules())

		var src, srcset string
		for _, item := range items {
			switch item.Kind {
			case "src":
				src = item.Identifier
			case "srcset":
				srcset = item.Identifier
			}
		}
		assert.NotEqual(t, src, srcset)
	})
}

func TestExtractor_HashCollision(t *testing.T) {
	t.Parallel()

	// A constant hasher forces every distinct body into a collision.
	collide := func(string) string { return "deadbeefdeadbeef" }

	body := `<img src="a.png" alt="logo">`
	items := extractAll(t, body, uniparser.DefaultRules(), extract.WithHasher(collide))

	require.Len(t, items, 2)
	assert.Equal(t, "deadbeefdeadbeef", items[0].Identifier)
	assert.Equal(t, "deadbeefdeadbeef_2", items[1].Identifier)
	assert.NotEqual(t, items[0].Body, items[1].Body)
}

func TestXXHash(t *testing.T) {
	t.Parallel()

	a := extract.XXHash("logo.png")
	b := extract.XXHash("logo.png")
	c := extract.XXHash("other.png")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 16)
	assert.Equal(t, strings.ToLower(a), a)
}
