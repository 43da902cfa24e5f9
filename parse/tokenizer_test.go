package parse_test

import (
	"testing"

	"github.com/svituawww/uniparser"
	"github.com/svituawww/uniparser/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("tokens tile the input with no gaps", func(t *testing.T) {
		t.Parallel()

		body := `<!DOCTYPE html><html><head><title>Hi</title></head><body><!-- note --><p>text</p></body></html>`
		res := parse.NewParser().Parse(body)

		require.NotEmpty(t, res.Elements)
		assert.Empty(t, res.Anomalies)
		assert.Equal(t, 0, res.Elements[0].Span.Start)
		for i := 1; i < len(res.Elements); i++ {
			assert.Equal(t, res.Elements[i-1].Span.End, res.Elements[i].Span.Start,
				"gap before element %d", i)
		}
		assert.Equal(t, len(body), res.Elements[len(res.Elements)-1].Span.End)
	})

	t.Run("raw bytes are preserved exactly", func(t *testing.T) {
		t.Parallel()

		body := `<DIV  Class = "x" >mixed  spacing</DIV>`
		res := parse.NewParser().Parse(body)

		require.Len(t, res.Elements, 3)
		open := res.Elements[0]
		assert.Equal(t, uniparser.KindTagOpen, open.Kind)
		assert.Equal(t, "div", open.TagName)
		assert.Equal(t, `  Class = "x" `, open.RawAttrs)
		assert.Equal(t, `<DIV  Class = "x" >`, res.Raw(open))
		assert.Equal(t, "mixed  spacing", res.Raw(res.Elements[1]))
		assert.Equal(t, `</DIV>`, res.Raw(res.Elements[2]))
	})

	t.Run("assigns parent and nesting level", func(t *testing.T) {
		t.Parallel()

		body := `<ul><li>one</li></ul>`
		res := parse.NewParser().Parse(body)

		require.Len(t, res.Elements, 5)
		ul, li, text, liClose, ulClose := res.Elements[0], res.Elements[1], res.Elements[2], res.Elements[3], res.Elements[4]

		assert.Equal(t, uniparser.NoParent, ul.ParentID)
		assert.Equal(t, 0, ul.Level)
		assert.Equal(t, ul.ID, li.ParentID)
		assert.Equal(t, 1, li.Level)
		assert.Equal(t, li.ID, text.ParentID)
		assert.Equal(t, 2, text.Level)
		assert.Equal(t, ul.ID, liClose.ParentID)
		assert.Equal(t, 1, liClose.Level)
		assert.Equal(t, uniparser.NoParent, ulClose.ParentID)
		assert.Equal(t, 0, ulClose.Level)
	})

	t.Run("quote of the other kind does not terminate a value", func(t *testing.T) {
		t.Parallel()

		body := `<meta name='description' content="text with an apostrophe's mark">`
		res := parse.NewParser().Parse(body)

		require.Len(t, res.Elements, 1)
		assert.Empty(t, res.Anomalies)
		assert.Equal(t, len(body), res.Elements[0].Span.End)
	})

	t.Run("apostrophe inside an unquoted value is an ordinary byte", func(t *testing.T) {
		t.Parallel()

		body := `<img alt=it's me><p>rest of the document</p>`
		res := parse.NewParser().Parse(body)

		require.Len(t, res.Elements, 4)
		assert.Empty(t, res.Anomalies)
		assert.Equal(t, `<img alt=it's me>`, res.Raw(res.Elements[0]))
		assert.Equal(t, "p", res.Elements[1].TagName)
		assert.Equal(t, "rest of the document", res.Raw(res.Elements[2]))
	})

	t.Run("gt inside a quoted value does not end the tag", func(t *testing.T) {
		t.Parallel()

		body := `<a title="a > b">x</a>`
		res := parse.NewParser().Parse(body)

		require.Len(t, res.Elements, 3)
		assert.Equal(t, `<a title="a > b">`, res.Raw(res.Elements[0]))
	})

	t.Run("void elements are not pushed onto the stack", func(t *testing.T) {
		t.Parallel()

		body := `<p><img src="a.png"><br>text</p>`
		res := parse.NewParser().Parse(body)

		require.Len(t, res.Elements, 5)
		assert.Empty(t, res.Anomalies)
		img := res.Elements[1]
		assert.True(t, img.SelfClosing)
		text := res.Elements[3]
		assert.Equal(t, res.Elements[0].ID, text.ParentID)
	})

	t.Run("script content is raw text", func(t *testing.T) {
		t.Parallel()

		body := `<script>var a = 1 < 2;</script>`
		res := parse.NewParser().Parse(body)

		require.Len(t, res.Elements, 3)
		assert.Equal(t, uniparser.KindText, res.Elements[1].Kind)
		assert.Equal(t, `var a = 1 < 2;`, res.Raw(res.Elements[1]))
	})

	t.Run("longer tag name does not end a raw text region", func(t *testing.T) {
		t.Parallel()

		body := `<script>check("</scripty>");</script>`
		res := parse.NewParser().Parse(body)

		require.Len(t, res.Elements, 3)
		assert.Equal(t, uniparser.KindText, res.Elements[1].Kind)
		assert.Equal(t, `check("</scripty>");`, res.Raw(res.Elements[1]))
		assert.Equal(t, `</script>`, res.Raw(res.Elements[2]))
	})

	t.Run("stray lt is text", func(t *testing.T) {
		t.Parallel()

		body := `<p>1 < 2</p>`
		res := parse.NewParser().Parse(body)

		require.Len(t, res.Elements, 3)
		assert.Equal(t, "1 < 2", res.Raw(res.Elements[1]))
	})

	t.Run("unmatched close becomes an anomaly not an error", func(t *testing.T) {
		t.Parallel()

		body := `<div>text</span></div>`
		res := parse.NewParser().Parse(body)

		require.Len(t, res.Elements, 4)
		require.Len(t, res.Anomalies, 1)
		a := res.Anomalies[0]
		assert.Equal(t, uniparser.AnomalyUnmatchedClose, a.Kind)
		assert.Equal(t, "span", res.Elements[a.ElementID].TagName)
	})

	t.Run("unclosed open is reported at end of input", func(t *testing.T) {
		t.Parallel()

		body := `<div><p>text`
		res := parse.NewParser().Parse(body)

		require.Len(t, res.Anomalies, 2)
		kinds := []uniparser.AnomalyKind{res.Anomalies[0].Kind, res.Anomalies[1].Kind}
		assert.Contains(t, kinds, uniparser.AnomalyUnmatchedOpen)
	})

	t.Run("outer closer implicitly closes inner opens", func(t *testing.T) {
		t.Parallel()

		body := `<ul><li>one</ul>`
		res := parse.NewParser().Parse(body)

		require.Len(t, res.Anomalies, 1)
		a := res.Anomalies[0]
		assert.Equal(t, uniparser.AnomalyUnmatchedOpen, a.Kind)
		assert.Equal(t, "li", res.Elements[a.ElementID].TagName)

		// The ul closer pairs with the ul opener despite the open li.
		ulClose := res.Elements[len(res.Elements)-1]
		assert.Equal(t, uniparser.KindTagClose, ulClose.Kind)
		assert.Equal(t, 0, ulClose.Level)
	})

	t.Run("unterminated tag degrades to best-effort span", func(t *testing.T) {
		t.Parallel()

		body := `<p>text<img src="a.png`
		res := parse.NewParser().Parse(body)

		last := res.Elements[len(res.Elements)-1]
		assert.Equal(t, uniparser.KindTagOpen, last.Kind)
		assert.Equal(t, len(body), last.Span.End)

		var unterminated bool
		for _, a := range res.Anomalies {
			if a.Kind == uniparser.AnomalyUnterminated {
				unterminated = true
			}
		}
		assert.True(t, unterminated)
	})

	t.Run("unterminated comment runs to end of input", func(t *testing.T) {
		t.Parallel()

		body := `<p>a</p><!-- never closed`
		res := parse.NewParser().Parse(body)

		last := res.Elements[len(res.Elements)-1]
		assert.Equal(t, uniparser.KindComment, last.Kind)
		assert.Equal(t, len(body), last.Span.End)
		require.NotEmpty(t, res.Anomalies)
		assert.Equal(t, uniparser.AnomalyUnterminated, res.Anomalies[0].Kind)
	})

	t.Run("doctype is its own kind", func(t *testing.T) {
		t.Parallel()

		res := parse.NewParser().Parse(`<!DOCTYPE html><html></html>`)

		require.NotEmpty(t, res.Elements)
		assert.Equal(t, uniparser.KindDoctype, res.Elements[0].Kind)
	})

	t.Run("empty input yields no elements", func(t *testing.T) {
		t.Parallel()

		res := parse.NewParser().Parse("")

		assert.Empty(t, res.Elements)
		assert.Empty(t, res.Anomalies)
	})
}
