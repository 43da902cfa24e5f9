package sqlite_test

import (
	"context"
	"testing"

	"github.com/svituawww/uniparser"
	"github.com/svituawww/uniparser/parse"
	"github.com/svituawww/uniparser/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementService_ReplaceElements(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a parse pass", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		ctx := context.Background()
		doc := mustCreateDocument(t, db, "page")

		parsed := parse.NewParser().Parse(`<div class="a"><img src="x.png">text</div>`)
		svc := sqlite.NewElementService(db)
		require.NoError(t, svc.ReplaceElements(ctx, doc.ID, parsed.Elements))

		got, err := svc.FindElementsByDocument(ctx, doc.ID)
		require.NoError(t, err)
		require.Len(t, got, len(parsed.Elements))

		for i, el := range parsed.Elements {
			assert.Equal(t, el.Kind, got[i].Kind)
			assert.Equal(t, el.TagName, got[i].TagName)
			assert.Equal(t, el.RawAttrs, got[i].RawAttrs)
			assert.Equal(t, el.Span, got[i].Span)
			assert.Equal(t, el.ParentID, got[i].ParentID)
			assert.Equal(t, el.Level, got[i].Level)
			assert.Equal(t, el.SelfClosing, got[i].SelfClosing)
		}
	})

	t.Run("a new pass supersedes the old one", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		ctx := context.Background()
		doc := mustCreateDocument(t, db, "page")
		svc := sqlite.NewElementService(db)

		first := parse.NewParser().Parse(`<p>one</p>`)
		require.NoError(t, svc.ReplaceElements(ctx, doc.ID, first.Elements))

		second := parse.NewParser().Parse(`<span>two</span><br>`)
		require.NoError(t, svc.ReplaceElements(ctx, doc.ID, second.Elements))

		got, err := svc.FindElementsByDocument(ctx, doc.ID)
		require.NoError(t, err)
		require.Len(t, got, len(second.Elements))
		assert.Equal(t, "span", got[0].TagName)
	})

	t.Run("requires a document id", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		err := sqlite.NewElementService(db).ReplaceElements(context.Background(), "", nil)

		require.Error(t, err)
		assert.Equal(t, uniparser.EINVALID, uniparser.ErrorCode(err))
	})
}
