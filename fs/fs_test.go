package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/svituawww/uniparser/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes content and creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out", "page.tpl.html")
		require.NoError(t, fs.WriteFileAtomic(path, []byte("template")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "template", string(data))
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, fs.WriteFileAtomic(filepath.Join(dir, "a.html"), []byte("x")))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "a.html", entries[0].Name())
	})

	t.Run("replaces an existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.html")
		require.NoError(t, fs.WriteFileAtomic(path, []byte("old")))
		require.NoError(t, fs.WriteFileAtomic(path, []byte("new")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})
}

func TestTemplateStore(t *testing.T) {
	t.Parallel()

	t.Run("saved templates appear only after commit", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		store := fs.NewTemplateStore(base, "templates")
		ctx := context.Background()

		require.NoError(t, store.Save(ctx, "index", "<html>uuid_x</html>"))

		_, err := os.Stat(filepath.Join(base, "templates", fs.TemplatePath("index")))
		assert.True(t, os.IsNotExist(err))

		require.NoError(t, store.Commit())

		data, err := os.ReadFile(filepath.Join(base, "templates", fs.TemplatePath("index")))
		require.NoError(t, err)
		assert.Equal(t, "<html>uuid_x</html>", string(data))
	})

	t.Run("abort discards pending templates", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		store := fs.NewTemplateStore(base, "templates")

		require.NoError(t, store.Save(context.Background(), "index", "pending"))
		require.NoError(t, store.Abort())

		_, err := os.Stat(filepath.Join(base, "templates.tmp"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("commit replaces a previous run", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		ctx := context.Background()

		first := fs.NewTemplateStore(base, "templates")
		require.NoError(t, first.Save(ctx, "old", "old"))
		require.NoError(t, first.Commit())

		second := fs.NewTemplateStore(base, "templates")
		require.NoError(t, second.Save(ctx, "new", "new"))
		require.NoError(t, second.Commit())

		_, err := os.Stat(filepath.Join(base, "templates", fs.TemplatePath("old")))
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(filepath.Join(base, "templates", fs.TemplatePath("new")))
		assert.NoError(t, err)
	})
}
