package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	main "github.com/svituawww/uniparser/cmd/uniparser"
)

// newTestMain returns a Main wired to a temporary database.
func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "uniparser.db")
	return m
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no command shows help and errors", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		err := m.Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help exits cleanly", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "uniparser")
	})

	t.Run("template substitutes repeated fragments stored once", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		body := `<img src="same.png" alt="x"><a href="same.png">l</a>`
		path := filepath.Join(dir, "dup.html")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		m := newTestMain(t)
		ctx := context.Background()

		require.NoError(t, m.Run(ctx, []string{"parse", path}, &bytes.Buffer{}, &bytes.Buffer{}))

		out := t.TempDir()
		require.NoError(t, m.Run(ctx, []string{"template", "dup", "-o", out}, &bytes.Buffer{}, &bytes.Buffer{}))

		written, err := os.ReadFile(filepath.Join(out, "dup", "dup.tpl.html"))
		require.NoError(t, err)
		assert.NotContains(t, string(written), "same.png")

		stdout := &bytes.Buffer{}
		require.NoError(t, m.Run(ctx, []string{"rebuild", "dup"}, stdout, &bytes.Buffer{}))
		assert.Equal(t, body, stdout.String())
	})

	t.Run("parse then list then rebuild end to end", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		body := `<html><head><title>Home</title></head><body><img src="hero.png" alt="Hero"></body></html>`
		path := filepath.Join(dir, "home.html")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		m := newTestMain(t)
		ctx := context.Background()

		stdout := &bytes.Buffer{}
		require.NoError(t, m.Run(ctx, []string{"parse", path}, stdout, &bytes.Buffer{}))
		assert.Contains(t, stdout.String(), "Stored 1 document(s)")

		stdout.Reset()
		require.NoError(t, m.Run(ctx, []string{"list"}, stdout, &bytes.Buffer{}))
		assert.Contains(t, stdout.String(), "home")

		stdout.Reset()
		require.NoError(t, m.Run(ctx, []string{"rebuild", "home"}, stdout, &bytes.Buffer{}))
		assert.Equal(t, body, stdout.String())

		stdout.Reset()
		require.NoError(t, m.Run(ctx, []string{"validate", "home"}, stdout, &bytes.Buffer{}))
		assert.Contains(t, stdout.String(), "PASS")
	})
}
