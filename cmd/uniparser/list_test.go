package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svituawww/uniparser"
	main "github.com/svituawww/uniparser/cmd/uniparser"
	"github.com/svituawww/uniparser/mock"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists documents with ID, name, and hash", func(t *testing.T) {
		t.Parallel()

		documents := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, _ uniparser.DocumentFilter) ([]*uniparser.Document, error) {
				return []*uniparser.Document{
					{ID: "doc-123", Name: "home", Body: "<html></html>", BodyHash: "aabbccddeeff0011"},
					{ID: "doc-456", Name: "about", Body: "<p>hi</p>", BodyHash: "1100ffeeddccbbaa"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Documents: documents,
		}

		err := (&main.ListCmd{}).Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "doc-123")
		assert.Contains(t, output, "home")
		assert.Contains(t, output, "aabbccddeeff")
		assert.Contains(t, output, "about")
		assert.Empty(t, stderr.String())
	})

	t.Run("handles a row with no body hash", func(t *testing.T) {
		t.Parallel()

		documents := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, _ uniparser.DocumentFilter) ([]*uniparser.Document, error) {
				return []*uniparser.Document{
					{ID: "doc-789", Name: "legacy", Body: "<p>old</p>", BodyHash: ""},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Documents: documents,
		}

		err := (&main.ListCmd{}).Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "doc-789")
		assert.Contains(t, stdout.String(), "legacy")
	})

	t.Run("prints hint when store is empty", func(t *testing.T) {
		t.Parallel()

		documents := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, _ uniparser.DocumentFilter) ([]*uniparser.Document, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Documents: documents,
		}

		err := (&main.ListCmd{}).Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No documents found")
	})
}
