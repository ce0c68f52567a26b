package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reaper-tools/readocs/internal/core/domain"
)

func TestCorpusStore(t *testing.T) {
	ctx := context.Background()

	t.Run("returns held documents", func(t *testing.T) {
		store := NewCorpusStore(
			&domain.JSFXDocument{Functions: []domain.JSFXFunction{{Name: "sin"}}},
			nil,
			nil,
		)

		doc, err := store.JSFX(ctx)
		require.NoError(t, err)
		assert.Equal(t, "sin", doc.Functions[0].Name)
	})

	t.Run("nil document is unavailable", func(t *testing.T) {
		store := NewCorpusStore(nil, nil, nil)

		_, err := store.ReaScript(ctx)
		assert.ErrorIs(t, err, domain.ErrDataUnavailable)
	})

	t.Run("forced errors win", func(t *testing.T) {
		store := NewCorpusStore(nil, nil, &domain.ReaWrapDocument{})
		forced := errors.New("boom")
		store.SetError(domain.CorpusReaWrap, forced)

		_, err := store.ReaWrap(ctx)
		assert.ErrorIs(t, err, forced)
	})
}

func TestReferenceStore(t *testing.T) {
	ctx := context.Background()
	store := NewReferenceStore()
	store.Add(domain.ReferenceDoc{ID: "guide", Title: "Guide"}, []byte("hello"))

	docs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "guide", docs[0].ID)

	data, err := store.Read(ctx, "guide")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	_, err = store.Read(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
