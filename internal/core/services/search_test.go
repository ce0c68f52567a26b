package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reaper-tools/readocs/internal/adapters/driven/storage/memory"
	"github.com/reaper-tools/readocs/internal/core/domain"
)

func TestSearchService_JSFX(t *testing.T) {
	ctx := context.Background()
	svc := NewSearchService(testStore())

	t.Run("matches name, description and category", func(t *testing.T) {
		byName, err := svc.JSFX(ctx, "gfx_line", 10)
		require.NoError(t, err)
		require.Len(t, byName, 1)
		assert.Equal(t, "gfx_line", byName[0].Name)

		byDescription, err := svc.JSFX(ctx, "cosine", 10)
		require.NoError(t, err)
		require.Len(t, byDescription, 1)
		assert.Equal(t, "cos", byDescription[0].Name)

		byCategory, err := svc.JSFX(ctx, "graphics", 10)
		require.NoError(t, err)
		require.Len(t, byCategory, 1)
		assert.Equal(t, "gfx_line", byCategory[0].Name)
	})

	t.Run("matching ignores case", func(t *testing.T) {
		results, err := svc.JSFX(ctx, "MATH", 10)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("results keep storage order", func(t *testing.T) {
		results, err := svc.JSFX(ctx, "angle", 10)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "sin", results[0].Name)
		assert.Equal(t, "cos", results[1].Name)
	})

	t.Run("empty query matches every record", func(t *testing.T) {
		results, err := svc.JSFX(ctx, "", 10)
		require.NoError(t, err)
		assert.Len(t, results, 4)
	})

	t.Run("no match returns empty non-nil slice", func(t *testing.T) {
		results, err := svc.JSFX(ctx, "zzzz", 10)
		require.NoError(t, err)
		require.NotNil(t, results)
		assert.Empty(t, results)
	})
}

func TestSearchService_ReaScript(t *testing.T) {
	ctx := context.Background()
	svc := NewSearchService(testStore())

	t.Run("lower-case query finds mixed-case name", func(t *testing.T) {
		results, err := svc.ReaScript(ctx, "trackfx", 10)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "TrackFX_GetParam", results[0].Name)
		assert.Equal(t, "TrackFX_SetParam", results[1].Name)
	})

	t.Run("matches namespace", func(t *testing.T) {
		results, err := svc.ReaScript(ctx, "reaper", 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "GetTrackName", results[0].Name)
	})

	t.Run("absent namespace neither matches nor errors", func(t *testing.T) {
		// Only one fixture record has a namespace; the others have the
		// zero value and must simply not match.
		results, err := svc.ReaScript(ctx, "reaper", 10)
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})
}

func TestSearchService_ReaWrap(t *testing.T) {
	ctx := context.Background()
	svc := NewSearchService(testStore())

	t.Run("flattens methods and carries the class name", func(t *testing.T) {
		results, err := svc.ReaWrap(ctx, "create", 5)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Project", results[0].Class)
		assert.Equal(t, "create_track", results[0].Name)
		assert.Equal(t, "create_track", results[0].Method.Name)
	})

	t.Run("class name match includes all its methods", func(t *testing.T) {
		results, err := svc.ReaWrap(ctx, "project", 10)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "create_track", results[0].Name)
		assert.Equal(t, "save", results[1].Name)
	})

	t.Run("method description matches", func(t *testing.T) {
		results, err := svc.ReaWrap(ctx, "adds an fx", 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "add_fx_by_name", results[0].Name)
	})

	t.Run("every result has class and method name", func(t *testing.T) {
		results, err := svc.ReaWrap(ctx, "", 10)
		require.NoError(t, err)
		require.Len(t, results, 4)
		for _, r := range results {
			assert.NotEmpty(t, r.Class)
			assert.NotEmpty(t, r.Name)
		}
	})
}

func TestSearchService_Limit(t *testing.T) {
	ctx := context.Background()

	fns := make([]domain.JSFXFunction, 15)
	for i := range fns {
		fns[i] = domain.JSFXFunction{Name: fmt.Sprintf("fn_%02d", i), Category: "bulk"}
	}
	store := memory.NewCorpusStore(&domain.JSFXDocument{Functions: fns}, nil, nil)
	svc := NewSearchService(store)

	t.Run("zero limit applies the default cap", func(t *testing.T) {
		results, err := svc.JSFX(ctx, "bulk", 0)
		require.NoError(t, err)
		assert.Len(t, results, domain.DefaultSearchLimit)
	})

	t.Run("cap never exceeded", func(t *testing.T) {
		results, err := svc.JSFX(ctx, "bulk", 3)
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("capped results are the uncapped prefix", func(t *testing.T) {
		capped, err := svc.JSFX(ctx, "bulk", 5)
		require.NoError(t, err)
		uncapped, err2 := svc.JSFX(ctx, "bulk", 100)
		require.NoError(t, err2)

		require.Len(t, capped, 5)
		assert.Equal(t, uncapped[:5], capped)
	})

	t.Run("limit larger than matches returns all matches", func(t *testing.T) {
		results, err := svc.JSFX(ctx, "bulk", 100)
		require.NoError(t, err)
		assert.Len(t, results, 15)
	})
}

func TestSearchService_Degradation(t *testing.T) {
	ctx := context.Background()

	t.Run("missing corpus degrades to empty results", func(t *testing.T) {
		svc := NewSearchService(memory.NewCorpusStore(nil, nil, nil))

		results, err := svc.ReaScript(ctx, "anything", 10)
		require.NoError(t, err)
		require.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("corrupt corpus stays a hard error", func(t *testing.T) {
		store := memory.NewCorpusStore(nil, nil, nil)
		store.SetError(domain.CorpusReaWrap, domain.ErrDataCorrupt)
		svc := NewSearchService(store)

		_, err := svc.ReaWrap(ctx, "track", 10)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDataCorrupt)
	})
}

func TestSearch_SupersetOfLookup(t *testing.T) {
	// Any substring of an existing name found by lookup must also be
	// found by search.
	ctx := context.Background()
	store := testStore()
	lookup := NewLookupService(store)
	search := NewSearchService(store)

	fn, err := lookup.ReaScriptFunction(ctx, "TrackFX_GetParam")
	require.NoError(t, err)

	results, err := search.ReaScript(ctx, "fx_getparam", 10)
	require.NoError(t, err)

	found := false
	for _, r := range results {
		if r.Name == fn.Name {
			found = true
		}
	}
	assert.True(t, found, "search should contain the record lookup resolved")
}
