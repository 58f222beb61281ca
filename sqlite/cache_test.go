package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/bpyschema"
	"github.com/fwojciec/bpyschema/mock"
	"github.com/fwojciec/bpyschema/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// countingSource serves "<page {version} {class}>" and counts fetches.
func countingSource(calls *int) *mock.DocumentSource {
	return &mock.DocumentSource{
		DocumentFn: func(_ context.Context, v bpyschema.Version, class string) (string, error) {
			*calls++
			return "<page " + v.String() + " " + class + ">", nil
		},
	}
}

func TestDocumentCache_Document(t *testing.T) {
	t.Parallel()

	v := bpyschema.Version{Major: 4, Minor: 1}

	t.Run("fetches on miss and serves from cache afterwards", func(t *testing.T) {
		t.Parallel()

		calls := 0
		cache := sqlite.NewDocumentCache(openDB(t), countingSource(&calls))
		ctx := context.Background()

		first, err := cache.Document(ctx, v, "ShaderNodeMath")
		require.NoError(t, err)
		second, err := cache.Document(ctx, v, "ShaderNodeMath")
		require.NoError(t, err)

		assert.Equal(t, "<page 4.1 ShaderNodeMath>", first)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, calls)
	})

	t.Run("keys by version and class", func(t *testing.T) {
		t.Parallel()

		calls := 0
		cache := sqlite.NewDocumentCache(openDB(t), countingSource(&calls))
		ctx := context.Background()

		_, err := cache.Document(ctx, v, "ShaderNodeMath")
		require.NoError(t, err)
		_, err = cache.Document(ctx, bpyschema.Version{Major: 4, Minor: 0}, "ShaderNodeMath")
		require.NoError(t, err)
		_, err = cache.Document(ctx, v, "ShaderNodeMix")
		require.NoError(t, err)

		assert.Equal(t, 3, calls)
	})

	t.Run("does not store failed fetches", func(t *testing.T) {
		t.Parallel()

		db := openDB(t)
		cache := sqlite.NewDocumentCache(db, &mock.DocumentSource{
			DocumentFn: func(context.Context, bpyschema.Version, string) (string, error) {
				return "", bpyschema.Errorf(bpyschema.ERATELIMIT, "HTTP 429")
			},
		})

		_, err := cache.Document(context.Background(), v, "ShaderNodeMath")
		assert.Equal(t, bpyschema.ERATELIMIT, bpyschema.ErrorCode(err))

		_, err = cache.FindDocument(context.Background(), v, "ShaderNodeMath")
		assert.Equal(t, bpyschema.ENOTFOUND, bpyschema.ErrorCode(err))
	})

	t.Run("refetches corrupted entries", func(t *testing.T) {
		t.Parallel()

		db := openDB(t)
		calls := 0
		cache := sqlite.NewDocumentCache(db, countingSource(&calls))
		ctx := context.Background()

		_, err := cache.Document(ctx, v, "ShaderNodeMath")
		require.NoError(t, err)
		_, err = db.ExecContext(ctx, "UPDATE documents SET content = 'garbage'")
		require.NoError(t, err)

		html, err := cache.Document(ctx, v, "ShaderNodeMath")
		require.NoError(t, err)

		assert.Equal(t, "<page 4.1 ShaderNodeMath>", html)
		assert.Equal(t, 2, calls)
	})

	t.Run("returns database errors", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		require.NoError(t, db.Open())
		require.NoError(t, db.Close())

		cache := sqlite.NewDocumentCache(db, &mock.DocumentSource{
			DocumentFn: func(context.Context, bpyschema.Version, string) (string, error) {
				return "", errors.New("should not be called")
			},
		})

		_, err := cache.Document(context.Background(), v, "ShaderNodeMath")
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "should not be called")
	})
}

func TestDocumentCache_FindDocument(t *testing.T) {
	t.Parallel()

	t.Run("returns stored metadata", func(t *testing.T) {
		t.Parallel()

		v := bpyschema.Version{Major: 3, Minor: 6}
		calls := 0
		cache := sqlite.NewDocumentCache(openDB(t), countingSource(&calls))
		fetched := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		cache.Now = func() time.Time { return fetched }

		_, err := cache.Document(context.Background(), v, "NodeInternal")
		require.NoError(t, err)

		doc, err := cache.FindDocument(context.Background(), v, "NodeInternal")
		require.NoError(t, err)
		assert.NotEmpty(t, doc.ID)
		assert.Equal(t, v, doc.Version)
		assert.Equal(t, "NodeInternal", doc.Class)
		assert.Equal(t, "<page 3.6 NodeInternal>", doc.Content)
		assert.Len(t, doc.ContentHash, 16)
		assert.Equal(t, fetched, doc.FetchedAt)
	})

	t.Run("returns ENOTFOUND on miss", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewDocumentCache(openDB(t), nil)

		_, err := cache.FindDocument(context.Background(), bpyschema.Version{Major: 3, Minor: 6}, "NodeInternal")
		assert.Equal(t, bpyschema.ENOTFOUND, bpyschema.ErrorCode(err))
	})
}

func TestDocumentCache_ClassesAndPurge(t *testing.T) {
	t.Parallel()

	calls := 0
	cache := sqlite.NewDocumentCache(openDB(t), countingSource(&calls))
	ctx := context.Background()
	v30 := bpyschema.Version{Major: 3, Minor: 0}
	v40 := bpyschema.Version{Major: 4, Minor: 0}

	for _, class := range []string{"ShaderNodeMix", "NodeInternal", "ShaderNodeMath"} {
		_, err := cache.Document(ctx, v30, class)
		require.NoError(t, err)
	}
	_, err := cache.Document(ctx, v40, "NodeInternal")
	require.NoError(t, err)

	classes, err := cache.Classes(ctx, v30)
	require.NoError(t, err)
	assert.Equal(t, []string{"NodeInternal", "ShaderNodeMath", "ShaderNodeMix"}, classes)

	n, err := cache.Purge(ctx, v30)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	classes, err = cache.Classes(ctx, v30)
	require.NoError(t, err)
	assert.Empty(t, classes)

	classes, err = cache.Classes(ctx, v40)
	require.NoError(t, err)
	assert.Equal(t, []string{"NodeInternal"}, classes)
}
