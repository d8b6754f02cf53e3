package catalog_test

import (
	"context"
	"errors"
	"testing"

	"go-storefront-api/internal/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================== FAKE PROVIDER ====================

type fakeProvider struct {
	FetchFn func(ctx context.Context) ([]catalog.Item, error)
	calls   int
}

func (f *fakeProvider) Fetch(ctx context.Context) ([]catalog.Item, error) {
	f.calls++
	return f.FetchFn(ctx)
}

func sampleItems() []catalog.Item {
	return []catalog.Item{
		{ID: 1, Name: "Wireless Earbuds", UnitPrice: decimal.RequireFromString("49.99")},
		{ID: 2, Name: "Smart Watch", UnitPrice: decimal.RequireFromString("129.0")},
		{ID: 3, Name: "Bluetooth Speaker", UnitPrice: decimal.RequireFromString("74.25")},
	}
}

// ==================== TEST CASES ====================

func TestCatalogService_Items(t *testing.T) {
	t.Run("lazy_load_on_first_call", func(t *testing.T) {
		provider := &fakeProvider{
			FetchFn: func(ctx context.Context) ([]catalog.Item, error) {
				return sampleItems(), nil
			},
		}
		svc := catalog.NewService(provider, nil)

		assert.Equal(t, catalog.StateLoading, svc.Snapshot().State)

		items, err := svc.Items(context.Background())
		require.NoError(t, err)
		assert.Len(t, items, 3)
		assert.Equal(t, 1, provider.calls)
		assert.Equal(t, catalog.StateLoaded, svc.Snapshot().State)
	})

	t.Run("loaded_catalog_not_refetched", func(t *testing.T) {
		provider := &fakeProvider{
			FetchFn: func(ctx context.Context) ([]catalog.Item, error) {
				return sampleItems(), nil
			},
		}
		svc := catalog.NewService(provider, nil)

		_, err := svc.Items(context.Background())
		require.NoError(t, err)
		_, err = svc.Items(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, provider.calls)
	})

	t.Run("failed_fetch_surfaces_not_loaded", func(t *testing.T) {
		provider := &fakeProvider{
			FetchFn: func(ctx context.Context) ([]catalog.Item, error) {
				return nil, errors.New("network down")
			},
		}
		svc := catalog.NewService(provider, nil)

		items, err := svc.Items(context.Background())

		assert.ErrorIs(t, err, catalog.ErrNotLoaded)
		assert.Nil(t, items)

		snap := svc.Snapshot()
		assert.Equal(t, catalog.StateFailed, snap.State)
		assert.EqualError(t, snap.Err, "network down")
		assert.Empty(t, snap.Items)
	})
}

func TestCatalogService_Refresh(t *testing.T) {
	t.Run("recovers_from_failure", func(t *testing.T) {
		fail := true
		provider := &fakeProvider{
			FetchFn: func(ctx context.Context) ([]catalog.Item, error) {
				if fail {
					return nil, errors.New("boom")
				}
				return sampleItems(), nil
			},
		}
		svc := catalog.NewService(provider, nil)

		require.Error(t, svc.Refresh(context.Background()))
		assert.Equal(t, catalog.StateFailed, svc.Snapshot().State)

		fail = false
		require.NoError(t, svc.Refresh(context.Background()))

		snap := svc.Snapshot()
		assert.Equal(t, catalog.StateLoaded, snap.State)
		assert.Len(t, snap.Items, 3)
		assert.NoError(t, snap.Err)
	})

	t.Run("newest_result_wins", func(t *testing.T) {
		provider := &fakeProvider{
			FetchFn: func(ctx context.Context) ([]catalog.Item, error) {
				return sampleItems(), nil
			},
		}
		svc := catalog.NewService(provider, nil)
		require.NoError(t, svc.Refresh(context.Background()))

		// A later failure replaces the previously loaded list.
		provider.FetchFn = func(ctx context.Context) ([]catalog.Item, error) {
			return nil, errors.New("gone away")
		}
		require.Error(t, svc.Refresh(context.Background()))

		snap := svc.Snapshot()
		assert.Equal(t, catalog.StateFailed, snap.State)
		assert.Empty(t, snap.Items)

		_, err := svc.Items(context.Background())
		assert.ErrorIs(t, err, catalog.ErrNotLoaded)
	})
}

func TestCatalogService_Search(t *testing.T) {
	provider := &fakeProvider{
		FetchFn: func(ctx context.Context) ([]catalog.Item, error) {
			return sampleItems(), nil
		},
	}
	svc := catalog.NewService(provider, nil)

	t.Run("empty_term_returns_everything", func(t *testing.T) {
		items, err := svc.Search(context.Background(), "")
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})

	t.Run("case_insensitive_substring", func(t *testing.T) {
		items, err := svc.Search(context.Background(), "WATCH")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Smart Watch", items[0].Name)
	})

	t.Run("term_is_trimmed", func(t *testing.T) {
		items, err := svc.Search(context.Background(), "  speaker  ")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int64(3), items[0].ID)
	})

	t.Run("no_match_returns_empty_list", func(t *testing.T) {
		items, err := svc.Search(context.Background(), "toaster")
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestLookup(t *testing.T) {
	items := sampleItems()

	it, ok := catalog.Lookup(items, 2)
	require.True(t, ok)
	assert.Equal(t, "Smart Watch", it.Name)

	_, ok = catalog.Lookup(items, 99)
	assert.False(t, ok)
}
