package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corinnekunze/amazon-purchase-search/internal/display"
	"github.com/corinnekunze/amazon-purchase-search/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testCriteria(amount string) model.Criteria {
	return model.Criteria{
		Date:          "2024-03-15",
		Amount:        amount,
		DaysRange:     "7",
		SearchType:    "all",
		MaxComboItems: "5",
	}
}

func TestStore_RecordAndRecent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rs := &display.ResultSet{
		TotalMatches:       3,
		ItemMatches:        make([]display.DisplayMatch, 1),
		OrderMatches:       make([]display.DisplayMatch, 0),
		CombinationMatches: make([]display.DisplayMatch, 2),
	}

	require.NoError(t, store.Record(ctx, testCriteria("53.99"), rs))

	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, testCriteria("53.99"), entry.Criteria)
	assert.Equal(t, 3, entry.TotalMatches)
	assert.Equal(t, 1, entry.ItemMatches)
	assert.Equal(t, 0, entry.OrderMatches)
	assert.Equal(t, 2, entry.CombinationMatches)
	assert.WithinDuration(t, time.Now().UTC(), entry.SearchedAt, time.Minute)
}

func TestStore_RecentOrdersNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	empty := &display.ResultSet{}

	require.NoError(t, store.Record(ctx, testCriteria("1.00"), empty))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, store.Record(ctx, testCriteria("2.00"), empty))

	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2.00", entries[0].Criteria.Amount)
	assert.Equal(t, "1.00", entries[1].Criteria.Amount)
}

func TestStore_RecentHonorsLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	empty := &display.ResultSet{}

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(ctx, testCriteria("1.00"), empty))
	}

	entries, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	// Non-positive limits fall back to a sane default rather than
	// returning nothing.
	entries, err = store.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}
