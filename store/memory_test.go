package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stablemgr/stableapi/models"
)

func intp(i int) *int { return &i }

func seedStore(t *testing.T, horses ...models.Horse) *Memory {
	t.Helper()
	m := NewMemory()
	for _, h := range horses {
		require.NoError(t, m.Insert(context.Background(), h))
	}
	return m
}

func TestMemoryListActiveSkipsForged(t *testing.T) {
	m := seedStore(t,
		models.Horse{ID: "a", Name: "Comet", Status: models.StatusActive},
		models.Horse{ID: "b", Name: "Blaze", Status: models.StatusForged},
		models.Horse{ID: "c", Name: "Dash", Status: models.StatusActive},
	)

	got, err := m.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestMemoryGetHidesForged(t *testing.T) {
	m := seedStore(t,
		models.Horse{ID: "a", Status: models.StatusActive},
		models.Horse{ID: "b", Status: models.StatusForged},
	)
	ctx := context.Background()

	_, err := m.Get(ctx, "a")
	require.NoError(t, err)

	_, err = m.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	// Lookup still resolves forged records.
	h, err := m.Lookup(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, models.StatusForged, h.Status)
}

func TestMemoryReplace(t *testing.T) {
	m := seedStore(t, models.Horse{ID: "a", Name: "Comet", Status: models.StatusActive})
	ctx := context.Background()

	err := m.Replace(ctx, "a", models.Horse{ID: "a", Name: "Blaze", Status: models.StatusActive})
	require.NoError(t, err)

	h, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Blaze", h.Name)

	err = m.Replace(ctx, "missing", models.Horse{ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryNextOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store starts at zero", func(t *testing.T) {
		next, err := NewMemory().NextOrder(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, next)
	})

	t.Run("unordered records start at zero", func(t *testing.T) {
		m := seedStore(t, models.Horse{ID: "a", Status: models.StatusActive})
		next, err := m.NextOrder(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, next)
	})

	t.Run("max active order plus one", func(t *testing.T) {
		m := seedStore(t,
			models.Horse{ID: "a", Status: models.StatusActive, Order: intp(0)},
			models.Horse{ID: "b", Status: models.StatusActive, Order: intp(4)},
			models.Horse{ID: "c", Status: models.StatusActive, Order: intp(2)},
		)
		next, err := m.NextOrder(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, next)
	})

	t.Run("forged orders are ignored", func(t *testing.T) {
		m := seedStore(t,
			models.Horse{ID: "a", Status: models.StatusActive, Order: intp(1)},
			models.Horse{ID: "b", Status: models.StatusForged, Order: intp(9)},
		)
		next, err := m.NextOrder(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, next)
	})
}

func TestMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := seedStore(t, models.Horse{
		ID:     "a",
		Status: models.StatusActive,
		ZedBalanceHistory: []models.ZedBalanceHistoryEntry{
			{Balance: "0.05"},
		},
	})

	h, err := m.Get(ctx, "a")
	require.NoError(t, err)
	h.ZedBalanceHistory[0].Balance = "tampered"
	h.Name = "tampered"

	fresh, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "0.05", fresh.ZedBalanceHistory[0].Balance)
	assert.Empty(t, fresh.Name)
}
