package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sakuraclothing/store-cli/internal/order/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMissingFileIsEmptyHistory(t *testing.T) {
	repo := NewJSONHistoryRepository(filepath.Join(t.TempDir(), "history.json"))

	recs, err := repo.List(context.TODO())

	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestListCorruptFileIsEmptyHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{"), 0o644))
	repo := NewJSONHistoryRepository(path)

	recs, err := repo.List(context.TODO())

	require.NoError(t, err, "a broken history file must not break the session")
	assert.Empty(t, recs)
}

func TestAppendAndReplaceAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	repo := NewJSONHistoryRepository(path)
	ctx := context.TODO()

	rec := domain.PurchaseRecord{
		Timestamp: "08/27/2026 09:15:00 AM",
		Type:      domain.TypePurchase,
		Items: []domain.PurchaseItem{
			{Name: "T-Shirt", Price: decimal.NewFromInt(2500), Quantity: 4, Size: "M"},
		},
	}

	require.NoError(t, repo.Append(ctx, rec))
	require.NoError(t, repo.Append(ctx, rec))

	recs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "T-Shirt", recs[0].Items[0].Name)
	assert.True(t, recs[0].Items[0].Price.Equal(decimal.NewFromInt(2500)))

	require.NoError(t, repo.ReplaceAll(ctx, recs[:1]))
	recs, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}
