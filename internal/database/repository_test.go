package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoomie/transations/internal/models"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db)
}

func TestEnsureDefaultUserIsStable(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.EnsureDefaultUser(ctx)
	require.NoError(t, err)
	second, err := repo.EnsureDefaultUser(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCreateAndGetUser(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.EnsureDefaultUser(ctx)
	require.NoError(t, err)

	user, err := repo.CreateUser(ctx, "test", "test.test@test.com")
	require.NoError(t, err)
	assert.Equal(t, "test", user.Name)

	got, err := repo.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "test.test@test.com", got.Email)

	_, err = repo.CreateUser(ctx, "test", "")
	assert.Error(t, err)

	_, err = repo.GetUser(ctx, 9999)
	assert.True(t, errors.Is(err, sql.ErrNoRows))

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestMigrateIsRepeatableAndSeedsNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.db")

	db, err := New(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = New(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	users, err := NewRepository(db).ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestReplaceAndListTransactions(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	userID, err := repo.EnsureDefaultUser(ctx)
	require.NoError(t, err)

	txs := []models.Transaction{
		{
			Timestamp:      "2024-01-02T00:00:00",
			Description:    "later",
			Amount:         decimal.RequireFromString("-5.25"),
			Currency:       "GBP",
			RunningBalance: decimal.NewNullDecimal(decimal.RequireFromString("94.75")),
		},
		{
			Timestamp:   "2024-01-01T00:00:00",
			Description: "earlier",
			Amount:      decimal.RequireFromString("100"),
			Currency:    "GBP",
		},
	}
	require.NoError(t, repo.ReplaceTransactions(ctx, userID, txs))

	got, err := repo.ListTransactions(ctx, userID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "earlier", got[0].Description)
	assert.False(t, got[0].RunningBalance.Valid)
	assert.Equal(t, "later", got[1].Description)
	assert.True(t, got[1].RunningBalance.Decimal.Equal(decimal.RequireFromString("94.75")))
	assert.True(t, got[1].Amount.Equal(decimal.RequireFromString("-5.25")))

	// Replacing does not accumulate.
	require.NoError(t, repo.ReplaceTransactions(ctx, userID, txs[:1]))
	got, err = repo.ListTransactions(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestListTransactionsEmpty(t *testing.T) {
	repo := newTestRepository(t)

	got, err := repo.ListTransactions(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, got)
}
