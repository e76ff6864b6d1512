package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Grefendor/drinks/internal/database"
	"github.com/Grefendor/drinks/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestTransactionStore(t *testing.T) {
	ctx := context.Background()

	t.Run("InsertTransactions", func(t *testing.T) {
		var gotSQL string
		var gotArgs []any
		db := &database.FakeDB{ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			gotSQL, gotArgs = sql, args
			return pgconn.NewCommandTag("INSERT 0 3"), nil
		}}
		n, err := InsertTransactions(ctx, db, 7, 2, 3)
		require.NoError(t, err)
		require.EqualValues(t, 3, n)
		require.Contains(t, gotSQL, "generate_series(1, $3::int)")
		require.Equal(t, []any{7, 2, 3}, gotArgs)

		db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, errors.New("check violation")
		}
		_, err = InsertTransactions(ctx, db, 7, 2, 3)
		require.ErrorContains(t, err, "check violation")
	})

	t.Run("ListTransactionsByUser orders by id", func(t *testing.T) {
		// 較新的 id 可能帶較早的 created_at，回傳順序仍依 id
		now := time.Now().UTC()
		newer := model.Transaction{ID: 12, UserID: 7, ProductID: 2, CreatedAt: now.Add(-time.Millisecond)}
		older := model.Transaction{ID: 11, UserID: 7, ProductID: 2, CreatedAt: now}

		db := &database.FakeDB{QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			require.Contains(t, sql, "ORDER BY id DESC")
			require.NotContains(t, sql, "ORDER BY created_at")
			require.Equal(t, []any{7, 2}, args)
			return &fakeRows{data: [][]any{
				{newer.ID, newer.UserID, newer.ProductID, newer.CreatedAt},
				{older.ID, older.UserID, older.ProductID, older.CreatedAt},
			}}, nil
		}}
		list, err := ListTransactionsByUser(ctx, db, 7, 2)
		require.NoError(t, err)
		require.Equal(t, []model.Transaction{newer, older}, list)

		db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) { return &fakeRows{err: errors.New("rows")}, nil }
		_, err = ListTransactionsByUser(ctx, db, 7, 2)
		require.Error(t, err)
	})
}
