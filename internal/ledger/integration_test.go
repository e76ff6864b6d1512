package ledger

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/Grefendor/drinks/internal/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newIntegrationLedger 需要 LEDGER_TEST_DATABASE_URL，會清空資料表
func newIntegrationLedger(t *testing.T) (*Ledger, database.DB) {
	t.Helper()
	url := os.Getenv("LEDGER_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("LEDGER_TEST_DATABASE_URL not set")
	}
	require.NoError(t, database.RunMigrations(url))

	ctx := context.Background()
	db, err := database.NewPgxPool(ctx, url)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.Exec(ctx, `TRUNCATE users, products, transactions RESTART IDENTITY`)
	require.NoError(t, err)

	l, err := New(db, WithPinPepper("integration-pepper"))
	require.NoError(t, err)
	return l, db
}

func TestIntegrationConcurrentDeduction(t *testing.T) {
	l, db := newIntegrationLedger(t)
	ctx := context.Background()

	admin, err := l.CreateInitialAdmin(ctx, "0000", "admin")
	require.NoError(t, err)
	_, err = l.CreateProduct(ctx, "4001", "Mate", 10, decimal.NullDecimal{})
	require.NoError(t, err)

	const buyers = 25
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		short     int
	)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := l.RecordTransaction(ctx, admin.ID, "4001", 1)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrInsufficientStock):
				short++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 10, succeeded)
	require.Equal(t, buyers-10, short)

	p, err := l.GetProduct(ctx, "4001")
	require.NoError(t, err)
	require.Zero(t, p.Count)

	var rows int
	require.NoError(t, db.QueryRow(ctx, `SELECT count(*) FROM transactions`).Scan(&rows))
	require.Equal(t, 10, rows)
}

func TestIntegrationRecordAndAggregate(t *testing.T) {
	l, db := newIntegrationLedger(t)
	ctx := context.Background()

	admin, err := l.CreateInitialAdmin(ctx, "0000", "zoe")
	require.NoError(t, err)
	bob, err := l.CreateUser(ctx, "1111", "bob", false)
	require.NoError(t, err)
	_, err = l.CreateUser(ctx, "1111", "bobby", false)
	require.ErrorIs(t, err, ErrDuplicatePin)

	_, err = l.CreateProduct(ctx, "4001", "Mate", 5, decimal.NewNullDecimal(decimal.RequireFromString("1.50")))
	require.NoError(t, err)
	_, err = l.CreateProduct(ctx, "4002", "Cola", 5, decimal.NullDecimal{})
	require.NoError(t, err)
	_, err = l.CreateProduct(ctx, "4001", "Other", 1, decimal.NullDecimal{})
	require.ErrorIs(t, err, ErrDuplicateBarcode)

	require.NoError(t, l.RecordTransaction(ctx, bob.ID, "4001", 3))
	require.NoError(t, l.RecordTransaction(ctx, bob.ID, "4002", 1))
	require.NoError(t, l.RecordTransaction(ctx, admin.ID, "4001", 2))

	require.ErrorIs(t, l.RecordTransaction(ctx, bob.ID, "4001", 1), ErrInsufficientStock)
	require.ErrorIs(t, l.RecordTransaction(ctx, bob.ID, "9999", 1), ErrUnknownBarcode)
	require.ErrorIs(t, l.RecordTransaction(ctx, bob.ID, "4002", 0), ErrInvalidQuantity)

	hist, err := l.History(ctx, bob.ID, 10)
	require.NoError(t, err)
	require.Len(t, hist, 4)
	for i := 1; i < len(hist); i++ {
		require.Greater(t, hist[i-1].ID, hist[i].ID)
	}

	var rows int
	require.NoError(t, db.QueryRow(ctx, `SELECT count(*) FROM transactions`).Scan(&rows))
	require.Equal(t, 6, rows)

	summary, err := l.UserSummary(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, summary, 2)
	require.Equal(t, "Cola", summary[0].ProductName)
	require.Equal(t, 1, summary[0].Count)
	require.Equal(t, "Mate", summary[1].ProductName)
	require.Equal(t, 3, summary[1].Count)

	report, err := l.ConsumptionReport(ctx)
	require.NoError(t, err)
	require.Len(t, report, 3)
	require.Equal(t, "bob", report[0].UserName)
	require.Equal(t, "zoe", report[2].UserName)
	require.True(t, decimal.RequireFromString("3.00").Equal(report[2].Cost.Decimal))

	// 刪除商品後，歷史紀錄保留但不出現在彙總中
	require.NoError(t, l.DeleteProduct(ctx, "4002"))
	summary, err = l.UserSummary(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	require.NoError(t, db.QueryRow(ctx, `SELECT count(*) FROM transactions`).Scan(&rows))
	require.Equal(t, 6, rows)
}

func TestIntegrationAdminGuard(t *testing.T) {
	l, _ := newIntegrationLedger(t)
	ctx := context.Background()

	_, err := l.CreateUser(ctx, "1111", "early", false)
	require.ErrorIs(t, err, ErrAdminRequired)

	a, err := l.CreateInitialAdmin(ctx, "0000", "a")
	require.NoError(t, err)
	_, err = l.CreateInitialAdmin(ctx, "0001", "again")
	require.ErrorIs(t, err, ErrAlreadyInitialized)
	b, err := l.CreateUser(ctx, "2222", "b", true)
	require.NoError(t, err)

	require.ErrorIs(t, l.DeleteUser(ctx, "a", a.ID), ErrSelfDeletion)

	// 兩位 admin 同時刪除對方，只能有一位成功
	errs := make([]error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); errs[0] = l.DeleteUserByID(ctx, b.ID, a.ID) }()
	go func() { defer wg.Done(); errs[1] = l.DeleteUserByID(ctx, a.ID, b.ID) }()
	wg.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			require.ErrorIs(t, err, ErrLastAdminProtected)
			failed++
		}
	}
	require.Equal(t, 1, failed)

	n, err := l.UserCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestIntegrationNameResolution(t *testing.T) {
	l, _ := newIntegrationLedger(t)
	ctx := context.Background()

	_, err := l.CreateInitialAdmin(ctx, "0000", "admin")
	require.NoError(t, err)
	_, err = l.CreateUser(ctx, "1111", "sam", false)
	require.NoError(t, err)
	_, err = l.CreateUser(ctx, "2222", "sam", false)
	require.NoError(t, err)

	require.ErrorIs(t, l.UpdatePin(ctx, "sam", "3333"), ErrAmbiguousName)
	require.ErrorIs(t, l.UpdatePin(ctx, "nobody", "3333"), ErrNotFound)
	require.ErrorIs(t, l.UpdatePin(ctx, "admin", "1111"), ErrDuplicatePin)
	require.NoError(t, l.UpdatePin(ctx, "admin", "9999"))

	u, err := l.Authenticate(ctx, "9999")
	require.NoError(t, err)
	require.Equal(t, "admin", u.Name)
	_, err = l.Authenticate(ctx, "0000")
	require.ErrorIs(t, err, ErrNotFound)

	users, err := l.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.Equal(t, "admin", users[0].Name)
}
