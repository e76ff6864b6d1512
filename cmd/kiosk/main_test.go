package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Grefendor/drinks/internal/database"
	"github.com/Grefendor/drinks/internal/ledger"
	"github.com/Grefendor/drinks/internal/model"
)

func restoreGlobals() {
	newPgxPool = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	rollbackAllFn = database.RollbackAll
	newPrompter = newReadlinePrompter
	exitFunc = func(code int) {}
	newLedger = func(db database.DB, pepper string, lockTimeout time.Duration) (ledger.Service, error) {
		return ledger.New(db, ledger.WithPinPepper(pepper), ledger.WithLockTimeout(lockTimeout))
	}
}

// stubDB 以 FakeDB 取代連線並記錄是否關閉
func stubDB(t *testing.T) *bool {
	t.Helper()
	closed := false
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		return &database.FakeDB{CloseFn: func() { closed = true }}, nil
	}
	return &closed
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMigrateCommand(t *testing.T) {
	defer restoreGlobals()
	t.Setenv("DATABASE_URL", "postgres://env")

	var up, down string
	runMigrationsFn = func(url string) error { up = url; return nil }
	rollbackAllFn = func(url string) error { down = url; return nil }

	out, err := execute(t, "migrate")
	require.NoError(t, err)
	require.Contains(t, out, "Migrations applied.")
	require.Equal(t, "postgres://env", up)

	out, err = execute(t, "migrate", "--down", "--database-url", "postgres://flag")
	require.NoError(t, err)
	require.Contains(t, out, "Migrations rolled back.")
	require.Equal(t, "postgres://flag", down)

	rollbackAllFn = func(string) error { return errors.New("locked") }
	_, err = execute(t, "migrate", "--down")
	require.ErrorContains(t, err, "locked")
}

func TestMissingDatabaseURL(t *testing.T) {
	defer restoreGlobals()
	t.Setenv("DATABASE_URL", "")

	for _, args := range [][]string{{"run"}, {"export"}, {"migrate"}} {
		_, err := execute(t, args...)
		require.ErrorIs(t, err, errNoDatabaseURL, args[0])
	}
}

func TestExportCommand(t *testing.T) {
	defer restoreGlobals()
	t.Setenv("DATABASE_URL", "postgres://env")
	closed := stubDB(t)

	svc := &ledger.FakeService{
		ConsumptionReportFn: func(ctx context.Context) ([]model.ReportRow, error) { return nil, nil },
		InventoryFn:         func(ctx context.Context) ([]model.Product, error) { return nil, nil },
		ListUsersFn:         func(ctx context.Context) ([]model.User, error) { return nil, nil },
	}
	var gotTimeout time.Duration
	newLedger = func(db database.DB, pepper string, lockTimeout time.Duration) (ledger.Service, error) {
		gotTimeout = lockTimeout
		return svc, nil
	}

	path := filepath.Join(t.TempDir(), "r.pdf")
	out, err := execute(t, "export", "--out", path, "--lock-timeout", "2s")
	require.NoError(t, err)
	require.Contains(t, out, "Report written to")
	require.Equal(t, 2*time.Second, gotTimeout)
	require.True(t, *closed)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestOpenLedgerErrors(t *testing.T) {
	defer restoreGlobals()

	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		return nil, errors.New("refused")
	}
	_, _, err := openLedger(context.Background(), &options{databaseURL: "x"})
	require.ErrorContains(t, err, "refused")

	closed := stubDB(t)
	t.Setenv("PIN_PEPPER", "")
	_, _, err = openLedger(context.Background(), &options{databaseURL: "x"})
	require.Error(t, err)
	require.True(t, *closed)
}

func TestRunCommand(t *testing.T) {
	defer restoreGlobals()
	t.Setenv("DATABASE_URL", "postgres://env")
	stubDB(t)

	migrated := false
	runMigrationsFn = func(string) error { migrated = true; return nil }
	newLedger = func(database.DB, string, time.Duration) (ledger.Service, error) {
		return &ledger.FakeService{
			UserCountFn: func(ctx context.Context) (int, error) { return 1, nil },
		}, nil
	}
	p := script("exit")
	newPrompter = func() (prompter, error) { return p, nil }

	_, err := execute(t, "run")
	require.NoError(t, err)
	require.True(t, migrated)
	require.True(t, p.closed)

	runMigrationsFn = func(string) error { return errors.New("dirty") }
	_, err = execute(t, "run")
	require.ErrorContains(t, err, "dirty")
}

func TestMainExit(t *testing.T) {
	defer restoreGlobals()
	t.Setenv("DATABASE_URL", "")

	code := 0
	exitFunc = func(c int) { code = c }
	args := os.Args
	defer func() { os.Args = args }()
	os.Args = []string{"kiosk", "migrate"}

	main()
	require.Equal(t, 1, code)
}
