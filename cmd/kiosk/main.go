package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Grefendor/drinks/internal/database"
	"github.com/Grefendor/drinks/internal/ledger"
	"github.com/Grefendor/drinks/internal/lookup"

	"github.com/spf13/cobra"
)

var (
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	rollbackAllFn   = database.RollbackAll
	newPrompter     = newReadlinePrompter
	exitFunc        = os.Exit
	newLedger       = func(db database.DB, pepper string, lockTimeout time.Duration) (ledger.Service, error) {
		return ledger.New(db, ledger.WithPinPepper(pepper), ledger.WithLockTimeout(lockTimeout))
	}
)

var errNoDatabaseURL = errors.New("環境變數 DATABASE_URL 未設定 (或使用 --database-url)")

type options struct {
	databaseURL string
	lookupURL   string
	lockTimeout time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "kiosk",
		Short:         "Drinks ledger kiosk",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.databaseURL, "database-url", os.Getenv("DATABASE_URL"), "Postgres connection URL")
	f.StringVar(&opts.lookupURL, "lookup-url", lookup.DefaultBaseURL, "barcode lookup base URL")
	f.DurationVar(&opts.lockTimeout, "lock-timeout", ledger.DefaultLockTimeout, "row lock wait limit")

	root.AddCommand(newRunCmd(opts), newExportCmd(opts), newMigrateCmd(opts))
	return root
}

// openLedger PIN pepper 只從環境變數讀取，不接受命令列參數
func openLedger(ctx context.Context, opts *options) (ledger.Service, func(), error) {
	db, err := newPgxPool(ctx, opts.databaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("DB 連線失敗: %v", err)
	}
	svc, err := newLedger(db, os.Getenv("PIN_PEPPER"), opts.lockTimeout)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("ledger 初始化失敗: %w", err)
	}
	return svc, db.Close, nil
}

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive kiosk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.databaseURL == "" {
				return errNoDatabaseURL
			}
			svc, closeDB, err := openLedger(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer closeDB()

			if err := runMigrationsFn(opts.databaseURL); err != nil {
				return fmt.Errorf("Migration 執行失敗: %v", err)
			}

			p, err := newPrompter()
			if err != nil {
				return err
			}
			defer p.Close()

			k := NewKiosk(svc, p, cmd.OutOrStdout(), lookup.New(opts.lookupURL))
			return k.Run(cmd.Context())
		},
	}
}

func newExportCmd(opts *options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the PDF report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.databaseURL == "" {
				return errNoDatabaseURL
			}
			svc, closeDB, err := openLedger(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer closeDB()

			if err := exportPDF(cmd.Context(), svc, out); err != nil {
				return fmt.Errorf("報表輸出失敗: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s.\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "report.pdf", "output file")
	return cmd
}

func newMigrateCmd(opts *options) *cobra.Command {
	var down bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply (or with --down roll back) all migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.databaseURL == "" {
				return errNoDatabaseURL
			}
			if down {
				if err := rollbackAllFn(opts.databaseURL); err != nil {
					return fmt.Errorf("Migration 回滾失敗: %v", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Migrations rolled back.")
				return nil
			}
			if err := runMigrationsFn(opts.databaseURL); err != nil {
				return fmt.Errorf("Migration 執行失敗: %v", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "roll back every migration")
	return cmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
	}
}
