// File: internal/ledger/ledger.go
package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/Grefendor/drinks/internal/database"
	"github.com/Grefendor/drinks/internal/model"
	"github.com/Grefendor/drinks/internal/service"
	"github.com/Grefendor/drinks/internal/store"
	"github.com/shopspring/decimal"
)

// DefaultLockTimeout 寫入交易等待鎖的上限，逾時回傳 ErrBusy
const DefaultLockTimeout = 5 * time.Second

// DefaultHistoryLimit History 未指定筆數時的預設值
const DefaultHistoryLimit = 20

// Service 為前端 (HTTP API、kiosk CLI、匯出) 使用的帳本操作
type Service interface {
	// Identity
	Authenticate(ctx context.Context, pin string) (model.User, error)
	CreateUser(ctx context.Context, pin, name string, isAdmin bool) (model.User, error)
	CreateInitialAdmin(ctx context.Context, pin, name string) (model.User, error)
	UpdatePin(ctx context.Context, name, newPin string) error
	UpdatePinByID(ctx context.Context, userID int, newPin string) error
	UserCount(ctx context.Context) (int, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, userID int) (model.User, error)
	DeleteUser(ctx context.Context, name string, actingUserID int) error
	DeleteUserByID(ctx context.Context, userID, actingUserID int) error

	// Catalog
	CreateProduct(ctx context.Context, barcode, name string, initialCount int, price decimal.NullDecimal) (model.Product, error)
	GetProduct(ctx context.Context, barcode string) (model.Product, error)
	UpdateProductCount(ctx context.Context, barcode string, newCount int) error
	UpdateProduct(ctx context.Context, barcode, name string, price decimal.NullDecimal) error
	DeleteProduct(ctx context.Context, barcode string) error
	Inventory(ctx context.Context) ([]model.Product, error)

	// Ledger engine
	RecordTransaction(ctx context.Context, userID int, barcode string, quantity int) error
	History(ctx context.Context, userID, limit int) ([]model.Transaction, error)

	// Aggregation
	UserSummary(ctx context.Context, userID int) ([]model.SummaryRow, error)
	ConsumptionReport(ctx context.Context) ([]model.ReportRow, error)
}

// store 與 PIN 雜湊，測試時替換
var (
	hashPin = service.HashPin
	withTx  = database.WithTx

	lockUsers            = store.LockUsers
	countUsers           = store.CountUsers
	countAdmins          = store.CountAdmins
	createUser           = store.CreateUser
	getUserByID          = store.GetUserByID
	getUserByPinDigest   = store.GetUserByPinDigest
	lockUserShare        = store.LockUserShare
	findUsersByName      = store.FindUsersByName
	listUsers            = store.ListUsers
	updateUserPinDigest  = store.UpdateUserPinDigest
	deleteUser           = store.DeleteUser
	createProduct        = store.CreateProduct
	getProductByBarcode  = store.GetProductByBarcode
	lockProductByBarcode = store.LockProductByBarcode
	listProducts         = store.ListProducts
	setProductCount      = store.SetProductCount
	updateProductDetails = store.UpdateProductDetails
	deleteProduct        = store.DeleteProduct
	decrementProduct     = store.DecrementProductCount
	insertTransactions   = store.InsertTransactions
	listTransactions     = store.ListTransactionsByUser
	userSummary          = store.UserSummary
	consumptionReport    = store.ConsumptionReport
)

// Ledger 以 Postgres 實作 Service；可被多個 goroutine 同時使用
type Ledger struct {
	db          database.DB
	lockTimeout time.Duration
	pepper      string
}

var _ Service = (*Ledger)(nil)

type Option func(*Ledger)

func WithLockTimeout(d time.Duration) Option {
	return func(l *Ledger) {
		if d > 0 {
			l.lockTimeout = d
		}
	}
}

func WithPinPepper(pepper string) Option {
	return func(l *Ledger) { l.pepper = pepper }
}

func New(db database.DB, opts ...Option) (*Ledger, error) {
	if db == nil {
		return nil, errors.New("ledger: nil database")
	}
	l := &Ledger{db: db, lockTimeout: DefaultLockTimeout}
	for _, opt := range opts {
		opt(l)
	}
	if l.pepper == "" {
		return nil, service.ErrEmptyPepper
	}
	return l, nil
}

func (l *Ledger) tx(ctx context.Context, fn func(q database.Querier) error) error {
	return withTx(ctx, l.db, l.lockTimeout, fn)
}

func (l *Ledger) digest(pin string) (string, error) {
	if pin == "" {
		return "", ErrInvalidInput
	}
	return hashPin(pin, l.pepper)
}
